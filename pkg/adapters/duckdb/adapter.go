// Package duckdb provides a DuckDB database adapter for Quarry.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/quarryhq/quarry/pkg/adapter"
	duckdialect "github.com/quarryhq/quarry/pkg/adapters/duckdb/dialect"
	"github.com/quarryhq/quarry/pkg/core"
	"github.com/quarryhq/quarry/pkg/dialect"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter

	params Params
}

// New creates a new DuckDB adapter instance. A nil logger discards output.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &Adapter{}
	a.Logger = logger
	return a
}

// Connect establishes a connection to DuckDB.
// Use ":memory:" as the path for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	params, err := ParseParams(cfg.Params)
	if err != nil {
		return connectionError(fmt.Errorf("invalid duckdb params: %w", err))
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return connectionError(fmt.Errorf("failed to open duckdb connection: %w", err))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return connectionError(fmt.Errorf("failed to ping duckdb: %w", err))
	}

	if err := applyParams(ctx, db, params); err != nil {
		_ = db.Close()
		return connectionError(err)
	}

	a.DB = db
	a.Cfg = cfg
	a.params = params
	a.Logger.Debug("connected to duckdb", "path", path)

	return nil
}

func connectionError(err error) error {
	return &core.ClassifiedError{Kind: core.KindConnectionError, Err: err}
}

// applyParams installs requested extensions and applies session settings.
func applyParams(ctx context.Context, db *sql.DB, params Params) error {
	for _, ext := range params.Extensions {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("INSTALL %s; LOAD %s;", ext, ext)); err != nil {
			return fmt.Errorf("failed to load extension %s: %w", ext, err)
		}
	}
	for key, value := range params.Settings {
		quoted := strings.ReplaceAll(value, "'", "''")
		if _, err := db.ExecContext(ctx, fmt.Sprintf("SET %s = '%s'", key, quoted)); err != nil {
			return fmt.Errorf("failed to apply setting %s: %w", key, err)
		}
	}
	return nil
}

// LoadCSV loads data from a CSV file into a table.
// DuckDB infers the schema from the CSV file.
func (a *Adapter) LoadCSV(ctx context.Context, tableName string, filePath string) error {
	if a.DB == nil {
		return fmt.Errorf("database connection not established")
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	query := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv_auto('%s', header=true)",
		a.Dialect().RenderIdentifier(tableName),
		absPath,
	)

	if err := a.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to load CSV: %w", err)
	}

	return nil
}

// Dialect returns the DuckDB dialect configuration.
func (a *Adapter) Dialect() *dialect.Dialect {
	return duckdialect.DuckDB
}

// Ensure Adapter implements adapter.Adapter interface
var _ adapter.Adapter = (*Adapter)(nil)
