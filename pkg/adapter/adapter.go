// Package adapter provides the database adapter contract for Quarry's
// dialect-translation and catalog-introspection layer.
//
// This package contains the public contract that all database adapters must
// implement. Concrete adapter implementations are in pkg/adapters/
// subdirectories.
package adapter

import (
	"context"

	"github.com/quarryhq/quarry/pkg/core"
	"github.com/quarryhq/quarry/pkg/dialect"
)

// Config is an alias for core.AdapterConfig.
type Config = core.AdapterConfig

// Rows is an alias for core.Rows.
type Rows = core.Rows

// Executor is the minimal execute surface an adapter exposes to callers
// that only need to run SQL, such as the schema cache refresh path.
type Executor interface {
	Query(ctx context.Context, sql string) (*Rows, error)
}

// Adapter defines the interface that all database adapters must implement.
// It provides methods for connecting to databases, executing SQL, decoding
// catalog metadata, and classifying engine errors.
type Adapter interface {
	// Connect establishes a connection to the database using the provided
	// config. Failures are reported as a core.ClassifiedError with kind
	// core.KindConnectionError.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows (e.g., INSERT,
	// UPDATE, CREATE).
	Exec(ctx context.Context, sql string) error

	// Query executes a SQL statement that returns rows.
	Query(ctx context.Context, sql string) (*Rows, error)

	// ListTables returns the base table names in a schema, sorted. An empty
	// schema means the dialect's default schema.
	ListTables(ctx context.Context, schema string) ([]string, error)

	// DescribeTable decodes the column descriptors for a table. The table
	// reference may be qualified ("schema.table") or bare. A missing table
	// is reported as a core.SchemaNotFoundError.
	DescribeTable(ctx context.Context, table string) ([]core.ColumnDescriptor, error)

	// DescribeIndexes decodes the index descriptors for a table.
	DescribeIndexes(ctx context.Context, table string) ([]core.IndexDescriptor, error)

	// Classify maps an engine error to its canonical error kind. The
	// original error is preserved in the returned ClassifiedError's chain.
	Classify(err error) *core.ClassifiedError

	// Dialect returns the SQL dialect configuration for this adapter.
	Dialect() *dialect.Dialect
}
