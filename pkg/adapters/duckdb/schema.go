package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/quarryhq/quarry/pkg/adapter"
	duckdialect "github.com/quarryhq/quarry/pkg/adapters/duckdb/dialect"
	"github.com/quarryhq/quarry/pkg/core"
)

// ListTables returns the base table names in a schema, sorted.
// An empty schema means the dialect's default schema ("main").
func (a *Adapter) ListTables(ctx context.Context, schema string) ([]string, error) {
	if a.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}
	if schema == "" {
		schema = a.Dialect().DefaultSchema
	}

	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := a.DB.QueryContext(ctx, query, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}
	return tables, nil
}

// DescribeTable decodes the column descriptors for a table. The table
// reference may be qualified ("schema.table") or bare. A missing table is
// reported as a core.SchemaNotFoundError, never an empty result.
func (a *Adapter) DescribeTable(ctx context.Context, table string) ([]core.ColumnDescriptor, error) {
	if a.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	schema, tableName := adapter.ParseQualifiedName(table, a.Dialect())

	exists, err := a.tableExists(ctx, schema, tableName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &core.SchemaNotFoundError{Schema: schema, Table: tableName}
	}

	query := `
		SELECT
			column_name,
			data_type,
			is_nullable,
			column_default,
			character_maximum_length,
			numeric_precision,
			numeric_scale
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ?
		ORDER BY ordinal_position
	`

	rows, err := a.DB.QueryContext(ctx, query, schema, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to query column metadata: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var columns []core.ColumnDescriptor
	for rows.Next() {
		var (
			col        core.ColumnDescriptor
			nullable   string
			defaultVal sql.NullString
			maxLength  sql.NullInt64
			precision  sql.NullInt64
			scale      sql.NullInt64
		)
		if err := rows.Scan(&col.Name, &col.NativeType, &nullable, &defaultVal, &maxLength, &precision, &scale); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata: %w", err)
		}

		col.Type = duckdialect.NativeToCanonical(col.NativeType)
		col.Nullable = nullable == "YES"
		if defaultVal.Valid {
			col.Default = parseColumnDefault(defaultVal.String)
		}
		if maxLength.Valid {
			n := int(maxLength.Int64)
			col.MaxLength = &n
		}
		if precision.Valid {
			n := int(precision.Int64)
			col.Precision = &n
		}
		if scale.Valid {
			n := int(scale.Int64)
			col.Scale = &n
		}
		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating column metadata: %w", err)
	}

	pk, err := a.primaryKeyColumns(ctx, schema, tableName)
	if err != nil {
		return nil, err
	}
	for i := range columns {
		if _, ok := pk[columns[i].Name]; ok {
			columns[i].PrimaryKey = true
			// The catalog reports key columns as nullable; the key
			// constraint makes them NOT NULL in practice.
			columns[i].Nullable = false
		}
	}

	return columns, nil
}

func (a *Adapter) tableExists(ctx context.Context, schema, table string) (bool, error) {
	query := `
		SELECT count(*)
		FROM information_schema.tables
		WHERE table_schema = ? AND table_name = ?
	`
	var count int
	if err := a.DB.QueryRowContext(ctx, query, schema, table).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to probe table existence: %w", err)
	}
	return count > 0, nil
}

// primaryKeyColumns returns the set of primary key column names.
func (a *Adapter) primaryKeyColumns(ctx context.Context, schema, table string) (map[string]struct{}, error) {
	query := `
		SELECT unnest(constraint_column_names)
		FROM duckdb_constraints()
		WHERE schema_name = ? AND table_name = ? AND constraint_type = 'PRIMARY KEY'
	`

	rows, err := a.DB.QueryContext(ctx, query, schema, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query primary key constraints: %w", err)
	}
	defer func() { _ = rows.Close() }()

	pk := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan primary key column: %w", err)
		}
		pk[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating primary key columns: %w", err)
	}
	return pk, nil
}

// DescribeIndexes decodes the index descriptors for a table, including the
// implicit primary key index when present. A missing table is reported as
// a core.SchemaNotFoundError; an unindexed table returns an empty result.
func (a *Adapter) DescribeIndexes(ctx context.Context, table string) ([]core.IndexDescriptor, error) {
	if a.DB == nil {
		return nil, fmt.Errorf("database connection not established")
	}

	schema, tableName := adapter.ParseQualifiedName(table, a.Dialect())

	exists, err := a.tableExists(ctx, schema, tableName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &core.SchemaNotFoundError{Schema: schema, Table: tableName}
	}

	query := `
		SELECT index_name, is_unique, is_primary, expressions
		FROM duckdb_indexes()
		WHERE schema_name = ? AND table_name = ?
		ORDER BY index_name
	`

	rows, err := a.DB.QueryContext(ctx, query, schema, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to query indexes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var indexes []core.IndexDescriptor
	for rows.Next() {
		var (
			idx         core.IndexDescriptor
			expressions string
		)
		if err := rows.Scan(&idx.Name, &idx.Unique, &idx.Primary, &expressions); err != nil {
			return nil, fmt.Errorf("failed to scan index metadata: %w", err)
		}
		idx.Columns = parseIndexColumns(expressions)
		indexes = append(indexes, idx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating indexes: %w", err)
	}
	return indexes, nil
}

// parseIndexColumns splits the catalog's expressions column, a bracketed
// list such as `[city, country]` or `['city', 'country']`.
func parseIndexColumns(expressions string) []string {
	s := strings.TrimSpace(expressions)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		col := strings.TrimSpace(part)
		col = strings.Trim(col, `'"`)
		if col != "" {
			columns = append(columns, col)
		}
	}
	return columns
}

// parseColumnDefault decodes the textual column_default from the catalog
// into a typed value. Literal defaults become typed values; anything the
// mini-grammar does not recognize (function calls, casts of expressions)
// is preserved verbatim as core.Raw so it can be re-emitted in DDL.
func parseColumnDefault(text string) core.Value {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}

	if strings.EqualFold(s, "NULL") {
		return core.Null{}
	}

	// DuckDB renders boolean defaults as CAST('t' AS BOOLEAN).
	switch {
	case strings.EqualFold(s, "true"), strings.EqualFold(s, "CAST('t' AS BOOLEAN)"):
		return core.Bool(true)
	case strings.EqualFold(s, "false"), strings.EqualFold(s, "CAST('f' AS BOOLEAN)"):
		return core.Bool(false)
	}

	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		inner := s[1 : len(s)-1]
		return core.String(strings.ReplaceAll(inner, "''", "'"))
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return core.Integer(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && strings.ContainsAny(s, ".eE") {
		return core.Float(f)
	}

	return core.Raw(s)
}
