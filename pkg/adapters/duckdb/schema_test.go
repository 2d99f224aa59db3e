package duckdb

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/quarryhq/quarry/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockAdapter(t *testing.T) (*Adapter, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := New(nil)
	a.DB = db
	return a, mock
}

func TestListTables(t *testing.T) {
	a, mock := newMockAdapter(t)

	mock.ExpectQuery("SELECT table_name").
		WithArgs("main").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("events").
			AddRow("users"))

	tables, err := a.ListTables(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"events", "users"}, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTablesExplicitSchema(t *testing.T) {
	a, mock := newMockAdapter(t)

	mock.ExpectQuery("SELECT table_name").
		WithArgs("analytics").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))

	tables, err := a.ListTables(context.Background(), "analytics")
	require.NoError(t, err)
	assert.Empty(t, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTablesWithoutConnection(t *testing.T) {
	a := New(nil)
	_, err := a.ListTables(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection not established")
}

func expectTableExists(mock sqlmock.Sqlmock, schema, table string, count int) {
	mock.ExpectQuery("SELECT count").
		WithArgs(schema, table).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestDescribeTable(t *testing.T) {
	a, mock := newMockAdapter(t)

	expectTableExists(mock, "main", "users", 1)

	columns := sqlmock.NewRows([]string{
		"column_name", "data_type", "is_nullable", "column_default",
		"character_maximum_length", "numeric_precision", "numeric_scale",
	}).
		AddRow("id", "INTEGER", "YES", nil, nil, 32, 0).
		AddRow("name", "VARCHAR", "YES", nil, 255, nil, nil).
		AddRow("balance", "DECIMAL(10,2)", "YES", "0.00", nil, 10, 2).
		AddRow("active", "BOOLEAN", "NO", "CAST('t' AS BOOLEAN)", nil, nil, nil).
		AddRow("created_at", "TIMESTAMP", "YES", "now()", nil, nil, nil)
	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("main", "users").
		WillReturnRows(columns)

	mock.ExpectQuery(regexp.QuoteMeta("duckdb_constraints()")).
		WithArgs("main", "users").
		WillReturnRows(sqlmock.NewRows([]string{"unnest"}).AddRow("id"))

	got, err := a.DescribeTable(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, got, 5)

	id := got[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, core.TagInteger, id.Type)
	assert.True(t, id.PrimaryKey)
	assert.False(t, id.Nullable, "primary key column must not be nullable even if the catalog says YES")
	require.NotNil(t, id.Precision)
	assert.Equal(t, 32, *id.Precision)

	name := got[1]
	assert.Equal(t, core.TagString, name.Type)
	assert.Equal(t, "VARCHAR", name.NativeType)
	assert.True(t, name.Nullable)
	assert.False(t, name.PrimaryKey)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, 255, *name.MaxLength)
	assert.Nil(t, name.Default)

	balance := got[2]
	assert.Equal(t, core.TagDecimal, balance.Type)
	assert.Equal(t, core.Float(0), balance.Default)

	active := got[3]
	assert.Equal(t, core.TagBoolean, active.Type)
	assert.False(t, active.Nullable)
	assert.Equal(t, core.Bool(true), active.Default)

	createdAt := got[4]
	assert.Equal(t, core.TagDatetime, createdAt.Type)
	assert.Equal(t, core.Raw("now()"), createdAt.Default)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeTableQualified(t *testing.T) {
	a, mock := newMockAdapter(t)

	expectTableExists(mock, "analytics", "events", 1)

	mock.ExpectQuery("FROM information_schema.columns").
		WithArgs("analytics", "events").
		WillReturnRows(sqlmock.NewRows([]string{
			"column_name", "data_type", "is_nullable", "column_default",
			"character_maximum_length", "numeric_precision", "numeric_scale",
		}).AddRow("id", "BIGINT", "NO", nil, nil, 64, 0))

	mock.ExpectQuery(regexp.QuoteMeta("duckdb_constraints()")).
		WithArgs("analytics", "events").
		WillReturnRows(sqlmock.NewRows([]string{"unnest"}))

	got, err := a.DescribeTable(context.Background(), "analytics.events")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, core.TagBigInt, got[0].Type)
	assert.False(t, got[0].PrimaryKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeTableNotFound(t *testing.T) {
	a, mock := newMockAdapter(t)

	expectTableExists(mock, "main", "missing", 0)

	_, err := a.DescribeTable(context.Background(), "missing")
	require.Error(t, err)

	var notFound *core.SchemaNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "main", notFound.Schema)
	assert.Equal(t, "missing", notFound.Table)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeIndexes(t *testing.T) {
	a, mock := newMockAdapter(t)

	expectTableExists(mock, "main", "users", 1)

	mock.ExpectQuery(regexp.QuoteMeta("duckdb_indexes()")).
		WithArgs("main", "users").
		WillReturnRows(sqlmock.NewRows([]string{"index_name", "is_unique", "is_primary", "expressions"}).
			AddRow("idx_city_country", false, false, "[city, country]").
			AddRow("uq_users_email", true, false, "['email']"))

	got, err := a.DescribeIndexes(context.Background(), "users")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "idx_city_country", got[0].Name)
	assert.Equal(t, []string{"city", "country"}, got[0].Columns)
	assert.False(t, got[0].Unique)
	assert.False(t, got[0].Primary)

	assert.Equal(t, "uq_users_email", got[1].Name)
	assert.Equal(t, []string{"email"}, got[1].Columns)
	assert.True(t, got[1].Unique)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeIndexesUnindexedTable(t *testing.T) {
	a, mock := newMockAdapter(t)

	expectTableExists(mock, "main", "users", 1)

	mock.ExpectQuery(regexp.QuoteMeta("duckdb_indexes()")).
		WithArgs("main", "users").
		WillReturnRows(sqlmock.NewRows([]string{"index_name", "is_unique", "is_primary", "expressions"}))

	got, err := a.DescribeIndexes(context.Background(), "users")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribeIndexesNotFound(t *testing.T) {
	a, mock := newMockAdapter(t)

	expectTableExists(mock, "main", "missing", 0)

	_, err := a.DescribeIndexes(context.Background(), "missing")
	require.Error(t, err)

	var notFound *core.SchemaNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "main", notFound.Schema)
	assert.Equal(t, "missing", notFound.Table)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseIndexColumns(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"[city]", []string{"city"}},
		{"[city, country]", []string{"city", "country"}},
		{"['city', 'country']", []string{"city", "country"}},
		{`["city"]`, []string{"city"}},
		{"[]", nil},
		{"", nil},
		{" [ a , b ] ", []string{"a", "b"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseIndexColumns(tt.in), "input %q", tt.in)
	}
}

func TestParseColumnDefault(t *testing.T) {
	tests := []struct {
		in   string
		want core.Value
	}{
		{"", nil},
		{"NULL", core.Null{}},
		{"null", core.Null{}},
		{"true", core.Bool(true)},
		{"false", core.Bool(false)},
		{"CAST('t' AS BOOLEAN)", core.Bool(true)},
		{"CAST('f' AS BOOLEAN)", core.Bool(false)},
		{"'pending'", core.String("pending")},
		{"'it''s'", core.String("it's")},
		{"42", core.Integer(42)},
		{"-7", core.Integer(-7)},
		{"0.00", core.Float(0)},
		{"1.5", core.Float(1.5)},
		{"now()", core.Raw("now()")},
		{"nextval('seq')", core.Raw("nextval('seq')")},
		{"CURRENT_TIMESTAMP", core.Raw("CURRENT_TIMESTAMP")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseColumnDefault(tt.in), "input %q", tt.in)
	}
}
