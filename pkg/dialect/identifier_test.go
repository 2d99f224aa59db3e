package dialect_test

import (
	"testing"

	"github.com/quarryhq/quarry/pkg/dialect"
	"github.com/stretchr/testify/assert"
)

func testDialect() *dialect.Dialect {
	return dialect.NewDialect("test").
		DefaultSchema("main").
		WithReservedWords("select", "from", "order", "table").
		Build()
}

func TestRenderIdentifier(t *testing.T) {
	d := testDialect()

	tests := []struct {
		name  string
		ident string
		want  string
	}{
		{"bare lowercase", "users", "users"},
		{"bare mixed case", "UserName", "UserName"},
		{"leading underscore", "_private", "_private"},
		{"wildcard unquoted", "*", "*"},
		{"reserved word", "order", `"order"`},
		{"reserved word uppercase", "SELECT", `"SELECT"`},
		{"embedded space", "first name", `"first name"`},
		{"leading digit", "1col", `"1col"`},
		{"embedded quote doubled", `say "hi"`, `"say ""hi"""`},
		{"dash", "col-name", `"col-name"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.RenderIdentifier(tt.ident))
		})
	}
}

func TestRenderQualified(t *testing.T) {
	d := testDialect()

	assert.Equal(t, "users.id", d.RenderQualified("users", "id"))
	assert.Equal(t, `"order".id`, d.RenderQualified("order", "id"))
	assert.Equal(t, `users."select"`, d.RenderQualified("users", "select"))
	assert.Equal(t, "t.*", d.RenderQualified("t", "*"))
}

func TestIsReservedWordCaseInsensitive(t *testing.T) {
	d := testDialect()

	assert.True(t, d.IsReservedWord("select"))
	assert.True(t, d.IsReservedWord("SELECT"))
	assert.True(t, d.IsReservedWord("SeLeCt"))
	assert.False(t, d.IsReservedWord("users"))
}
