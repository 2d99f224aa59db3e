package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeRender(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRenderCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			"default like",
			[]string{"name", "%John%"},
			"(name LIKE '%John%')\n",
		},
		{
			"ilike",
			[]string{"name", "%john%", "--op", "ilike"},
			"(UPPER(name) LIKE UPPER('%john%'))\n",
		},
		{
			"regexp",
			[]string{"name", "^John", "--op", "regexp"},
			"(regexp_matches(name, '^John'))\n",
		},
		{
			"case-insensitive regexp",
			[]string{"name", "^john", "--op", "iregexp"},
			"(regexp_matches(name, '^john', 'i'))\n",
		},
		{
			"qualified column",
			[]string{"users.email", "%@example.com", "--op", "not-like"},
			"(users.email NOT LIKE '%@example.com')\n",
		},
		{
			"pattern with quote",
			[]string{"name", "%O'Brien%"},
			"(name LIKE '%O''Brien%')\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeRender(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderCommandUnknownOp(t *testing.T) {
	_, err := executeRender(t, "name", "x", "--op", "soundex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operator")
	assert.Contains(t, err.Error(), "soundex")
}

func TestRenderCommandMissingArgs(t *testing.T) {
	_, err := executeRender(t, "name")
	require.Error(t, err)
}
