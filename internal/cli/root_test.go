package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHelp(t *testing.T) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"--help"})

	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "quarry")
	for _, sub := range []string{"tables", "describe", "indexes", "render", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootCommandRenderOffline(t *testing.T) {
	// render must work with no database configured at all.
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"render", "name", "%John%"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "(name LIKE '%John%')\n", buf.String())
}

func TestRootCommandVersionFlag(t *testing.T) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), Version)
}

func TestRootCommandUnknownAdapterType(t *testing.T) {
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"tables", "--type", "oracle9i"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle9i")
}
