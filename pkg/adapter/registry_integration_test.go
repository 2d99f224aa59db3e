package adapter_test

import (
	"testing"

	"github.com/quarryhq/quarry/pkg/adapter"
	"github.com/quarryhq/quarry/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Import adapter packages to ensure adapters are registered via init()
	_ "github.com/quarryhq/quarry/pkg/adapters/duckdb"
)

func TestDuckDBSelfRegistration(t *testing.T) {
	assert.True(t, adapter.IsRegistered("duckdb"), "duckdb adapter should be auto-registered")
}

func TestListAdapters(t *testing.T) {
	assert.Contains(t, adapter.ListAdapters(), "duckdb")
}

func TestIsRegistered(t *testing.T) {
	assert.True(t, adapter.IsRegistered("duckdb"))
	assert.False(t, adapter.IsRegistered("unknown_db"))
}

func TestGet(t *testing.T) {
	factory, ok := adapter.Get("duckdb")
	require.True(t, ok)
	require.NotNil(t, factory)

	_, ok = adapter.Get("nonexistent")
	assert.False(t, ok)
}

func TestNewAdapter_Success(t *testing.T) {
	cfg := core.AdapterConfig{
		Type: "duckdb",
		Path: ":memory:",
	}

	adp, err := adapter.NewAdapter(cfg, nil)
	require.NoError(t, err)
	require.NotNil(t, adp)
	assert.Equal(t, "duckdb", adp.Dialect().Name)
}

func TestNewAdapter_UnknownType(t *testing.T) {
	_, err := adapter.NewAdapter(core.AdapterConfig{Type: "unknown_adapter"}, nil)
	require.Error(t, err)

	var unknownErr *adapter.UnknownAdapterError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "unknown_adapter", unknownErr.Type)
	assert.Contains(t, unknownErr.Available, "duckdb")
}
