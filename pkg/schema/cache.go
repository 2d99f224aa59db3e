// Package schema provides a caller-owned cache for decoded table metadata.
//
// The adapter layer never consults this cache: every DescribeTable call hits
// the catalog. Callers that want memoization hold a Cache themselves and
// decide when to invalidate.
package schema

import (
	"sync"

	"github.com/quarryhq/quarry/pkg/core"
)

// TableMeta bundles the decoded metadata for one table.
type TableMeta struct {
	Columns []core.ColumnDescriptor
	Indexes []core.IndexDescriptor
}

// Cache is a concurrency-safe map of table metadata keyed by schema and
// table name. The zero value is not usable; use NewCache.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*TableMeta
}

type cacheKey struct {
	schema string
	table  string
}

// NewCache creates an empty metadata cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*TableMeta)}
}

// Get returns the cached metadata for a table, or nil and false on a miss.
func (c *Cache) Get(schema, table string) (*TableMeta, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	meta, ok := c.entries[cacheKey{schema, table}]
	return meta, ok
}

// Put stores the metadata for a table, replacing any previous entry.
func (c *Cache) Put(schema, table string, meta *TableMeta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{schema, table}] = meta
}

// Invalidate removes the entry for one table. Removing a missing entry is
// a no-op.
func (c *Cache) Invalidate(schema, table string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cacheKey{schema, table})
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*TableMeta)
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
