package dialect

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Dialect)
)

// Register adds a dialect to the registry. Called by dialect definitions
// in their init() functions.
func Register(d *Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[d.Name] = d
}

// Get retrieves a dialect by name.
func Get(name string) (*Dialect, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[name]
	if !ok {
		return nil, &UnknownDialectError{Name: name, Available: listLocked()}
	}
	return d, nil
}

// List returns all registered dialect names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return listLocked()
}

func listLocked() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnknownDialectError is returned when an unregistered dialect is requested.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q (available: %v)", e.Name, e.Available)
}
