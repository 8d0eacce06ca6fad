// Package registry provides the ordered name-keyed tables backing the parser,
// plugin, and output-formatter catalogs. Registration happens in init
// functions at startup; tables are treated as immutable afterwards.
package registry

import (
	"fmt"
	"sync"
)

// Table is an ordered registry of named entries. Names() reports entries in
// registration order, which selection relies on for stable output.
type Table[T any] struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]T
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{entries: make(map[string]T)}
}

// Register adds a named entry. Registering the same name twice is a catalog
// integrity bug and panics.
func (t *Table[T]) Register(name string, entry T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.entries[name]; exists {
		panic(fmt.Sprintf("registry: %q already registered", name))
	}
	t.order = append(t.order, name)
	t.entries[name] = entry
}

// Lookup returns the entry registered under the exact name given.
func (t *Table[T]) Lookup(name string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[name]
	return e, ok
}

// Names returns the registered names in registration order.
func (t *Table[T]) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}
