// Package handle provides integer handle tables for the benchmark shims.
//
// The benchmarked containers are created by one call and operated on by
// later calls, so instances must outlive the call that made them. Rather
// than passing raw pointers around, each container package keeps a Table
// mapping generated integer IDs to owned instances. The external driver
// only ever sees the ID.
//
// Ownership is strictly caller-driven: one Register, one Unregister, no
// implicit copies. A handle registered in one kind's table is meaningless
// in any other table; keeping one table per container package makes that
// a compile-time property instead of a runtime check.
package handle

import (
	"fmt"
	"sync"
)

// ID is an opaque reference to a registered container instance.
type ID uint64

// Table maps IDs to owned container instances.
//
// The harness is single-threaded, but the table is guarded anyway so that
// leak-checking tests can inspect it while benchmarks run under -cpu>1.
type Table[V any] struct {
	mu      sync.RWMutex
	entries map[ID]V
	next    ID
}

// NewTable creates an empty Table.
func NewTable[V any]() *Table[V] {
	return &Table[V]{
		entries: make(map[ID]V),
		next:    1,
	}
}

// Register stores an instance and returns its handle.
func (t *Table[V]) Register(v V) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.next
	t.next++
	t.entries[id] = v
	return id
}

// Lookup returns the instance for a handle.
//
// Panics on an unregistered handle. Passing a destroyed or never-issued
// handle is a caller bug, and a loud failure beats silently benchmarking
// a zero value.
func (t *Table[V]) Lookup(id ID) V {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[id]
	if !ok {
		panic(fmt.Sprintf("handle: lookup of unregistered handle %d", id))
	}
	return v
}

// Unregister removes a handle, releasing the instance to the garbage
// collector. Each handle must be unregistered exactly once.
func (t *Table[V]) Unregister(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[id]; !ok {
		panic(fmt.Sprintf("handle: double unregister of handle %d", id))
	}
	delete(t.entries, id)
}

// Count returns the number of live handles.
//
// Used by tests to verify that every create was paired with a destroy.
func (t *Table[V]) Count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
