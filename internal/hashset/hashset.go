// Package hashset is the hash-set benchmark shim.
//
// A Set is the builtin map with empty-struct values, the standard Go
// set idiom. (Pluggable-hash measurement lives in internal/hashmap's
// CustomMap; the builtin map's hash is not replaceable.)
package hashset

import (
	"fmt"

	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
)

// Set is a set of ints.
type Set struct {
	m map[int]struct{}
}

var table = handle.NewTable[*Set]()

// Live returns the number of undestroyed sets. Test instrumentation.
func Live() int {
	return table.Count()
}

// Create allocates a set holding every value in values.
func Create(values []int) handle.ID {
	s := &Set{m: make(map[int]struct{}, len(values))}
	for _, v := range values {
		s.m[v] = struct{}{}
	}
	return table.Register(s)
}

// Destroy releases the set. Must be called exactly once per handle.
func Destroy(h handle.ID) {
	table.Unregister(h)
}

// Len returns the current member count.
func Len(h handle.ID) int {
	return len(table.Lookup(h).m)
}

// Contains reports membership. Test instrumentation.
func Contains(h handle.ID, v int) bool {
	_, ok := table.Lookup(h).m[v]
	return ok
}

// FromRange builds a set of 0..count-1 one insert at a time, then
// discards it through the sink.
func FromRange(count int) {
	m := make(map[int]struct{})
	for i := 0; i < count; i++ {
		m[blackhole.Identity(i)] = struct{}{}
	}
	blackhole.Escape(m)
}

// FromBuffer builds a set from values in one pass, then discards it
// through the sink.
func FromBuffer(values []int) {
	m := make(map[int]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	blackhole.Escape(m)
}

// InsertIntegers builds a set by inserting values one at a time. When
// reserve is set the map is pre-sized so no growth occurs during the
// measured loop.
func InsertIntegers(values []int, reserve bool) {
	size := 0
	if reserve {
		size = len(values)
	}
	m := make(map[int]struct{}, size)
	for _, v := range values {
		m[blackhole.Identity(v)] = struct{}{}
	}
	blackhole.Escape(m)
}

// Iterate walks all members, sinking each.
func Iterate(h handle.ID) {
	s := table.Lookup(h)
	for v := range s.m {
		blackhole.Consume(v)
	}
}

// Lookups probes for every value and checks presence against
// expectMatch, panicking on the first mismatch.
func Lookups(h handle.ID, values []int, expectMatch bool) {
	s := table.Lookup(h)
	for _, v := range values {
		_, found := s.m[v]
		if found != expectMatch {
			panic(fmt.Sprintf("hashset: lookup self-check failed for value %d (found=%v, expected=%v)",
				v, found, expectMatch))
		}
	}
}

// Removals deletes each value. Missing values are ignored.
func Removals(h handle.ID, values []int) {
	s := table.Lookup(h)
	for _, v := range values {
		delete(s.m, v)
	}
}
