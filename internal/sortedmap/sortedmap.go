// Package sortedmap is the ordered-map benchmark shim.
//
// Backed by google/btree, the closest Go equivalent of an ordered
// key/value tree. Keys map to 2*key throughout, which gives the lookup
// path a value-level self-check: a lookup that returns anything other
// than double its key means the benchmark has corrupted its own data,
// and the only sane response is to panic on the spot.
package sortedmap

import (
	"fmt"

	"github.com/google/btree"

	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
)

// btree degree. The library default; not a tuning knob being measured.
const degree = 32

type item struct {
	key   int
	value int
}

func less(a, b item) bool {
	return a.key < b.key
}

// Map is an ordered map of int -> int.
type Map struct {
	tree *btree.BTreeG[item]
}

var table = handle.NewTable[*Map]()

// Live returns the number of undestroyed maps. Test instrumentation.
func Live() int {
	return table.Count()
}

// Create allocates a map holding key -> 2*key for every key in keys.
func Create(keys []int) handle.ID {
	m := &Map{tree: btree.NewG(degree, less)}
	for _, k := range keys {
		m.tree.ReplaceOrInsert(item{key: k, value: 2 * k})
	}
	return table.Register(m)
}

// Destroy releases the map. Must be called exactly once per handle.
func Destroy(h handle.ID) {
	table.Unregister(h)
}

// Len returns the current entry count.
func Len(h handle.ID) int {
	return table.Lookup(h).tree.Len()
}

// InsertIntegers builds a map from scratch, inserting key -> 2*key one
// entry at a time, then discards it through the sink.
func InsertIntegers(keys []int) {
	m := btree.NewG(degree, less)
	for _, k := range keys {
		v := blackhole.Identity(k)
		m.ReplaceOrInsert(item{key: v, value: 2 * v})
	}
	blackhole.Escape(m)
}

// Iterate walks all entries in key order, sinking key and value.
func Iterate(h handle.ID) {
	m := table.Lookup(h)
	m.tree.Ascend(func(it item) bool {
		blackhole.Consume(it.key)
		blackhole.Consume(it.value)
		return true
	})
}

// Lookups finds every key and checks its value is 2*key, panicking on a
// miss or a wrong value. A correctness self-check inside a throughput
// benchmark: a silently wrong result would invalidate every measurement.
func Lookups(h handle.ID, keys []int) {
	m := table.Lookup(h)
	for _, k := range keys {
		it, ok := m.tree.Get(item{key: k})
		if !ok || it.value != 2*k {
			panic(fmt.Sprintf("sortedmap: lookup self-check failed for key %d", k))
		}
	}
}

// Subscript reads the value for each key, inserting a zero entry for
// keys not present, and sinks whatever it finds. The get-or-insert
// semantics of a C++ map subscript.
func Subscript(h handle.ID, keys []int) {
	m := table.Lookup(h)
	for _, k := range keys {
		it, ok := m.tree.Get(item{key: k})
		if !ok {
			it = item{key: k}
			m.tree.ReplaceOrInsert(it)
		}
		blackhole.Consume(it.value)
	}
}

// Removals deletes each key. Missing keys are ignored.
func Removals(h handle.ID, keys []int) {
	m := table.Lookup(h)
	for _, k := range keys {
		m.tree.Delete(item{key: k})
	}
}

// Keys returns all keys in ascending order. Test instrumentation.
func Keys(h handle.ID) []int {
	m := table.Lookup(h)
	out := make([]int, 0, m.tree.Len())
	m.tree.Ascend(func(it item) bool {
		out = append(out, it.key)
		return true
	})
	return out
}
