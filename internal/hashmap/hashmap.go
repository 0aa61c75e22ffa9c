// Package hashmap is the hash-map benchmark shim.
//
// Two implementations of the Map interface:
//   - StdMap: the builtin Go map (runtime-chosen hash)
//   - CustomMap: open-addressing table using the pluggable hash from
//     internal/hashing
//
// The builtin map's hash cannot be replaced, so benchmarks that want to
// measure a hash table under a caller-installed hash function use
// CustomMap; everything else uses StdMap. Both are exercised through the
// same handle protocol so the driver can compare them call for call.
package hashmap

import (
	"fmt"

	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
	"github.com/randomizedcoder/go-container-benchmarks/internal/hashing"
)

// Map is an int -> int hash map.
type Map interface {
	// Insert sets key -> value, replacing any existing entry.
	Insert(key, value int)

	// Get returns the value for key and whether it was present.
	Get(key int) (int, bool)

	// Delete removes key. Missing keys are a no-op.
	Delete(key int)

	// Len returns the entry count.
	Len() int

	// Range calls f for every entry, in unspecified order.
	Range(f func(key, value int))
}

// ============================================================================
// StdMap: builtin map
// ============================================================================

// StdMap wraps the builtin map as a Map.
type StdMap struct {
	m map[int]int
}

// NewStd creates a StdMap with room for size entries.
func NewStd(size int) *StdMap {
	return &StdMap{m: make(map[int]int, size)}
}

func (s *StdMap) Insert(key, value int) { s.m[key] = value }

func (s *StdMap) Get(key int) (int, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *StdMap) Delete(key int) { delete(s.m, key) }

func (s *StdMap) Len() int { return len(s.m) }

func (s *StdMap) Range(f func(key, value int)) {
	for k, v := range s.m {
		f(k, v)
	}
}

// ============================================================================
// CustomMap: open addressing with the pluggable hash
// ============================================================================

const (
	slotEmpty = iota
	slotFull
	slotDeleted
)

const minBuckets = 16

// CustomMap is a linear-probing table whose hash function is read from
// the internal/hashing slot on every operation.
type CustomMap struct {
	keys   []int
	vals   []int
	states []uint8
	mask   uint64
	n      int // live entries
	filled int // live + tombstoned slots
}

// NewCustom creates a CustomMap with room for size entries before any
// rehash.
func NewCustom(size int) *CustomMap {
	b := minBuckets
	for b*3/4 < size {
		b <<= 1
	}
	return &CustomMap{
		keys:   make([]int, b),
		vals:   make([]int, b),
		states: make([]uint8, b),
		mask:   uint64(b - 1),
	}
}

func (c *CustomMap) Insert(key, value int) {
	if (c.filled+1)*4 > len(c.states)*3 {
		c.rehash()
	}
	i := hashing.Hash1(key) & c.mask
	insertAt := -1
	for {
		switch c.states[i] {
		case slotEmpty:
			if insertAt < 0 {
				insertAt = int(i)
				c.filled++
			}
			c.keys[insertAt] = key
			c.vals[insertAt] = value
			c.states[insertAt] = slotFull
			c.n++
			return
		case slotDeleted:
			if insertAt < 0 {
				insertAt = int(i)
			}
		case slotFull:
			if c.keys[i] == key {
				c.vals[i] = value
				return
			}
		}
		i = (i + 1) & c.mask
	}
}

func (c *CustomMap) Get(key int) (int, bool) {
	i := hashing.Hash1(key) & c.mask
	for {
		switch c.states[i] {
		case slotEmpty:
			return 0, false
		case slotFull:
			if c.keys[i] == key {
				return c.vals[i], true
			}
		}
		i = (i + 1) & c.mask
	}
}

func (c *CustomMap) Delete(key int) {
	i := hashing.Hash1(key) & c.mask
	for {
		switch c.states[i] {
		case slotEmpty:
			return
		case slotFull:
			if c.keys[i] == key {
				c.states[i] = slotDeleted
				c.n--
				return
			}
		}
		i = (i + 1) & c.mask
	}
}

func (c *CustomMap) Len() int { return c.n }

func (c *CustomMap) Range(f func(key, value int)) {
	for i, st := range c.states {
		if st == slotFull {
			f(c.keys[i], c.vals[i])
		}
	}
}

// rehash rebuilds the table at double the bucket count, dropping
// tombstones along the way.
func (c *CustomMap) rehash() {
	old := *c
	b := len(old.states) * 2
	c.keys = make([]int, b)
	c.vals = make([]int, b)
	c.states = make([]uint8, b)
	c.mask = uint64(b - 1)
	c.n = 0
	c.filled = 0
	for i, st := range old.states {
		if st == slotFull {
			c.Insert(old.keys[i], old.vals[i])
		}
	}
}

// ============================================================================
// Handle shim
// ============================================================================

var table = handle.NewTable[Map]()

// Live returns the number of undestroyed maps. Test instrumentation.
func Live() int {
	return table.Count()
}

func newMap(size int, custom bool) Map {
	if custom {
		return NewCustom(size)
	}
	return NewStd(size)
}

// Create allocates a map holding key -> 2*key for every key in keys.
// When custom is set the map hashes through the installed hash slot.
func Create(keys []int, custom bool) handle.ID {
	m := newMap(len(keys), custom)
	for _, k := range keys {
		m.Insert(k, 2*k)
	}
	return table.Register(m)
}

// Destroy releases the map. Must be called exactly once per handle.
func Destroy(h handle.ID) {
	table.Unregister(h)
}

// Len returns the current entry count.
func Len(h handle.ID) int {
	return table.Lookup(h).Len()
}

// FromRange builds a map of i -> 2*i for i in 0..count-1, then discards
// it through the sink.
func FromRange(count int, custom bool) {
	m := newMap(0, custom)
	for i := 0; i < count; i++ {
		v := blackhole.Identity(i)
		m.Insert(v, 2*v)
	}
	blackhole.Escape(m)
}

// InsertIntegers builds a map from scratch, inserting key -> 2*key one
// entry at a time. When reserve is set the table is pre-sized so no
// rehash occurs during the measured loop.
func InsertIntegers(keys []int, reserve, custom bool) {
	size := 0
	if reserve {
		size = len(keys)
	}
	m := newMap(size, custom)
	for _, k := range keys {
		v := blackhole.Identity(k)
		m.Insert(v, 2*v)
	}
	blackhole.Escape(m)
}

// Iterate walks all entries, sinking key and value.
func Iterate(h handle.ID) {
	m := table.Lookup(h)
	m.Range(func(k, v int) {
		blackhole.Consume(k)
		blackhole.Consume(v)
	})
}

// Lookups probes for every key and checks presence against expectMatch,
// panicking on the first mismatch. A correctness self-check inside a
// throughput benchmark, not a recoverable error path.
func Lookups(h handle.ID, keys []int, expectMatch bool) {
	m := table.Lookup(h)
	for _, k := range keys {
		_, found := m.Get(k)
		if found != expectMatch {
			panic(fmt.Sprintf("hashmap: lookup self-check failed for key %d (found=%v, expected=%v)",
				k, found, expectMatch))
		}
	}
}

// Subscript reads the value for each key, inserting a zero entry for
// keys not present, and sinks whatever it finds.
func Subscript(h handle.ID, keys []int) {
	m := table.Lookup(h)
	for _, k := range keys {
		v, ok := m.Get(k)
		if !ok {
			m.Insert(k, 0)
		}
		blackhole.Consume(v)
	}
}

// Removals deletes each key. Missing keys are ignored.
func Removals(h handle.ID, keys []int) {
	m := table.Lookup(h)
	for _, k := range keys {
		m.Delete(k)
	}
}
