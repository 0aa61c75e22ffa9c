// Package vector is the dynamic-array benchmark shim.
//
// A Vector is a plain Go slice of ints. Every operation here is a thin
// wrapper around slice primitives; the package exists so the external
// timing driver can measure those primitives through the uniform
// create / operate / destroy handle protocol.
//
// Handle contract: Create returns a handle that must be passed to exactly
// one Destroy and to no function outside this package. Operations on a
// destroyed handle panic.
package vector

import (
	"fmt"
	"slices"

	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
)

// Vector is a dynamic array of ints.
type Vector struct {
	elems []int
}

var table = handle.NewTable[*Vector]()

// Live returns the number of undestroyed vectors. Test instrumentation.
func Live() int {
	return table.Count()
}

// Create allocates a vector holding a copy of values, in order.
func Create(values []int) handle.ID {
	v := &Vector{elems: slices.Clone(values)}
	return table.Register(v)
}

// Destroy releases the vector. Must be called exactly once per handle.
func Destroy(h handle.ID) {
	table.Unregister(h)
}

// Len returns the current element count.
func Len(h handle.ID) int {
	return len(table.Lookup(h).elems)
}

// FromRange builds a vector of 0..count-1 one append at a time, then
// discards it through the sink.
func FromRange(count int) {
	var elems []int
	for i := 0; i < count; i++ {
		elems = append(elems, blackhole.Identity(i))
	}
	blackhole.Escape(elems)
}

// FromBuffer builds a vector from values in one bulk copy, then discards
// it through the sink.
func FromBuffer(values []int) {
	elems := slices.Clone(values)
	blackhole.Escape(elems)
}

// Append builds a vector by appending values one at a time. When reserve
// is set, capacity is allocated up front so no growth occurs during the
// measured loop.
func Append(values []int, reserve bool) {
	blackhole.Escape(buildAppend(values, reserve))
}

func buildAppend(values []int, reserve bool) []int {
	var elems []int
	if reserve {
		elems = make([]int, 0, len(values))
	}
	for _, v := range values {
		elems = append(elems, blackhole.Identity(v))
	}
	return elems
}

// Prepend builds a vector by inserting each value at position zero,
// shifting the existing contents every time.
func Prepend(values []int, reserve bool) {
	blackhole.Escape(buildPrepend(values, reserve))
}

func buildPrepend(values []int, reserve bool) []int {
	var elems []int
	if reserve {
		elems = make([]int, 0, len(values))
	}
	for _, v := range values {
		elems = slices.Insert(elems, 0, blackhole.Identity(v))
	}
	return elems
}

// RandomInsertions performs a scripted sequence of positional inserts
// into an initially empty vector: step i inserts the value i at position
// indices[i], where the position is interpreted against the vector as it
// stands after the previous i-1 inserts.
func RandomInsertions(indices []int, reserve bool) {
	blackhole.Escape(buildRandomInsertions(indices, reserve))
}

func buildRandomInsertions(indices []int, reserve bool) []int {
	var elems []int
	if reserve {
		elems = make([]int, 0, len(indices))
	}
	for i, pos := range indices {
		elems = slices.Insert(elems, pos, blackhole.Identity(i))
	}
	return elems
}

// Iterate walks the vector front to back, sinking every element.
func Iterate(h handle.ID) {
	v := table.Lookup(h)
	for _, e := range v.elems {
		blackhole.Consume(e)
	}
}

// LookupsSubscript reads the element at each index with a direct,
// unchecked subscript. Out-of-range indices are a caller bug with
// unspecified behavior.
func LookupsSubscript(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		blackhole.Consume(v.elems[i])
	}
}

// LookupsAt reads the element at each index through an explicit bounds
// check, panicking on the first out-of-range index. Semantically
// identical to LookupsSubscript for valid indices; the extra branch is
// the point.
func LookupsAt(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		if i < 0 || i >= len(v.elems) {
			panic(fmt.Sprintf("vector: index %d out of range [0, %d)", i, len(v.elems)))
		}
		blackhole.Consume(v.elems[i])
	}
}

// PopBack removes elements from the back until the vector is empty.
func PopBack(h handle.ID) {
	v := table.Lookup(h)
	for len(v.elems) > 0 {
		v.elems = v.elems[:len(v.elems)-1]
	}
}

// PopFront removes elements from the front until the vector is empty,
// shifting the remainder down each time.
func PopFront(h handle.ID) {
	v := table.Lookup(h)
	for len(v.elems) > 0 {
		v.elems = slices.Delete(v.elems, 0, 1)
	}
}

// RandomRemovals performs a scripted sequence of positional removals:
// step i removes the element at indices[i], interpreted against the
// vector as it stands after the previous i-1 removals.
func RandomRemovals(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, pos := range indices {
		v.elems = slices.Delete(v.elems, pos, pos+1)
	}
}

// Sort sorts the vector in place, ascending.
func Sort(h handle.ID) {
	v := table.Lookup(h)
	slices.Sort(v.elems)
}

// Elems returns a copy of the current contents. Test instrumentation.
func Elems(h handle.ID) []int {
	return slices.Clone(table.Lookup(h).elems)
}
