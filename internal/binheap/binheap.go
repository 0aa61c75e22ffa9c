// Package binheap is the second binary-heap benchmark shim: an explicit
// array heap driven by a three-way comparator, the shape of a platform
// binary-heap utility with caller-supplied callbacks.
//
// Exposes the same four-operation contract as internal/pqueue
// (create-from-buffer, destroy, add, remove-minimum) and must produce
// the same drain sequence for the same inserted multiset. The point of
// having both is to measure the comparator-callback indirection against
// container/heap's interface dispatch.
package binheap

import (
	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
)

// Comparator orders heap elements: negative if a sorts before b, zero if
// equal, positive otherwise.
type Comparator func(a, b int) int

// IntCompare is the default comparator: raw integer three-way compare.
func IntCompare(a, b int) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// Heap is a minimum-first binary heap with a pluggable comparator.
type Heap struct {
	elems []int
	cmp   Comparator
}

// New creates an empty Heap ordered by cmp.
func New(cmp Comparator) *Heap {
	return &Heap{cmp: cmp}
}

// Len returns the element count.
func (h *Heap) Len() int {
	return len(h.elems)
}

// Add inserts v, sifting it up to its position.
func (h *Heap) Add(v int) {
	h.elems = append(h.elems, v)
	h.siftUp(len(h.elems) - 1)
}

// Min returns the minimum without removing it. Empty heap is a caller
// bug.
func (h *Heap) Min() int {
	return h.elems[0]
}

// RemoveMin removes and returns the minimum. Empty heap is a caller bug.
func (h *Heap) RemoveMin() int {
	v := h.elems[0]
	last := len(h.elems) - 1
	h.elems[0] = h.elems[last]
	h.elems = h.elems[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return v
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.elems[i], h.elems[parent]) >= 0 {
			return
		}
		h.elems[i], h.elems[parent] = h.elems[parent], h.elems[i]
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.elems)
	for {
		least := i
		if l := 2*i + 1; l < n && h.cmp(h.elems[l], h.elems[least]) < 0 {
			least = l
		}
		if r := 2*i + 2; r < n && h.cmp(h.elems[r], h.elems[least]) < 0 {
			least = r
		}
		if least == i {
			return
		}
		h.elems[i], h.elems[least] = h.elems[least], h.elems[i]
		i = least
	}
}

// ============================================================================
// Handle shim
// ============================================================================

var table = handle.NewTable[*Heap]()

// Live returns the number of undestroyed heaps. Test instrumentation.
func Live() int {
	return table.Count()
}

// Create allocates a heap ordered by IntCompare and adds every value,
// one sift-up per element.
func Create(values []int) handle.ID {
	h := New(IntCompare)
	for _, v := range values {
		h.Add(v)
	}
	return table.Register(h)
}

// Destroy releases the heap. Must be called exactly once per handle.
func Destroy(id handle.ID) {
	table.Unregister(id)
}

// Len returns the current element count.
func Len(id handle.ID) int {
	return table.Lookup(id).Len()
}

// Add inserts a single value.
func Add(id handle.ID, value int) {
	table.Lookup(id).Add(value)
}

// AddLoop inserts every value, one sift-up per element.
func AddLoop(id handle.ID, values []int) {
	h := table.Lookup(id)
	for _, v := range values {
		h.Add(v)
	}
}

// RemoveMin removes and returns the minimum.
func RemoveMin(id handle.ID) int {
	return table.Lookup(id).RemoveMin()
}

// RemoveMinAll drains the heap, sinking each minimum as it comes off.
func RemoveMinAll(id handle.ID) {
	h := table.Lookup(id)
	for h.Len() > 0 {
		blackhole.Consume(h.RemoveMin())
	}
}
