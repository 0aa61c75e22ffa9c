// Package pqueue is the priority-queue benchmark shim, backed by the
// standard container/heap.
//
// Minimum-first: repeated Pop calls yield values in non-decreasing
// order. The sibling package internal/binheap exposes the same
// four-operation contract over an explicit comparator-driven heap; the
// two must drain identically for the same inserted multiset.
package pqueue

import (
	"container/heap"

	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
)

// intHeap implements heap.Interface over a min-ordered int slice.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// Queue is a minimum-first priority queue of ints.
type Queue struct {
	h intHeap
}

var table = handle.NewTable[*Queue]()

// Live returns the number of undestroyed queues. Test instrumentation.
func Live() int {
	return table.Count()
}

// Create allocates a queue holding values, heapified in one pass.
func Create(values []int) handle.ID {
	q := &Queue{h: make(intHeap, len(values))}
	copy(q.h, values)
	heap.Init(&q.h)
	return table.Register(q)
}

// Destroy releases the queue. Must be called exactly once per handle.
func Destroy(h handle.ID) {
	table.Unregister(h)
}

// Len returns the current element count.
func Len(h handle.ID) int {
	return table.Lookup(h).h.Len()
}

// Push adds a single value.
func Push(h handle.ID, value int) {
	q := table.Lookup(h)
	heap.Push(&q.h, value)
}

// PushLoop adds every value, one sift-up per element.
func PushLoop(h handle.ID, values []int) {
	q := table.Lookup(h)
	for _, v := range values {
		heap.Push(&q.h, v)
	}
}

// Pop removes and returns the minimum. Popping an empty queue is a
// caller bug.
func Pop(h handle.ID) int {
	q := table.Lookup(h)
	return heap.Pop(&q.h).(int)
}

// PopAll drains the queue, sinking each minimum as it comes off.
func PopAll(h handle.ID) {
	q := table.Lookup(h)
	for q.h.Len() > 0 {
		blackhole.Consume(heap.Pop(&q.h).(int))
	}
}
