package main

import (
	"github.com/randomizedcoder/go-container-benchmarks/internal/binheap"
	"github.com/randomizedcoder/go-container-benchmarks/internal/bitvector"
	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/deque"
	"github.com/randomizedcoder/go-container-benchmarks/internal/hashing"
	"github.com/randomizedcoder/go-container-benchmarks/internal/hashmap"
	"github.com/randomizedcoder/go-container-benchmarks/internal/hashset"
	"github.com/randomizedcoder/go-container-benchmarks/internal/pqueue"
	"github.com/randomizedcoder/go-container-benchmarks/internal/sortedmap"
	"github.com/randomizedcoder/go-container-benchmarks/internal/vector"
)

// suiteOrder fixes the order the all subcommand runs in.
var suiteOrder = []string{
	"vector", "deque", "sortedmap", "hashmap", "hashset",
	"pqueue", "binheap", "bitvector", "hashing",
}

var suites = map[string]func(){
	"vector":    vectorSuite,
	"deque":     dequeSuite,
	"sortedmap": sortedmapSuite,
	"hashmap":   hashmapSuite,
	"hashset":   hashsetSuite,
	"pqueue":    pqueueSuite,
	"binheap":   binheapSuite,
	"bitvector": bitvectorSuite,
	"hashing":   hashingSuite,
}

func vectorSuite() {
	n := flagN
	values := shuffledRange(n)
	positions := shuffledRange(n)

	timeOp("from-range", n, func() { vector.FromRange(n) })
	timeOp("from-buffer", n, func() { vector.FromBuffer(values) })
	timeOp("append", n, func() { vector.Append(values, flagReserve) })
	timeOp("prepend", n, func() { vector.Prepend(values, flagReserve) })
	timeOp("random-insertions", n, func() { vector.RandomInsertions(insertionIndices(n), flagReserve) })

	h := vector.Create(values)
	timeOp("iterate", n, func() { vector.Iterate(h) })
	timeOp("lookups-subscript", n, func() { vector.LookupsSubscript(h, positions) })
	timeOp("lookups-at", n, func() { vector.LookupsAt(h, positions) })
	timeOp("sort", n, func() { vector.Sort(h) })
	timeOp("random-removals", n, func() { vector.RandomRemovals(h, removalIndices(n)) })
	vector.Destroy(h)

	h = vector.Create(values)
	timeOp("pop-back", n, func() { vector.PopBack(h) })
	vector.Destroy(h)

	h = vector.Create(values)
	timeOp("pop-front", n, func() { vector.PopFront(h) })
	vector.Destroy(h)
}

func dequeSuite() {
	n := flagN
	values := shuffledRange(n)
	positions := shuffledRange(n)

	timeOp("from-range", n, func() { deque.FromRange(n) })
	timeOp("from-buffer", n, func() { deque.FromBuffer(values) })
	timeOp("append", n, func() { deque.Append(values) })
	timeOp("prepend", n, func() { deque.Prepend(values) })
	timeOp("random-insertions", n, func() { deque.RandomInsertions(insertionIndices(n)) })

	h := deque.Create(values)
	timeOp("iterate", n, func() { deque.Iterate(h) })
	timeOp("lookups-subscript", n, func() { deque.LookupsSubscript(h, positions) })
	timeOp("lookups-at", n, func() { deque.LookupsAt(h, positions) })
	timeOp("sort", n, func() { deque.Sort(h) })
	timeOp("random-removals", n, func() { deque.RandomRemovals(h, removalIndices(n)) })
	deque.Destroy(h)

	h = deque.Create(values)
	timeOp("pop-back", n, func() { deque.PopBack(h) })
	deque.Destroy(h)

	h = deque.Create(values)
	timeOp("pop-front", n, func() { deque.PopFront(h) })
	deque.Destroy(h)
}

func sortedmapSuite() {
	n := flagN
	keys := shuffledRange(n)

	timeOp("insert-integers", n, func() { sortedmap.InsertIntegers(keys) })

	h := sortedmap.Create(keys)
	timeOp("iterate", n, func() { sortedmap.Iterate(h) })
	timeOp("lookups", n, func() { sortedmap.Lookups(h, keys) })
	timeOp("subscript", n, func() { sortedmap.Subscript(h, keys) })
	timeOp("removals", n, func() { sortedmap.Removals(h, keys) })
	sortedmap.Destroy(h)
}

func hashmapSuite() {
	n := flagN
	keys := shuffledRange(n)
	absent := disjointKeys(n)

	timeOp("from-range", n, func() { hashmap.FromRange(n, flagCustom) })
	timeOp("insert-integers", n, func() { hashmap.InsertIntegers(keys, flagReserve, flagCustom) })

	h := hashmap.Create(keys, flagCustom)
	timeOp("iterate", n, func() { hashmap.Iterate(h) })
	timeOp("lookups-hit", n, func() { hashmap.Lookups(h, keys, true) })
	timeOp("lookups-miss", n, func() { hashmap.Lookups(h, absent, false) })
	timeOp("subscript", n, func() { hashmap.Subscript(h, keys) })
	timeOp("removals", n, func() { hashmap.Removals(h, keys) })
	hashmap.Destroy(h)
}

func hashsetSuite() {
	n := flagN
	values := shuffledRange(n)
	absent := disjointKeys(n)

	timeOp("from-range", n, func() { hashset.FromRange(n) })
	timeOp("from-buffer", n, func() { hashset.FromBuffer(values) })
	timeOp("insert-integers", n, func() { hashset.InsertIntegers(values, flagReserve) })

	h := hashset.Create(values)
	timeOp("iterate", n, func() { hashset.Iterate(h) })
	timeOp("lookups-hit", n, func() { hashset.Lookups(h, values, true) })
	timeOp("lookups-miss", n, func() { hashset.Lookups(h, absent, false) })
	timeOp("removals", n, func() { hashset.Removals(h, values) })
	hashset.Destroy(h)
}

func pqueueSuite() {
	n := flagN
	values := shuffledRange(n)

	h := pqueue.Create(nil)
	timeOp("push-loop", n, func() { pqueue.PushLoop(h, values) })
	timeOp("pop-all", n, func() { pqueue.PopAll(h) })
	pqueue.Destroy(h)

	timeOp("create-heapify", n, func() {
		h = pqueue.Create(values)
	})
	timeOp("pop-all-after-heapify", n, func() { pqueue.PopAll(h) })
	pqueue.Destroy(h)
}

func binheapSuite() {
	n := flagN
	values := shuffledRange(n)

	h := binheap.Create(nil)
	timeOp("add-loop", n, func() { binheap.AddLoop(h, values) })
	timeOp("remove-min-all", n, func() { binheap.RemoveMinAll(h) })
	binheap.Destroy(h)
}

func bitvectorSuite() {
	n := flagN
	indices := randomIndices(n, n)

	timeOp("push-back", n, func() { bitvector.PushBack(randomBools(n), flagReserve) })

	h := bitvector.CreateRepeating(n, false)
	timeOp("set-indices-subscript", n, func() { bitvector.SetIndicesSubscript(h, indices) })
	timeOp("lookups-subscript", n, func() { bitvector.LookupsSubscript(h, indices) })
	timeOp("lookups-at", n, func() { bitvector.LookupsAt(h, indices) })
	timeOp("iterate", n, func() { bitvector.Iterate(h) })
	timeOp("count-true-bits", n, func() { blackhole.Consume(bitvector.CountTrueBits(h)) })
	timeOp("find-true-bits", n, func() { blackhole.Consume(bitvector.FindTrueBits(h)) })
	timeOp("reset-indices-subscript", n, func() { bitvector.ResetIndicesSubscript(h, indices) })
	timeOp("pop-back", n, func() { bitvector.PopBack(h, n) })
	bitvector.Destroy(h)
}

func hashingSuite() {
	n := flagN
	values := shuffledRange(n)

	timeOp("default-hash", n, func() { hashing.Hash(values) })
	timeOp("custom-hash", n, func() { hashing.CustomHash(values) })
}
