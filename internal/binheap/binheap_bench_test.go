package binheap_test

import (
	"math/rand/v2"
	"testing"

	"github.com/randomizedcoder/go-container-benchmarks/internal/binheap"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int

const benchSize = 10_000

func benchValues() []int {
	return rand.New(rand.NewPCG(10, 10)).Perm(benchSize)
}

func BenchmarkBinHeap_AddRemoveMin(b *testing.B) {
	h := binheap.Create(benchValues())
	defer binheap.Destroy(h)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		binheap.Add(h, i%benchSize)
		val = binheap.RemoveMin(h)
	}
	sinkInt = val
}

func BenchmarkBinHeap_AddLoopThenDrain(b *testing.B) {
	values := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := binheap.Create(nil)
		b.StartTimer()
		binheap.AddLoop(h, values)
		binheap.RemoveMinAll(h)
		b.StopTimer()
		binheap.Destroy(h)
		b.StartTimer()
	}
}

// Direct type benchmark (no handle table in the loop)

func BenchmarkBinHeap_Direct_AddRemoveMin(b *testing.B) {
	h := binheap.New(binheap.IntCompare)
	for _, v := range benchValues() {
		h.Add(v)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		h.Add(i % benchSize)
		val = h.RemoveMin()
	}
	sinkInt = val
}
