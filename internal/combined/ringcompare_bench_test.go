package combined_test

import (
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/go-container-benchmarks/internal/deque"
)

// ============================================================================
// FIFO cost: our deque vs buffered channel vs go-lock-free-ring
//
// The deque is single-threaded by contract; the channel and the sharded
// ring pay for concurrency safety the deque does not need. This puts a
// number on that difference for the push/pop-per-iteration workload.
// ============================================================================

var sinkInt int

func BenchmarkFIFO_Deque_PushPop(b *testing.B) {
	d := deque.New(1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		val = d.PopFront()
	}
	sinkInt = val
}

func BenchmarkFIFO_Channel_PushPop(b *testing.B) {
	ch := make(chan int, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		ch <- i
		val = <-ch
	}
	sinkInt = val
}

func BenchmarkFIFO_ShardedRing_PushPop(b *testing.B) {
	r, _ := ring.NewShardedRing(1024, 1)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for !r.Write(0, i) {
		}
		r.TryRead()
	}
}
