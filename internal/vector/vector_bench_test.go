package vector_test

import (
	"math/rand/v2"
	"testing"

	"github.com/randomizedcoder/go-container-benchmarks/internal/vector"
)

const benchSize = 10_000

func benchValues() []int {
	return rand.New(rand.NewPCG(1, 1)).Perm(benchSize)
}

func benchInsertionIndices() []int {
	r := rand.New(rand.NewPCG(2, 2))
	out := make([]int, benchSize)
	for i := range out {
		out[i] = r.IntN(i + 1)
	}
	return out
}

func BenchmarkVector_FromRange(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.FromRange(benchSize)
	}
}

func BenchmarkVector_FromBuffer(b *testing.B) {
	values := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.FromBuffer(values)
	}
}

func BenchmarkVector_Append(b *testing.B) {
	values := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.Append(values, false)
	}
}

func BenchmarkVector_Append_Reserve(b *testing.B) {
	values := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.Append(values, true)
	}
}

func BenchmarkVector_Prepend(b *testing.B) {
	values := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.Prepend(values, false)
	}
}

func BenchmarkVector_RandomInsertions(b *testing.B) {
	indices := benchInsertionIndices()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.RandomInsertions(indices, false)
	}
}

func BenchmarkVector_Iterate(b *testing.B) {
	h := vector.Create(benchValues())
	defer vector.Destroy(h)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.Iterate(h)
	}
}

func BenchmarkVector_LookupsSubscript(b *testing.B) {
	h := vector.Create(benchValues())
	defer vector.Destroy(h)
	positions := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.LookupsSubscript(h, positions)
	}
}

func BenchmarkVector_LookupsAt(b *testing.B) {
	h := vector.Create(benchValues())
	defer vector.Destroy(h)
	positions := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		vector.LookupsAt(h, positions)
	}
}

func BenchmarkVector_Sort(b *testing.B) {
	values := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := vector.Create(values)
		b.StartTimer()
		vector.Sort(h)
		b.StopTimer()
		vector.Destroy(h)
		b.StartTimer()
	}
}

func BenchmarkVector_PopFront(b *testing.B) {
	values := benchValues()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		h := vector.Create(values)
		b.StartTimer()
		vector.PopFront(h)
		b.StopTimer()
		vector.Destroy(h)
		b.StartTimer()
	}
}
