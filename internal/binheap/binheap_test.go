package binheap_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/go-container-benchmarks/internal/binheap"
)

func TestIntCompare_ThreeWay(t *testing.T) {
	require.Equal(t, 0, binheap.IntCompare(7, 7))
	require.Equal(t, -1, binheap.IntCompare(-1, 7))
	require.Equal(t, 1, binheap.IntCompare(7, -1))
}

func TestHeap_DrainsSorted(t *testing.T) {
	r := rand.New(rand.NewPCG(17, 18))
	values := make([]int, 1000)
	for i := range values {
		values[i] = r.IntN(100)
	}

	h := binheap.New(binheap.IntCompare)
	for _, v := range values {
		h.Add(v)
	}

	got := make([]int, 0, len(values))
	for h.Len() > 0 {
		got = append(got, h.RemoveMin())
	}

	want := slices.Clone(values)
	slices.Sort(want)
	require.Equal(t, want, got)
}

// A reversed comparator must flip the drain order; the heap itself only
// knows the three-way callback.
func TestHeap_CustomComparator(t *testing.T) {
	h := binheap.New(func(a, b int) int { return binheap.IntCompare(b, a) })
	for _, v := range []int{2, 9, 4} {
		h.Add(v)
	}
	require.Equal(t, 9, h.RemoveMin())
	require.Equal(t, 4, h.RemoveMin())
	require.Equal(t, 2, h.RemoveMin())
}

func TestHeap_MinPeeks(t *testing.T) {
	h := binheap.New(binheap.IntCompare)
	h.Add(5)
	h.Add(3)
	require.Equal(t, 3, h.Min())
	require.Equal(t, 2, h.Len())
}

func TestShim_CreateDestroy_NoLeak(t *testing.T) {
	before := binheap.Live()
	h := binheap.Create([]int{3, 1, 2})
	require.Equal(t, before+1, binheap.Live())
	binheap.Destroy(h)
	require.Equal(t, before, binheap.Live())
}

func TestShim_AddRemove(t *testing.T) {
	h := binheap.Create([]int{5, 1})
	defer binheap.Destroy(h)

	binheap.Add(h, 3)
	binheap.AddLoop(h, []int{4, 0})
	require.Equal(t, 5, binheap.Len(h))

	require.Equal(t, 0, binheap.RemoveMin(h))
	require.Equal(t, 1, binheap.RemoveMin(h))

	binheap.RemoveMinAll(h)
	require.Equal(t, 0, binheap.Len(h))
}
