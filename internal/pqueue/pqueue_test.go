package pqueue_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/go-container-benchmarks/internal/pqueue"
)

func TestCreateDestroy_NoLeak(t *testing.T) {
	before := pqueue.Live()
	h := pqueue.Create([]int{3, 1, 2})
	require.Equal(t, before+1, pqueue.Live())
	pqueue.Destroy(h)
	require.Equal(t, before, pqueue.Live())
}

func TestPop_NonDecreasing(t *testing.T) {
	r := rand.New(rand.NewPCG(15, 16))
	values := make([]int, 1000)
	for i := range values {
		values[i] = r.IntN(100) // duplicates on purpose
	}

	h := pqueue.Create(values)
	defer pqueue.Destroy(h)

	got := make([]int, 0, len(values))
	for pqueue.Len(h) > 0 {
		got = append(got, pqueue.Pop(h))
	}

	want := slices.Clone(values)
	slices.Sort(want)
	require.Equal(t, want, got, "drain must be the sorted multiset")
}

func TestPushLoop_ThenDrain(t *testing.T) {
	h := pqueue.Create(nil)
	defer pqueue.Destroy(h)

	pqueue.PushLoop(h, []int{5, 1, 4, 1})
	pqueue.Push(h, 0)
	require.Equal(t, 5, pqueue.Len(h))

	require.Equal(t, 0, pqueue.Pop(h))
	require.Equal(t, 1, pqueue.Pop(h))
	require.Equal(t, 1, pqueue.Pop(h))
	require.Equal(t, 4, pqueue.Pop(h))
	require.Equal(t, 5, pqueue.Pop(h))
}

func TestPopAll_Empties(t *testing.T) {
	h := pqueue.Create([]int{3, 1, 2})
	defer pqueue.Destroy(h)

	pqueue.PopAll(h)
	require.Equal(t, 0, pqueue.Len(h))
}
