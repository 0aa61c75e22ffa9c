package combined_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/go-container-benchmarks/internal/binheap"
	"github.com/randomizedcoder/go-container-benchmarks/internal/deque"
	"github.com/randomizedcoder/go-container-benchmarks/internal/pqueue"
	"github.com/randomizedcoder/go-container-benchmarks/internal/vector"
)

// TestHeapVariants_DrainIdentically feeds the same multiset to both
// heap shims and requires identical remove-minimum sequences. The two
// implementations are interchangeable behind the four-operation
// contract, so any divergence is a bug in one of them.
func TestHeapVariants_DrainIdentically(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 22))
	values := make([]int, 2000)
	for i := range values {
		values[i] = r.IntN(500) // plenty of duplicates
	}

	ph := pqueue.Create(values)
	defer pqueue.Destroy(ph)
	bh := binheap.Create(values)
	defer binheap.Destroy(bh)

	require.Equal(t, pqueue.Len(ph), binheap.Len(bh))
	prev := 0
	for pqueue.Len(ph) > 0 {
		pv := pqueue.Pop(ph)
		bv := binheap.RemoveMin(bh)
		require.Equal(t, pv, bv)
		if prev > pv {
			t.Fatalf("drain not non-decreasing: %d after %d", pv, prev)
		}
		prev = pv
	}
	require.Equal(t, 0, binheap.Len(bh))
}

// TestVectorAndDeque_AgreeOnScriptedEdits runs the same scripted
// removal sequence against both positional containers built from the
// same buffer; the survivors must match element for element.
func TestVectorAndDeque_AgreeOnScriptedEdits(t *testing.T) {
	r := rand.New(rand.NewPCG(23, 24))
	const n = 400
	values := r.Perm(n)
	indices := make([]int, n/2)
	for i := range indices {
		indices[i] = r.IntN(n - i)
	}

	vh := vector.Create(values)
	defer vector.Destroy(vh)
	dh := deque.Create(values)
	defer deque.Destroy(dh)

	vector.RandomRemovals(vh, indices)
	deque.RandomRemovals(dh, indices)
	require.Equal(t, vector.Elems(vh), deque.Elems(dh))

	vector.Sort(vh)
	deque.Sort(dh)
	require.Equal(t, vector.Elems(vh), deque.Elems(dh))
}
