// Package bitvector is the packed-boolean benchmark shim.
//
// A Vector stores one bit per element in 64-bit words, the packed
// representation a specialized bulk-boolean container uses. Set, reset
// and lookup come in unchecked Subscript and checked At flavors, and
// there are two deliberately different full scans for counting true
// bits: CountTrueBits walks every word once with popcount, FindTrueBits
// repeatedly searches for the next true bit from a moving cursor. They
// compute the same number by different paths; the benchmark exists to
// compare those paths, so both stay.
package bitvector

import (
	"fmt"
	"math/bits"

	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
)

const wordBits = 64

// Vector is a packed bit vector.
type Vector struct {
	words []uint64
	n     int
}

// NewRepeating creates a Vector of count bits, all set to value.
func NewRepeating(count int, value bool) *Vector {
	v := &Vector{
		words: make([]uint64, (count+wordBits-1)/wordBits),
		n:     count,
	}
	if value {
		for i := range v.words {
			v.words[i] = ^uint64(0)
		}
		v.clearTail()
	}
	return v
}

// clearTail zeroes the unused bits of the last word. Scans rely on
// those bits being zero.
func (v *Vector) clearTail() {
	if rem := v.n % wordBits; rem != 0 && len(v.words) > 0 {
		v.words[len(v.words)-1] &= (uint64(1) << rem) - 1
	}
}

// Len returns the bit count.
func (v *Vector) Len() int {
	return v.n
}

// Get returns bit i. No bounds check.
func (v *Vector) Get(i int) bool {
	return v.words[i/wordBits]&(uint64(1)<<(i%wordBits)) != 0
}

// Set writes bit i. No bounds check.
func (v *Vector) Set(i int, value bool) {
	if value {
		v.words[i/wordBits] |= uint64(1) << (i % wordBits)
	} else {
		v.words[i/wordBits] &^= uint64(1) << (i % wordBits)
	}
}

func (v *Vector) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("bitvector: index %d out of range [0, %d)", i, v.n))
	}
}

// PushBack appends a bit.
func (v *Vector) PushBack(value bool) {
	if v.n%wordBits == 0 {
		v.words = append(v.words, 0)
	}
	v.n++
	v.Set(v.n-1, value)
}

// PopBack removes the last bit. Empty vector is a caller bug.
func (v *Vector) PopBack() {
	v.n--
	v.Set(v.n, false)
	if v.n%wordBits == 0 {
		v.words = v.words[:v.n/wordBits]
	}
}

// CountTrueBits counts the true bits in a single pass, one popcount per
// word.
func (v *Vector) CountTrueBits() int {
	count := 0
	for _, w := range v.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// FindTrueBits counts the true bits by repeatedly searching for the next
// true position from a cursor, the way a find-first-set scan would visit
// each member. Same result as CountTrueBits, different code path.
func (v *Vector) FindTrueBits() int {
	count := 0
	for i := v.nextTrue(0); i < v.n; i = v.nextTrue(i + 1) {
		count++
	}
	return count
}

// nextTrue returns the position of the first true bit at or after from,
// or Len() if there is none.
func (v *Vector) nextTrue(from int) int {
	if from >= v.n {
		return v.n
	}
	wi := from / wordBits
	w := v.words[wi] >> (from % wordBits)
	if w != 0 {
		return from + bits.TrailingZeros64(w)
	}
	for wi++; wi < len(v.words); wi++ {
		if v.words[wi] != 0 {
			return wi*wordBits + bits.TrailingZeros64(v.words[wi])
		}
	}
	return v.n
}

// ============================================================================
// Handle shim
// ============================================================================

var table = handle.NewTable[*Vector]()

// Live returns the number of undestroyed vectors. Test instrumentation.
func Live() int {
	return table.Count()
}

// CreateRepeating allocates a vector of count bits, all set to value.
func CreateRepeating(count int, value bool) handle.ID {
	return table.Register(NewRepeating(count, value))
}

// Destroy releases the vector. Must be called exactly once per handle.
func Destroy(h handle.ID) {
	table.Unregister(h)
}

// Len returns the current bit count.
func Len(h handle.ID) int {
	return table.Lookup(h).Len()
}

// PushBack builds a vector by appending values one bit at a time. When
// reserve is set the word storage is allocated up front.
func PushBack(values []bool, reserve bool) {
	v := &Vector{}
	if reserve {
		v.words = make([]uint64, 0, (len(values)+wordBits-1)/wordBits)
	}
	for _, b := range values {
		v.PushBack(b)
	}
	blackhole.Escape(v)
}

// PopBack removes count bits from the back.
func PopBack(h handle.ID, count int) {
	v := table.Lookup(h)
	for i := 0; i < count; i++ {
		v.PopBack()
	}
}

// SetIndicesSubscript sets the bit at each index to true, unchecked.
func SetIndicesSubscript(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		v.Set(i, true)
	}
}

// SetIndicesAt sets the bit at each index to true through an explicit
// bounds check, panicking on the first out-of-range index.
func SetIndicesAt(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		v.checkIndex(i)
		v.Set(i, true)
	}
}

// ResetIndicesSubscript sets the bit at each index to false, unchecked.
func ResetIndicesSubscript(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		v.Set(i, false)
	}
}

// ResetIndicesAt sets the bit at each index to false through an explicit
// bounds check, panicking on the first out-of-range index.
func ResetIndicesAt(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		v.checkIndex(i)
		v.Set(i, false)
	}
}

// LookupsSubscript reads the bit at each index, unchecked, sinking each.
func LookupsSubscript(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		blackhole.ConsumeBool(v.Get(i))
	}
}

// LookupsAt reads the bit at each index through an explicit bounds
// check, panicking on the first out-of-range index.
func LookupsAt(h handle.ID, indices []int) {
	v := table.Lookup(h)
	for _, i := range indices {
		v.checkIndex(i)
		blackhole.ConsumeBool(v.Get(i))
	}
}

// Iterate walks the vector front to back, sinking every bit.
func Iterate(h handle.ID) {
	v := table.Lookup(h)
	for i := 0; i < v.n; i++ {
		blackhole.ConsumeBool(v.Get(i))
	}
}

// CountTrueBits returns the number of true bits via the single-pass
// popcount scan.
func CountTrueBits(h handle.ID) int {
	return table.Lookup(h).CountTrueBits()
}

// FindTrueBits returns the number of true bits via the repeated
// search-from-cursor scan.
func FindTrueBits(h handle.ID) int {
	return table.Lookup(h).FindTrueBits()
}
