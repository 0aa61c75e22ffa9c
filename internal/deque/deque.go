// Package deque is the double-ended-queue benchmark shim.
//
// Go has no standard deque, so the subject itself lives here: a growable
// ring over a power-of-2 slice, indexed with mask arithmetic. Pushes and
// pops at either end are O(1); positional inserts and removals shift
// whichever side of the ring is shorter.
//
// The handle protocol matches the vector package: one Create, one
// Destroy, operations only between the two.
package deque

import (
	"fmt"
	"slices"

	"github.com/randomizedcoder/go-container-benchmarks/internal/blackhole"
	"github.com/randomizedcoder/go-container-benchmarks/internal/handle"
)

const minCapacity = 8

// Deque is a growable ring-backed double-ended queue of ints.
type Deque struct {
	buf  []int
	mask int
	head int // position of logical index 0
	n    int
}

// New creates a Deque with capacity for at least size elements.
// Capacity is rounded up to the next power of 2.
func New(size int) *Deque {
	n := minCapacity
	for n < size {
		n <<= 1
	}
	return &Deque{
		buf:  make([]int, n),
		mask: n - 1,
	}
}

// Len returns the number of elements.
func (d *Deque) Len() int {
	return d.n
}

// At returns the element at logical index i. No bounds check.
func (d *Deque) At(i int) int {
	return d.buf[(d.head+i)&d.mask]
}

func (d *Deque) set(i, v int) {
	d.buf[(d.head+i)&d.mask] = v
}

// grow doubles the ring, linearizing the contents so head restarts at 0.
func (d *Deque) grow() {
	buf := make([]int, len(d.buf)*2)
	for i := 0; i < d.n; i++ {
		buf[i] = d.At(i)
	}
	d.buf = buf
	d.mask = len(buf) - 1
	d.head = 0
}

// PushBack appends v at the back.
func (d *Deque) PushBack(v int) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.set(d.n, v)
	d.n++
}

// PushFront prepends v at the front.
func (d *Deque) PushFront(v int) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head + len(d.buf) - 1) & d.mask
	d.buf[d.head] = v
	d.n++
}

// PopBack removes and returns the back element.
// Calling on an empty deque is a caller bug.
func (d *Deque) PopBack() int {
	d.n--
	return d.At(d.n)
}

// PopFront removes and returns the front element.
// Calling on an empty deque is a caller bug.
func (d *Deque) PopFront() int {
	v := d.buf[d.head]
	d.head = (d.head + 1) & d.mask
	d.n--
	return v
}

// Insert places v at logical position pos, shifting the shorter side.
func (d *Deque) Insert(pos, v int) {
	if d.n == len(d.buf) {
		d.grow()
	}
	if pos < d.n-pos {
		// Shift the front one slot toward head.
		d.head = (d.head + len(d.buf) - 1) & d.mask
		d.n++
		for i := 0; i < pos; i++ {
			d.set(i, d.At(i+1))
		}
	} else {
		// Shift the back one slot toward tail.
		d.n++
		for i := d.n - 1; i > pos; i-- {
			d.set(i, d.At(i-1))
		}
	}
	d.set(pos, v)
}

// Remove deletes the element at logical position pos, shifting the
// shorter side.
func (d *Deque) Remove(pos int) {
	if pos < d.n-pos-1 {
		for i := pos; i > 0; i-- {
			d.set(i, d.At(i-1))
		}
		d.head = (d.head + 1) & d.mask
	} else {
		for i := pos; i < d.n-1; i++ {
			d.set(i, d.At(i+1))
		}
	}
	d.n--
}

// Sort sorts the deque in place, ascending. The contents are linearized
// first so the sort runs over a contiguous slice.
func (d *Deque) Sort() {
	if d.head+d.n > len(d.buf) {
		buf := make([]int, len(d.buf))
		for i := 0; i < d.n; i++ {
			buf[i] = d.At(i)
		}
		d.buf = buf
		d.head = 0
	}
	slices.Sort(d.buf[d.head : d.head+d.n])
}

// ============================================================================
// Handle shim
// ============================================================================

var table = handle.NewTable[*Deque]()

// Live returns the number of undestroyed deques. Test instrumentation.
func Live() int {
	return table.Count()
}

// Create allocates a deque holding a copy of values, in order.
func Create(values []int) handle.ID {
	d := New(len(values))
	for _, v := range values {
		d.PushBack(v)
	}
	return table.Register(d)
}

// Destroy releases the deque. Must be called exactly once per handle.
func Destroy(h handle.ID) {
	table.Unregister(h)
}

// Len returns the current element count.
func Len(h handle.ID) int {
	return table.Lookup(h).Len()
}

// FromRange builds a deque of 0..count-1 one push at a time, then
// discards it through the sink.
func FromRange(count int) {
	d := New(0)
	for i := 0; i < count; i++ {
		d.PushBack(blackhole.Identity(i))
	}
	blackhole.Escape(d)
}

// FromBuffer builds a deque from values in one pass, then discards it
// through the sink.
func FromBuffer(values []int) {
	d := New(len(values))
	for _, v := range values {
		d.PushBack(v)
	}
	blackhole.Escape(d)
}

// Append builds a deque by pushing values at the back one at a time.
func Append(values []int) {
	d := New(0)
	for _, v := range values {
		d.PushBack(blackhole.Identity(v))
	}
	blackhole.Escape(d)
}

// Prepend builds a deque by pushing values at the front one at a time.
// Unlike the vector equivalent this is O(1) per element.
func Prepend(values []int) {
	d := New(0)
	for _, v := range values {
		d.PushFront(blackhole.Identity(v))
	}
	blackhole.Escape(d)
}

// RandomInsertions performs a scripted sequence of positional inserts
// into an initially empty deque: step i inserts the value i at position
// indices[i], interpreted against the deque as it stands after the
// previous i-1 inserts.
func RandomInsertions(indices []int) {
	d := New(0)
	for i, pos := range indices {
		d.Insert(pos, blackhole.Identity(i))
	}
	blackhole.Escape(d)
}

// Iterate walks the deque front to back, sinking every element.
func Iterate(h handle.ID) {
	d := table.Lookup(h)
	for i := 0; i < d.n; i++ {
		blackhole.Consume(d.At(i))
	}
}

// LookupsSubscript reads the element at each index without a bounds
// check. Out-of-range indices are a caller bug with unspecified behavior.
func LookupsSubscript(h handle.ID, indices []int) {
	d := table.Lookup(h)
	for _, i := range indices {
		blackhole.Consume(d.At(i))
	}
}

// LookupsAt reads the element at each index through an explicit bounds
// check, panicking on the first out-of-range index.
func LookupsAt(h handle.ID, indices []int) {
	d := table.Lookup(h)
	for _, i := range indices {
		if i < 0 || i >= d.n {
			panic(fmt.Sprintf("deque: index %d out of range [0, %d)", i, d.n))
		}
		blackhole.Consume(d.At(i))
	}
}

// PopBack drains the deque from the back.
func PopBack(h handle.ID) {
	d := table.Lookup(h)
	for d.n > 0 {
		d.PopBack()
	}
}

// PopFront drains the deque from the front.
func PopFront(h handle.ID) {
	d := table.Lookup(h)
	for d.n > 0 {
		d.PopFront()
	}
}

// RandomRemovals performs a scripted sequence of positional removals:
// step i removes the element at indices[i], interpreted against the
// deque as it stands after the previous i-1 removals.
func RandomRemovals(h handle.ID, indices []int) {
	d := table.Lookup(h)
	for _, pos := range indices {
		d.Remove(pos)
	}
}

// Sort sorts the deque in place, ascending.
func Sort(h handle.ID) {
	table.Lookup(h).Sort()
}

// Elems returns a copy of the current contents in order. Test
// instrumentation.
func Elems(h handle.ID) []int {
	d := table.Lookup(h)
	out := make([]int, d.n)
	for i := range out {
		out[i] = d.At(i)
	}
	return out
}
