package ribbonz

import "fmt"

// Band is a fixed-capacity window over a source, backed by a ring of
// exactly Cap slots. It never reallocates after construction; once full,
// accepting a new value evicts the oldest one with a strict FIFO policy.
type Band[T any] struct {
	src     Source[T]
	onEvict func(T)
	ring    []T
	head    int
	size    int
	done    bool
}

// NewBand creates a window over the given source holding at most capacity
// values. The window starts empty; nothing is pulled until it is driven by
// Expand or Progress. The source is owned by the window from this point on
// and must not be pulled from elsewhere.
//
// When to use:
//   - Smoothing filters and moving averages over the last N samples
//   - Bounded look-ahead where memory must stay flat
//   - Keeping a recent-history window over an endless source
//
// Example:
//
//	// Moving window over the last 3 samples.
//	band := ribbonz.NewBand(3, ribbonz.SliceSource(samples))
//	band.ExpandN(3)
//
//	oldest, _ := band.PeekFront()
//	newest, _ := band.PeekBack()
//
//	// Slide forward one sample at a time.
//	dropped, ok := band.Progress()
//
// Parameters:
//   - capacity: Maximum window size (must be > 0; panics otherwise)
//   - src: The source to pull from
//
// Returns a new Band with fluent configuration.
func NewBand[T any](capacity int, src Source[T]) *Band[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("ribbonz: band capacity must be positive, got %d", capacity))
	}
	return &Band[T]{
		src:  src,
		ring: make([]T, capacity),
	}
}

var _ Ribbon[int] = (*Band[int])(nil)

// OnEvict sets a callback invoked with each value silently evicted by
// Expand at capacity. If not set, evicted values are discarded.
func (b *Band[T]) OnEvict(fn func(T)) *Band[T] {
	b.onEvict = fn
	return b
}

// Cap returns the fixed capacity chosen at construction.
func (b *Band[T]) Cap() int {
	return len(b.ring)
}

func (b *Band[T]) full() bool {
	return b.size == len(b.ring)
}

// tail returns the ring index of the back slot. Only meaningful when the
// window is non-empty.
func (b *Band[T]) tail() int {
	return (b.head + b.size - 1) % len(b.ring)
}

// pull draws one value from the source, recording exhaustion so the source
// is never called again after its first false.
func (b *Band[T]) pull() (T, bool) {
	if b.done {
		var zero T
		return zero, false
	}
	v, ok := b.src()
	if !ok {
		b.done = true
	}
	return v, ok
}

// push appends a value at the back. The caller ensures a slot is free.
func (b *Band[T]) push(v T) {
	b.size++
	b.ring[b.tail()] = v
}

// slide removes and returns the front value, advancing the head around the
// ring. Reports false when the window is empty.
func (b *Band[T]) slide() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	v := b.ring[b.head]
	b.ring[b.head] = zero // release for GC
	b.head = (b.head + 1) % len(b.ring)
	b.size--
	return v, true
}

// Expand pulls one value from the source and appends it to the back of the
// window, reporting false on source exhaustion. When the window is already
// at capacity the front value is first evicted to make room, so the length
// stays at Cap. Evicted values are not returned; observe them with OnEvict.
func (b *Band[T]) Expand() bool {
	v, ok := b.pull()
	if !ok {
		return false
	}
	if b.full() {
		evicted, _ := b.slide()
		if b.onEvict != nil {
			b.onEvict(evicted)
		}
	}
	b.push(v)
	return true
}

// ExpandN calls Expand up to n times, stopping early on exhaustion, and
// returns the number of values actually pulled.
func (b *Band[T]) ExpandN(n int) int {
	for i := 0; i < n; i++ {
		if !b.Expand() {
			return i
		}
	}
	return n
}

// Progress slides the window forward by one position: it pulls one value
// onto the back and removes and returns the previous front, regardless of
// spare capacity, so the length never changes except for the very first
// call on an empty window. If the source is exhausted it returns false and
// the window is left untouched, so a drained Band stabilizes.
//
// Driving an empty Band with Progress alone acts as a pass-through of the
// source, one value behind: the first call buffers a value and returns
// false, each later call returns the previously buffered value.
func (b *Band[T]) Progress() (T, bool) {
	v, ok := b.pull()
	if !ok {
		var zero T
		return zero, false
	}
	front, had := b.slide()
	b.push(v)
	return front, had
}

// PopFront removes and returns the front value, or reports false when the
// window is empty.
func (b *Band[T]) PopFront() (T, bool) {
	return b.slide()
}

// PopBack removes and returns the back value, or reports false when the
// window is empty.
func (b *Band[T]) PopBack() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}
	i := b.tail()
	v := b.ring[i]
	b.ring[i] = zero
	b.size--
	return v, true
}

// PeekFront returns the front value without removing it.
func (b *Band[T]) PeekFront() (T, bool) {
	return b.PeekAt(0)
}

// PeekBack returns the back value without removing it.
func (b *Band[T]) PeekBack() (T, bool) {
	return b.PeekAt(b.size - 1)
}

// PeekAt returns the value at offset i from the front, reporting false when
// i is outside the window.
func (b *Band[T]) PeekAt(i int) (T, bool) {
	if i < 0 || i >= b.size {
		var zero T
		return zero, false
	}
	return b.ring[(b.head+i)%len(b.ring)], true
}

// Len returns the number of values currently buffered.
func (b *Band[T]) Len() int {
	return b.size
}

// IsEmpty reports whether the window holds no values.
func (b *Band[T]) IsEmpty() bool {
	return b.size == 0
}

// Next drains the Band like a pull iterator: when the window is empty it is
// refilled with up to Cap values before the front is popped. It reports
// false once both the window and the source are exhausted.
func (b *Band[T]) Next() (T, bool) {
	if b.IsEmpty() {
		b.ExpandN(b.Cap())
	}
	return b.PopFront()
}
