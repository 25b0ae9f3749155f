package ribbonz

// compactAt is the minimum front offset before Tape reclaims the space of
// popped values. Below this, shifting costs more than it saves.
const compactAt = 32

// Tape is an unbounded window over a source. It grows with every successful
// Expand and shrinks only when explicitly popped, so it can hold as much
// look-ahead as the consumer needs at the cost of heap growth.
type Tape[T any] struct {
	src  Source[T]
	buf  []T
	head int
	done bool
}

// NewTape creates an unbounded window over the given source. The window
// starts empty; nothing is pulled until it is driven by Expand or Progress.
// The source is owned by the window from this point on and must not be
// pulled from elsewhere.
//
// When to use:
//   - Parsers needing arbitrary look-ahead before committing to a branch
//   - Accumulating a window whose size is only known at runtime
//   - Any place a Band would be right but the bound is unknown
//
// Example:
//
//	tape := ribbonz.NewTape(ribbonz.SliceSource(tokens))
//	tape.ExpandN(2)
//
//	next, _ := tape.PeekFront()
//	after, _ := tape.PeekBack()
//	// choose a parse branch using next and after, then consume:
//	tok, _ := tape.PopFront()
func NewTape[T any](src Source[T]) *Tape[T] {
	return &Tape[T]{src: src}
}

var _ Ribbon[int] = (*Tape[int])(nil)

// pull draws one value from the source, recording exhaustion so the source
// is never called again after its first false.
func (t *Tape[T]) pull() (T, bool) {
	if t.done {
		var zero T
		return zero, false
	}
	v, ok := t.src()
	if !ok {
		t.done = true
	}
	return v, ok
}

// Expand pulls one value from the source and appends it to the back of the
// window. It reports false on source exhaustion, leaving the window
// unchanged.
func (t *Tape[T]) Expand() bool {
	v, ok := t.pull()
	if !ok {
		return false
	}
	t.buf = append(t.buf, v)
	return true
}

// ExpandN calls Expand up to n times, stopping early on exhaustion, and
// returns the number of values actually pulled.
func (t *Tape[T]) ExpandN(n int) int {
	for i := 0; i < n; i++ {
		if !t.Expand() {
			return i
		}
	}
	return n
}

// Progress slides the window forward by one position: it pulls one value
// onto the back and removes and returns the previous front. If the source
// is exhausted it returns false and the window is left untouched, so a
// drained Tape stabilizes. Progress on an empty Tape also returns false,
// leaving the freshly pulled value as the sole buffered element.
func (t *Tape[T]) Progress() (T, bool) {
	v, ok := t.pull()
	if !ok {
		var zero T
		return zero, false
	}
	front, had := t.PopFront()
	t.buf = append(t.buf, v)
	return front, had
}

// PopFront removes and returns the front value, or reports false when the
// window is empty.
func (t *Tape[T]) PopFront() (T, bool) {
	var zero T
	if t.head == len(t.buf) {
		return zero, false
	}
	v := t.buf[t.head]
	t.buf[t.head] = zero // release for GC
	t.head++
	if t.head >= compactAt && t.head > len(t.buf)/2 {
		t.buf = append(t.buf[:0], t.buf[t.head:]...)
		t.head = 0
	}
	return v, true
}

// PopBack removes and returns the back value, or reports false when the
// window is empty.
func (t *Tape[T]) PopBack() (T, bool) {
	var zero T
	if t.head == len(t.buf) {
		return zero, false
	}
	last := len(t.buf) - 1
	v := t.buf[last]
	t.buf[last] = zero
	t.buf = t.buf[:last]
	return v, true
}

// PeekFront returns the front value without removing it.
func (t *Tape[T]) PeekFront() (T, bool) {
	return t.PeekAt(0)
}

// PeekBack returns the back value without removing it.
func (t *Tape[T]) PeekBack() (T, bool) {
	return t.PeekAt(t.Len() - 1)
}

// PeekAt returns the value at offset i from the front, reporting false when
// i is outside the window.
func (t *Tape[T]) PeekAt(i int) (T, bool) {
	if i < 0 || i >= t.Len() {
		var zero T
		return zero, false
	}
	return t.buf[t.head+i], true
}

// Len returns the number of values currently buffered.
func (t *Tape[T]) Len() int {
	return len(t.buf) - t.head
}

// IsEmpty reports whether the window holds no values.
func (t *Tape[T]) IsEmpty() bool {
	return t.Len() == 0
}
