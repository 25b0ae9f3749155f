// Package ribbonz provides type-safe look-ahead buffering over pull-based
// sources, letting consumers hold a window of recently produced values and
// inspect both ends of that window before deciding how to advance.
//
// The core abstraction is the Ribbon interface, which describes a window of
// buffered values with a front (oldest, next to be consumed) and a back
// (newest, most recently pulled from the source). Two implementations are
// provided with different growth policies:
//   - Tape: an unbounded window that grows until explicitly shrunk
//   - Band: a fixed-capacity ring that evicts its oldest value to make room
//
// Basic usage:
//
//	tape := ribbonz.NewTape(ribbonz.SliceSource([]int{0, 1, 2, 3, 4}))
//	tape.ExpandN(3)
//
//	front, _ := tape.PeekFront() // 0
//	back, _ := tape.PeekBack()   // 2
//
//	// Decide based on look-ahead, then advance.
//	if back > front {
//		tape.PopFront()
//	}
//
// Windows are driven one value at a time: Expand pulls the next value from
// the source onto the back, PopFront shrinks the window from the front, and
// Progress slides the window forward in a single call. Every boundary
// condition (source exhaustion, empty window, eviction at capacity) is an
// ordinary return value, never an error or a panic.
//
// A window owns its source exclusively. Once a source reports exhaustion the
// window never calls it again, so sources need not be sticky themselves.
// Windows are not safe for concurrent use without external synchronization.
package ribbonz

// Ribbon is the capability set shared by every window implementation.
// It describes a buffered window over a pull-based source, independent of
// the backing storage strategy. Implementations should:
//   - Start empty and pull nothing until driven by Expand or Progress
//   - Treat source exhaustion as sticky, never calling the source again
//   - Report boundary conditions through return values, not panics
type Ribbon[T any] interface {
	// Expand pulls one value from the source and appends it to the back of
	// the window. It reports whether a value was produced; false signals
	// source exhaustion and leaves the window unchanged.
	Expand() bool

	// ExpandN calls Expand up to n times, stopping early on exhaustion.
	// It returns the number of successful expansions.
	ExpandN(n int) int

	// Progress slides the window forward by one position. Its exact
	// semantics at capacity boundaries are implementation-specific; see
	// Tape.Progress and Band.Progress.
	Progress() (T, bool)

	// PopFront removes and returns the front value. It reports false when
	// the window is empty.
	PopFront() (T, bool)

	// PopBack removes and returns the back value. It reports false when
	// the window is empty.
	PopBack() (T, bool)

	// PeekFront returns the front value without removing it.
	PeekFront() (T, bool)

	// PeekBack returns the back value without removing it.
	PeekBack() (T, bool)

	// PeekAt returns the value at the given offset from the front without
	// removing it. It reports false when the offset is outside the window.
	PeekAt(i int) (T, bool)

	// Len returns the number of values currently buffered.
	Len() int

	// IsEmpty reports whether the window holds no values.
	IsEmpty() bool
}
