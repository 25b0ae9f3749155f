package ribbonz

import (
	"context"
	"iter"
	"time"
)

// Source produces a sequence of values one pull at a time. Each call yields
// the next value and true, or the zero value and false once the sequence is
// exhausted. This matches the next function returned by iter.Pull, so any
// Go iterator adapts directly via SeqSource.
//
// Windows treat the first false as final and never call the source again,
// so a Source is not required to keep reporting exhaustion on its own.
type Source[T any] func() (T, bool)

// SliceSource returns a source that yields the elements of items in order,
// then reports exhaustion.
//
// Example:
//
//	tape := ribbonz.NewTape(ribbonz.SliceSource([]string{"a", "b", "c"}))
func SliceSource[T any](items []T) Source[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(items) {
			var zero T
			return zero, false
		}
		v := items[i]
		i++
		return v, true
	}
}

// SeqSource adapts a Go iterator into a source. The underlying iterator is
// released as soon as exhaustion is observed.
//
// Example:
//
//	band := ribbonz.NewBand(3, ribbonz.SeqSource(maps.Keys(index)))
func SeqSource[T any](seq iter.Seq[T]) Source[T] {
	next, stop := iter.Pull(seq)
	return func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	}
}

// ChanSource returns a source that pulls values from a channel. A closed
// channel or a canceled context both read as exhaustion, so a window over a
// channel can be shut down from either end.
//
// Example:
//
//	events := make(chan Event)
//	tape := ribbonz.NewTape(ribbonz.ChanSource(ctx, events))
func ChanSource[T any](ctx context.Context, ch <-chan T) Source[T] {
	return func() (T, bool) {
		select {
		case v, ok := <-ch:
			return v, ok
		case <-ctx.Done():
			var zero T
			return zero, false
		}
	}
}

// TickSource returns a source that emits up to count tick timestamps, one
// per interval, then stops its ticker and reports exhaustion. Each pull
// blocks until the next tick is due.
//
// Useful for windowing over wall-clock samples:
//
//	band := ribbonz.NewBand(10, ribbonz.TickSource(ribbonz.RealClock, time.Second, 60))
func TickSource(clock Clock, interval time.Duration, count int) Source[time.Time] {
	ticker := clock.NewTicker(interval)
	remaining := count
	return func() (time.Time, bool) {
		if remaining <= 0 {
			ticker.Stop()
			return time.Time{}, false
		}
		remaining--
		return <-ticker.C(), true
	}
}
