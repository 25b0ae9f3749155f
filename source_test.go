package ribbonz

import (
	"context"
	"testing"
	"time"
)

func TestSliceSource(t *testing.T) {
	src := SliceSource([]string{"a", "b"})

	for _, want := range []string{"a", "b"} {
		v, ok := src()
		if !ok || v != want {
			t.Errorf("expected %q, got %q (ok=%v)", want, v, ok)
		}
	}
	if _, ok := src(); ok {
		t.Error("expected exhaustion after two values")
	}
	if _, ok := src(); ok {
		t.Error("expected exhaustion to be repeatable")
	}
}

func TestSeqSource(t *testing.T) {
	seq := func(yield func(int) bool) {
		for i := 10; i < 13; i++ {
			if !yield(i) {
				return
			}
		}
	}

	src := SeqSource(seq)
	for _, want := range []int{10, 11, 12} {
		v, ok := src()
		if !ok || v != want {
			t.Errorf("expected %d, got %d (ok=%v)", want, v, ok)
		}
	}
	if _, ok := src(); ok {
		t.Error("expected exhaustion after the sequence ends")
	}
}

func TestChanSource(t *testing.T) {
	ctx := context.Background()
	in := make(chan int)

	go func() {
		for i := 0; i < 3; i++ {
			in <- i
		}
		close(in)
	}()

	tape := NewTape(ChanSource(ctx, in))
	if n := tape.ExpandN(5); n != 3 {
		t.Errorf("expected 3 expansions, got %d", n)
	}
	assertPeeks(t, tape, 0, 2)
}

func TestChanSourceCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan int)

	src := ChanSource(ctx, in)
	cancel()

	if _, ok := src(); ok {
		t.Error("expected canceled context to read as exhaustion")
	}
}

func TestTickSource(t *testing.T) {
	ticks := make(chan time.Time, 3)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		ticks <- base.Add(time.Duration(i) * time.Second)
	}

	clock := &tickerClock{ticks: ticks}
	tape := NewTape(TickSource(clock, time.Second, 3))

	if n := tape.ExpandN(5); n != 3 {
		t.Errorf("expected 3 expansions, got %d", n)
	}
	front, _ := tape.PeekFront()
	back, _ := tape.PeekBack()
	if !front.Equal(base) {
		t.Errorf("expected front tick %v, got %v", base, front)
	}
	if want := base.Add(2 * time.Second); !back.Equal(want) {
		t.Errorf("expected back tick %v, got %v", want, back)
	}
	if !clock.stopped {
		t.Error("expected ticker to be stopped after the tick budget")
	}
}

// tickerClock implements Clock for testing. Only NewTicker is used by
// TickSource; the embedded Clock covers the rest of the interface.
type tickerClock struct {
	Clock
	ticks   chan time.Time
	stopped bool
}

func (c *tickerClock) NewTicker(time.Duration) Ticker {
	return &stubTicker{clock: c}
}

// stubTicker implements Ticker over a pre-filled channel.
type stubTicker struct {
	clock *tickerClock
}

func (s *stubTicker) C() <-chan time.Time {
	return s.clock.ticks
}

func (s *stubTicker) Stop() {
	s.clock.stopped = true
}
