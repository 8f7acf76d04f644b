// Package autoplay schedules the timed reveal/advance steps of auto mode.
//
// A Scheduler holds at most one pending tick. Arming a new tick cancels the
// previous one, and a cancelled tick can never be accepted, even if its
// timer had already fired and the tick was in flight.
package autoplay

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Tick is delivered when a scheduled interval elapses.
type Tick struct {
	Seq uint64
	At  time.Time
}

// Wait blocks until the pending tick fires or is cancelled. It reports
// false on cancellation. Wait is safe to call from another goroutine.
type Wait func() (Tick, bool)

type pending struct {
	seq    uint64
	timer  clockwork.Timer
	cancel context.CancelFunc
}

// Scheduler owns the single pending auto-play tick.
//
// Scheduler methods are not safe for concurrent use; call them from the
// goroutine that owns the session state.
type Scheduler struct {
	clock   clockwork.Clock
	seq     uint64
	pending *pending
}

// New creates a Scheduler on clock. A nil clock uses the real clock.
func New(clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{clock: clock}
}

// Schedule cancels any pending tick and arms a new one after d.
func (s *Scheduler) Schedule(d time.Duration) Wait {
	s.Cancel()

	s.seq++
	ctx, cancel := context.WithCancel(context.Background())
	p := &pending{
		seq:    s.seq,
		timer:  s.clock.NewTimer(d),
		cancel: cancel,
	}
	s.pending = p

	return func() (Tick, bool) {
		select {
		case at := <-p.timer.Chan():
			return Tick{Seq: p.seq, At: at}, true
		case <-ctx.Done():
			return Tick{}, false
		}
	}
}

// Cancel stops the pending tick, if any. Its Wait returns false.
func (s *Scheduler) Cancel() {
	if s.pending == nil {
		return
	}
	s.pending.timer.Stop()
	s.pending.cancel()
	s.pending = nil
}

// Accept reports whether t belongs to the pending tick and, if so, clears
// it. Ticks from cancelled or superseded schedules are rejected.
func (s *Scheduler) Accept(t Tick) bool {
	if s.pending == nil || s.pending.seq != t.Seq {
		return false
	}
	s.pending.cancel()
	s.pending = nil
	return true
}

// Pending reports whether a tick is armed.
func (s *Scheduler) Pending() bool {
	return s.pending != nil
}
