package repeat

import (
	"sync"
	"time"
)

const (
	// InitialDelay is how long a press must be held before repeating begins.
	InitialDelay = 500 * time.Millisecond

	// Interval is the time between firings once repeating has begun.
	Interval = 35 * time.Millisecond
)

// State identifies where a Timer is in its cycle.
type State int

const (
	// StateIdle means the timer is not armed.
	StateIdle State = iota
	// StateScheduled means the timer is armed and waiting out the initial delay.
	StateScheduled
	// StateRepeating means the initial delay has elapsed and the callback
	// is firing at the repeat interval.
	StateRepeating
)

func (s State) String() string {
	switch s {
	case StateScheduled:
		return "scheduled"
	case StateRepeating:
		return "repeating"
	default:
		return "idle"
	}
}

// CancelFunc stops a running repeat sequence. It is idempotent: calling it
// when the timer is already idle, or calling it multiple times, is a no-op.
type CancelFunc func()

// Timer fires a callback once after an initial delay, then repeatedly at a
// fixed interval, until canceled.
//
// Only one sequence may be active per timer; Start on an active timer is a
// no-op. A single Timer serves one logical hold gesture at a time — stop it
// before starting the next gesture.
type Timer struct {
	// InitialDelay and RepeatInterval override the package defaults when
	// positive. They are read when the timer starts.
	InitialDelay   time.Duration
	RepeatInterval time.Duration

	mu         sync.Mutex
	state      State
	interval   time.Duration
	callback   func()
	cancelTick func()
}

// NewTimer returns an idle timer using the package timing constants.
func NewTimer() *Timer {
	return &Timer{}
}

// Start arms the timer: fn runs once after the initial delay, then at every
// repeat interval, indefinitely, until the returned handle (or Stop) is
// called. If the timer is already active Start changes nothing and returns
// the same stop handle.
func (t *Timer) Start(fn func()) CancelFunc {
	t.mu.Lock()
	if t.state != StateIdle {
		t.mu.Unlock()
		return t.Stop
	}
	delay := t.InitialDelay
	if delay <= 0 {
		delay = InitialDelay
	}
	t.interval = t.RepeatInterval
	if t.interval <= 0 {
		t.interval = Interval
	}
	t.callback = fn
	t.state = StateScheduled
	t.cancelTick = scheduler.Schedule(delay, t.tick)
	t.mu.Unlock()
	return t.Stop
}

// tick queues the next firing before running the callback, so by the time
// the callback observes anything the following tick is already scheduled.
// Only Stop ends the sequence.
func (t *Timer) tick() {
	t.mu.Lock()
	if t.state == StateIdle {
		t.mu.Unlock()
		return
	}
	t.state = StateRepeating
	fn := t.callback
	t.cancelTick = scheduler.Schedule(t.interval, t.tick)
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Stop cancels all future firings and returns the timer to idle. Safe to
// call when already idle and safe to call more than once.
func (t *Timer) Stop() {
	t.mu.Lock()
	cancel := t.cancelTick
	t.cancelTick = nil
	t.callback = nil
	t.state = StateIdle
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// State reports the timer's position in the idle → scheduled → repeating
// cycle.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// IsActive reports whether the timer has been started and not yet stopped.
func (t *Timer) IsActive() bool {
	return t.State() != StateIdle
}

// Start arms a new timer with the package timing constants. The returned
// handle is the only way to end the sequence.
func Start(fn func()) CancelFunc {
	return NewTimer().Start(fn)
}
