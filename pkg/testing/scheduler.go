package testing

import (
	"sync"
	"time"

	"github.com/go-drift/spinbox/pkg/repeat"
)

// FakeScheduler implements repeat.Scheduler with a controllable clock for
// deterministic repeat-timing tests. All methods are safe for concurrent
// use, though tests normally drive it from a single goroutine.
type FakeScheduler struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*fakeTask
}

type fakeTask struct {
	due      time.Time
	seq      int
	fn       func()
	canceled bool
}

// NewFakeScheduler returns a FakeScheduler starting at a fixed epoch.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Schedule implements repeat.Scheduler. The callback runs when the clock
// is advanced to or past its due time, unless canceled first.
func (s *FakeScheduler) Schedule(delay time.Duration, fn func()) func() {
	s.mu.Lock()
	task := &fakeTask{due: s.now.Add(delay), seq: s.seq, fn: fn}
	s.seq++
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		task.canceled = true
		s.mu.Unlock()
	}
}

// Now returns the current fake time.
func (s *FakeScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of callbacks waiting to fire.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, task := range s.tasks {
		if !task.canceled {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by d, running every callback that comes
// due within the window, in chronological order. The clock is set to each
// callback's due time before it runs, so callbacks that schedule further
// work (like a repeat tick queuing the next one) keep an exact cadence.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	for {
		task := s.popDueLocked(target)
		if task == nil {
			break
		}
		s.now = task.due
		s.mu.Unlock()
		task.fn()
		s.mu.Lock()
	}
	if target.After(s.now) {
		s.now = target
	}
	s.mu.Unlock()
}

// popDueLocked removes and returns the earliest live task due at or before
// target, or nil when none remain. Ties break in scheduling order.
func (s *FakeScheduler) popDueLocked(target time.Time) *fakeTask {
	best := -1
	for i, task := range s.tasks {
		if task.canceled || task.due.After(target) {
			continue
		}
		if best == -1 ||
			task.due.Before(s.tasks[best].due) ||
			(task.due.Equal(s.tasks[best].due) && task.seq < s.tasks[best].seq) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	task := s.tasks[best]
	s.tasks = append(s.tasks[:best], s.tasks[best+1:]...)
	return task
}

// Install makes s the active repeat scheduler and returns a restore
// function for deferred cleanup.
func Install(s *FakeScheduler) func() {
	prev := repeat.SetScheduler(s)
	return func() { repeat.SetScheduler(prev) }
}
