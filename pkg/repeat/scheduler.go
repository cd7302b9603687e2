package repeat

import "time"

// Scheduler runs a callback once after a delay. The default implementation
// uses runtime timers. Tests can inject a fake scheduler via SetScheduler
// to control repeat timing deterministically.
type Scheduler interface {
	// Schedule arranges for fn to run once after delay and returns a
	// cancel function. Cancel is best-effort: it prevents fn from running
	// if fn has not already started, and is safe to call more than once.
	Schedule(delay time.Duration, fn func()) (cancel func())
}

// systemScheduler uses runtime timers.
type systemScheduler struct{}

func (systemScheduler) Schedule(delay time.Duration, fn func()) func() {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
}

// scheduler is the package-level timing source, replaceable for testing.
var scheduler Scheduler = systemScheduler{}

// SetScheduler replaces the repeat scheduler. Returns the previous
// scheduler so callers can restore it during cleanup.
func SetScheduler(s Scheduler) Scheduler {
	prev := scheduler
	scheduler = s
	return prev
}
