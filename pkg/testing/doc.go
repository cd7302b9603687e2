// Package testing provides deterministic timing for spin-box tests.
//
// [FakeScheduler] stands in for the repeat package's runtime timers so
// hold-to-repeat behavior can be tested without real wall-clock delays:
//
//	func TestHold(t *testing.T) {
//	    sched := spintest.NewFakeScheduler()
//	    defer spintest.Install(sched)()
//
//	    stop := repeat.Start(func() { fired++ })
//	    sched.Advance(500 * time.Millisecond) // initial delay elapses
//	    sched.Advance(70 * time.Millisecond)  // two repeat intervals
//	    stop()
//	}
//
// Advance runs every callback that comes due, in chronological order,
// moving the fake clock to each callback's due time before invoking it.
// Work scheduled from inside a callback therefore keeps an exact cadence.
package testing
