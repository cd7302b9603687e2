// Package repeat implements the press-and-hold repeat engine for spin-box
// buttons: hold an increment or decrement button and, after a short pause,
// the step keeps firing until the button is released.
//
// # Timing
//
// A started [Timer] fires its callback once after [InitialDelay], then
// every [Interval] for as long as it stays armed. The two constants are
// tuned to match native key-repeat feel; they are configuration values,
// not derived from anything.
//
// # Fire-then-reschedule
//
// On every firing the next tick is queued before the callback runs. A
// callback can therefore not end the sequence simply by returning — by the
// time it observes the new value, the following tick is already scheduled.
// The handle returned by Start (or equivalently [Timer.Stop]) is the only
// thing that stops it. This is what lets a hold gesture be ended from
// inside its own tick, e.g. when the value reaches a range bound.
//
// # Scheduling
//
// All waiting happens through the package [Scheduler], which defaults to
// runtime timers. Tests inject a fake scheduler via [SetScheduler] and
// drive time by hand; see the testing package in this module.
package repeat
