// Package numeric provides the clamp/step engine for spin-box values.
//
// All operations are total over the numeric domain: there are no errors and
// no panics. NaN propagates per IEEE-754, and an absent [Value]
// short-circuits to an absent result rather than being read as zero.
package numeric

import (
	"math"

	"github.com/shopspring/decimal"
)

// Value is an optional spin-box value. The zero Value is absent, which is
// distinct from Of(0): an empty input field has no value at all.
type Value struct {
	raw float64
	set bool
}

// Of returns a present Value holding v.
func Of(v float64) Value {
	return Value{raw: v, set: true}
}

// None returns the absent Value.
func None() Value {
	return Value{}
}

// IsNone reports whether the value is absent.
func (v Value) IsNone() bool {
	return !v.set
}

// Float returns the held number and whether one is present.
func (v Value) Float() (float64, bool) {
	return v.raw, v.set
}

// Or returns the held number, or def when the value is absent.
func (v Value) Or(def float64) float64 {
	if v.set {
		return v.raw
	}
	return def
}

// Clamp restricts v to the inclusive range [min, max]. Absent bounds read
// as -Inf and +Inf, so Clamp with both bounds absent is a true no-op. An
// absent v stays absent for any bounds.
//
// Ranges with min > max are not validated; the result is deterministic
// (the max bound is applied first, then the min bound, so min wins) but
// otherwise undefined.
func Clamp(v, min, max Value) Value {
	if !v.set {
		return None()
	}
	out := math.Min(v.raw, max.Or(math.Inf(1)))
	out = math.Max(out, min.Or(math.Inf(-1)))
	return Of(out)
}

// Step adds amount to v, reading an absent v as 0. When precision is
// non-negative the sum is rounded to that many fractional digits, half
// away from zero; a negative precision leaves the sum unrounded.
func Step(v Value, amount float64, precision int) Value {
	sum := v.Or(0) + amount
	if precision < 0 {
		return Of(sum)
	}
	return Of(round(sum, precision))
}

// Increment steps v up by step.
func Increment(v Value, step float64, precision int) Value {
	return Step(v, step, precision)
}

// Decrement steps v down by step.
func Decrement(v Value, step float64, precision int) Value {
	return Step(v, -step, precision)
}

// round rounds half away from zero at the given number of fractional
// digits. It goes through decimal so the shortest representation of the
// float is what gets rounded, not its binary expansion: 1.005 rounded to
// two digits is 1.01, even though the nearest float64 sits just below.
func round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	out, _ := decimal.NewFromFloat(x).Round(int32(digits)).Float64()
	return out
}
