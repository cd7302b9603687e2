package spinbox

import (
	"strconv"
	"strings"
	"sync"

	"github.com/go-drift/spinbox/pkg/locale"
	"github.com/go-drift/spinbox/pkg/numeric"
	"github.com/go-drift/spinbox/pkg/repeat"
)

// Direction identifies which spin button a gesture is holding. The value
// doubles as the step sign.
type Direction int

const (
	// DirectionUp steps toward the maximum.
	DirectionUp Direction = 1
	// DirectionDown steps toward the minimum.
	DirectionDown Direction = -1
)

// Action is a keyboard operation on the control.
type Action int

const (
	// ActionIncrement steps up by one step (arrow up).
	ActionIncrement Action = iota
	// ActionDecrement steps down by one step (arrow down).
	ActionDecrement
	// ActionIncrementPage steps up by the page step (page up).
	ActionIncrementPage
	// ActionDecrementPage steps down by the page step (page down).
	ActionDecrementPage
	// ActionToMin jumps to the minimum (home). No-op when unbounded.
	ActionToMin
	// ActionToMax jumps to the maximum (end). No-op when unbounded.
	ActionToMax
)

// Config configures a Controller. The zero value is a control with no
// value, no bounds, step 1 and unrounded stepping.
type Config struct {
	// Value is the initial value. Absent means the control starts empty.
	Value numeric.Value

	// Min and Max bound the value. Absent bounds are unbounded. Min > Max
	// is not validated.
	Min, Max numeric.Value

	// Step is the amount applied per increment or decrement. Zero means 1.
	Step float64

	// PageStep is the amount for page actions. Zero means 10 × Step.
	PageStep float64

	// Precision is the fraction-digit rounding applied after each step.
	// Nil derives it from Format; with no Format either, steps stay
	// unrounded.
	Precision *int

	// Format renders and parses the value. Nil falls back to plain
	// strconv formatting.
	Format *locale.Format

	// OnChanged is called with the new value after every change.
	OnChanged func(numeric.Value)
}

// Controller owns the value of a spin-box control and orchestrates the
// clamp/step engine and the press-and-hold repeat timer on behalf of the
// host widget. See the package documentation for the event wiring.
//
// Configuration is fixed at construction; only the value changes over a
// controller's life. Methods are safe for concurrent use, though hosts
// normally drive a controller from the UI thread only.
type Controller struct {
	min, max  numeric.Value
	step      float64
	pageStep  float64
	precision int
	format    *locale.Format
	onChanged func(numeric.Value)

	timer *repeat.Timer

	mu             sync.Mutex
	value          numeric.Value
	listeners      map[int]func()
	nextListenerID int
}

// NewController creates a controller from cfg. The initial value is
// clamped into the configured range.
func NewController(cfg Config) *Controller {
	step := cfg.Step
	if step == 0 {
		step = 1
	}
	pageStep := cfg.PageStep
	if pageStep == 0 {
		pageStep = 10 * step
	}
	precision := cfg.Format.Precision()
	if cfg.Precision != nil {
		precision = *cfg.Precision
	}
	return &Controller{
		min:       cfg.Min,
		max:       cfg.Max,
		step:      step,
		pageStep:  pageStep,
		precision: precision,
		format:    cfg.Format,
		onChanged: cfg.OnChanged,
		timer:     repeat.NewTimer(),
		value:     numeric.Clamp(cfg.Value, cfg.Min, cfg.Max),
		listeners: make(map[int]func()),
	}
}

// Value returns the current value.
func (c *Controller) Value() numeric.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// SetValue adopts v, clamped into the range, and notifies. This is the
// reconciliation path for hosts that own the value themselves.
func (c *Controller) SetValue(v numeric.Value) {
	c.mu.Lock()
	c.value = numeric.Clamp(v, c.min, c.max)
	c.mu.Unlock()
	c.notify()
}

// Step returns the configured step amount.
func (c *Controller) Step() float64 { return c.step }

// Precision returns the fraction-digit rounding in effect, or a negative
// number when stepping is unrounded.
func (c *Controller) Precision() int { return c.precision }

// Increment steps the value up once, rounded and clamped.
func (c *Controller) Increment() numeric.Value {
	return c.stepBy(c.step)
}

// Decrement steps the value down once, rounded and clamped.
func (c *Controller) Decrement() numeric.Value {
	return c.stepBy(-c.step)
}

// Perform applies a keyboard action.
func (c *Controller) Perform(a Action) {
	switch a {
	case ActionIncrement:
		c.Increment()
	case ActionDecrement:
		c.Decrement()
	case ActionIncrementPage:
		c.stepBy(c.pageStep)
	case ActionDecrementPage:
		c.stepBy(-c.pageStep)
	case ActionToMin:
		if !c.min.IsNone() {
			c.SetValue(c.min)
		}
	case ActionToMax:
		if !c.max.IsNone() {
			c.SetValue(c.max)
		}
	}
}

// StartHold begins a press-and-hold gesture: one step applies immediately,
// and once the repeat timer's initial delay elapses the step repeats at
// its interval. The hold ends when StopHold is called or when a step lands
// exactly on the bound the gesture is moving toward. Any previous hold is
// stopped first.
func (c *Controller) StartHold(dir Direction) {
	c.timer.Stop()
	if c.holdStep(dir) {
		return
	}
	c.timer.Start(func() {
		if c.holdStep(dir) {
			c.timer.Stop()
		}
	})
}

// StopHold ends the current hold gesture. Safe to call when no hold is
// active, and safe to call more than once.
func (c *Controller) StopHold() {
	c.timer.Stop()
}

// Holding reports whether a hold gesture is in progress.
func (c *Controller) Holding() bool {
	return c.timer.IsActive()
}

// holdStep applies one step in the hold direction and reports whether the
// value is now pinned at that direction's bound.
func (c *Controller) holdStep(dir Direction) bool {
	raw, ok := c.stepBy(float64(dir) * c.step).Float()
	if !ok {
		return false
	}
	switch dir {
	case DirectionUp:
		if max, bounded := c.max.Float(); bounded {
			return raw >= max
		}
	case DirectionDown:
		if min, bounded := c.min.Float(); bounded {
			return raw <= min
		}
	}
	return false
}

// stepBy applies one rounded, clamped step and notifies.
func (c *Controller) stepBy(amount float64) numeric.Value {
	c.mu.Lock()
	next := numeric.Clamp(numeric.Step(c.value, amount, c.precision), c.min, c.max)
	c.value = next
	c.mu.Unlock()
	c.notify()
	return next
}

// Text returns the current value rendered for display: through the
// configured Format when there is one, otherwise plain strconv formatting
// at the configured precision. An absent value renders as "".
func (c *Controller) Text() string {
	v := c.Value()
	if c.format != nil {
		return c.format.Print(v)
	}
	raw, ok := v.Float()
	if !ok {
		return ""
	}
	if c.precision >= 0 {
		return strconv.FormatFloat(raw, 'f', c.precision, 64)
	}
	return strconv.FormatFloat(raw, 'f', -1, 64)
}

// CommitText adopts typed input, as on blur or submit: the text is parsed
// in the configured locale, rounded to the precision, clamped, and stored.
// Blank input clears the value to absent. On a parse error the value stays
// untouched and the error is returned, so the host can restore the display
// from Text.
func (c *Controller) CommitText(s string) error {
	var v numeric.Value
	if c.format != nil {
		parsed, err := c.format.Parse(s)
		if err != nil {
			return err
		}
		v = parsed
	} else {
		trimmed := strings.TrimSpace(s)
		if trimmed != "" {
			raw, err := strconv.ParseFloat(trimmed, 64)
			if err != nil {
				return err
			}
			v = numeric.Of(raw)
		}
	}
	if !v.IsNone() {
		v = numeric.Step(v, 0, c.precision)
	}
	c.SetValue(v)
	return nil
}

// AddListener registers a callback invoked after every value change.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// notify calls OnChanged and all listeners, outside the lock.
func (c *Controller) notify() {
	c.mu.Lock()
	v := c.value
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	if c.onChanged != nil {
		c.onChanged(v)
	}
	for _, fn := range fns {
		fn()
	}
}
