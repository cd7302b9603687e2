package spinbox_test

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/spinbox/pkg/locale"
	"github.com/go-drift/spinbox/pkg/numeric"
	"github.com/go-drift/spinbox/pkg/spinbox"
	spintest "github.com/go-drift/spinbox/pkg/testing"
)

func value(t *testing.T, c *spinbox.Controller) float64 {
	t.Helper()
	raw, ok := c.Value().Float()
	if !ok {
		t.Fatal("expected a present value")
	}
	return raw
}

func TestController_IncrementsClampToMax(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{
		Value: numeric.Of(9),
		Min:   numeric.Of(0),
		Max:   numeric.Of(10),
	})

	for i := 0; i < 3; i++ {
		if raw, _ := c.Increment().Float(); raw != 10 {
			t.Errorf("increment %d: expected 10, got %v", i+1, raw)
		}
	}
}

func TestController_InitialValueClamped(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{
		Value: numeric.Of(99),
		Min:   numeric.Of(0),
		Max:   numeric.Of(10),
	})
	if got := value(t, c); got != 10 {
		t.Errorf("expected initial value clamped to 10, got %v", got)
	}
}

func TestController_StepDefaultsToOne(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{Value: numeric.Of(5)})
	c.Increment()
	if got := value(t, c); got != 6 {
		t.Errorf("expected 6, got %v", got)
	}
	c.Decrement()
	c.Decrement()
	if got := value(t, c); got != 4 {
		t.Errorf("expected 4, got %v", got)
	}
}

func TestController_PrecisionFromFormat(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{
		Value:  numeric.Of(0),
		Step:   0.1,
		Format: &locale.Format{Tag: language.English, MaxFractionDigits: 1},
	})
	// Ten steps of 0.1 accumulate binary error without rounding.
	for i := 0; i < 10; i++ {
		c.Increment()
	}
	if got := value(t, c); got != 1 {
		t.Errorf("expected exactly 1, got %v", got)
	}
}

func TestController_HoldRepeatsUntilBound(t *testing.T) {
	sched := spintest.NewFakeScheduler()
	defer spintest.Install(sched)()

	c := spinbox.NewController(spinbox.Config{
		Value: numeric.Of(7),
		Min:   numeric.Of(0),
		Max:   numeric.Of(10),
	})

	c.StartHold(spinbox.DirectionUp)
	if got := value(t, c); got != 8 {
		t.Fatalf("expected immediate step to 8, got %v", got)
	}
	if !c.Holding() {
		t.Fatal("expected hold to be active below the bound")
	}

	// 500ms: 9. 535ms: 10, pinned — the hold must stop itself.
	sched.Advance(time.Second)
	if got := value(t, c); got != 10 {
		t.Errorf("expected 10 after repeating to the bound, got %v", got)
	}
	if c.Holding() {
		t.Error("expected hold to stop at the max bound")
	}
	if sched.Pending() != 0 {
		t.Errorf("expected no ticks queued past the bound, got %d", sched.Pending())
	}

	sched.Advance(time.Second)
	if got := value(t, c); got != 10 {
		t.Errorf("expected value pinned at 10, got %v", got)
	}
}

func TestController_HoldAtBoundNeverStartsRepeating(t *testing.T) {
	sched := spintest.NewFakeScheduler()
	defer spintest.Install(sched)()

	c := spinbox.NewController(spinbox.Config{
		Value: numeric.Of(10),
		Min:   numeric.Of(0),
		Max:   numeric.Of(10),
	})

	c.StartHold(spinbox.DirectionUp)
	if c.Holding() {
		t.Error("expected no active hold when already at the bound")
	}
	if sched.Pending() != 0 {
		t.Errorf("expected no queued ticks, got %d", sched.Pending())
	}
	if got := value(t, c); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
}

func TestController_HoldDownToMin(t *testing.T) {
	sched := spintest.NewFakeScheduler()
	defer spintest.Install(sched)()

	c := spinbox.NewController(spinbox.Config{
		Value: numeric.Of(2),
		Min:   numeric.Of(0),
		Max:   numeric.Of(10),
	})

	c.StartHold(spinbox.DirectionDown) // 2 → 1 immediately
	sched.Advance(500 * time.Millisecond)
	if got := value(t, c); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if c.Holding() {
		t.Error("expected hold to stop at the min bound")
	}
}

func TestController_HoldUnboundedKeepsRepeating(t *testing.T) {
	sched := spintest.NewFakeScheduler()
	defer spintest.Install(sched)()

	c := spinbox.NewController(spinbox.Config{Value: numeric.Of(0)})

	c.StartHold(spinbox.DirectionUp)
	sched.Advance(500 * time.Millisecond)
	sched.Advance(35 * 10 * time.Millisecond)
	if !c.Holding() {
		t.Error("expected unbounded hold to stay active")
	}
	c.StopHold()
	c.StopHold() // idempotent

	// 1 immediate + 1 initial fire + 10 repeats.
	if got := value(t, c); got != 12 {
		t.Errorf("expected 12, got %v", got)
	}
	got := value(t, c)
	sched.Advance(time.Second)
	if value(t, c) != got {
		t.Error("expected no steps after release")
	}
}

func TestController_StartHoldReplacesPreviousHold(t *testing.T) {
	sched := spintest.NewFakeScheduler()
	defer spintest.Install(sched)()

	c := spinbox.NewController(spinbox.Config{Value: numeric.Of(0)})

	c.StartHold(spinbox.DirectionUp)   // 0 → 1
	c.StartHold(spinbox.DirectionDown) // 1 → 0, up hold canceled
	sched.Advance(500 * time.Millisecond)
	if got := value(t, c); got != -1 {
		t.Errorf("expected -1, got %v", got)
	}
	c.StopHold()
}

func TestController_PerformActions(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{
		Value: numeric.Of(50),
		Min:   numeric.Of(0),
		Max:   numeric.Of(100),
		Step:  1,
	})

	c.Perform(spinbox.ActionIncrement)
	if got := value(t, c); got != 51 {
		t.Errorf("expected 51, got %v", got)
	}
	c.Perform(spinbox.ActionDecrement)
	if got := value(t, c); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
	c.Perform(spinbox.ActionIncrementPage) // default page step = 10 × step
	if got := value(t, c); got != 60 {
		t.Errorf("expected 60, got %v", got)
	}
	c.Perform(spinbox.ActionDecrementPage)
	if got := value(t, c); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
	c.Perform(spinbox.ActionToMax)
	if got := value(t, c); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
	c.Perform(spinbox.ActionToMin)
	if got := value(t, c); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}

func TestController_ToMinMaxNoOpWhenUnbounded(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{Value: numeric.Of(5)})
	c.Perform(spinbox.ActionToMin)
	c.Perform(spinbox.ActionToMax)
	if got := value(t, c); got != 5 {
		t.Errorf("expected 5 unchanged, got %v", got)
	}
}

func TestController_SetValueClampsAndNotifies(t *testing.T) {
	var seen []float64
	c := spinbox.NewController(spinbox.Config{
		Min: numeric.Of(0),
		Max: numeric.Of(10),
		OnChanged: func(v numeric.Value) {
			raw, _ := v.Float()
			seen = append(seen, raw)
		},
	})

	c.SetValue(numeric.Of(42))
	if got := value(t, c); got != 10 {
		t.Errorf("expected 10, got %v", got)
	}
	if len(seen) != 1 || seen[0] != 10 {
		t.Errorf("expected OnChanged with 10, got %v", seen)
	}
}

func TestController_Listeners(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{Value: numeric.Of(0)})

	calls := 0
	remove := c.AddListener(func() { calls++ })
	c.Increment()
	if calls != 1 {
		t.Errorf("expected 1 listener call, got %d", calls)
	}
	remove()
	c.Increment()
	if calls != 1 {
		t.Errorf("expected no calls after unsubscribe, got %d", calls)
	}
}

func TestController_TextWithoutFormat(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{Value: numeric.Of(2.5)})
	if got := c.Text(); got != "2.5" {
		t.Errorf("expected %q, got %q", "2.5", got)
	}

	empty := spinbox.NewController(spinbox.Config{})
	if got := empty.Text(); got != "" {
		t.Errorf("expected empty text for absent value, got %q", got)
	}
}

func TestController_TextWithFormat(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{
		Value: numeric.Of(1234.5),
		Format: &locale.Format{
			Tag:               language.German,
			MinFractionDigits: 2,
			MaxFractionDigits: 2,
		},
	})
	if got := c.Text(); got != "1.234,50" {
		t.Errorf("expected %q, got %q", "1.234,50", got)
	}
}

func TestController_CommitText(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{
		Min: numeric.Of(0),
		Max: numeric.Of(1000),
		Format: &locale.Format{
			Tag:               language.German,
			MaxFractionDigits: 1,
		},
	})

	if err := c.CommitText("1,25"); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	// Parsed 1.25, rounded half away from zero at one digit.
	if got := value(t, c); got != 1.3 {
		t.Errorf("expected 1.3, got %v", got)
	}

	if err := c.CommitText("2000"); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	if got := value(t, c); got != 1000 {
		t.Errorf("expected clamp to 1000, got %v", got)
	}

	if err := c.CommitText("   "); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	if !c.Value().IsNone() {
		t.Error("expected blank commit to clear the value")
	}
}

func TestController_CommitTextRejectsGarbage(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{
		Value:  numeric.Of(7),
		Format: &locale.Format{Tag: language.English},
	})

	if err := c.CommitText("seven"); err == nil {
		t.Fatal("expected a parse error")
	}
	if got := value(t, c); got != 7 {
		t.Errorf("expected value untouched after parse error, got %v", got)
	}
}

func TestController_CommitTextWithoutFormat(t *testing.T) {
	c := spinbox.NewController(spinbox.Config{})
	if err := c.CommitText("3.25"); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	if got := value(t, c); got != 3.25 {
		t.Errorf("expected 3.25, got %v", got)
	}
	if err := c.CommitText("not a number"); err == nil {
		t.Error("expected an error from strconv parsing")
	}
}
