// Package spinbox provides the headless controller for a numeric spin-box
// control: a text input paired with increment/decrement buttons.
//
// The package contains everything about the control that is independent of
// a render tree. A host widget renders the field and buttons, forwards
// pointer and key events to a [Controller], and repaints from its change
// notifications:
//
//	ctrl := spinbox.NewController(spinbox.Config{
//	    Value: numeric.Of(1),
//	    Min:   numeric.Of(0),
//	    Max:   numeric.Of(10),
//	    Format: &locale.Format{
//	        Tag:               language.English,
//	        MaxFractionDigits: 2,
//	    },
//	    OnChanged: func(v numeric.Value) {
//	        // rebuild the field text from ctrl.Text()
//	    },
//	})
//
//	// pointer down on the up button     → ctrl.StartHold(spinbox.DirectionUp)
//	// pointer up / cancel               → ctrl.StopHold()
//	// arrow-up key                      → ctrl.Perform(spinbox.ActionIncrement)
//	// field commits typed text on blur  → ctrl.CommitText(text)
//
// # Value ownership
//
// Controller owns the current value, the way a text field's editing
// controller owns its text. Hosts that keep the value elsewhere (a
// controlled component) reconcile through [Controller.SetValue]; the
// numeric engine underneath never stores anything.
//
// # Press and hold
//
// StartHold applies one step immediately, then repeats through the repeat
// package's timer: once after its initial delay, then at its short
// interval. When a step lands exactly on the bound the gesture is moving
// toward, the hold stops itself — holding the button must not keep ticking
// past the range.
package spinbox
