// Package translate converts raw native records into portable events.
// It is a namespace of pure functions: no state beyond the explicit
// modifier-state collaborator passed in by the caller.
package translate

import (
	"github.com/gyaneshwarpardhi/inputgate/internal/event"
	"github.com/gyaneshwarpardhi/inputgate/internal/raw"
)

// ModSource supplies the current keyboard modifier mask. Key events are
// stamped with this snapshot rather than the mask captured in the raw
// record.
type ModSource interface {
	Mods() event.ModMask
}

// Translate decodes one raw record into a portable Event. It returns
// false for unrecognized discriminants; the returned Event is then the
// zero value. The only side effect is the modifier query on key events.
func Translate(rec raw.Record, mods ModSource) (event.Event, bool) {
	switch rec.Type() {
	case raw.Quit:
		// Timestamp and window id are not meaningful for Quit.
		return event.Event{Kind: event.Quit}, true

	case raw.WindowEvent:
		w := raw.Window(rec)
		return event.Event{
			Kind:      event.WindowChanged,
			Timestamp: rec.Timestamp(),
			WindowID:  rec.WindowID(),
			// Native sub-event ids match WindowSubEvent values.
			Payload: event.WindowPayload{SubEvent: event.WindowSubEvent(w.SubEvent())},
		}, true

	case raw.KeyDown, raw.KeyUp:
		k := raw.Key(rec)
		// The output kind follows the raw discriminant, not the
		// state byte; the two can disagree on synthetic records.
		kind := event.KeyUp
		if rec.Type() == raw.KeyDown {
			kind = event.KeyDown
		}
		var mask event.ModMask
		if mods != nil {
			mask = mods.Mods()
		}
		return event.Event{
			Kind:      kind,
			Timestamp: rec.Timestamp(),
			WindowID:  rec.WindowID(),
			Payload: event.KeyPayload{
				Pressed:  k.State() == raw.Pressed,
				Code:     k.KeyCode(),
				ScanCode: k.ScanCode(),
				Mods:     mask,
				Repeat:   k.Repeat() != 0,
			},
		}, true

	case raw.MouseButtonDown, raw.MouseButtonUp:
		b := raw.Button(rec)
		// Down unless the raw discriminant is exactly MouseButtonUp.
		kind := event.MouseButtonDown
		if rec.Type() == raw.MouseButtonUp {
			kind = event.MouseButtonUp
		}
		return event.Event{
			Kind:      kind,
			Timestamp: rec.Timestamp(),
			WindowID:  rec.WindowID(),
			Payload: event.MouseButtonPayload{
				Button: event.MouseButton(b.Button()),
				X:      int16(b.X()),
				Y:      int16(b.Y()),
			},
		}, true

	case raw.MouseMotion:
		m := raw.Motion(rec)
		// Pressed state lives in the button sub-layout, which motion
		// records share.
		pressed := raw.Button(rec).State() == raw.Pressed
		return event.Event{
			Kind:      event.MouseMotion,
			Timestamp: rec.Timestamp(),
			WindowID:  rec.WindowID(),
			Payload: event.MouseMotionPayload{
				Pressed: pressed,
				X:       int16(m.X()),
				Y:       int16(m.Y()),
				XRel:    int16(m.XRel()),
				YRel:    int16(m.YRel()),
			},
		}, true

	case raw.MouseWheel:
		w := raw.Wheel(rec)
		return event.Event{
			Kind:      event.MouseWheel,
			Timestamp: rec.Timestamp(),
			WindowID:  rec.WindowID(),
			Payload: event.MouseWheelPayload{
				X:      int16(w.X()),
				Y:      int16(w.Y()),
				DeltaX: int16(w.ScrollX()),
				DeltaY: int16(w.ScrollY()),
			},
		}, true

	case raw.TextEditing:
		t := raw.TextEdit(rec)
		return event.Event{
			Kind:      event.TextEditing,
			Timestamp: rec.Timestamp(),
			WindowID:  rec.WindowID(),
			Payload: event.TextEditingPayload{
				Text:   t.Text(),
				Start:  int16(t.Start()),
				Length: uint16(t.Length()),
			},
		}, true

	case raw.TextInput:
		t := raw.TextIn(rec)
		return event.Event{
			Kind:      event.TextInput,
			Timestamp: rec.Timestamp(),
			WindowID:  rec.WindowID(),
			Payload:   event.TextInputPayload{Text: t.Text()},
		}, true
	}

	return event.Event{}, false
}

// KindToRaw maps a portable kind to its native discriminant, used when
// pushing synthetic records. KeyDown/KeyUp and the mouse button kinds
// map to their distinct native discriminants.
func KindToRaw(k event.Kind) (uint32, bool) {
	switch k {
	case event.Quit:
		return raw.Quit, true
	case event.WindowChanged:
		return raw.WindowEvent, true
	case event.KeyDown:
		return raw.KeyDown, true
	case event.KeyUp:
		return raw.KeyUp, true
	case event.MouseMotion:
		return raw.MouseMotion, true
	case event.MouseButtonDown:
		return raw.MouseButtonDown, true
	case event.MouseButtonUp:
		return raw.MouseButtonUp, true
	case event.MouseWheel:
		return raw.MouseWheel, true
	case event.TextEditing:
		return raw.TextEditing, true
	case event.TextInput:
		return raw.TextInput, true
	}
	return 0, false
}
