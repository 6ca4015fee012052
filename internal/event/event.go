package event

import (
	"encoding/json"
	"fmt"
)

// Kind identifies the variant of a translated Event.
type Kind uint32

const (
	Quit Kind = iota + 1
	WindowChanged
	KeyDown
	KeyUp
	MouseMotion
	MouseButtonDown
	MouseButtonUp
	MouseWheel
	TextEditing
	TextInput
)

var kindNames = map[Kind]string{
	Quit:            "quit",
	WindowChanged:   "window_changed",
	KeyDown:         "key_down",
	KeyUp:           "key_up",
	MouseMotion:     "mouse_motion",
	MouseButtonDown: "mouse_button_down",
	MouseButtonUp:   "mouse_button_up",
	MouseWheel:      "mouse_wheel",
	TextEditing:     "text_editing",
	TextInput:       "text_input",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint32(k))
}

// ParseKind maps a kind name (as rendered by String) back to its Kind.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Kinds returns every defined kind, in declaration order.
func Kinds() []Kind {
	return []Kind{
		Quit, WindowChanged, KeyDown, KeyUp, MouseMotion,
		MouseButtonDown, MouseButtonUp, MouseWheel, TextEditing, TextInput,
	}
}

// Event is the portable representation of one native input event.
// It is a plain value: no handles, no ownership, safe to copy.
// Timestamp and WindowID are zero for Quit.
type Event struct {
	Kind      Kind    `json:"kind"`
	Timestamp uint32  `json:"timestamp"`
	WindowID  uint32  `json:"window_id"`
	Payload   Payload `json:"payload,omitempty"`
}

// Payload is implemented by all event payload types. The marker method
// restricts valid payloads to this package, so the variant in use is
// always the one matching Kind.
type Payload interface {
	eventPayload()
}

// ModMask is a bitmask of currently held modifier keys.
type ModMask uint16

const (
	ModLShift ModMask = 1 << iota
	ModRShift
	ModLCtrl
	ModRCtrl
	ModLAlt
	ModRAlt
	ModLGui
	ModRGui
	ModNum
	ModCaps
)

const (
	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModGui   = ModLGui | ModRGui
)

// KeyPayload accompanies KeyDown and KeyUp.
// Mods is the modifier state at translation time, not at capture time.
type KeyPayload struct {
	Pressed  bool    `json:"pressed"`
	Code     int32   `json:"code"`
	ScanCode uint32  `json:"scan_code"`
	Mods     ModMask `json:"mods"`
	Repeat   bool    `json:"repeat"`
}

func (KeyPayload) eventPayload() {}

// WindowSubEvent is the secondary discriminant carried by WindowChanged.
type WindowSubEvent uint8

const (
	WindowShown WindowSubEvent = iota + 1
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowEnter
	WindowLeave
	WindowFocusGained
	WindowFocusLost
	WindowClose
)

// WindowPayload accompanies WindowChanged.
type WindowPayload struct {
	SubEvent WindowSubEvent `json:"sub_event"`
}

func (WindowPayload) eventPayload() {}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota + 1
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2
)

// MouseButtonPayload accompanies MouseButtonDown and MouseButtonUp.
// Coordinates are window-relative and narrowed to the int16 range.
type MouseButtonPayload struct {
	Button MouseButton `json:"button"`
	X      int16       `json:"x"`
	Y      int16       `json:"y"`
}

func (MouseButtonPayload) eventPayload() {}

// MouseMotionPayload accompanies MouseMotion.
type MouseMotionPayload struct {
	Pressed bool  `json:"pressed"`
	X       int16 `json:"x"`
	Y       int16 `json:"y"`
	XRel    int16 `json:"x_rel"`
	YRel    int16 `json:"y_rel"`
}

func (MouseMotionPayload) eventPayload() {}

// MouseWheelPayload accompanies MouseWheel. X/Y are the pointer position;
// DeltaX/DeltaY are the scroll amounts.
type MouseWheelPayload struct {
	X      int16 `json:"x"`
	Y      int16 `json:"y"`
	DeltaX int16 `json:"delta_x"`
	DeltaY int16 `json:"delta_y"`
}

func (MouseWheelPayload) eventPayload() {}

// TextBufSize is the fixed capacity of composition and input text buffers.
const TextBufSize = 32

// TextEditingPayload accompanies TextEditing.
type TextEditingPayload struct {
	Text   [TextBufSize]byte `json:"-"`
	Start  int16             `json:"start"`
	Length uint16            `json:"length"`
}

func (TextEditingPayload) eventPayload() {}

// String returns the composition text up to the first NUL.
func (p TextEditingPayload) String() string { return cstr(p.Text[:]) }

// MarshalJSON renders the fixed buffer as a string.
func (p TextEditingPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text   string `json:"text"`
		Start  int16  `json:"start"`
		Length uint16 `json:"length"`
	}{p.String(), p.Start, p.Length})
}

// TextInputPayload accompanies TextInput.
type TextInputPayload struct {
	Text [TextBufSize]byte `json:"-"`
}

func (TextInputPayload) eventPayload() {}

// String returns the input text up to the first NUL.
func (p TextInputPayload) String() string { return cstr(p.Text[:]) }

// MarshalJSON renders the fixed buffer as a string.
func (p TextInputPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text string `json:"text"`
	}{p.String()})
}

func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
