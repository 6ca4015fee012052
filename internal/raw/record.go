// Package raw defines the wire format of the native input subsystem:
// a fixed 56-byte little-endian record carrying a discriminant, a
// timestamp, and one discriminant-specific sub-layout. The layout is
// owned by the native side; this package only decodes and builds it.
package raw

import "encoding/binary"

// Size is the fixed byte length of every native record.
const Size = 56

// Native discriminant values.
const (
	Quit        uint32 = 0x100
	WindowEvent uint32 = 0x200
)

// Keyboard and text discriminants.
const (
	KeyDown uint32 = 0x300 + iota
	KeyUp
	TextEditing
	TextInput
)

// Mouse discriminants.
const (
	MouseMotion uint32 = 0x400 + iota
	MouseButtonDown
	MouseButtonUp
	MouseWheel
)

// Pressed-state values used in key, button and motion sub-layouts.
const (
	Released uint8 = 0
	Pressed  uint8 = 1
)

// Record is one native event record. The first 12 bytes are common to
// all discriminants: type u32 @0, timestamp u32 @4, window id u32 @8
// (window id is unused by Quit).
type Record [Size]byte

func (r Record) Type() uint32 {
	return binary.LittleEndian.Uint32(r[0:4])
}

func (r Record) Timestamp() uint32 {
	return binary.LittleEndian.Uint32(r[4:8])
}

func (r Record) WindowID() uint32 {
	return binary.LittleEndian.Uint32(r[8:12])
}

// Key is the sub-layout for KeyDown/KeyUp:
// state u8 @12, repeat u8 @13, scancode u32 @16, keycode i32 @20, mod u16 @24.
type Key Record

func (k Key) State() uint8     { return k[12] }
func (k Key) Repeat() uint8    { return k[13] }
func (k Key) ScanCode() uint32 { return binary.LittleEndian.Uint32(k[16:20]) }
func (k Key) KeyCode() int32   { return int32(binary.LittleEndian.Uint32(k[20:24])) }
func (k Key) Mod() uint16      { return binary.LittleEndian.Uint16(k[24:26]) }

// Window is the sub-layout for WindowEvent: sub-event id u8 @12.
type Window Record

func (w Window) SubEvent() uint8 { return w[12] }

// Button is the sub-layout for MouseButtonDown/MouseButtonUp:
// button u8 @12, state u8 @13, x i32 @16, y i32 @20.
// MouseMotion records also carry a valid state byte here.
type Button Record

func (b Button) Button() uint8 { return b[12] }
func (b Button) State() uint8  { return b[13] }
func (b Button) X() int32      { return int32(binary.LittleEndian.Uint32(b[16:20])) }
func (b Button) Y() int32      { return int32(binary.LittleEndian.Uint32(b[20:24])) }

// Motion is the sub-layout for MouseMotion:
// x i32 @16, y i32 @20, xrel i32 @24, yrel i32 @28.
// The pressed-state byte lives at the Button offset (@13).
type Motion Record

func (m Motion) X() int32    { return int32(binary.LittleEndian.Uint32(m[16:20])) }
func (m Motion) Y() int32    { return int32(binary.LittleEndian.Uint32(m[20:24])) }
func (m Motion) XRel() int32 { return int32(binary.LittleEndian.Uint32(m[24:28])) }
func (m Motion) YRel() int32 { return int32(binary.LittleEndian.Uint32(m[28:32])) }

// Wheel is the sub-layout for MouseWheel:
// x i32 @12, y i32 @16 (pointer position), scroll-x i32 @20, scroll-y i32 @24.
type Wheel Record

func (w Wheel) X() int32       { return int32(binary.LittleEndian.Uint32(w[12:16])) }
func (w Wheel) Y() int32       { return int32(binary.LittleEndian.Uint32(w[16:20])) }
func (w Wheel) ScrollX() int32 { return int32(binary.LittleEndian.Uint32(w[20:24])) }
func (w Wheel) ScrollY() int32 { return int32(binary.LittleEndian.Uint32(w[24:28])) }

// TextBufSize is the capacity of the text field in edit/input sub-layouts.
const TextBufSize = 32

// TextEdit is the sub-layout for TextEditing:
// text [32]u8 @12, cursor start i32 @44, selection length i32 @48.
type TextEdit Record

func (t TextEdit) Text() [TextBufSize]byte {
	var out [TextBufSize]byte
	copy(out[:], t[12:12+TextBufSize])
	return out
}

func (t TextEdit) Start() int32  { return int32(binary.LittleEndian.Uint32(t[44:48])) }
func (t TextEdit) Length() int32 { return int32(binary.LittleEndian.Uint32(t[48:52])) }

// TextIn is the sub-layout for TextInput: text [32]u8 @12.
type TextIn Record

func (t TextIn) Text() [TextBufSize]byte {
	var out [TextBufSize]byte
	copy(out[:], t[12:12+TextBufSize])
	return out
}
