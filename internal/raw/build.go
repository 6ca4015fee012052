package raw

import "encoding/binary"

// Synthetic builds a record carrying only a discriminant. All other
// fields, payload included, are left at zero; this is the shape pushed
// for caller-injected events.
func Synthetic(typ uint32) Record {
	var r Record
	binary.LittleEndian.PutUint32(r[0:4], typ)
	return r
}

func putCommon(r *Record, typ, timestamp, windowID uint32) {
	binary.LittleEndian.PutUint32(r[0:4], typ)
	binary.LittleEndian.PutUint32(r[4:8], timestamp)
	binary.LittleEndian.PutUint32(r[8:12], windowID)
}

// NewQuit builds a Quit record.
func NewQuit() Record {
	return Synthetic(Quit)
}

// NewWindow builds a WindowEvent record.
func NewWindow(timestamp, windowID uint32, subEvent uint8) Record {
	var r Record
	putCommon(&r, WindowEvent, timestamp, windowID)
	r[12] = subEvent
	return r
}

// NewKey builds a KeyDown or KeyUp record. typ must be KeyDown or KeyUp;
// the state byte is carried independently of the discriminant.
func NewKey(typ, timestamp, windowID uint32, state, repeat uint8, scanCode uint32, keyCode int32, mod uint16) Record {
	var r Record
	putCommon(&r, typ, timestamp, windowID)
	r[12] = state
	r[13] = repeat
	binary.LittleEndian.PutUint32(r[16:20], scanCode)
	binary.LittleEndian.PutUint32(r[20:24], uint32(keyCode))
	binary.LittleEndian.PutUint16(r[24:26], mod)
	return r
}

// NewButton builds a MouseButtonDown or MouseButtonUp record.
func NewButton(typ, timestamp, windowID uint32, button, state uint8, x, y int32) Record {
	var r Record
	putCommon(&r, typ, timestamp, windowID)
	r[12] = button
	r[13] = state
	binary.LittleEndian.PutUint32(r[16:20], uint32(x))
	binary.LittleEndian.PutUint32(r[20:24], uint32(y))
	return r
}

// NewMotion builds a MouseMotion record. state occupies the button
// sub-layout's state byte.
func NewMotion(timestamp, windowID uint32, state uint8, x, y, xrel, yrel int32) Record {
	var r Record
	putCommon(&r, MouseMotion, timestamp, windowID)
	r[13] = state
	binary.LittleEndian.PutUint32(r[16:20], uint32(x))
	binary.LittleEndian.PutUint32(r[20:24], uint32(y))
	binary.LittleEndian.PutUint32(r[24:28], uint32(xrel))
	binary.LittleEndian.PutUint32(r[28:32], uint32(yrel))
	return r
}

// NewWheel builds a MouseWheel record.
func NewWheel(timestamp, windowID uint32, x, y, scrollX, scrollY int32) Record {
	var r Record
	putCommon(&r, MouseWheel, timestamp, windowID)
	binary.LittleEndian.PutUint32(r[12:16], uint32(x))
	binary.LittleEndian.PutUint32(r[16:20], uint32(y))
	binary.LittleEndian.PutUint32(r[20:24], uint32(scrollX))
	binary.LittleEndian.PutUint32(r[24:28], uint32(scrollY))
	return r
}

// NewTextEdit builds a TextEditing record. text longer than the buffer
// is truncated.
func NewTextEdit(timestamp, windowID uint32, text string, start, length int32) Record {
	var r Record
	putCommon(&r, TextEditing, timestamp, windowID)
	copy(r[12:12+TextBufSize], text)
	binary.LittleEndian.PutUint32(r[44:48], uint32(start))
	binary.LittleEndian.PutUint32(r[48:52], uint32(length))
	return r
}

// NewTextInput builds a TextInput record. text longer than the buffer
// is truncated.
func NewTextInput(timestamp, windowID uint32, text string) Record {
	var r Record
	putCommon(&r, TextInput, timestamp, windowID)
	copy(r[12:12+TextBufSize], text)
	return r
}
