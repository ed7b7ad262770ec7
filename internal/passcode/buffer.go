package passcode

// Buffer holds the digits entered so far. It never holds more than
// CodeLength digits and only accepts '0'..'9'. The zero value is empty.
type Buffer struct {
	digits []byte
}

// Append adds d and reports whether the buffer changed. Non-digits and
// appends to a full buffer are ignored.
func (b *Buffer) Append(d byte) bool {
	if d < '0' || d > '9' || b.Full() {
		return false
	}
	b.digits = append(b.digits, d)
	return true
}

// Backspace removes the last digit and reports whether the buffer changed.
func (b *Buffer) Backspace() bool {
	if len(b.digits) == 0 {
		return false
	}
	b.digits = b.digits[:len(b.digits)-1]
	return true
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.digits = b.digits[:0]
}

func (b *Buffer) Len() int {
	return len(b.digits)
}

func (b *Buffer) Full() bool {
	return len(b.digits) >= CodeLength
}

func (b *Buffer) String() string {
	return string(b.digits)
}
