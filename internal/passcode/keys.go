package passcode

// CodeLength is the number of digits in a passcode.
const CodeLength = 4

// Key is a keypad key: a single digit, [KeyBackspace] or [KeySubmit].
type Key string

const (
	KeyBackspace Key = "←"
	KeySubmit    Key = "✓"
)

// Layout is the keypad grid, row by row.
var Layout = [4][3]Key{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{KeyBackspace, "0", KeySubmit},
}

// Digit returns the digit of k, if k is a digit key.
func (k Key) Digit() (byte, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	return k[0], true
}

// DigitKey returns the key for the digit d.
func DigitKey(d byte) Key {
	return Key([]byte{d})
}
