package passcode

import (
	"io"
	"time"
)

// Vibrator plays a pulse. Implementations must not block the caller.
type Vibrator interface {
	Vibrate(p Pulse)
}

// BellVibrator renders pulses as terminal bells: one for a short pulse, two
// for a long one.
type BellVibrator struct {
	w io.Writer
}

func NewBellVibrator(w io.Writer) *BellVibrator {
	return &BellVibrator{w: w}
}

// Vibrate implements [Vibrator]. Write errors are ignored.
func (b *BellVibrator) Vibrate(p Pulse) {
	if b == nil || b.w == nil || p == PulseNone {
		return
	}
	_, _ = b.w.Write([]byte{'\a'})
	if p == PulseLong {
		time.AfterFunc(PulseShort.Duration(), func() {
			_, _ = b.w.Write([]byte{'\a'})
		})
	}
}

// NopVibrator discards pulses.
type NopVibrator struct{}

func (NopVibrator) Vibrate(Pulse) {}
