package passcode

import "github.com/MKhiriev/go-crew-pass/internal/app"

// Reference is the code a confirmation must match.
type Reference interface {
	Matches(candidate string) bool
}

// ConfirmGate checks the code against a reference when ✓ is pressed.
//
// An incomplete code keeps the buffer; a mismatch clears it. While the
// registration call is in flight the keypad is locked.
type ConfirmGate struct {
	Pad

	reference Reference
	seq       uint64
	live      uint64
}

func NewConfirmGate(reference Reference) *ConfirmGate {
	return &ConfirmGate{reference: reference}
}

// Reset starts a new confirmation against reference. Like
// [LoginGate.Reset] it keeps the sequence counting.
func (g *ConfirmGate) Reset(reference Reference) {
	g.reset()
	g.reference = reference
	g.live = 0
}

// Press handles one key.
func (g *ConfirmGate) Press(k Key) Result {
	if g.live != 0 {
		return Result{}
	}

	res := Result{HighlightGen: g.highlight.Press(k)}
	if k != KeySubmit {
		g.edit(k)
		return res
	}

	switch {
	case g.buffer.Len() != CodeLength:
		res.Feedback = g.fail(app.MsgIncompletePasscode, PulseShort, false)
	case g.reference == nil || !g.reference.Matches(g.buffer.String()):
		res.Feedback = g.fail(app.MsgPasscodeMismatch, PulseLong, true)
	default:
		g.message = ""
		g.seq++
		g.live = g.seq
		res.Submission = &Submission{Seq: g.seq, Code: g.buffer.String()}
	}

	return res
}

// Pending reports whether a submission awaits its response.
func (g *ConfirmGate) Pending() bool {
	return g.live != 0
}

// Succeed records success for seq. It returns false for a stale seq.
func (g *ConfirmGate) Succeed(seq uint64) bool {
	if seq == 0 || seq != g.live {
		return false
	}
	g.live = 0
	return true
}

// Fail shows message for seq, or a generic one when message is empty. The
// buffer is kept so ✓ can be pressed again. It returns false for a stale seq.
func (g *ConfirmGate) Fail(seq uint64, message string) bool {
	if seq == 0 || seq != g.live {
		return false
	}
	g.live = 0
	if message == "" {
		message = app.MsgRegistrationFailed
	}
	g.message = message
	return true
}
