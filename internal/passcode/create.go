package passcode

import "github.com/MKhiriev/go-crew-pass/internal/app"

// CreateGate collects the first passcode of a registration. ✓ hands the code
// on once all digits are present.
type CreateGate struct {
	Pad

	seq uint64
}

func NewCreateGate() *CreateGate {
	return &CreateGate{}
}

// Press handles one key.
func (g *CreateGate) Press(k Key) Result {
	res := Result{HighlightGen: g.highlight.Press(k)}
	if k != KeySubmit {
		g.edit(k)
		return res
	}

	if g.buffer.Len() != CodeLength {
		res.Feedback = g.fail(app.MsgIncompletePasscode, PulseShort, false)
		return res
	}

	g.message = ""
	g.seq++
	res.Submission = &Submission{Seq: g.seq, Code: g.buffer.String()}
	return res
}
