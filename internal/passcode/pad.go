package passcode

// Submission is a code handed to the remote call. Seq identifies it when the
// response comes back.
type Submission struct {
	Seq  uint64
	Code string
}

// Result is the outcome of one key press.
type Result struct {
	// HighlightGen must be passed to ExpireHighlight after the highlight
	// delay. Zero means no key was highlighted.
	HighlightGen uint64
	// Submission is non-nil when the press dispatched the code.
	Submission *Submission
	Feedback   Feedback
}

// Pad is the keypad state common to every gate: buffer, highlight, inline
// error message and shake.
type Pad struct {
	buffer    Buffer
	highlight Highlight
	shake     Shake
	message   string
}

// Code returns the digits entered so far.
func (p *Pad) Code() string {
	return p.buffer.String()
}

func (p *Pad) Len() int {
	return p.buffer.Len()
}

// Message returns the inline error message, or "".
func (p *Pad) Message() string {
	return p.message
}

// Highlighted returns the highlighted key, if any.
func (p *Pad) Highlighted() (Key, bool) {
	return p.highlight.Active()
}

// ExpireHighlight clears the highlight armed by the press that returned gen.
func (p *Pad) ExpireHighlight(gen uint64) bool {
	return p.highlight.Expire(gen)
}

// StartShake starts the shake animation and returns its generation.
func (p *Pad) StartShake() uint64 {
	return p.shake.Start()
}

// AdvanceShake moves the shake animation one step; see [Shake.Advance].
func (p *Pad) AdvanceShake(gen uint64) bool {
	return p.shake.Advance(gen)
}

// ShakeOffset returns the current horizontal offset of the keypad.
func (p *Pad) ShakeOffset() int {
	return p.shake.Offset()
}

// reset returns the pad to its initial look. Generations keep counting so
// timers armed before the reset stay stale.
func (p *Pad) reset() {
	p.buffer.Clear()
	p.message = ""
	p.highlight.Expire(p.highlight.gen)
	p.shake.Stop()
}

// edit applies a digit or backspace key and reports whether the buffer
// changed. A change clears the error message.
func (p *Pad) edit(k Key) bool {
	var changed bool
	if d, ok := k.Digit(); ok {
		changed = p.buffer.Append(d)
	} else if k == KeyBackspace {
		changed = p.buffer.Backspace()
	}

	if changed {
		p.message = ""
	}
	return changed
}

// fail sets the error message and returns the feedback for it.
func (p *Pad) fail(message string, pulse Pulse, clear bool) Feedback {
	p.message = message
	if clear {
		p.buffer.Clear()
	}
	return Feedback{Pulse: pulse, Shake: true}
}
