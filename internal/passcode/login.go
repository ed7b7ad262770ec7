// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package passcode

import "github.com/MKhiriev/go-crew-pass/internal/app"

// LoginGate submits the code automatically when the last digit is entered.
//
// Every submission gets a new sequence number. Editing the buffer while a
// submission is in flight invalidates it, and responses for anything but
// the live sequence are reported as stale.
type LoginGate struct {
	Pad

	seq      uint64
	live     uint64
	accepted bool
}

func NewLoginGate() *LoginGate {
	return &LoginGate{}
}

// Reset prepares the gate for a new entry of the screen. The sequence keeps
// counting, so a response to a submission made before the reset is stale.
func (g *LoginGate) Reset() {
	g.reset()
	g.live = 0
	g.accepted = false
}

// Press handles one key. ✓ only highlights; the gate never waits for it.
func (g *LoginGate) Press(k Key) Result {
	if g.accepted {
		return Result{}
	}

	res := Result{HighlightGen: g.highlight.Press(k)}
	if !g.edit(k) {
		return res
	}

	g.live = 0
	if _, isDigit := k.Digit(); isDigit && g.buffer.Len() == CodeLength {
		g.seq++
		g.live = g.seq
		res.Submission = &Submission{Seq: g.seq, Code: g.buffer.String()}
	}

	return res
}

// Pending reports whether a submission awaits its response.
func (g *LoginGate) Pending() bool {
	return g.live != 0
}

// Accepted reports whether a login succeeded. The gate ignores all input
// afterwards.
func (g *LoginGate) Accepted() bool {
	return g.accepted
}

// Accept records success for seq. It returns false for a stale seq.
func (g *LoginGate) Accept(seq uint64) bool {
	if seq == 0 || seq != g.live {
		return false
	}
	g.live = 0
	g.accepted = true
	g.message = ""
	return true
}

// Reject records failure for seq: the buffer is cleared and message shown,
// or a generic one when message is empty. ok is false for a stale seq.
func (g *LoginGate) Reject(seq uint64, message string) (fb Feedback, ok bool) {
	if seq == 0 || seq != g.live {
		return Feedback{}, false
	}
	g.live = 0
	if message == "" {
		message = app.MsgLoginFailed
	}
	return g.fail(message, PulseLong, true), true
}
