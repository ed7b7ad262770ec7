// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package passcode

import "time"

// Pulse is a vibration strength.
type Pulse int

const (
	PulseNone Pulse = iota
	PulseShort
	PulseLong
)

// Duration returns how long p lasts.
func (p Pulse) Duration() time.Duration {
	switch p {
	case PulseShort:
		return 100 * time.Millisecond
	case PulseLong:
		return 200 * time.Millisecond
	default:
		return 0
	}
}

// Feedback is what the screen must play after an input.
type Feedback struct {
	Pulse Pulse
	Shake bool
}

// shakeOffsets are the horizontal offsets of one shake, in cells.
var shakeOffsets = []int{0, 10, -10, 10, 0}

// Shake steps through a fixed offset sequence. Starting a new shake
// supersedes a running one.
type Shake struct {
	step    int
	running bool
	gen     uint64
}

// Start restarts the animation and returns its generation.
func (s *Shake) Start() uint64 {
	s.gen++
	s.step = 0
	s.running = true
	return s.gen
}

// Advance moves to the next offset. It returns false once the animation is
// over or when gen belongs to a superseded shake; no further tick should be
// scheduled then.
func (s *Shake) Advance(gen uint64) bool {
	if gen != s.gen || !s.running {
		return false
	}
	s.step++
	if s.step >= len(shakeOffsets)-1 {
		s.step = 0
		s.running = false
		return false
	}
	return true
}

// Offset returns the current offset; 0 when idle.
func (s *Shake) Offset() int {
	if !s.running {
		return 0
	}
	return shakeOffsets[s.step]
}

// Stop ends the running animation. Ticks already scheduled are ignored.
func (s *Shake) Stop() {
	s.gen++
	s.step = 0
	s.running = false
}
