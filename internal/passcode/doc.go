// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package passcode implements the passcode keypad state machine shared by
// the login, create and confirm screens.
//
// The package is free of I/O and timers. Every input returns a [Result]
// describing what the caller must schedule: a highlight clear after
// HighlightDelay, shake ticks every ShakeStep, a vibration pulse or a remote
// submission. Timer callbacks come back through generation counters so a
// stale timer never affects newer state.
//
// Three gates share the [Pad]:
//
//   - [LoginGate] submits automatically the moment the fourth digit is
//     entered and tags each submission with a sequence number.
//   - [CreateGate] requires ✓ and only checks that all digits are present.
//   - [ConfirmGate] requires ✓ and compares the code with a reference.
package passcode
