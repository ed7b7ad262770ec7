// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores a persisted session, picks the first screen and runs the
// terminal UI until the user quits or the process is signalled.
package client
