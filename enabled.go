// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import (
	"os"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables styled output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces styled output.
	ForceColor = "FORCE_COLOR"
)

var enabled bool

func init() {
	enabled = isColorCapable()
}

// isTerminal reports whether stdout is a terminal. It is a variable so
// that tests can substitute it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Enabled reports whether styled output is appropriate for stdout.
// It is initialized in package init().
//
// It returns false if the NO_COLOR environment variable is set, true if
// the FORCE_COLOR environment variable is set, and otherwise true only
// when stdout is a terminal. Terminal detection is done using the
// golang.org/x/term package.
//
// The styling functions in this package emit control sequences
// unconditionally. Enabled exists for callers to decide whether to use
// them at all.
func Enabled() bool {
	return enabled
}

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return isTerminal()
}
