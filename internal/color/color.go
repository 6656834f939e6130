// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	reset     = "\033[0m"
	prefix    = "\033["
	suffix    = "m"
	sbPadding = 16
)

// Code represents an ANSI control code for text formatting.
type Code int

// Control codes.
const (
	Reset Code = 0
	Bold  Code = 1
	Faint Code = 2
)

// Foreground colours.
const (
	FgRed Code = iota + 31
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// FgHiWhite and FgHiMagenta are the high intensity variants used for messages and
// unusually high log levels.
const (
	FgHiMagenta Code = 95
	FgHiWhite   Code = 97
)

var enabled = EnabledFor(os.Stderr)

// Enabled reports whether colour output is enabled for the diagnostic stream (stderr).
func Enabled() bool {
	return enabled
}

// SetEnabled overrides colour detection. Used by tests.
func SetEnabled(v bool) {
	enabled = v
}

// Detect re-evaluates colour support for stderr from the environment.
func Detect() {
	enabled = EnabledFor(os.Stderr)
}

// EnabledFor reports whether colour output should be used when writing to f.
func EnabledFor(f *os.File) bool {
	if f == nil {
		return false
	}

	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(f.Fd()))
}

// Colorize wraps str in the given control codes followed by a reset.
// It returns str unchanged when colour is disabled.
func Colorize(str string, codes ...Code) string {
	if !enabled || len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range codes {
		if i > 0 {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}
