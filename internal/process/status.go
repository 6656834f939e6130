// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import "strconv"

// ExitStatus is the outcome of a finished child.
type ExitStatus struct {
	// Code is the exit code, or -1 if the child was terminated by a signal
	// or did not run at all.
	Code int
}

// Success reports whether the child exited with code zero.
func (s ExitStatus) Success() bool {
	return s.Code == 0
}

func (s ExitStatus) String() string {
	if s.Code < 0 {
		return "exit status unknown"
	}

	return "exit status " + strconv.Itoa(s.Code)
}
