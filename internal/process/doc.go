// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package process spawns external tools and waits for them.
//
// Children inherit the caller's standard streams, so their output appears live. A non-zero
// exit code is reported through ExitStatus and is never an error; only failing to start the
// child, or having to kill it, produces one.
//
// Shell runs POSIX shell scripts with an embedded interpreter, so scripts behave the same
// on every platform whether or not /bin/sh exists.
package process
