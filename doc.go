// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package maker is a small toolkit for writing a project's build script in Go.
//
// A build script registers named commands and runs the one named by its first argument:
//
//	func main() {
//		maker.With().
//			Cmd("build", build).
//			Cmd("dist", dist).
//			Default("build").
//			Make()
//	}
//
// Commands are plain functions. The helpers in this package cover what they usually need:
// expanding globs, copying files only when the source is newer, running external tools and
// shell snippets, and reading settings from the environment.
//
// Failures are reported on standard error and never terminate the program. Use Dispatch
// instead of Make to turn them into an exit code.
package maker
