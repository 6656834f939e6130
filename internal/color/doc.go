// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decides whether ANSI colour output should be used and applies it.
// NO_COLOR always wins, FORCE_COLOR enables colour on non-terminals, otherwise colour is
// used only when the stream is a terminal (golang.org/x/term).
package color
