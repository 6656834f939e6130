// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package files contains the filesystem subcommands of mkr: glob, newer, copy and mkdir.
// They share their semantics with the maker library so Makefiles and CI scripts behave
// exactly like Go build scripts.
package files
