// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package report renders the outcome of a copy for people (text) and for tools (JSON, YAML).
package report
