// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package dispatch maps command names to actions and invokes at most one of them.
//
// Names are not unique. The first entry registered under a name wins and later ones with
// the same name are only listed by help. A Dispatcher can dispatch once; after that its
// registry is released and further dispatches only report misuse.
package dispatch
