// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The level and format are read from the environment. The variable names are derived from
// the executable name, so a build script compiled to "mk" reads MK_LOG_LEVEL and
// MK_LOG_FORMAT. Levels are DEBUG, INFO, WARN and ERROR (anything else means WARN); the
// format is "json" or the default pretty console output. All log output goes to stderr.
package ctxlog
