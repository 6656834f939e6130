// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package copier copies files only when the source is newer than the destination.
//
// Copying is best-effort per item: a file that cannot be copied is recorded in the
// returned Report, logged at debug level and handed to the observer, but the remaining
// sources are still processed and the call succeeds. The one exception is a source
// without a file name while the destination is a directory, which fails the whole call.
package copier
