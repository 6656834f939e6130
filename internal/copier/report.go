// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copier

import (
	"github.com/hashicorp/go-multierror"
)

// Outcome is what happened to a single source.
type Outcome int

const (
	// OutcomeCopied means the source was written to the destination.
	OutcomeCopied Outcome = iota
	// OutcomeUpToDate means the destination was not older than the source.
	OutcomeUpToDate
	// OutcomeFailed means the copy was attempted and failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeUpToDate:
		return "up-to-date"
	case OutcomeFailed:
		return "failed"
	}

	return "unknown"
}

// Event describes one source of a copy call.
type Event struct {
	Source      string
	Destination string
	Outcome     Outcome
	Err         error
}

// Report lists the events of one Copy call in source order.
type Report struct {
	Destination string
	Events      []Event
}

// Count returns how many events had outcome o.
func (r *Report) Count(o Outcome) int {
	if r == nil {
		return 0
	}

	n := 0

	for _, ev := range r.Events {
		if ev.Outcome == o {
			n++
		}
	}

	return n
}

// Err aggregates the per-item failures, or returns nil if there were none.
// Copy itself never returns these; callers that want strict behaviour check Err.
func (r *Report) Err() error {
	if r == nil {
		return nil
	}

	var result *multierror.Error

	for _, ev := range r.Events {
		if ev.Outcome == OutcomeFailed {
			result = multierror.Append(result, ev.Err)
		}
	}

	return result.ErrorOrNil()
}
