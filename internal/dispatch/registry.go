// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

// Entry pairs a command name with its action.
type Entry struct {
	Name   string
	Action Action
}

// Registry is an ordered list of entries.
type Registry struct {
	entries []Entry
}

// Add appends an entry. Duplicate names are allowed.
func (r *Registry) Add(name string, a Action) {
	r.entries = append(r.entries, Entry{Name: name, Action: a})
}

// Take removes and returns the first entry called name.
func (r *Registry) Take(name string) (Entry, bool) {
	for i, e := range r.entries {
		if e.Name == name {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return e, true
		}
	}

	return Entry{}, false
}

// Names returns every registered name in registration order, duplicates included.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}

	return names
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
