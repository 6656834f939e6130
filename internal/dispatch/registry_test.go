// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	var r Registry

	assert.Empty(t, r.Names())

	r.Add("a", nil)
	r.Add("b", nil)
	r.Add("a", ActionFunc(func() error { return nil }))

	assert.Equal(t, []string{"a", "b", "a"}, r.Names())
	assert.Equal(t, 3, r.Len())

	e, ok := r.Take("a")
	assert.True(t, ok)
	assert.Equal(t, "a", e.Name)
	assert.Nil(t, e.Action, "the first entry is taken")
	assert.Equal(t, []string{"b", "a"}, r.Names())

	e, ok = r.Take("a")
	assert.True(t, ok)
	assert.NotNil(t, e.Action)

	_, ok = r.Take("a")
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, r.Names())
}
