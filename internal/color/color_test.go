// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	old := Enabled()
	defer SetEnabled(old)

	f, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close() //nolint:errcheck

	stderr := os.Stderr
	os.Stderr = f

	defer func() { os.Stderr = stderr }()

	t.Setenv(NoColor, "")
	t.Setenv(ForceColor, "1")
	Detect()
	assert.True(t, Enabled(), "FORCE_COLOR should enable colour on a redirected stderr")

	t.Setenv(ForceColor, "")
	Detect()
	assert.False(t, Enabled(), "a redirected stderr is not a terminal")

	t.Setenv(ForceColor, "1")
	t.Setenv(NoColor, "1")
	Detect()
	assert.False(t, Enabled(), "NO_COLOR should disable colour")
}

func TestEnabledFor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close() //nolint:errcheck

	t.Run("regular file is not a terminal", func(t *testing.T) {
		t.Setenv(NoColor, "")
		t.Setenv(ForceColor, "")
		assert.False(t, EnabledFor(f))
	})

	t.Run("FORCE_COLOR enables non-terminals", func(t *testing.T) {
		t.Setenv(NoColor, "")
		t.Setenv(ForceColor, "1")
		assert.True(t, EnabledFor(f))
	})

	t.Run("NO_COLOR beats FORCE_COLOR", func(t *testing.T) {
		t.Setenv(NoColor, "1")
		t.Setenv(ForceColor, "1")
		assert.False(t, EnabledFor(f))
	})

	t.Run("nil file", func(t *testing.T) {
		assert.False(t, EnabledFor(nil))
	})
}

func TestColorize(t *testing.T) {
	old := Enabled()
	defer SetEnabled(old)

	SetEnabled(false)
	assert.Equal(t, "plain", Colorize("plain", FgRed))

	SetEnabled(true)
	assert.Equal(t, "\033[1;31mbold red\033[0m", Colorize("bold red", Bold, FgRed))
	assert.Equal(t, "\033[36mcyan\033[0m", Colorize("cyan", FgCyan))
	assert.Equal(t, "no codes", Colorize("no codes"))
}
