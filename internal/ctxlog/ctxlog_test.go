// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndLogger(t *testing.T) {
	tests := []struct {
		name          string
		ctx           func() context.Context
		expectDefault bool
	}{
		{
			name: "context with logger",
			ctx: func() context.Context {
				return New(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
			},
		},
		{
			name:          "context without logger",
			ctx:           context.Background,
			expectDefault: true,
		},
		{
			name: "nil logger falls back to default",
			ctx: func() context.Context {
				return New(context.Background(), nil)
			},
			expectDefault: true,
		},
		{
			name: "nil context",
			ctx: func() context.Context {
				return nil //nolint:staticcheck
			},
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.ctx())
			require.NotNil(t, logger)

			if tt.expectDefault {
				assert.Same(t, DefaultLogger, logger)
			} else {
				assert.NotSame(t, DefaultLogger, logger)
			}
		})
	}
}

func TestHelpersUseContextLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := New(context.Background(), slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	Debug(ctx, "debug message", "k", 1)
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "k=1")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLevelFromString(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":   slog.LevelDebug,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" WARN ":  slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}

	for in, want := range tests {
		assert.Equal(t, want, levelFromString(in), "input %q", in)
	}
}

func TestEnvName(t *testing.T) {
	name := EnvName("_LOG_LEVEL")
	assert.NotEmpty(t, name)
	assert.Equal(t, name, toUpper(name))
	assert.NotContains(t, name, "-")
	assert.NotContains(t, name, ".")
	assert.Regexp(t, `_LOG_LEVEL$`, name)
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}

	return string(b)
}
