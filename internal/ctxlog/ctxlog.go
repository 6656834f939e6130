// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/matt-FFFFFF/maker/internal/color"
)

const (
	levelEnvSuffix  = "_LOG_LEVEL"
	formatEnvSuffix = "_LOG_FORMAT"
	formatJSON      = "json"
)

type loggerKey struct{}

// LevelVar is shared by every logger created by this package.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is used when the context carries no logger.
var DefaultLogger = newFromEnv()

func init() {
	LevelVar.Set(levelFromString(os.Getenv(EnvName(levelEnvSuffix))))
}

// New returns a copy of ctx carrying logger. A nil logger means DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return DefaultLogger
	}

	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Debug logs a debug message with the logger found in ctx.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).DebugContext(ctx, msg, args...)
}

// Info logs an info message with the logger found in ctx.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).InfoContext(ctx, msg, args...)
}

// Warn logs a warning with the logger found in ctx.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).WarnContext(ctx, msg, args...)
}

// Error logs an error with the logger found in ctx.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).ErrorContext(ctx, msg, args...)
}

// EnvName returns the environment variable name for the running executable with suffix
// appended, e.g. "MK_LOG_LEVEL" for an executable called mk or mk.exe.
func EnvName(suffix string) string {
	exe, _ := os.Executable()
	exe = filepath.Base(exe)

	if ext := filepath.Ext(exe); strings.EqualFold(ext, ".exe") {
		exe = exe[:len(exe)-len(ext)]
	}

	exe = strings.NewReplacer("-", "_", ".", "_").Replace(exe)

	return strings.ToUpper(exe + suffix)
}

func newFromEnv() *slog.Logger {
	opts := &slog.HandlerOptions{Level: LevelVar}

	if strings.EqualFold(os.Getenv(EnvName(formatEnvSuffix)), formatJSON) {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(NewPrettyHandler(opts,
		WithDestinationWriter(os.Stderr),
		WithColour(color.Enabled()),
	))
}

func levelFromString(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
