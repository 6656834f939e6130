// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package maker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/maker/internal/copier"
	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/matt-FFFFFF/maker/internal/pathset"
	"github.com/matt-FFFFFF/maker/internal/process"
)

type (
	// PathSet is an ordered list of paths produced by Path or Glob.
	PathSet = pathset.PathSet
	// CopyReport lists what CopyWith did with every source.
	CopyReport = copier.Report
	// CopyEvent is the outcome for one source.
	CopyEvent = copier.Event
	// CopyOption configures CopyWith.
	CopyOption = copier.Option
	// ExitStatus is how an external command or shell script finished.
	ExitStatus = process.ExitStatus
)

// Copy outcomes.
const (
	Copied   = copier.OutcomeCopied
	UpToDate = copier.OutcomeUpToDate
	Failed   = copier.OutcomeFailed
)

var (
	// ErrBadPattern is returned by Glob for a malformed pattern.
	ErrBadPattern = pathset.ErrBadPattern
	// ErrNoFileName is returned by Copy when a source has no file name and the destination is a directory.
	ErrNoFileName = copier.ErrNoFileName
	// ErrCouldNotStartProcess is returned by Run when the command cannot be started.
	ErrCouldNotStartProcess = process.ErrCouldNotStartProcess
)

var (
	// WithObserver is called for every source handled by CopyWith.
	WithObserver = copier.WithObserver
	// WithFs makes CopyWith use another filesystem.
	WithFs = copier.WithFs
)

// Path returns a PathSet holding p. The path does not have to exist.
func Path(p string) PathSet {
	return pathset.Literal(p)
}

// Glob returns the paths matching pattern, which may use "**" to cross directories.
// A malformed pattern is an error; a pattern that matches nothing is not.
func Glob(pattern string) (PathSet, error) {
	return pathset.Glob(pattern)
}

// MustGlob is like Glob but panics on a malformed pattern.
func MustGlob(pattern string) PathSet {
	return pathset.MustGlob(pattern)
}

// Copy copies each source to dest unless dest is already at least as new.
// If dest is a directory, each source keeps its file name inside it.
// Sources that cannot be copied are skipped silently; use CopyWith to see them.
func Copy(src PathSet, dest string) error {
	_, err := CopyWith(context.Background(), src, dest)
	return err
}

// CopyWith is Copy with a context and options, returning a report of every source.
func CopyWith(ctx context.Context, src PathSet, dest string, opts ...CopyOption) (*CopyReport, error) {
	return copier.New(opts...).Copy(ctx, src, dest)
}

// IsNewer reports whether target was modified after base. Both must exist.
func IsNewer(target, base string) (bool, error) {
	return fsys.IsNewer(fsys.FsFactory(), target, base)
}

// Run runs cmd with args and waits for it. Output goes straight to the terminal.
// A non-zero exit is reported in the status, not as an error.
func Run(cmd string, args ...string) (ExitStatus, error) {
	return RunContext(context.Background(), cmd, args...)
}

// RunContext is Run with a context. Cancelling ctx kills the command.
func RunContext(ctx context.Context, cmd string, args ...string) (ExitStatus, error) {
	c := &process.Command{Path: cmd, Args: args}
	return c.Run(ctx)
}

// Sh runs a POSIX shell script with a built-in interpreter, so it works without /bin/sh.
func Sh(script string) (ExitStatus, error) {
	return ShContext(context.Background(), script)
}

// ShContext is Sh with a context.
func ShContext(ctx context.Context, script string) (ExitStatus, error) {
	return process.Shell{}.Run(ctx, script)
}

// EnvOr returns the value of the environment variable name, or def if it is not set.
// A variable set to the empty string counts as set.
func EnvOr(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}

	return def
}

// CreateDir creates path and any missing parents. An existing directory is fine.
func CreateDir(path string) error {
	return fsys.CreateDir(fsys.FsFactory(), path)
}

// Ignore drops a value and keeps only the error, for commands that call a helper
// for its side effect:
//
//	return maker.Ignore(maker.Run("go", "vet", "./..."))
func Ignore[T any](_ T, err error) error {
	return err
}
