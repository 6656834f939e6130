// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package copier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/maker/internal/ctxlog"
	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/spf13/afero"
)

var (
	// ErrNoFileName is returned when a source has no file name and the destination is a directory.
	ErrNoFileName = errors.New("source has no filename and destination is a directory")
	// ErrFileCopy wraps the reason a single file could not be copied.
	ErrFileCopy = errors.New("file copy error")
)

// Observer is called once per source after its outcome is known.
type Observer func(ctx context.Context, ev Event)

// Copier copies path sets into a destination file or directory.
type Copier struct {
	fs       afero.Fs
	observer Observer
}

// Option configures a Copier.
type Option func(c *Copier)

// WithFs sets the filesystem. The default comes from fsys.FsFactory.
func WithFs(fs afero.Fs) Option {
	return func(c *Copier) {
		c.fs = fs
	}
}

// WithObserver registers a function that sees every copied, skipped and failed item.
func WithObserver(o Observer) Option {
	return func(c *Copier) {
		c.observer = o
	}
}

// New creates a Copier.
func New(opts ...Option) *Copier {
	c := &Copier{}
	for _, opt := range opts {
		opt(c)
	}

	if c.fs == nil {
		c.fs = fsys.FsFactory()
	}

	return c
}

// Copy processes sources in order and copies each one to destination when needed.
//
// If destination is an existing directory each source is copied into it under its own
// file name, otherwise destination is used verbatim. A source is copied when it is newer
// than the destination or when the two cannot be compared, usually because the
// destination does not exist yet.
func (c *Copier) Copy(ctx context.Context, sources []string, destination string) (*Report, error) {
	logger := ctxlog.Logger(ctx).With("destination", destination)
	report := &Report{Destination: destination}
	destIsDir := fsys.IsDir(c.fs, destination)

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		dest := destination

		if destIsDir {
			name, ok := fsys.FileName(src)
			if !ok {
				return report, fmt.Errorf("%w: %q", ErrNoFileName, src)
			}

			dest = filepath.Join(destination, name)
		}

		ev := Event{Source: src, Destination: dest}

		newer, err := fsys.IsNewer(c.fs, src, dest)

		switch {
		case err == nil && !newer:
			ev.Outcome = OutcomeUpToDate
		default:
			if cerr := c.copyFile(src, dest); cerr != nil {
				ev.Outcome = OutcomeFailed
				ev.Err = cerr
				logger.Debug("copy failed, continuing", "source", src, "dest", dest, "error", cerr)
			} else {
				ev.Outcome = OutcomeCopied
				logger.Debug("copied", "source", src, "dest", dest)
			}
		}

		report.Events = append(report.Events, ev)

		if c.observer != nil {
			c.observer(ctx, ev)
		}
	}

	return report, nil
}

func (c *Copier) copyFile(src, dest string) (err error) {
	in, err := c.fs.Open(src)
	if err != nil {
		return errors.Join(ErrFileCopy, err)
	}
	defer in.Close() //nolint:errcheck

	info, err := in.Stat()
	if err != nil {
		return errors.Join(ErrFileCopy, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrFileCopy, src)
	}

	out, err := c.fs.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.Join(ErrFileCopy, err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Join(ErrFileCopy, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Join(ErrFileCopy, err)
	}

	return nil
}
