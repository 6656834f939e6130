// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fsys holds the filesystem seam shared by the resolver, the copier and the CLI,
// together with the small stat-based helpers they need.
package fsys

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const dirPerm = 0o755

var (
	// ErrStat is returned when the metadata of a path cannot be read.
	ErrStat = errors.New("cannot read file metadata")
	// ErrCreateDir is returned when a directory tree cannot be created.
	ErrCreateDir = errors.New("cannot create directory")
)

// FsFactory returns the filesystem used by default. Tests replace it with an in-memory one.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// IsNewer reports whether target was modified strictly after base.
// It fails if the metadata of either path cannot be read, e.g. because it does not exist.
func IsNewer(fs afero.Fs, target, base string) (bool, error) {
	targetInfo, err := fs.Stat(target)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrStat, target, err)
	}

	baseInfo, err := fs.Stat(base)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrStat, base, err)
	}

	return targetInfo.ModTime().After(baseInfo.ModTime()), nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}

// CreateDir creates path and all missing parents. An existing directory is not an error.
func CreateDir(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(path, dirPerm); err != nil {
		return errors.Join(ErrCreateDir, err)
	}

	return nil
}

// FileName returns the final element of p.
// It returns false when p has none: empty paths, roots and paths ending in "..".
func FileName(p string) (string, bool) {
	if p == "" {
		return "", false
	}

	clean := filepath.Clean(p)
	if clean == filepath.VolumeName(clean)+string(os.PathSeparator) {
		return "", false
	}

	name := filepath.Base(clean)
	switch name {
	case ".", "..", string(os.PathSeparator):
		return "", false
	}

	return name, true
}
