// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pathset turns a literal path or a glob pattern into an ordered list of paths.
package pathset

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/spf13/afero"
)

// ErrBadPattern is returned when a glob pattern is malformed.
var ErrBadPattern = doublestar.ErrBadPattern

// PathSet is an ordered sequence of filesystem paths.
type PathSet []string

// Literal returns a set holding exactly p. Whether p exists is not checked.
func Literal(p string) PathSet {
	return PathSet{p}
}

// Glob expands pattern against the default filesystem.
func Glob(pattern string) (PathSet, error) {
	return GlobFs(fsys.FsFactory(), pattern)
}

// MustGlob is like Glob but panics if the pattern is malformed.
// It is meant for build scripts where a bad pattern is a programming error.
func MustGlob(pattern string) PathSet {
	ps, err := Glob(pattern)
	if err != nil {
		panic(err)
	}

	return ps
}

// GlobFs expands pattern against fs.
//
// Besides the filepath.Match syntax, "**" matches any number of directories and "{a,b}"
// matches alternatives. The pattern is validated before the filesystem is touched, so a
// malformed pattern fails immediately with no partial result. Directories that cannot be
// read during the walk are skipped silently. A pattern matching nothing returns an empty
// set and no error. Results keep the pattern's base prefix, so relative patterns yield
// relative paths.
func GlobFs(fs afero.Fs, pattern string) (PathSet, error) {
	slashed := filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(slashed) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	base, rest := doublestar.SplitPattern(slashed)
	if rest == "" {
		rest = base
		base = "."
	}

	root, err := filepath.Abs(filepath.FromSlash(base))
	if err != nil {
		return PathSet{}, nil
	}

	iofs := afero.NewIOFS(afero.NewBasePathFs(fs, root))

	matches, err := doublestar.Glob(iofs, rest)
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}

		return PathSet{}, nil
	}

	ps := make(PathSet, 0, len(matches))
	for _, m := range matches {
		ps = append(ps, filepath.Join(filepath.FromSlash(base), filepath.FromSlash(m)))
	}

	return ps, nil
}
