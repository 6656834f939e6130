// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is returned when an executable cannot be found in PATH.
var ErrNotFound = errors.New("executable file not found in PATH")

// LookPath resolves name to an executable.
// A name containing a path separator is returned unchanged. Otherwise every PATH entry is
// searched in order; on Windows each PATHEXT extension is tried as well.
func LookPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty command", ErrNotFound)
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator) {
		return name, nil
	}

	exts := []string{""}

	if runtime.GOOS == "windows" {
		exts = windowsExts(name)
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		// Relative entries would resolve against the working directory.
		if dir == "" || !filepath.IsAbs(dir) {
			continue
		}

		for _, ext := range exts {
			candidate := filepath.Join(dir, name+ext)
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	if runtime.GOOS == "windows" {
		return true
	}

	return info.Mode()&0o111 != 0
}

// windowsExts lists the suffixes to try for name. A name that already carries one of the
// PATHEXT extensions is tried as is first.
func windowsExts(name string) []string {
	pathext := os.Getenv("PATHEXT")
	if pathext == "" {
		pathext = ".COM;.EXE;.BAT;.CMD"
	}

	exts := []string{}

	lower := strings.ToLower(name)
	for _, e := range strings.Split(pathext, ";") {
		if e == "" {
			continue
		}

		if strings.HasSuffix(lower, strings.ToLower(e)) {
			exts = append([]string{""}, exts...)
		}

		exts = append(exts, e)
	}

	return exts
}
