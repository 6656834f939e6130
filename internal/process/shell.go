// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"context"
	"errors"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/maker/internal/ctxlog"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

var (
	// ErrShellParse is returned when a script is not valid POSIX shell.
	ErrShellParse = errors.New("failed to parse shell script")
	// ErrShellInit is returned when the interpreter cannot be set up, e.g. because Dir does not exist.
	ErrShellInit = errors.New("failed to initialise shell")
)

// Shell runs scripts with an embedded POSIX shell interpreter.
type Shell struct {
	Dir     string            // Working directory. Empty means the caller's.
	Env     map[string]string // Added to the caller's environment.
	ErrExit bool              // Stop at the first failing command, like sh -e.
	Stdin   io.Reader         // Defaults to no input.
	Stdout  io.Writer         // Defaults to os.Stdout.
	Stderr  io.Writer         // Defaults to os.Stderr.
}

// Run parses script and executes it, blocking until it finishes.
// A script that exits non-zero returns that code and no error.
func (s Shell) Run(ctx context.Context, script string) (ExitStatus, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(script), "")
	if err != nil {
		return ExitStatus{Code: -1}, errors.Join(ErrShellParse, err)
	}

	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	if s.Stdout != nil {
		stdout = s.Stdout
	}

	if s.Stderr != nil {
		stderr = s.Stderr
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(s.environ()...)),
		interp.StdIO(s.Stdin, stdout, stderr),
	}

	if s.Dir != "" {
		opts = append(opts, interp.Dir(s.Dir))
	}

	if s.ErrExit {
		opts = append(opts, interp.Params("-e"))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return ExitStatus{Code: -1}, errors.Join(ErrShellInit, err)
	}

	ctxlog.Debug(ctx, "running shell script", "dir", s.Dir, "errexit", s.ErrExit)

	err = runner.Run(ctx, file)

	switch {
	case err == nil:
		return ExitStatus{}, nil
	case ctx.Err() != nil:
		return ExitStatus{Code: -1}, errors.Join(ErrKilled, err)
	}

	if code, ok := interp.IsExitStatus(err); ok {
		return ExitStatus{Code: int(code)}, nil
	}

	return ExitStatus{Code: -1}, err
}

func (s Shell) environ() []string {
	env := os.Environ()
	for _, k := range slices.Sorted(maps.Keys(s.Env)) {
		env = append(env, k+"="+s.Env[k])
	}

	return env
}
