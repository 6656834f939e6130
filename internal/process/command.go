// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package process

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/maker/internal/ctxlog"
	"github.com/matt-FFFFFF/maker/internal/signalbroker"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrKilled is returned when the child had to be killed before it exited.
	ErrKilled = errors.New("process killed")
	// ErrDuplicateSignalReceived is joined with ErrKilled when a second identical signal forced termination.
	ErrDuplicateSignalReceived = errors.New("duplicate signal received, process forcefully terminated")
)

// Command describes one external program invocation.
type Command struct {
	Path   string            // Executable name or path. Bare names are looked up in PATH.
	Args   []string          // Arguments, not including the executable itself.
	Dir    string            // Working directory. Empty means the caller's.
	Env    map[string]string // Added to the caller's environment.
	Stdin  *os.File          // Defaults to os.Stdin.
	Stdout *os.File          // Defaults to os.Stdout.
	Stderr *os.File          // Defaults to os.Stderr.

	sigCh chan os.Signal // Signals to forward, allows mocking in test.
}

// Run starts the command, waits for it to exit and returns its status.
//
// Termination signals received while the child runs are forwarded to it. A second signal of
// the same type kills it, as does cancelling ctx; both return ErrKilled. A child that
// exits non-zero is not an error.
func (c *Command) Run(ctx context.Context) (ExitStatus, error) {
	logger := ctxlog.Logger(ctx).With("command", c.Path)

	path, err := LookPath(c.Path)
	if err != nil {
		return ExitStatus{Code: -1}, errors.Join(ErrCouldNotStartProcess, err)
	}

	if err := ctx.Err(); err != nil {
		return ExitStatus{Code: -1}, errors.Join(ErrCouldNotStartProcess, err)
	}

	args := slices.Concat([]string{filepath.Base(path)}, c.Args)

	logger.Debug("starting process", "path", path, "cwd", c.Dir, "args", c.Args)

	ps, err := os.StartProcess(path, args, &os.ProcAttr{
		Dir:   c.Dir,
		Env:   c.environ(),
		Files: []*os.File{orDefault(c.Stdin, os.Stdin), orDefault(c.Stdout, os.Stdout), orDefault(c.Stderr, os.Stderr)},
	})
	if err != nil {
		return ExitStatus{Code: -1}, errors.Join(ErrCouldNotStartProcess, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	sigCh := c.sigCh
	if sigCh == nil {
		sigCh = signalbroker.New(ctx)
		defer signalbroker.Stop(sigCh)
	}

	done := make(chan struct{})
	// Buffered so the watchdog never blocks reporting why it killed the child.
	killed := make(chan error, 1)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()
		watchdog(ctx, ps, sigCh, done, killed)
	}()

	state, waitErr := ps.Wait()

	close(done)
	wg.Wait()

	status := ExitStatus{Code: -1}
	if state != nil {
		status.Code = state.ExitCode()
	}

	logger.Debug("process finished", "exitCode", status.Code)

	select {
	case reason := <-killed:
		return ExitStatus{Code: -1}, errors.Join(ErrKilled, reason, waitErr)
	default:
	}

	if waitErr != nil {
		return status, fmt.Errorf("waiting for %s: %w", c.Path, waitErr)
	}

	return status, nil
}

// environ merges Env over the caller's environment. Keys in Env replace inherited ones.
func (c *Command) environ() []string {
	env := slices.DeleteFunc(os.Environ(), func(kv string) bool {
		k, _, _ := strings.Cut(kv, "=")
		_, ok := c.Env[k]

		return ok
	})

	for _, k := range slices.Sorted(maps.Keys(c.Env)) {
		env = append(env, k+"="+c.Env[k])
	}

	return env
}

// watchdog forwards signals to ps and kills it when ctx is done or a signal repeats.
// It returns once done is closed or the child has been killed.
func watchdog(ctx context.Context, ps *os.Process, sigCh <-chan os.Signal, done <-chan struct{}, killed chan<- error) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case s, ok := <-sigCh:
			if !ok {
				sigCh = nil
				continue
			}

			if _, dup := seen[s]; dup {
				ctxlog.Info(ctx, "received duplicate signal, killing process", "signal", s.String())
				if killPs(ctx, ps) {
					killed <- ErrDuplicateSignalReceived
				}

				return
			}

			seen[s] = struct{}{}

			ctxlog.Info(ctx, "forwarding signal", "signal", s.String())

			if err := ps.Signal(s); err != nil {
				ctxlog.Debug(ctx, "failed to send signal", "signal", s.String(), "error", err)
			}

		case <-ctx.Done():
			ctxlog.Info(ctx, "context done, killing process")
			if killPs(ctx, ps) {
				killed <- context.Cause(ctx)
			}

			return

		case <-done:
			return
		}
	}
}

// killPs reports whether ps was killed. A child that already exited was not.
func killPs(ctx context.Context, ps *os.Process) bool {
	if err := ps.Kill(); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			ctxlog.Debug(ctx, "process already done", "pid", ps.Pid)
			return false
		}

		ctxlog.Error(ctx, "process kill error", "pid", ps.Pid, "error", err)

		return false
	}

	ctxlog.Info(ctx, "process killed", "pid", ps.Pid)

	return true
}

func orDefault(f, def *os.File) *os.File {
	if f == nil {
		return def
	}

	return f
}
