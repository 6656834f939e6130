// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/maker/internal/ctxlog"
)

// HelpCommand lists the registered commands when nothing else is registered under that name.
const HelpCommand = "help"

// Messages written to the dispatcher output.
const (
	MsgNoCommand      = "No command was given"
	MsgActionFailed   = "An error occurred:"
	MsgUnknownCommand = "Unknown command: "
	MsgAvailable      = "Available commands:"
	MsgAlreadyUsed    = "Maker was already used"
)

var (
	// ErrNoCommand is returned when no argument was given and no default is set.
	ErrNoCommand = errors.New("no command was given")
	// ErrUnknownCommand is returned when the requested name matches no entry.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrActionFailed wraps the error returned by the invoked action.
	ErrActionFailed = errors.New("command failed")
	// ErrAlreadyUsed is returned when a dispatcher is dispatched a second time.
	ErrAlreadyUsed = errors.New("dispatcher already used")
)

// Dispatcher resolves a command name and invokes the matching action once.
type Dispatcher struct {
	registry    *Registry
	defaultName *string
	args        []string
	argsSet     bool
	out         io.Writer
	used        bool
}

// New creates an empty Dispatcher that reads os.Args and writes to os.Stderr.
func New() *Dispatcher {
	return &Dispatcher{
		registry: &Registry{},
		out:      os.Stderr,
	}
}

// Register adds name to the registry. It has no effect once the dispatcher has been used.
func (d *Dispatcher) Register(name string, a Action) {
	if d.used {
		return
	}

	d.registry.Add(name, a)
}

// SetDefault sets the command used when no argument is given. The last call wins.
func (d *Dispatcher) SetDefault(name string) {
	d.defaultName = &name
}

// SetArgs replaces the argument source, which defaults to os.Args[1:].
func (d *Dispatcher) SetArgs(args []string) {
	d.args = args
	d.argsSet = true
}

// SetOutput replaces the diagnostic sink, which defaults to os.Stderr. A nil writer discards output.
func (d *Dispatcher) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	d.out = w
}

// Used reports whether Dispatch has been called.
func (d *Dispatcher) Used() bool {
	return d.used
}

// Dispatch resolves the requested command and acts on it.
//
// The requested name is the first argument, or the default if there are no arguments. The
// first entry with that name is removed from the registry and invoked. If none matches and
// the name is "help", the remaining names are listed. Every outcome is written to the
// output as plain text; the returned error lets callers choose an exit code.
func (d *Dispatcher) Dispatch(ctx context.Context) error {
	if d.used {
		d.println(MsgAlreadyUsed)
		return ErrAlreadyUsed
	}

	d.used = true
	reg := d.registry
	d.registry = nil

	name, ok := d.requested()
	if !ok {
		d.println(MsgNoCommand)
		return ErrNoCommand
	}

	logger := ctxlog.Logger(ctx).With("command", name)

	if entry, found := reg.Take(name); found {
		logger.Debug("invoking command")

		if err := invoke(ctx, entry.Action); err != nil {
			logger.Debug("command failed", "error", err)
			d.println(MsgActionFailed)
			d.println(err.Error())

			return errors.Join(ErrActionFailed, err)
		}

		logger.Debug("command finished")

		return nil
	}

	if name == HelpCommand {
		d.println(MsgAvailable)

		for _, n := range reg.Names() {
			d.println("  " + n)
		}

		return nil
	}

	d.println(MsgUnknownCommand + name)

	return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func (d *Dispatcher) requested() (string, bool) {
	args := d.args
	if !d.argsSet && len(os.Args) > 1 {
		args = os.Args[1:]
	}

	if len(args) > 0 {
		return args[0], true
	}

	if d.defaultName != nil {
		return *d.defaultName, true
	}

	return "", false
}

func (d *Dispatcher) println(s string) {
	_, _ = fmt.Fprintln(d.out, s)
}
