// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package maker

import (
	"context"
	"io"

	"github.com/matt-FFFFFF/maker/internal/dispatch"
)

// Errors returned by Dispatch.
var (
	ErrNoCommand      = dispatch.ErrNoCommand
	ErrUnknownCommand = dispatch.ErrUnknownCommand
	ErrActionFailed   = dispatch.ErrActionFailed
	ErrAlreadyUsed    = dispatch.ErrAlreadyUsed
)

// Action is the work behind a command. Most scripts use Cmd or CmdContext instead.
type Action = dispatch.Action

// Maker collects commands and runs one of them.
// Its methods return the receiver so calls can be chained.
type Maker struct {
	d *dispatch.Dispatcher
}

// With starts an empty Maker.
func With() *Maker {
	return &Maker{d: dispatch.New()}
}

// Cmd registers f under name. Names may repeat; the first registration wins.
func (m *Maker) Cmd(name string, f func() error) *Maker {
	m.d.Register(name, dispatch.ActionFunc(f))
	return m
}

// CmdContext registers f under name. f receives the context passed to MakeContext or Dispatch.
func (m *Maker) CmdContext(name string, f func(ctx context.Context) error) *Maker {
	m.d.Register(name, dispatch.ContextActionFunc(f))
	return m
}

// Action registers a under name.
func (m *Maker) Action(name string, a Action) *Maker {
	m.d.Register(name, a)
	return m
}

// Default sets the command run when no argument is given. Calling it again replaces the previous default.
func (m *Maker) Default(name string) *Maker {
	m.d.SetDefault(name)
	return m
}

// Args replaces the program arguments, os.Args[1:], as the source of the command name.
func (m *Maker) Args(args ...string) *Maker {
	m.d.SetArgs(args)
	return m
}

// Output sets where diagnostics are written. The default is os.Stderr.
func (m *Maker) Output(w io.Writer) *Maker {
	m.d.SetOutput(w)
	return m
}

// Make runs the requested command. Problems are printed, never returned.
func (m *Maker) Make() {
	m.MakeContext(context.Background())
}

// MakeContext is Make with a caller-supplied context.
func (m *Maker) MakeContext(ctx context.Context) {
	_ = m.Dispatch(ctx)
}

// Dispatch behaves like MakeContext and also returns what went wrong, if anything.
func (m *Maker) Dispatch(ctx context.Context) error {
	return m.d.Dispatch(ctx)
}
