// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package dispatch

import (
	"context"
	"fmt"
)

// Action is the deferred work behind a command name.
type Action interface {
	Invoke(ctx context.Context) error
}

var (
	_ Action = ActionFunc(nil)
	_ Action = ContextActionFunc(nil)
)

// ActionFunc adapts a plain function to Action. A nil ActionFunc does nothing.
type ActionFunc func() error

// Invoke implements Action.
func (f ActionFunc) Invoke(_ context.Context) error {
	if f == nil {
		return nil
	}

	return f()
}

// ContextActionFunc adapts a function that wants the dispatch context. A nil ContextActionFunc does nothing.
type ContextActionFunc func(ctx context.Context) error

// Invoke implements Action.
func (f ContextActionFunc) Invoke(ctx context.Context) error {
	if f == nil {
		return nil
	}

	return f(ctx)
}

// ErrActionPanic is returned when an action panics.
// It is constructed with the value that caused the panic.
type ErrActionPanic struct {
	v any
}

// NewErrActionPanic creates a new ErrActionPanic with the given value.
func NewErrActionPanic(v any) error {
	return &ErrActionPanic{v: v}
}

// Error implements the error interface for ErrActionPanic.
func (e *ErrActionPanic) Error() string {
	const prefix = "command panicked:"

	switch x := e.v.(type) {
	case string:
		return fmt.Sprintf("%s %s", prefix, x)
	case error:
		return fmt.Sprintf("%s %s", prefix, x.Error())
	default:
		return fmt.Sprintf("%s %v", prefix, x)
	}
}

// Unwrap returns the panic value if it was an error.
func (e *ErrActionPanic) Unwrap() error {
	err, _ := e.v.(error)
	return err
}

// Value returns the value passed to panic.
func (e *ErrActionPanic) Value() any {
	return e.v
}

// invoke runs a and turns a panic into an error.
func invoke(ctx context.Context, a Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewErrActionPanic(r)
		}
	}()

	if a == nil {
		return nil
	}

	return a.Invoke(ctx)
}
