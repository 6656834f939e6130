// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker delivers the OS signals that should end a build to whoever is
// supervising a child process. By default it listens for SIGINT, SIGTERM, SIGQUIT and
// os.Interrupt.
//
// Watch cancels a context when the same signal arrives twice, which lets the CLI give a
// running child one chance to exit on its own before it is killed.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/maker/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New returns a channel that receives sigs, or the termination signals if none are given.
// Call Stop when the channel is no longer read.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop stops delivery to ch. It is safe to call with a channel not created by New.
func Stop(ch chan os.Signal) {
	if ch == nil {
		return
	}

	signal.Stop(ch)
}
