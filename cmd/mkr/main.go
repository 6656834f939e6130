// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains mkr, a command-line front end to the maker helpers for use from
// Makefiles and CI scripts.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/maker"
	"github.com/matt-FFFFFF/maker/cmd/mkr/files"
	"github.com/matt-FFFFFF/maker/cmd/mkr/procs"
	"github.com/matt-FFFFFF/maker/internal/ctxlog"
	"github.com/matt-FFFFFF/maker/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// newRootCmd builds the command tree.
func newRootCmd() *cli.Command {
	return &cli.Command{
		Commands: []*cli.Command{
			files.NewGlobCommand(),
			files.NewNewerCommand(),
			files.NewCopyCommand(),
			files.NewMkdirCommand(),
			procs.NewRunCommand(),
			procs.NewShCommand(),
			newEnvCommand(),
			newVersionCommand(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Name:      "mkr",
		Usage:     "mkr copy 'assets/**/*.css' dist/",
		Description: `mkr exposes the maker build helpers as shell commands: glob expansion with **,
modification-time based copying, portable mkdir -p and a built-in POSIX shell.
Set MKR_LOG_LEVEL=DEBUG to see what each command decides.`,
		Version:               fmt.Sprintf("%s (commit: %s)", maker.Version, maker.Commit),
		Copyright:             "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		EnableShellCompletion: true,
	}
}

func newEnvCommand() *cli.Command {
	return &cli.Command{
		Name:      "env",
		Usage:     "Print an environment variable, or DEFAULT if it is not set",
		ArgsUsage: "NAME DEFAULT",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit("Please provide NAME and DEFAULT", 2)
			}

			fmt.Fprintln(cmd.Root().Writer, maker.EnvOr(cmd.Args().Get(0), cmd.Args().Get(1))) //nolint:errcheck

			return nil
		},
	}
}

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(_ context.Context, cmd *cli.Command) error {
			fmt.Fprintf(cmd.Root().Writer, "mkr %s (commit: %s)\n", maker.Version, maker.Commit) //nolint:errcheck
			return nil
		},
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	// Exit codes are handled by the cli framework.
	err := newRootCmd().Run(ctx, os.Args)

	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}
}
