// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package procs contains the mkr subcommands that start other programs: run and sh.
// Both exit with the child's status so they can stand in for the program they wrap.
package procs

import (
	"context"
	"errors"
	"strings"

	"github.com/matt-FFFFFF/maker/internal/process"
	"github.com/urfave/cli/v3"
)

const (
	errexitFlag = "errexit"
	dirFlag     = "dir"

	// exitNotRunnable matches what POSIX shells use for a command that cannot be found.
	exitNotRunnable = 127
	// exitKilled is reported when mkr had to kill the child.
	exitKilled = 137
)

// NewRunCommand returns the run subcommand.
func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run a program and exit with its status",
		ArgsUsage: "PROGRAM [ARGS...]",
		Description: `PROGRAM is looked up in PATH unless it contains a path separator.
Its output is not captured. Everything after PROGRAM is passed through untouched.`,
		SkipFlagParsing: true,
		Action:          runAction,
	}
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("Please provide a program to run", exitNotRunnable)
	}

	c := &process.Command{Path: args[0], Args: args[1:]}

	return exitWith(c.Run(ctx))
}

// NewShCommand returns the sh subcommand.
func NewShCommand() *cli.Command {
	return &cli.Command{
		Name:      "sh",
		Usage:     "Run a POSIX shell script with the built-in interpreter",
		ArgsUsage: "SCRIPT...",
		Description: `The arguments are joined with spaces and run as one script. No system shell is
needed, so the same script works on every platform.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    errexitFlag,
				Aliases: []string{"e"},
				Usage:   "Stop at the first failing command",
			},
			&cli.StringFlag{
				Name:    dirFlag,
				Aliases: []string{"C"},
				Usage:   "Run the script in this directory",
			},
		},
		Action: shAction,
	}
}

func shAction(ctx context.Context, cmd *cli.Command) error {
	script := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(script) == "" {
		return cli.Exit("Please provide a script", 2)
	}

	sh := process.Shell{
		Dir:     cmd.String(dirFlag),
		ErrExit: cmd.Bool(errexitFlag),
		Stdout:  cmd.Root().Writer,
		Stderr:  cmd.Root().ErrWriter,
	}

	return exitWith(sh.Run(ctx, script))
}

// exitWith converts a child's outcome to the error urfave/cli turns into an exit status.
func exitWith(status process.ExitStatus, err error) error {
	switch {
	case errors.Is(err, process.ErrKilled):
		return cli.Exit(err.Error(), exitKilled)
	case errors.Is(err, process.ErrCouldNotStartProcess):
		return cli.Exit(err.Error(), exitNotRunnable)
	case err != nil:
		return cli.Exit(err.Error(), 2)
	case !status.Success():
		code := status.Code
		if code < 0 {
			code = 1
		}

		return cli.Exit("", code)
	}

	return nil
}
