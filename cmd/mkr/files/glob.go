// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package files

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/matt-FFFFFF/maker/internal/pathset"
	"github.com/urfave/cli/v3"
)

// Exit codes shared by the subcommands in this package.
const (
	exitFalse = 1
	exitError = 2
)

// NewGlobCommand returns the glob subcommand, which prints every path matching each pattern.
func NewGlobCommand() *cli.Command {
	return &cli.Command{
		Name:      "glob",
		Usage:     "Print the paths matching one or more glob patterns",
		ArgsUsage: "PATTERN...",
		Description: `Patterns support *, ?, [...], {a,b} and ** to cross directory boundaries.
A pattern that matches nothing prints nothing. A malformed pattern exits with status 2.`,
		Action: globAction,
	}
}

func globAction(_ context.Context, cmd *cli.Command) error {
	patterns := cmd.Args().Slice()
	if len(patterns) == 0 {
		return cli.Exit("Please provide at least one pattern", exitError)
	}

	fs := fsys.FsFactory()
	w := cmd.Root().Writer

	for _, p := range patterns {
		matches, err := pathset.GlobFs(fs, p)
		if err != nil {
			return cli.Exit(err.Error(), exitError)
		}

		for _, m := range matches {
			fmt.Fprintln(w, m) //nolint:errcheck
		}
	}

	return nil
}
