// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package files

import (
	"context"

	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/urfave/cli/v3"
)

// NewMkdirCommand returns the mkdir subcommand, which behaves like mkdir -p on every platform.
func NewMkdirCommand() *cli.Command {
	return &cli.Command{
		Name:      "mkdir",
		Usage:     "Create directories and any missing parents",
		ArgsUsage: "DIR...",
		Action:    mkdirAction,
	}
}

func mkdirAction(_ context.Context, cmd *cli.Command) error {
	dirs := cmd.Args().Slice()
	if len(dirs) == 0 {
		return cli.Exit("Please provide at least one directory", 1)
	}

	fs := fsys.FsFactory()

	for _, d := range dirs {
		if err := fsys.CreateDir(fs, d); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	return nil
}
