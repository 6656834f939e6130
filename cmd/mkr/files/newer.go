// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package files

import (
	"context"

	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/urfave/cli/v3"
)

// NewNewerCommand returns the newer subcommand, a test(1)-style staleness check.
func NewNewerCommand() *cli.Command {
	return &cli.Command{
		Name:      "newer",
		Usage:     "Exit 0 if TARGET was modified after BASE",
		ArgsUsage: "TARGET BASE",
		Description: `Exits 0 if TARGET is strictly newer than BASE and 1 if it is not.
Exits 2 if either path cannot be read, for example because it does not exist.`,
		Action: newerAction,
	}
}

func newerAction(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return cli.Exit("Please provide exactly two paths: TARGET BASE", exitError)
	}

	newer, err := fsys.IsNewer(fsys.FsFactory(), cmd.Args().Get(0), cmd.Args().Get(1))
	if err != nil {
		return cli.Exit(err.Error(), exitError)
	}

	if !newer {
		return cli.Exit("", exitFalse)
	}

	return nil
}
