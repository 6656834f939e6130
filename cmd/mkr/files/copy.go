// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matt-FFFFFF/maker/internal/color"
	"github.com/matt-FFFFFF/maker/internal/copier"
	"github.com/matt-FFFFFF/maker/internal/fsys"
	"github.com/matt-FFFFFF/maker/internal/pathset"
	"github.com/matt-FFFFFF/maker/internal/report"
	"github.com/urfave/cli/v3"
)

const (
	reportFlag = "report"
	strictFlag = "strict"
)

// NewCopyCommand returns the copy subcommand.
func NewCopyCommand() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Aliases:   []string{"cp"},
		Usage:     "Copy files when the source is newer than the destination",
		ArgsUsage: "SRC... DEST",
		Description: `Each SRC may be a glob pattern. If DEST is an existing directory every source is
copied into it under its own name, otherwise DEST is the target file.
A source is skipped when DEST is at least as new. Sources that cannot be copied are
skipped too, unless --strict is given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    reportFlag,
				Aliases: []string{"r"},
				Usage:   "Print a report of every source: text, json or yaml",
			},
			&cli.BoolFlag{
				Name:  strictFlag,
				Usage: "Exit 1 if any source could not be copied",
				Value: false,
			},
		},
		Action: copyAction,
	}
}

func copyAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return cli.Exit("Please provide at least one source and a destination", exitError)
	}

	var format report.Format

	if s := cmd.String(reportFlag); s != "" {
		f, err := report.ParseFormat(s)
		if err != nil {
			return cli.Exit(err.Error(), exitError)
		}

		format = f
	}

	fs := fsys.FsFactory()
	dest := args[len(args)-1]

	var sources pathset.PathSet

	for _, src := range args[:len(args)-1] {
		if !hasMeta(src) {
			sources = append(sources, pathset.Literal(src)...)
			continue
		}

		matches, err := pathset.GlobFs(fs, src)
		if err != nil {
			return cli.Exit(err.Error(), exitError)
		}

		sources = append(sources, matches...)
	}

	rep, err := copier.New(copier.WithFs(fs)).Copy(ctx, sources, dest)
	if err != nil {
		return cli.Exit(fmt.Sprintf("copy failed: %s", err), 1)
	}

	if format != "" {
		w := cmd.Root().Writer
		if err := report.Write(w, rep, format, report.WithColour(reportColour(w))); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	if cmd.Bool(strictFlag) {
		if err := rep.Err(); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	return nil
}

// reportColour decides colour for the stream the report is written to, not for stderr.
func reportColour(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return color.EnabledFor(f)
}

// hasMeta reports whether p contains glob syntax. Literal sources are passed through
// unexpanded so that a missing one fails like any other copy error.
func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}
