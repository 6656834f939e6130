// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is a sample build script written with maker.
//
//	go run ./cmd/example            # same as "build"
//	go run ./cmd/example assets     # copy changed assets into $OUT_DIR
//	go run ./cmd/example help       # list the commands
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/maker"
	"github.com/matt-FFFFFF/maker/internal/ctxlog"
	"github.com/matt-FFFFFF/maker/internal/signalbroker"
)

var outDir = maker.EnvOr("OUT_DIR", "dist")

func assets(ctx context.Context) error {
	if err := maker.CreateDir(outDir); err != nil {
		return err
	}

	files, err := maker.Glob("cmd/example/testdata/**/*.txt")
	if err != nil {
		return err
	}

	report, err := maker.CopyWith(ctx, files, outDir)
	if err != nil {
		return err
	}

	fmt.Printf("assets: %d copied, %d up to date\n", report.Count(maker.Copied), report.Count(maker.UpToDate))

	return report.Err()
}

func build(ctx context.Context) error {
	status, err := maker.RunContext(ctx, "go", "build", "-o", filepath.Join(outDir, "mkr"), "./cmd/mkr")
	if err != nil {
		return err
	}

	if !status.Success() {
		return fmt.Errorf("go build: %s", status)
	}

	return nil
}

func vet(ctx context.Context) error {
	status, err := maker.ShContext(ctx, `go vet ./... && echo "vet ok"`)
	if err != nil {
		return err
	}

	if !status.Success() {
		return fmt.Errorf("go vet: %s", status)
	}

	return nil
}

func release(ctx context.Context) error {
	if err := assets(ctx); err != nil {
		return err
	}

	return build(ctx)
}

func clean() error {
	return os.RemoveAll(outDir)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := maker.With().
		CmdContext("assets", assets).
		CmdContext("build", build).
		CmdContext("vet", vet).
		CmdContext("release", release).
		Cmd("clean", clean).
		Default("build").
		Dispatch(ctx)
	if err != nil {
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
