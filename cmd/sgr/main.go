// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the sgr command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/sgr"
	"github.com/matt-FFFFFF/sgr/cmd/sgr/browse"
	"github.com/matt-FFFFFF/sgr/cmd/sgr/render"
	"github.com/matt-FFFFFF/sgr/cmd/sgr/swatch"
	"github.com/matt-FFFFFF/sgr/cmd/sgr/themes"
	"github.com/matt-FFFFFF/sgr/cmd/sgr/try"
	"github.com/matt-FFFFFF/sgr/internal/ctxlog"
	"github.com/matt-FFFFFF/sgr/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		swatch.SwatchCmd,
		render.RenderCmd,
		themes.ThemesCmd,
		try.TryCmd,
		browse.BrowseCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "sgr",
	Description: `sgr styles terminal output with ANSI SGR escape sequences.
It can render the attribute catalog as swatches, style text from a style
expression or a theme role, validate local and remote theme files, and
offers an interactive browser and a REPL for trying expressions out.`,
	Usage:     "sgr render --style \"red bold\" \"hello\"",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", sgr.Version, sgr.Commit)

	err := rootCmd.Run(ctx, os.Args) // Err is handled by cli framework

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Logger(ctx).Error("command terminated due to cancellation", "error", ctx.Err())
		os.Exit(1)
	}

	if err != nil {
		ctxlog.Logger(ctx).Error("command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Logger(ctx).Info("command completed successfully")
}
