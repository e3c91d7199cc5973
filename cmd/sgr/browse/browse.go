// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package browse launches the interactive style browser.
package browse

import (
	"context"

	"github.com/matt-FFFFFF/sgr/internal/browser"
	"github.com/matt-FFFFFF/sgr/theme"
	"github.com/urfave/cli/v3"
)

const (
	sampleFlag    = "sample"
	themeFileFlag = "theme-file"
)

// BrowseCmd opens the full screen style browser.
var BrowseCmd = &cli.Command{
	Name:  "browse",
	Usage: "Browse styles, presets and themes interactively",
	Description: `Open a full screen browser over the style catalog, the presets and the
registered themes. Use tab and shift+tab to switch pages and the arrow
keys to scroll.

Extra themes can be registered from files before browsing.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    sampleFlag,
			Aliases: []string{"s"},
			Usage:   "Specify the sample text to style.",
			Value:   browser.DefaultSample,
		},
		&cli.StringSliceFlag{
			Name: themeFileFlag,
			Usage: "Specify the path to a theme file to register before browsing. " +
				"Specify multiple times to load multiple files.",
			TakesFile: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	for _, path := range cmd.StringSlice(themeFileFlag) {
		themes, err := theme.LoadFile(path)
		if err != nil {
			return err
		}

		for _, t := range themes {
			theme.Register(t)
		}
	}

	return browser.Run(ctx, theme.DefaultRegistry, cmd.String(sampleFlag))
}
