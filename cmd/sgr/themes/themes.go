// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package themes shows and validates theme files.
package themes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/sgr"
	"github.com/matt-FFFFFF/sgr/theme"
	"github.com/urfave/cli/v3"
)

const (
	fileFlag      = "file"
	defaultSample = "The quick brown fox jumps over the lazy dog"
)

var (
	// ErrNoFiles is returned when no theme files are specified.
	ErrNoFiles = errors.New("no theme files specified")
	// ErrValidation is returned when at least one theme file fails to validate.
	ErrValidation = errors.New("theme validation failed")
	// ErrWriteOutput is returned when the output cannot be written.
	ErrWriteOutput = errors.New("failed to write output")
)

var titleStyle = sgr.New(sgr.WithIntensity(sgr.Bold))

// ThemesCmd shows and validates theme files.
var ThemesCmd = &cli.Command{
	Name:  "themes",
	Usage: "Show or validate theme files",
	Commands: []*cli.Command{
		showCmd,
		validateCmd,
	},
}

var showCmd = &cli.Command{
	Name:  "show",
	Usage: "Show the themes defined in theme files",
	Description: `Load the given theme files and print each theme's roles with a styled
sample.

File URLs use Hashicorp's go-getter syntax, which allows for fetching files
from various sources. See https://github.com/hashicorp/go-getter.

Without any files, the registered themes are shown.`,
	Flags:  fileFlags(),
	Action: showAction,
}

var validateCmd = &cli.Command{
	Name:  "validate",
	Usage: "Validate theme files",
	Description: `Load the given theme files and report, per file, whether they parse
cleanly. All files are checked; errors are aggregated rather than
stopping at the first bad file.

File URLs use Hashicorp's go-getter syntax, which allows for fetching files
from various sources. See https://github.com/hashicorp/go-getter.`,
	Flags:  fileFlags(),
	Action: validateAction,
}

func fileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    fileFlag,
			Aliases: []string{"f"},
			Usage: "Specify the URL of a theme file. " +
				"Supports Hashicorp's go-getter syntax for fetching files from various sources. " +
				"Specify multiple times to load multiple files.",
		},
	}
}

func showAction(ctx context.Context, cmd *cli.Command) error {
	urls := cmd.StringSlice(fileFlag)

	var themes []*theme.Theme

	if len(urls) == 0 {
		for _, name := range theme.Names() {
			t, err := theme.Get(name)
			if err != nil {
				return err
			}

			themes = append(themes, t)
		}
	}

	for _, u := range urls {
		loaded, err := loadURL(ctx, u)
		if err != nil {
			return err
		}

		themes = append(themes, loaded...)
	}

	for _, t := range themes {
		if err := writeTheme(cmd.Writer, t); err != nil {
			return err
		}
	}

	return nil
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	urls := cmd.StringSlice(fileFlag)
	if len(urls) == 0 {
		return ErrNoFiles
	}

	var errs error

	for _, u := range urls {
		loaded, err := loadURL(ctx, u)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", u, err))

			fmt.Fprintf(cmd.Writer, "%s %s\n", sgr.Error.Render("FAIL"), u)

			continue
		}

		for _, t := range loaded {
			fmt.Fprintf(cmd.Writer, "%s %s: theme %q, %d roles\n",
				sgr.OK.Render("OK"), u, t.Name, len(t.Styles))
		}
	}

	if errs != nil {
		return errors.Join(ErrValidation, errs)
	}

	return nil
}

// loadURL fetches one theme file and parses it, dispatching on the
// file name extension.
func loadURL(ctx context.Context, url string) ([]*theme.Theme, error) {
	content, name, err := fetchThemeFile(ctx, url)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		t, err := theme.ParseYAML(content)
		if err != nil {
			return nil, err
		}

		return []*theme.Theme{t}, nil
	default:
		return theme.ParseHCL(content, name)
	}
}

func writeTheme(w io.Writer, t *theme.Theme) error {
	if _, err := sgr.Fprintln(w, titleStyle, t.Name); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	for _, role := range t.Roles() {
		st := t.Style(role)

		_, err := fmt.Fprintf(w, "  %-14s %-24s %s\n", role, st.String(), st.Render(defaultSample))
		if err != nil {
			return errors.Join(ErrWriteOutput, err)
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.Join(ErrWriteOutput, err)
	}

	return nil
}
