// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package render styles text from a style expression or a theme role.
package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/sgr"
	"github.com/matt-FFFFFF/sgr/theme"
	"github.com/urfave/cli/v3"
)

const (
	textArg       = "text"
	styleFlag     = "style"
	themeFlag     = "theme"
	themeFileFlag = "theme-file"
	roleFlag      = "role"
	noNewlineFlag = "no-newline"
)

var (
	// ErrNoText is returned when there is no text to render.
	ErrNoText = errors.New("no text to render")
	// ErrStyleAndTheme is returned when both a style expression and a theme are given.
	ErrStyleAndTheme = errors.New("specify either --style or --theme, not both")
	// ErrParseStyle is returned when the style expression cannot be parsed.
	ErrParseStyle = errors.New("failed to parse style expression")
	// ErrUnknownRole is returned when the theme does not define the requested role.
	ErrUnknownRole = errors.New("theme does not define role")
	// ErrLoadThemeFile is returned when a theme file cannot be loaded.
	ErrLoadThemeFile = errors.New("failed to load theme file")
	// ErrWriteText is returned when the styled text cannot be written.
	ErrWriteText = errors.New("failed to write styled text")
)

// RenderCmd styles text with a style expression or a theme role.
var RenderCmd = &cli.Command{
	Name:  "render",
	Usage: "Style text with a style expression or a theme role",
	Description: `Render the given text wrapped in the escape sequences for a style.
The style is either a style expression such as "red on-white bold", or a
role looked up in a registered theme. Theme files can be registered
first with the --theme-file flag.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name: textArg,
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     styleFlag,
			Aliases:  []string{"s"},
			Usage:    "Style expression, e.g. \"red on-white bold\"",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:     themeFlag,
			Aliases:  []string{"t"},
			Usage:    "Name of a registered theme to take the style from",
			OnlyOnce: true,
		},
		&cli.StringSliceFlag{
			Name:      themeFileFlag,
			Usage:     "Theme file to register before rendering. Specify multiple times to register multiple files.",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:     roleFlag,
			Aliases:  []string{"r"},
			Usage:    "Role to look up in the theme",
			Value:    theme.RoleOK,
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:        noNewlineFlag,
			Aliases:     []string{"n"},
			Usage:       "Do not append a newline after the styled text",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	text := cmd.StringArg(textArg)
	if text == "" {
		return ErrNoText
	}

	for _, path := range cmd.StringSlice(themeFileFlag) {
		loaded, err := theme.LoadFile(path)
		if err != nil {
			return errors.Join(ErrLoadThemeFile, err)
		}

		for _, t := range loaded {
			theme.Register(t)
		}
	}

	style, err := resolveStyle(cmd.String(styleFlag), cmd.String(themeFlag), cmd.String(roleFlag))
	if err != nil {
		return err
	}

	if cmd.Bool(noNewlineFlag) {
		_, err = sgr.Fprint(cmd.Writer, style, text)
	} else {
		_, err = sgr.Fprintln(cmd.Writer, style, text)
	}

	if err != nil {
		return errors.Join(ErrWriteText, err)
	}

	return nil
}

// resolveStyle picks the style to render with. A style expression and a
// theme role are mutually exclusive; with neither, the zero style is
// used.
func resolveStyle(expr, themeName, role string) (sgr.Style, error) {
	if expr != "" && themeName != "" {
		return sgr.Style{}, ErrStyleAndTheme
	}

	if themeName != "" {
		t, err := theme.Get(themeName)
		if err != nil {
			return sgr.Style{}, err
		}

		st, ok := t.Styles[role]
		if !ok {
			return sgr.Style{}, fmt.Errorf("%w: %s", ErrUnknownRole, role)
		}

		return st, nil
	}

	st, err := theme.ParseStyle(expr)
	if err != nil {
		return sgr.Style{}, errors.Join(ErrParseStyle, err)
	}

	return st, nil
}
