// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package swatch renders the attribute catalog and the presets as swatches.
package swatch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/sgr"
	"github.com/matt-FFFFFF/sgr/internal/catalog"
	"github.com/urfave/cli/v3"
)

const (
	sampleFlag    = "sample"
	presetsFlag   = "presets"
	defaultSample = "The quick brown fox jumps over the lazy dog"
)

// ErrWriteSwatch is returned when the swatches cannot be written.
var ErrWriteSwatch = errors.New("failed to write swatches")

var titleStyle = sgr.New(sgr.WithIntensity(sgr.Bold))

// SwatchCmd renders the attribute catalog and presets as swatches.
var SwatchCmd = &cli.Command{
	Name:  "swatch",
	Usage: "Render the attribute catalog and presets as swatches",
	Description: `Render one swatch per attribute variant, showing the variant's style
expression, the escape sequence it produces, and the sample text with the
style applied. How a swatch looks depends on what the terminal supports;
unsupported attributes are simply ignored by the terminal.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     sampleFlag,
			Aliases:  []string{"s"},
			Usage:    "Sample text rendered through each style",
			Value:    defaultSample,
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:        presetsFlag,
			Usage:       "Only render the presets",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	sample := cmd.String(sampleFlag)

	if !cmd.Bool(presetsFlag) {
		if err := writeSections(cmd.Writer, sample); err != nil {
			return err
		}
	}

	return writePresets(cmd.Writer, sample)
}

// writeSections writes one block per styling dimension.
func writeSections(w io.Writer, sample string) error {
	for _, s := range catalog.Sections() {
		if _, err := sgr.Fprintln(w, titleStyle, s.Title); err != nil {
			return errors.Join(ErrWriteSwatch, err)
		}

		for _, e := range s.Entries {
			if err := writeEntry(w, e, sample); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Join(ErrWriteSwatch, err)
		}
	}

	return nil
}

func writePresets(w io.Writer, sample string) error {
	if _, err := sgr.Fprintln(w, titleStyle, "Presets"); err != nil {
		return errors.Join(ErrWriteSwatch, err)
	}

	for _, e := range catalog.Presets() {
		if err := writeEntry(w, e, sample); err != nil {
			return err
		}
	}

	return nil
}

func writeEntry(w io.Writer, e catalog.Entry, sample string) error {
	_, err := fmt.Fprintf(w, "  %-26s %-16q %s\n", e.Name, e.Style.Sequence(), e.Style.Render(sample))
	if err != nil {
		return errors.Join(ErrWriteSwatch, err)
	}

	return nil
}
