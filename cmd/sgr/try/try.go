// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package try provides an interactive prompt for style expressions.
package try

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/matt-FFFFFF/sgr"
	"github.com/matt-FFFFFF/sgr/theme"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	sampleFlag    = "sample"
	defaultSample = "The quick brown fox jumps over the lazy dog"
)

// TryCmd reads style expressions interactively and shows the result.
var TryCmd = &cli.Command{
	Name:  "try",
	Usage: "Interactively try style expressions",
	Description: `Read style expressions from an interactive prompt and print the styled
sample, the escape sequence and the canonical form for each one.

Expressions use the same vocabulary as themes, e.g. "red bold" or
"green on-white underline".`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    sampleFlag,
			Aliases: []string{"s"},
			Usage:   "Specify the sample text to style.",
			Value:   defaultSample,
		},
	},
	Action: actionFunc,
}

func actionFunc(_ context.Context, cmd *cli.Command) error {
	repl(cmd.Writer, cmd.String(sampleFlag))

	return nil
}

func repl(w io.Writer, sample string) {
	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)
	fmt.Fprintln(w, "Type a style expression, or `quit` or `exit` or Ctrl+C to leave.")

	for {
		if input, err := line.Prompt("sgr> "); err == nil {
			if input == "quit" || input == "exit" {
				return
			}

			line.AppendHistory(input)
			evaluate(w, input, sample)
		} else if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(w, "Aborted")

			break
		} else {
			fmt.Fprintln(w, "Error reading line: ", err)

			break
		}
	}
}

// evaluate parses one expression and writes the styled sample, the
// escape sequence and the canonical form.
func evaluate(w io.Writer, input, sample string) {
	style, err := theme.ParseStyle(input)
	if err != nil {
		fmt.Fprintln(w, sgr.Error.Render(err.Error()))

		return
	}

	fmt.Fprintf(w, "%s\n  sequence: %q\n  style:    %s\n", style.Render(sample), style.Sequence(), style)
}
