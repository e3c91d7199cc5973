// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/sgr"
)

var (
	// ErrUnknownToken is returned when a style expression contains a
	// token that is not part of the vocabulary.
	ErrUnknownToken = errors.New("unknown style token")
	// ErrUnknownColor is returned when a color name is not one of the
	// eight standard colors or "default".
	ErrUnknownColor = errors.New("unknown color")
	// ErrUnknownFont is returned when a font token is not font-1
	// through font-9.
	ErrUnknownFont = errors.New("unknown font")
)

const (
	backgroundPrefix = "on-"
	fontPrefix       = "font-"
)

// colorsByName maps color names to colors for both the bare text token
// and the on- background token.
var colorsByName = map[string]sgr.Color{
	"default": sgr.ColorDefault,
	"black":   sgr.Black,
	"red":     sgr.Red,
	"green":   sgr.Green,
	"yellow":  sgr.Yellow,
	"blue":    sgr.Blue,
	"magenta": sgr.Magenta,
	"cyan":    sgr.Cyan,
	"white":   sgr.White,
}

// optionsByToken maps the fixed single-word tokens to their options.
var optionsByToken = map[string]sgr.Option{
	"bold":                      sgr.WithIntensity(sgr.Bold),
	"faint":                     sgr.WithIntensity(sgr.Faint),
	"inverse":                   sgr.WithInversion(sgr.InversionOn),
	"conceal":                   sgr.WithConcealment(sgr.Concealed),
	"italic":                    sgr.WithFontStyle(sgr.Italic),
	"fraktur":                   sgr.WithFontStyle(sgr.Fraktur),
	"underline":                 sgr.WithUnderline(sgr.Underlined),
	"overline":                  sgr.WithOverline(sgr.Overlined),
	"cross-out":                 sgr.WithCrossOut(sgr.CrossedOut),
	"ideogram-underline":        sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineSingle),
	"ideogram-underline-double": sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineDouble),
	"ideogram-overline":         sgr.WithIdeogramOverline(sgr.IdeogramOverlineSingle),
	"ideogram-overline-double":  sgr.WithIdeogramOverline(sgr.IdeogramOverlineDouble),
	"ideogram-stress":           sgr.WithIdeogramStress(sgr.IdeogramStressed),
	"blink-slow":                sgr.WithBlink(sgr.BlinkSlow),
	"blink-rapid":               sgr.WithBlink(sgr.BlinkRapid),
	"framed":                    sgr.WithFrame(sgr.Framed),
	"encircled":                 sgr.WithFrame(sgr.Encircled),
}

// ParseStyle parses a whitespace separated style expression such as
// "red on-black bold underline" into a style. A bare color name sets
// the text color and an "on-" prefixed color name sets the background.
// The remaining vocabulary matches the tokens produced by
// sgr.Style.String, so parsing a style's String output yields an equal
// style. The empty expression yields the zero style.
//
// On failure every bad token is reported, not just the first.
func ParseStyle(expr string) (sgr.Style, error) {
	var (
		opts []sgr.Option
		err  error
	)

	for _, token := range strings.Fields(expr) {
		opt, tokenErr := parseToken(token)
		if tokenErr != nil {
			err = multierror.Append(err, tokenErr)
			continue
		}

		opts = append(opts, opt)
	}

	if err != nil {
		return sgr.Style{}, err
	}

	return sgr.New(opts...), nil
}

func parseToken(token string) (sgr.Option, error) {
	if opt, exists := optionsByToken[token]; exists {
		return opt, nil
	}

	if c, exists := colorsByName[token]; exists {
		return sgr.WithText(c), nil
	}

	if name, found := strings.CutPrefix(token, backgroundPrefix); found {
		c, exists := colorsByName[name]
		if !exists {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, name)
		}

		return sgr.WithBackground(c), nil
	}

	if name, found := strings.CutPrefix(token, fontPrefix); found {
		f, err := parseFont(name)
		if err != nil {
			return nil, err
		}

		return sgr.WithFont(f), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownToken, token)
}

// parseFont accepts "1" through "9", the alternative fonts. The primary
// font is a dimension default and has no token.
func parseFont(name string) (sgr.Font, error) {
	if len(name) != 1 || name[0] < '1' || name[0] > '9' {
		return sgr.FontPrimary, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}

	return sgr.Font(name[0] - '0'), nil
}
