// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/matt-FFFFFF/sgr"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

const (
	themeFileExt   = ".sgrtheme.hcl"
	themeBlockType = "theme"
	styleBlockType = "style"
)

var (
	// ErrNoThemeFile is returned when no `.sgrtheme.hcl` file is found
	// in the specified directory.
	ErrNoThemeFile = errors.New("no `.sgrtheme.hcl` file found in the specified directory")
	// ErrParseThemeFile is returned when there is an error parsing the
	// blocks in a theme file.
	ErrParseThemeFile = errors.New("failed to parse blocks in the theme file")
	// ErrBlockLabel is returned when a theme or style block does not
	// have exactly one label.
	ErrBlockLabel = errors.New("block requires exactly one label")
	// ErrUnknownAttribute is returned when a style block contains an
	// attribute that does not name a dimension.
	ErrUnknownAttribute = errors.New("unknown style attribute")
	// ErrAttributeValue is returned when a style attribute has a value
	// of the wrong type or outside the dimension's vocabulary.
	ErrAttributeValue = errors.New("invalid attribute value")
)

// ErrInvalidBlock represents an error for an invalid block type in a
// theme file.
type ErrInvalidBlock struct {
	BlockType string
	Range     hcl.Range
}

// NewErrInvalidBlock creates a new ErrInvalidBlock with the specified
// block type and range.
func NewErrInvalidBlock(blockType string, r hcl.Range) *ErrInvalidBlock {
	return &ErrInvalidBlock{
		BlockType: blockType,
		Range:     r,
	}
}

// Error implements the error interface for ErrInvalidBlock.
func (e *ErrInvalidBlock) Error() string {
	return fmt.Sprintf("invalid block type: %s at %s", e.BlockType, e.Range.String())
}

// LoadHCLDir loads every `.sgrtheme.hcl` file in dir from the
// filesystem returned by FsFactory and returns the themes they declare.
func LoadHCLDir(dir string) ([]*Theme, error) {
	fs := FsFactory()

	matches, err := afero.Glob(fs, filepath.Join(dir, "*"+themeFileExt))
	if err != nil {
		// the only error we expect here is ErrBadPattern, which should never happen as it is a constant.
		panic(err)
	}

	if len(matches) == 0 {
		return nil, ErrNoThemeFile
	}

	var themes []*Theme

	for _, filename := range matches {
		content, fsErr := afero.ReadFile(fs, filename)
		if fsErr != nil {
			err = multierror.Append(err, fsErr)
			continue
		}

		parsed, parseErr := ParseHCL(content, filename)
		if parseErr != nil {
			err = multierror.Append(err, parseErr)
			continue
		}

		themes = append(themes, parsed...)
	}

	if err != nil {
		return nil, errors.Join(ErrParseThemeFile, err)
	}

	return themes, nil
}

// LoadHCLFile loads a single HCL theme file from the filesystem
// returned by FsFactory.
func LoadHCLFile(name string) ([]*Theme, error) {
	fs := FsFactory()

	content, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, errors.Join(ErrReadThemeFile, err)
	}

	themes, err := ParseHCL(content, name)
	if err != nil {
		return nil, errors.Join(ErrParseThemeFile, err)
	}

	return themes, nil
}

// ParseHCL parses theme declarations from HCL source:
//
//	theme "solarized" {
//	  style "error" {
//	    text      = "red"
//	    intensity = "bold"
//	    underline = true
//	  }
//	}
//
// filename is used in diagnostics. Every problem in the source is
// reported, not just the first.
func ParseHCL(content []byte, filename string) ([]*Theme, error) {
	file, diag := hclsyntax.ParseConfig(content, filename, hcl.InitialPos)
	if diag.HasErrors() {
		return nil, multierror.Append(nil, diag.Errs()...)
	}

	body := file.Body.(*hclsyntax.Body)

	var (
		themes []*Theme
		err    error
	)

	for _, block := range body.Blocks {
		if block.Type != themeBlockType {
			err = multierror.Append(err, NewErrInvalidBlock(block.Type, block.Range()))
			continue
		}

		t, themeErr := decodeThemeBlock(block)
		if themeErr != nil {
			err = multierror.Append(err, themeErr)
			continue
		}

		themes = append(themes, t)
	}

	if err != nil {
		return nil, err
	}

	return themes, nil
}

func decodeThemeBlock(block *hclsyntax.Block) (*Theme, error) {
	if len(block.Labels) != 1 {
		return nil, fmt.Errorf("%w: %s block at %s", ErrBlockLabel, block.Type, block.Range())
	}

	t := New(block.Labels[0])

	var err error

	for _, inner := range block.Body.Blocks {
		if inner.Type != styleBlockType {
			err = multierror.Append(err, NewErrInvalidBlock(inner.Type, inner.Range()))
			continue
		}

		if len(inner.Labels) != 1 {
			err = multierror.Append(err, fmt.Errorf("%w: %s block at %s", ErrBlockLabel, inner.Type, inner.Range()))
			continue
		}

		style, styleErr := decodeStyleBlock(inner)
		if styleErr != nil {
			err = multierror.Append(err, styleErr)
			continue
		}

		t.Styles[inner.Labels[0]] = style
	}

	if err != nil {
		return nil, err
	}

	return t, nil
}

func decodeStyleBlock(block *hclsyntax.Block) (sgr.Style, error) {
	var (
		opts []sgr.Option
		err  error
	)

	for name, attr := range block.Body.Attributes {
		val, diag := attr.Expr.Value(nil)
		if diag.HasErrors() {
			err = multierror.Append(err, diag.Errs()...)
			continue
		}

		opt, optErr := optionForAttribute(name, val, attr.SrcRange)
		if optErr != nil {
			err = multierror.Append(err, optErr)
			continue
		}

		opts = append(opts, opt)
	}

	if err != nil {
		return sgr.Style{}, err
	}

	return sgr.New(opts...), nil
}

var intensityOptions = map[string]sgr.Option{
	"normal": sgr.WithIntensity(sgr.Normal),
	"bold":   sgr.WithIntensity(sgr.Bold),
	"faint":  sgr.WithIntensity(sgr.Faint),
}

var fontStyleOptions = map[string]sgr.Option{
	"upright": sgr.WithFontStyle(sgr.Upright),
	"italic":  sgr.WithFontStyle(sgr.Italic),
	"fraktur": sgr.WithFontStyle(sgr.Fraktur),
}

var ideogramUnderlineOptions = map[string]sgr.Option{
	"off":    sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineOff),
	"single": sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineSingle),
	"double": sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineDouble),
}

var ideogramOverlineOptions = map[string]sgr.Option{
	"off":    sgr.WithIdeogramOverline(sgr.IdeogramOverlineOff),
	"single": sgr.WithIdeogramOverline(sgr.IdeogramOverlineSingle),
	"double": sgr.WithIdeogramOverline(sgr.IdeogramOverlineDouble),
}

var blinkOptions = map[string]sgr.Option{
	"off":   sgr.WithBlink(sgr.BlinkOff),
	"slow":  sgr.WithBlink(sgr.BlinkSlow),
	"rapid": sgr.WithBlink(sgr.BlinkRapid),
}

var frameOptions = map[string]sgr.Option{
	"off":       sgr.WithFrame(sgr.FrameOff),
	"framed":    sgr.WithFrame(sgr.Framed),
	"encircled": sgr.WithFrame(sgr.Encircled),
}

// optionForAttribute maps one style block attribute to an option.
// Attribute names are the dimension names in snake case.
func optionForAttribute(name string, val cty.Value, r hcl.Range) (sgr.Option, error) {
	switch name {
	case "text":
		c, err := colorValue(val, r)
		if err != nil {
			return nil, err
		}

		return sgr.WithText(c), nil
	case "background":
		c, err := colorValue(val, r)
		if err != nil {
			return nil, err
		}

		return sgr.WithBackground(c), nil
	case "intensity":
		return lookupOption(val, r, intensityOptions)
	case "inverse":
		return boolOption(val, r,
			sgr.WithInversion(sgr.InversionOn),
			sgr.WithInversion(sgr.InversionOff))
	case "conceal":
		return boolOption(val, r,
			sgr.WithConcealment(sgr.Concealed),
			sgr.WithConcealment(sgr.Revealed))
	case "font_style":
		return lookupOption(val, r, fontStyleOptions)
	case "font":
		return fontOption(val, r)
	case "underline":
		return boolOption(val, r,
			sgr.WithUnderline(sgr.Underlined),
			sgr.WithUnderline(sgr.UnderlineOff))
	case "overline":
		return boolOption(val, r,
			sgr.WithOverline(sgr.Overlined),
			sgr.WithOverline(sgr.OverlineOff))
	case "cross_out":
		return boolOption(val, r,
			sgr.WithCrossOut(sgr.CrossedOut),
			sgr.WithCrossOut(sgr.CrossOutOff))
	case "ideogram_underline":
		return lookupOption(val, r, ideogramUnderlineOptions)
	case "ideogram_overline":
		return lookupOption(val, r, ideogramOverlineOptions)
	case "ideogram_stress":
		return boolOption(val, r,
			sgr.WithIdeogramStress(sgr.IdeogramStressed),
			sgr.WithIdeogramStress(sgr.IdeogramStressOff))
	case "blink":
		return lookupOption(val, r, blinkOptions)
	case "frame":
		return lookupOption(val, r, frameOptions)
	default:
		return nil, fmt.Errorf("%w: %q at %s", ErrUnknownAttribute, name, r)
	}
}

func stringValue(val cty.Value, r hcl.Range) (string, error) {
	if val.Type() != cty.String {
		return "", fmt.Errorf("%w: expected string at %s", ErrAttributeValue, r)
	}

	return val.AsString(), nil
}

// lookupOption resolves a string attribute against a vocabulary map.
func lookupOption(val cty.Value, r hcl.Range, vocab map[string]sgr.Option) (sgr.Option, error) {
	s, err := stringValue(val, r)
	if err != nil {
		return nil, err
	}

	opt, exists := vocab[s]
	if !exists {
		return nil, fmt.Errorf("%w: %q at %s", ErrAttributeValue, s, r)
	}

	return opt, nil
}

// boolOption maps a bool attribute to the on option for true and the
// off option for false.
func boolOption(val cty.Value, r hcl.Range, on, off sgr.Option) (sgr.Option, error) {
	if val.Type() != cty.Bool {
		return nil, fmt.Errorf("%w: expected bool at %s", ErrAttributeValue, r)
	}

	if val.True() {
		return on, nil
	}

	return off, nil
}

func colorValue(val cty.Value, r hcl.Range) (sgr.Color, error) {
	s, err := stringValue(val, r)
	if err != nil {
		return sgr.ColorDefault, err
	}

	c, exists := colorsByName[s]
	if !exists {
		return sgr.ColorDefault, fmt.Errorf("%w: %q at %s", ErrUnknownColor, s, r)
	}

	return c, nil
}

// fontOption accepts 0, the primary font, through 9, the ninth
// alternative font.
func fontOption(val cty.Value, r hcl.Range) (sgr.Option, error) {
	if val.Type() != cty.Number {
		return nil, fmt.Errorf("%w: expected number at %s", ErrAttributeValue, r)
	}

	bf := val.AsBigFloat()
	if !bf.IsInt() {
		return nil, fmt.Errorf("%w: font must be a whole number at %s", ErrAttributeValue, r)
	}

	n, _ := bf.Int64()
	if n < 0 || n > 9 {
		return nil, fmt.Errorf("%w: font must be 0 to 9 at %s", ErrAttributeValue, r)
	}

	return sgr.WithFont(sgr.Font(n)), nil
}
