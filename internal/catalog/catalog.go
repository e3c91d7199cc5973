// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package catalog enumerates the styling dimensions and their variants
// for display. The swatch command and the interactive browser both
// render their listings from the sections returned here.
package catalog

import (
	"github.com/matt-FFFFFF/sgr"
)

// Entry is a single variant together with the style that selects it.
type Entry struct {
	// Name is the variant's style expression, or "default" for the
	// variant that styles nothing.
	Name string
	// Style selects just this variant.
	Style sgr.Style
}

// Section groups the entries of one styling dimension.
type Section struct {
	// Title names the dimension.
	Title string
	// Entries holds one entry per variant, default variant first.
	Entries []Entry
}

// Sections returns one section per styling dimension, in the order the
// codes are emitted.
func Sections() []Section {
	return []Section{
		textColours(),
		backgroundColours(),
		section("Intensity",
			sgr.WithIntensity(sgr.Normal),
			sgr.WithIntensity(sgr.Bold),
			sgr.WithIntensity(sgr.Faint),
		),
		section("Inversion",
			sgr.WithInversion(sgr.InversionOff),
			sgr.WithInversion(sgr.InversionOn),
		),
		section("Concealment",
			sgr.WithConcealment(sgr.Revealed),
			sgr.WithConcealment(sgr.Concealed),
		),
		section("Font style",
			sgr.WithFontStyle(sgr.Upright),
			sgr.WithFontStyle(sgr.Italic),
			sgr.WithFontStyle(sgr.Fraktur),
		),
		fonts(),
		section("Underline",
			sgr.WithUnderline(sgr.UnderlineOff),
			sgr.WithUnderline(sgr.Underlined),
		),
		section("Overline",
			sgr.WithOverline(sgr.OverlineOff),
			sgr.WithOverline(sgr.Overlined),
		),
		section("Cross out",
			sgr.WithCrossOut(sgr.CrossOutOff),
			sgr.WithCrossOut(sgr.CrossedOut),
		),
		section("Ideogram underline",
			sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineOff),
			sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineSingle),
			sgr.WithIdeogramUnderline(sgr.IdeogramUnderlineDouble),
		),
		section("Ideogram overline",
			sgr.WithIdeogramOverline(sgr.IdeogramOverlineOff),
			sgr.WithIdeogramOverline(sgr.IdeogramOverlineSingle),
			sgr.WithIdeogramOverline(sgr.IdeogramOverlineDouble),
		),
		section("Ideogram stress",
			sgr.WithIdeogramStress(sgr.IdeogramStressOff),
			sgr.WithIdeogramStress(sgr.IdeogramStressed),
		),
		section("Blink",
			sgr.WithBlink(sgr.BlinkOff),
			sgr.WithBlink(sgr.BlinkSlow),
			sgr.WithBlink(sgr.BlinkRapid),
		),
		section("Frame",
			sgr.WithFrame(sgr.FrameOff),
			sgr.WithFrame(sgr.Framed),
			sgr.WithFrame(sgr.Encircled),
		),
	}
}

// Presets returns the package presets as entries.
func Presets() []Entry {
	return []Entry{
		{Name: "ok", Style: sgr.OK},
		{Name: "warning", Style: sgr.Warning},
		{Name: "error", Style: sgr.Error},
		{Name: "hint", Style: sgr.Hint},
	}
}

func section(title string, opts ...sgr.Option) Section {
	entries := make([]Entry, 0, len(opts))

	for _, opt := range opts {
		st := sgr.New(opt)

		name := st.String()
		if name == "" {
			name = "default"
		}

		entries = append(entries, Entry{Name: name, Style: st})
	}

	return Section{Title: title, Entries: entries}
}

func textColours() Section {
	opts := make([]sgr.Option, 0, int(sgr.White)+1)
	for c := sgr.ColorDefault; c <= sgr.White; c++ {
		opts = append(opts, sgr.WithText(c))
	}

	return section("Text colour", opts...)
}

func backgroundColours() Section {
	opts := make([]sgr.Option, 0, int(sgr.White)+1)
	for c := sgr.ColorDefault; c <= sgr.White; c++ {
		opts = append(opts, sgr.WithBackground(c))
	}

	return section("Background colour", opts...)
}

func fonts() Section {
	opts := make([]sgr.Option, 0, int(sgr.FontAlt9)+1)
	for f := sgr.FontPrimary; f <= sgr.FontAlt9; f++ {
		opts = append(opts, sgr.WithFont(f))
	}

	return section("Font", opts...)
}
