// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import "strings"

// Style is a complete description of how a span of text should look,
// one field per SGR dimension. The zero value styles nothing: every
// field holds its dimension's default variant and Codes returns an
// empty list.
//
// Styles are values. Copying one and changing the copy never affects
// the original, so the package presets can be shared freely.
type Style struct {
	// Text is the foreground color.
	Text Color
	// Background is the background color.
	Background Color
	// Intensity is the weight: normal, bold or faint.
	Intensity Intensity
	// Inversion swaps Text and Background.
	Inversion Inversion
	// Concealment hides the text.
	Concealment Concealment
	// FontStyle is the slant: upright, italic or fraktur.
	FontStyle FontStyle
	// Font selects the primary or an alternative font.
	Font Font
	// Underline draws a line below the text.
	Underline Underline
	// Overline draws a line above the text.
	Overline Overline
	// CrossOut strikes the text through.
	CrossOut CrossOut
	// IdeogramUnderline lines the right side of ideograms.
	IdeogramUnderline IdeogramUnderline
	// IdeogramOverline lines the left side of ideograms.
	IdeogramOverline IdeogramOverline
	// IdeogramStress applies stress marking to ideograms.
	IdeogramStress IdeogramStress
	// Blink makes the text blink.
	Blink Blink
	// Frame draws a frame or circle around the text.
	Frame Frame
}

// Option mutates a Style under construction.
type Option func(*Style)

// New returns a Style with the given options applied to the zero value.
func New(opts ...Option) Style {
	s := Style{}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithText sets the text color.
func WithText(c Color) Option {
	return func(s *Style) {
		s.Text = c
	}
}

// WithBackground sets the background color.
func WithBackground(c Color) Option {
	return func(s *Style) {
		s.Background = c
	}
}

// WithIntensity sets the text weight.
func WithIntensity(i Intensity) Option {
	return func(s *Style) {
		s.Intensity = i
	}
}

// WithInversion sets color inversion.
func WithInversion(v Inversion) Option {
	return func(s *Style) {
		s.Inversion = v
	}
}

// WithConcealment sets text concealment.
func WithConcealment(c Concealment) Option {
	return func(s *Style) {
		s.Concealment = c
	}
}

// WithFontStyle sets the slant.
func WithFontStyle(f FontStyle) Option {
	return func(s *Style) {
		s.FontStyle = f
	}
}

// WithFont sets the font.
func WithFont(f Font) Option {
	return func(s *Style) {
		s.Font = f
	}
}

// WithUnderline sets underlining.
func WithUnderline(u Underline) Option {
	return func(s *Style) {
		s.Underline = u
	}
}

// WithOverline sets overlining.
func WithOverline(o Overline) Option {
	return func(s *Style) {
		s.Overline = o
	}
}

// WithCrossOut sets strike-through.
func WithCrossOut(c CrossOut) Option {
	return func(s *Style) {
		s.CrossOut = c
	}
}

// WithIdeogramUnderline sets ideogram underlining.
func WithIdeogramUnderline(u IdeogramUnderline) Option {
	return func(s *Style) {
		s.IdeogramUnderline = u
	}
}

// WithIdeogramOverline sets ideogram overlining.
func WithIdeogramOverline(o IdeogramOverline) Option {
	return func(s *Style) {
		s.IdeogramOverline = o
	}
}

// WithIdeogramStress sets ideogram stress marking.
func WithIdeogramStress(st IdeogramStress) Option {
	return func(s *Style) {
		s.IdeogramStress = st
	}
}

// WithBlink sets the blink rate.
func WithBlink(b Blink) Option {
	return func(s *Style) {
		s.Blink = b
	}
}

// WithFrame sets framing.
func WithFrame(f Frame) Option {
	return func(s *Style) {
		s.Frame = f
	}
}

// Codes returns the SGR codes for every dimension that differs from its
// default, in a fixed order: text color, background color, intensity,
// inversion, concealment, font style, font, underline, overline,
// cross-out, ideogram underline, ideogram overline, ideogram stress,
// blink, frame. Equal styles therefore always produce identical code
// lists. For the zero Style the list is empty.
func (s Style) Codes() []Code {
	var codes []Code

	if !s.Text.isDefault() {
		codes = append(codes, s.Text.fg())
	}

	if !s.Background.isDefault() {
		codes = append(codes, s.Background.bg())
	}

	if !s.Intensity.isDefault() {
		codes = append(codes, s.Intensity.code())
	}

	if !s.Inversion.isDefault() {
		codes = append(codes, s.Inversion.code())
	}

	if !s.Concealment.isDefault() {
		codes = append(codes, s.Concealment.code())
	}

	if !s.FontStyle.isDefault() {
		codes = append(codes, s.FontStyle.code())
	}

	if !s.Font.isDefault() {
		codes = append(codes, s.Font.code())
	}

	if !s.Underline.isDefault() {
		codes = append(codes, s.Underline.code())
	}

	if !s.Overline.isDefault() {
		codes = append(codes, s.Overline.code())
	}

	if !s.CrossOut.isDefault() {
		codes = append(codes, s.CrossOut.code())
	}

	if c, ok := s.IdeogramUnderline.code(); ok {
		codes = append(codes, c)
	}

	if c, ok := s.IdeogramOverline.code(); ok {
		codes = append(codes, c)
	}

	if c, ok := s.IdeogramStress.code(); ok {
		codes = append(codes, c)
	}

	if !s.Blink.isDefault() {
		codes = append(codes, s.Blink.code())
	}

	if !s.Frame.isDefault() {
		codes = append(codes, s.Frame.code())
	}

	return codes
}

// Sequence returns the control sequence that switches the terminal to
// this style.
func (s Style) Sequence() string {
	return Sequence(s.Codes()...)
}

// AppendSequence appends the control sequence for this style to p and
// returns the extended buffer.
func (s Style) AppendSequence(p []byte) []byte {
	return AppendSequence(p, s.Codes()...)
}

// Render returns payload wrapped in this style's control sequence and
// the reset sequence, so anything printed afterwards is unaffected.
func (s Style) Render(payload string) string {
	p := s.AppendSequence(nil)
	p = append(p, payload...)
	p = append(p, ResetSequence...)

	return string(p)
}

// String returns a space separated list of tokens describing every
// non-default dimension, e.g. "red on-black bold underline". The tokens
// are the same vocabulary accepted by theme.ParseStyle. For the zero
// Style the result is the empty string.
func (s Style) String() string {
	var tokens []string

	if !s.Text.isDefault() {
		tokens = append(tokens, s.Text.String())
	}

	if !s.Background.isDefault() {
		tokens = append(tokens, "on-"+s.Background.String())
	}

	if !s.Intensity.isDefault() {
		tokens = append(tokens, s.Intensity.String())
	}

	if !s.Inversion.isDefault() {
		tokens = append(tokens, "inverse")
	}

	if !s.Concealment.isDefault() {
		tokens = append(tokens, "conceal")
	}

	if !s.FontStyle.isDefault() {
		tokens = append(tokens, s.FontStyle.String())
	}

	if !s.Font.isDefault() {
		tokens = append(tokens, "font-"+string('0'+byte(s.Font)))
	}

	if !s.Underline.isDefault() {
		tokens = append(tokens, "underline")
	}

	if !s.Overline.isDefault() {
		tokens = append(tokens, "overline")
	}

	if !s.CrossOut.isDefault() {
		tokens = append(tokens, "cross-out")
	}

	switch s.IdeogramUnderline {
	case IdeogramUnderlineSingle:
		tokens = append(tokens, "ideogram-underline")
	case IdeogramUnderlineDouble:
		tokens = append(tokens, "ideogram-underline-double")
	}

	switch s.IdeogramOverline {
	case IdeogramOverlineSingle:
		tokens = append(tokens, "ideogram-overline")
	case IdeogramOverlineDouble:
		tokens = append(tokens, "ideogram-overline-double")
	}

	if !s.IdeogramStress.isDefault() {
		tokens = append(tokens, "ideogram-stress")
	}

	switch s.Blink {
	case BlinkSlow:
		tokens = append(tokens, "blink-slow")
	case BlinkRapid:
		tokens = append(tokens, "blink-rapid")
	}

	switch s.Frame {
	case Framed:
		tokens = append(tokens, "framed")
	case Encircled:
		tokens = append(tokens, "encircled")
	}

	return strings.Join(tokens, " ")
}

// Presets for common message roles. They are plain values: assigning
// one and modifying the copy leaves the preset untouched.
var (
	// OK marks success output.
	OK = New(WithText(Green))

	// Warning marks recoverable problems.
	Warning = New(WithText(Yellow), WithIntensity(Bold))

	// Error marks failures.
	Error = New(WithText(Red), WithIntensity(Bold))

	// Hint marks secondary detail such as usage tips.
	Hint = New(WithText(Cyan))
)
