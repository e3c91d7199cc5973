// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

// Color is one of the eight standard terminal colors, or ColorDefault,
// which selects the terminal's own default color (SGR 39/49) rather
// than an explicit palette entry.
//
// The same type serves both the text and background dimensions; the
// position in a Style decides whether the 30- or 40-based code family
// is used.
type Color uint8

// Colors, in ANSI palette order.
const (
	ColorDefault Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const (
	codeTextBlack         Code = 30
	codeTextDefault       Code = 39
	codeBackgroundBlack   Code = 40
	codeBackgroundDefault Code = 49
)

func (c Color) isDefault() bool { return c == ColorDefault }

// fg returns the SGR code selecting c as the text color.
func (c Color) fg() Code {
	if c == ColorDefault {
		return codeTextDefault
	}

	return codeTextBlack + Code(c-Black)
}

// bg returns the SGR code selecting c as the background color.
func (c Color) bg() Code {
	if c == ColorDefault {
		return codeBackgroundDefault
	}

	return codeBackgroundBlack + Code(c-Black)
}

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return "default"
	}
}

// Intensity controls the weight of the text.
type Intensity uint8

// Intensities.
const (
	Normal Intensity = iota
	Bold
	Faint
)

func (i Intensity) isDefault() bool { return i == Normal }

func (i Intensity) code() Code {
	switch i {
	case Bold:
		return 1
	case Faint:
		return 2
	default:
		// Bold off. Never emitted: Normal is the default variant and the
		// composer skips defaults.
		return 21
	}
}

func (i Intensity) String() string {
	switch i {
	case Bold:
		return "bold"
	case Faint:
		return "faint"
	default:
		return "normal"
	}
}

// Inversion swaps the text and background colors.
type Inversion uint8

// Inversion states.
const (
	InversionOff Inversion = iota
	InversionOn
)

func (v Inversion) isDefault() bool { return v == InversionOff }

func (v Inversion) code() Code {
	if v == InversionOn {
		return 7
	}

	return 27
}

func (v Inversion) String() string {
	if v == InversionOn {
		return "on"
	}

	return "off"
}

// Concealment hides the text without changing its width.
// Not widely supported.
type Concealment uint8

// Concealment states.
const (
	Revealed Concealment = iota
	Concealed
)

func (c Concealment) isDefault() bool { return c == Revealed }

func (c Concealment) code() Code {
	if c == Concealed {
		return 8
	}

	return 28
}

func (c Concealment) String() string {
	if c == Concealed {
		return "concealed"
	}

	return "revealed"
}

// FontStyle selects the glyph slant: upright, italic, or fraktur.
type FontStyle uint8

// Font styles. Fraktur is not widely supported.
const (
	Upright FontStyle = iota
	Italic
	Fraktur
)

func (f FontStyle) isDefault() bool { return f == Upright }

func (f FontStyle) code() Code {
	switch f {
	case Italic:
		return 3
	case Fraktur:
		return 20
	default:
		return 23
	}
}

func (f FontStyle) String() string {
	switch f {
	case Italic:
		return "italic"
	case Fraktur:
		return "fraktur"
	default:
		return "upright"
	}
}

// Font selects the primary font or one of the nine alternative fonts.
// Alternative fonts are not widely supported.
type Font uint8

// Fonts.
const (
	FontPrimary Font = iota
	FontAlt1
	FontAlt2
	FontAlt3
	FontAlt4
	FontAlt5
	FontAlt6
	FontAlt7
	FontAlt8
	FontAlt9
)

const codeFontPrimary Code = 10

func (f Font) isDefault() bool { return f == FontPrimary }

// code returns the SGR font selection code, 10 for the primary font
// through 19 for the ninth alternative.
func (f Font) code() Code {
	return codeFontPrimary + Code(f)
}

func (f Font) String() string {
	if f == FontPrimary {
		return "primary"
	}

	return "alt-" + string('0'+byte(f))
}

// Underline draws a line below the text.
type Underline uint8

// Underline states.
const (
	UnderlineOff Underline = iota
	Underlined
)

func (u Underline) isDefault() bool { return u == UnderlineOff }

func (u Underline) code() Code {
	if u == Underlined {
		return 4
	}

	return 24
}

func (u Underline) String() string {
	if u == Underlined {
		return "on"
	}

	return "off"
}

// Overline draws a line above the text. Not widely supported.
type Overline uint8

// Overline states.
const (
	OverlineOff Overline = iota
	Overlined
)

func (o Overline) isDefault() bool { return o == OverlineOff }

func (o Overline) code() Code {
	if o == Overlined {
		return 53
	}

	return 55
}

func (o Overline) String() string {
	if o == Overlined {
		return "on"
	}

	return "off"
}

// CrossOut strikes the text through.
type CrossOut uint8

// CrossOut states.
const (
	CrossOutOff CrossOut = iota
	CrossedOut
)

func (c CrossOut) isDefault() bool { return c == CrossOutOff }

func (c CrossOut) code() Code {
	if c == CrossedOut {
		return 9
	}

	return 29
}

func (c CrossOut) String() string {
	if c == CrossedOut {
		return "on"
	}

	return "off"
}

// IdeogramUnderline draws a single or double line on the right side
// of ideograms. Not widely supported.
type IdeogramUnderline uint8

// Ideogram underline states.
const (
	IdeogramUnderlineOff IdeogramUnderline = iota
	IdeogramUnderlineSingle
	IdeogramUnderlineDouble
)

func (u IdeogramUnderline) isDefault() bool { return u == IdeogramUnderlineOff }

// code returns the SGR code for the variant. There is no standard code
// for switching ideogram underlining off on its own, so the off variant
// reports false and is never emitted.
func (u IdeogramUnderline) code() (Code, bool) {
	switch u {
	case IdeogramUnderlineSingle:
		return 60, true
	case IdeogramUnderlineDouble:
		return 61, true
	default:
		return 0, false
	}
}

func (u IdeogramUnderline) String() string {
	switch u {
	case IdeogramUnderlineSingle:
		return "single"
	case IdeogramUnderlineDouble:
		return "double"
	default:
		return "off"
	}
}

// IdeogramOverline draws a single or double line on the left side of
// ideograms. Not widely supported.
type IdeogramOverline uint8

// Ideogram overline states.
const (
	IdeogramOverlineOff IdeogramOverline = iota
	IdeogramOverlineSingle
	IdeogramOverlineDouble
)

func (o IdeogramOverline) isDefault() bool { return o == IdeogramOverlineOff }

// code returns the SGR code for the variant. As with ideogram
// underlining there is no standard off code, so the off variant reports
// false and is never emitted.
func (o IdeogramOverline) code() (Code, bool) {
	switch o {
	case IdeogramOverlineSingle:
		return 62, true
	case IdeogramOverlineDouble:
		return 63, true
	default:
		return 0, false
	}
}

func (o IdeogramOverline) String() string {
	switch o {
	case IdeogramOverlineSingle:
		return "single"
	case IdeogramOverlineDouble:
		return "double"
	default:
		return "off"
	}
}

// IdeogramStress applies a stress marking to ideograms.
// Not widely supported.
type IdeogramStress uint8

// Ideogram stress states.
const (
	IdeogramStressOff IdeogramStress = iota
	IdeogramStressed
)

func (s IdeogramStress) isDefault() bool { return s == IdeogramStressOff }

// code returns the SGR code for the variant. There is no standard code
// for switching stress marking off on its own, so the off variant
// reports false and is never emitted.
func (s IdeogramStress) code() (Code, bool) {
	if s == IdeogramStressed {
		return 64, true
	}

	return 0, false
}

func (s IdeogramStress) String() string {
	if s == IdeogramStressed {
		return "on"
	}

	return "off"
}

// Blink makes the text blink. Rapid blinking is not widely supported.
type Blink uint8

// Blink rates.
const (
	BlinkOff Blink = iota
	BlinkSlow
	BlinkRapid
)

func (b Blink) isDefault() bool { return b == BlinkOff }

func (b Blink) code() Code {
	switch b {
	case BlinkSlow:
		return 5
	case BlinkRapid:
		return 6
	default:
		return 25
	}
}

func (b Blink) String() string {
	switch b {
	case BlinkSlow:
		return "slow"
	case BlinkRapid:
		return "rapid"
	default:
		return "off"
	}
}

// Frame draws a frame or circle around the text. Not widely supported.
type Frame uint8

// Frame shapes.
const (
	FrameOff Frame = iota
	Framed
	Encircled
)

func (f Frame) isDefault() bool { return f == FrameOff }

func (f Frame) code() Code {
	switch f {
	case Framed:
		return 51
	case Encircled:
		return 52
	default:
		return 54
	}
}

func (f Frame) String() string {
	switch f {
	case Framed:
		return "framed"
	case Encircled:
		return "encircled"
	default:
		return "off"
	}
}
