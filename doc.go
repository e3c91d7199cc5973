// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sgr builds ANSI SGR (Select Graphic Rendition) control
// sequences for styling terminal text: colors, intensity, underline,
// blink and the other dimensions defined by ECMA-48.
//
// A Style holds one variant per dimension and the zero value styles
// nothing. Construct styles with New and functional options, then
// render text with Render, or write it with Fprint and Fprintln:
//
//	warn := sgr.New(sgr.WithText(sgr.Yellow), sgr.WithIntensity(sgr.Bold))
//	fmt.Println(warn.Render("disk nearly full"))
//
// Presets are provided for the common message roles: OK, Warning,
// Error and Hint.
//
// Sequences are emitted unconditionally. Callers that want to respect
// NO_COLOR, FORCE_COLOR and terminal detection can consult Enabled.
package sgr
