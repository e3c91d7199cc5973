// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import "strconv"

// Code is a numeric SGR parameter as defined by ECMA-48. Codes are
// rendered in decimal with no padding, so Code(1) renders as "1".
type Code int

// Reset is the SGR parameter that restores all attributes to their
// defaults.
const Reset Code = 0

const (
	// csi is the control sequence introducer that opens every sequence.
	csi = "\033["
	// terminator closes an SGR sequence.
	terminator = 'm'
)

// ResetSequence is the complete control sequence that restores all
// attributes to their defaults.
const ResetSequence = csi + "0" + string(terminator)

// Sequence renders codes as one SGR control sequence: the control
// sequence introducer, the codes in decimal joined by semicolons, and
// the terminating "m". With no codes the result is "\x1b[m", which
// terminals treat as a reset.
func Sequence(codes ...Code) string {
	return string(AppendSequence(nil, codes...))
}

// AppendSequence appends the SGR control sequence for codes to p and
// returns the extended buffer, following the append convention from the
// standard library.
func AppendSequence(p []byte, codes ...Code) []byte {
	p = append(p, csi...)

	for i, c := range codes {
		if i > 0 {
			p = append(p, ';')
		}

		p = strconv.AppendInt(p, int64(c), 10)
	}

	return append(p, terminator)
}
