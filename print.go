// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import "io"

// flusher is implemented by buffered writers such as bufio.Writer.
type flusher interface {
	Flush() error
}

// Fprint writes payload to w wrapped in s's control sequence and the
// reset sequence. It returns the number of bytes written and the first
// error encountered, unmodified. On error the terminal may be left
// styled; writing ResetSequence recovers it.
func Fprint(w io.Writer, s Style, payload string) (int, error) {
	n, err := io.WriteString(w, s.Sequence())
	if err != nil {
		return n, err
	}

	m, err := io.WriteString(w, payload)
	n += m

	if err != nil {
		return n, err
	}

	m, err = io.WriteString(w, ResetSequence)
	n += m

	return n, err
}

// Fprintln writes payload like Fprint, then a single newline after the
// reset sequence so the line break itself is never styled. If w has a
// Flush method the output is flushed before returning, which keeps
// styled lines intact on buffered writers.
func Fprintln(w io.Writer, s Style, payload string) (int, error) {
	n, err := Fprint(w, s, payload)
	if err != nil {
		return n, err
	}

	m, err := io.WriteString(w, "\n")
	n += m

	if err != nil {
		return n, err
	}

	if f, ok := w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return n, err
		}
	}

	return n, nil
}
