// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name  string
		codes []Code
		want  string
	}{
		{"no codes", nil, "\x1b[m"},
		{"reset", []Code{Reset}, "\x1b[0m"},
		{"single", []Code{31}, "\x1b[31m"},
		{"pair", []Code{31, 1}, "\x1b[31;1m"},
		{"many", []Code{37, 44, 4, 5}, "\x1b[37;44;4;5m"},
		{"multi digit", []Code{49, 64}, "\x1b[49;64m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sequence(tt.codes...))
		})
	}
}

func TestAppendSequenceExtendsBuffer(t *testing.T) {
	p := []byte("before")
	p = AppendSequence(p, 32, 1)

	assert.Equal(t, "before\x1b[32;1m", string(p))
}

func TestAppendSequenceNilBuffer(t *testing.T) {
	assert.Equal(t, "\x1b[1m", string(AppendSequence(nil, 1)))
}

func TestResetSequence(t *testing.T) {
	assert.Equal(t, "\x1b[0m", ResetSequence)
	assert.Equal(t, ResetSequence, Sequence(Reset))
}
