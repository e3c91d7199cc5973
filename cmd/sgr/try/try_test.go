// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package try

import (
	"bytes"
	"testing"

	"github.com/matt-FFFFFF/sgr/theme"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		sample   string
		contains []string
	}{
		{
			name:   "single dimension",
			input:  "red",
			sample: "sample",
			contains: []string{
				"\x1b[31msample\x1b[0m",
				`"\x1b[31m"`,
				"style:    red",
			},
		},
		{
			name:   "multiple dimensions",
			input:  "yellow bold",
			sample: "sample",
			contains: []string{
				"\x1b[33;1msample\x1b[0m",
				`"\x1b[33;1m"`,
				"style:    yellow bold",
			},
		},
		{
			name:   "unknown token reports error",
			input:  "sparkly",
			sample: "sample",
			contains: []string{
				theme.ErrUnknownToken.Error(),
				"\x1b[31;1m",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			evaluate(buf, tc.input, tc.sample)

			for _, want := range tc.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
