// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/matt-FFFFFF/sgr"
	"github.com/matt-FFFFFF/sgr/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStyle(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		themeName string
		role      string
		want      sgr.Style
		wantErr   error
	}{
		{
			name: "expression",
			expr: "red bold",
			want: sgr.New(sgr.WithText(sgr.Red), sgr.WithIntensity(sgr.Bold)),
		},
		{
			name: "empty expression gives zero style",
			want: sgr.Style{},
		},
		{
			name:    "bad expression",
			expr:    "no-such-token",
			wantErr: ErrParseStyle,
		},
		{
			name:      "theme role",
			themeName: "default",
			role:      theme.RoleWarning,
			want:      sgr.Warning,
		},
		{
			name:      "unknown theme",
			themeName: "no-such-theme",
			role:      theme.RoleOK,
			wantErr:   theme.ErrUnknownTheme,
		},
		{
			name:      "unknown role",
			themeName: "default",
			role:      "no-such-role",
			wantErr:   ErrUnknownRole,
		},
		{
			name:      "style and theme are mutually exclusive",
			expr:      "red",
			themeName: "default",
			role:      theme.RoleOK,
			wantErr:   ErrStyleAndTheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveStyle(tt.expr, tt.themeName, tt.role)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
