// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"testing"

	"github.com/matt-FFFFFF/sgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	d := Default()

	assert.Equal(t, "default", d.Name)
	assert.Equal(t, sgr.OK, d.Style(RoleOK))
	assert.Equal(t, sgr.Warning, d.Style(RoleWarning))
	assert.Equal(t, sgr.Error, d.Style(RoleError))
	assert.Equal(t, sgr.Hint, d.Style(RoleHint))
	assert.Equal(t, []string{RoleError, RoleHint, RoleOK, RoleWarning}, d.Roles())
}

func TestStyleUnknownRoleIsZero(t *testing.T) {
	d := Default()

	assert.Equal(t, sgr.Style{}, d.Style("no-such-role"))
}

func TestDefaultReturnsFreshValue(t *testing.T) {
	d := Default()
	d.Styles[RoleOK] = sgr.New(sgr.WithText(sgr.Magenta))

	assert.Equal(t, sgr.OK, Default().Style(RoleOK),
		"modifying one Default result must not affect the next")
}

func TestRegistry(t *testing.T) {
	custom := New("registry-test")
	custom.Styles[RoleError] = sgr.New(sgr.WithText(sgr.Red), sgr.WithUnderline(sgr.Underlined))

	Register(custom)

	got, err := Get("registry-test")
	require.NoError(t, err)
	assert.Same(t, custom, got)

	assert.Contains(t, Names(), "default")
	assert.Contains(t, Names(), "registry-test")
	assert.IsIncreasing(t, Names())
}

func TestGetUnknownTheme(t *testing.T) {
	_, err := Get("does-not-exist")

	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.ErrorContains(t, err, "does-not-exist")
}
