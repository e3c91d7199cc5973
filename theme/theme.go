// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matt-FFFFFF/sgr"
)

// Well-known roles. Themes may define any role name; these are the ones
// the built-in theme provides.
const (
	RoleOK      = "ok"
	RoleWarning = "warning"
	RoleError   = "error"
	RoleHint    = "hint"
)

var (
	// ErrUnknownTheme is returned when a theme name is not registered.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrMissingName is returned when a theme declaration has no name.
	ErrMissingName = errors.New("theme must have a name")
)

// Theme is a named mapping from message roles to styles.
type Theme struct {
	// Name identifies the theme.
	Name string
	// Styles holds one style per role.
	Styles map[string]sgr.Style
}

// New returns an empty theme with the given name.
func New(name string) *Theme {
	return &Theme{
		Name:   name,
		Styles: make(map[string]sgr.Style),
	}
}

// Style returns the style for role. Unknown roles get the zero style,
// which styles nothing, so looking up a role a theme does not define is
// always safe.
func (t *Theme) Style(role string) sgr.Style {
	return t.Styles[role]
}

// Roles returns the theme's role names in sorted order.
func (t *Theme) Roles() []string {
	return slices.Sorted(maps.Keys(t.Styles))
}

// Default returns the built-in theme, wiring the well-known roles to
// the sgr presets. Each call returns a fresh value, so callers can
// modify the result without affecting later calls.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Styles: map[string]sgr.Style{
			RoleOK:      sgr.OK,
			RoleWarning: sgr.Warning,
			RoleError:   sgr.Error,
			RoleHint:    sgr.Hint,
		},
	}
}

// Registry holds the mapping between theme names and themes.
type Registry map[string]*Theme

// DefaultRegistry is the default registry for themes. It starts with
// the built-in theme.
var DefaultRegistry = Registry{
	"default": Default(),
}

// Register adds t to the default registry, replacing any theme with the
// same name.
func Register(t *Theme) {
	DefaultRegistry[t.Name] = t
}

// Get returns the named theme from the default registry.
func Get(name string) (*Theme, error) {
	t, exists := DefaultRegistry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}

	return t, nil
}

// Names returns the names in the default registry in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(DefaultRegistry))
}
