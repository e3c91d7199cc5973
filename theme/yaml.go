// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

var (
	// ErrReadThemeFile is returned when a theme file cannot be read.
	ErrReadThemeFile = errors.New("failed to read theme file")
	// ErrYamlUnmarshal is returned when a YAML theme cannot be unmarshaled.
	ErrYamlUnmarshal = errors.New("failed to unmarshal YAML theme")
	// ErrThemeDefinition is returned when a theme declaration contains
	// invalid style expressions.
	ErrThemeDefinition = errors.New("invalid theme definition")
)

// themeDefinition is the on-disk YAML shape of a theme.
type themeDefinition struct {
	Name   string            `yaml:"name"`
	Styles map[string]string `yaml:"styles"`
}

// LoadYAMLFile reads a YAML theme from the filesystem returned by
// FsFactory.
func LoadYAMLFile(name string) (*Theme, error) {
	fs := FsFactory()

	content, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, errors.Join(ErrReadThemeFile, err)
	}

	return ParseYAML(content)
}

// ParseYAML parses a YAML theme declaration:
//
//	name: solarized
//	styles:
//	  ok: green
//	  error: red bold underline
//
// Style values use the ParseStyle vocabulary. Every invalid style is
// reported, not just the first.
func ParseYAML(content []byte) (*Theme, error) {
	def := new(themeDefinition)
	if err := yaml.Unmarshal(content, def); err != nil {
		return nil, errors.Join(ErrYamlUnmarshal, err)
	}

	return def.toTheme()
}

func (d *themeDefinition) toTheme() (*Theme, error) {
	if d.Name == "" {
		return nil, ErrMissingName
	}

	t := New(d.Name)

	var err error

	for role, expr := range d.Styles {
		style, parseErr := ParseStyle(expr)
		if parseErr != nil {
			err = multierror.Append(err, fmt.Errorf("role %q: %w", role, parseErr))
			continue
		}

		t.Styles[role] = style
	}

	if err != nil {
		return nil, errors.Join(ErrThemeDefinition, err)
	}

	return t, nil
}
