// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package theme

import (
	"path/filepath"
	"strings"
)

// LoadFile loads themes from path, dispatching on the file extension.
// Files ending in .yaml or .yml hold a single YAML theme; anything else
// is parsed as HCL, which may declare several themes per file.
func LoadFile(path string) ([]*Theme, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		t, err := LoadYAMLFile(path)
		if err != nil {
			return nil, err
		}

		return []*Theme{t}, nil
	default:
		return LoadHCLFile(path)
	}
}
