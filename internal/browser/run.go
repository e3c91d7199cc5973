// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package browser

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/sgr/theme"
)

// ErrInteractive is returned when the interactive browser fails.
var ErrInteractive = errors.New("interactive browser error")

// Run starts the browser and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, registry theme.Registry, sample string) error {
	program := tea.NewProgram(
		New(registry, sample),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return errors.Join(ErrInteractive, err)
	}

	return nil
}
