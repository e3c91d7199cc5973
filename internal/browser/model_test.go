// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matt-FFFFFF/sgr/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sizedModel(t *testing.T, registry theme.Registry) *Model {
	t.Helper()

	m := New(registry, "")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	sized, ok := updated.(*Model)
	require.True(t, ok)
	require.True(t, sized.ready)

	return sized
}

func TestNewDefaults(t *testing.T) {
	m := New(nil, "")

	assert.Equal(t, DefaultSample, m.sample)
	assert.Equal(t, pageCatalog, m.page)
	assert.False(t, m.ready)
}

func TestNewKeepsSample(t *testing.T) {
	m := New(nil, "hello")

	assert.Equal(t, "hello", m.sample)
}

func TestPageString(t *testing.T) {
	tests := []struct {
		page page
		want string
	}{
		{page: pageCatalog, want: "catalog"},
		{page: pagePresets, want: "presets"},
		{page: pageThemes, want: "themes"},
		{page: pageCount, want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.String())
		})
	}
}

func TestUpdateWindowSize(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := sizedModel(t, nil)

	assert.Equal(t, 100, m.viewport.Width)
	assert.Greater(t, m.viewport.Height, 0)
	assert.Less(t, m.viewport.Height, 40)
}

func TestUpdateQuitKey(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := sizedModel(t, nil)

	updated, cmd := m.Update(keyMsg("q"))

	quit, ok := updated.(*Model)
	require.True(t, ok)
	assert.True(t, quit.quitting)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Equal(t, "Shutting down...\n", quit.View())
}

func TestUpdateCtrlCQuits(t *testing.T) {
	m := sizedModel(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdatePageCycle(t *testing.T) {
	m := sizedModel(t, nil)

	tab := tea.KeyMsg{Type: tea.KeyTab}

	_, _ = m.Update(tab)
	assert.Equal(t, pagePresets, m.page)

	_, _ = m.Update(tab)
	assert.Equal(t, pageThemes, m.page)

	_, _ = m.Update(tab)
	assert.Equal(t, pageCatalog, m.page, "next page should wrap around")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, pageThemes, m.page, "previous page should wrap around")
}

func TestUpdateHelpToggle(t *testing.T) {
	m := sizedModel(t, nil)

	require.False(t, m.help.ShowAll)

	_, _ = m.Update(keyMsg("?"))
	assert.True(t, m.help.ShowAll)

	_, _ = m.Update(keyMsg("?"))
	assert.False(t, m.help.ShowAll)
}

func TestPageContentCatalog(t *testing.T) {
	m := New(nil, "sample")

	content := m.pageContent()

	assert.Contains(t, content, "Text colour")
	assert.Contains(t, content, "Frame")
	assert.Contains(t, content, "\x1b[31msample\x1b[0m", "red swatch should be rendered")
	assert.Contains(t, content, "ideogram-underline-double")
}

func TestPageContentPresets(t *testing.T) {
	m := New(nil, "sample")
	m.page = pagePresets

	content := m.pageContent()

	assert.Contains(t, content, "warning")
	assert.Contains(t, content, "yellow bold")
	assert.Contains(t, content, "\x1b[33;1msample\x1b[0m")
}

func TestPageContentThemes(t *testing.T) {
	registry := theme.Registry{"default": theme.Default()}

	m := New(registry, "sample")
	m.page = pageThemes

	content := m.pageContent()

	assert.Contains(t, content, "default")
	assert.Contains(t, content, theme.RoleError)
	assert.Contains(t, content, "red bold")
	assert.Contains(t, content, "\x1b[31;1msample\x1b[0m")
}

func TestPageContentThemesEmptyRegistry(t *testing.T) {
	m := New(theme.Registry{}, "sample")
	m.page = pageThemes

	assert.Equal(t, "No themes registered.\n", m.pageContent())
}

func TestViewBeforeReady(t *testing.T) {
	m := New(nil, "")

	assert.Equal(t, "Loading...", m.View())
}

func TestViewAfterResize(t *testing.T) {
	m := sizedModel(t, theme.Registry{"default": theme.Default()})

	view := m.View()

	assert.Contains(t, view, "sgr style browser")
	assert.Contains(t, view, "catalog")
	assert.Contains(t, view, "quit")
}
