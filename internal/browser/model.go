// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package browser

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/sgr"
	"github.com/matt-FFFFFF/sgr/internal/catalog"
	"github.com/matt-FFFFFF/sgr/theme"
)

// DefaultSample is the text rendered through each style when the caller
// does not supply one.
const DefaultSample = "The quick brown fox jumps over the lazy dog"

// page identifies one of the browser's pages.
type page int

const (
	pageCatalog page = iota
	pagePresets
	pageThemes
	pageCount
)

// String returns the page's tab label.
func (p page) String() string {
	switch p {
	case pageCatalog:
		return "catalog"
	case pagePresets:
		return "presets"
	case pageThemes:
		return "themes"
	default:
		return "unknown"
	}
}

// Model is the browser's bubbletea model.
type Model struct {
	registry theme.Registry
	sample   string
	page     page
	keys     keyMap
	help     help.Model
	styles   *Styles
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
}

// Styles contains the lipgloss styling for the browser chrome.
type Styles struct {
	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Section     lipgloss.Style
	Footer      lipgloss.Style
}

// NewStyles creates the default chrome styling.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11")),
		TabInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

// New creates a browser model over the given theme registry. An empty
// sample falls back to DefaultSample.
func New(registry theme.Registry, sample string) *Model {
	if sample == "" {
		sample = DefaultSample
	}

	return &Model{
		registry: registry,
		sample:   sample,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(),
	}
}

// setPage switches to the given page and rebuilds the viewport content.
func (m *Model) setPage(p page) {
	m.page = p
	m.viewport.SetContent(m.pageContent())
	m.viewport.GotoTop()
}

// pageContent renders the current page's content.
func (m *Model) pageContent() string {
	switch m.page {
	case pagePresets:
		return m.renderPresets()
	case pageThemes:
		return m.renderThemes()
	default:
		return m.renderCatalog()
	}
}

func (m *Model) renderCatalog() string {
	var b strings.Builder

	for _, s := range catalog.Sections() {
		b.WriteString(m.styles.Section.Render(s.Title))
		b.WriteString("\n")

		for _, e := range s.Entries {
			m.writeEntry(&b, e.Name, e.Style)
		}

		b.WriteString("\n")
	}

	return b.String()
}

func (m *Model) renderPresets() string {
	var b strings.Builder

	b.WriteString(m.styles.Section.Render("Presets"))
	b.WriteString("\n")

	for _, e := range catalog.Presets() {
		fmt.Fprintf(&b, "  %-10s %-24s %-16q %s\n",
			e.Name, e.Style.String(), e.Style.Sequence(), e.Style.Render(m.sample))
	}

	return b.String()
}

func (m *Model) renderThemes() string {
	names := slices.Sorted(maps.Keys(m.registry))
	if len(names) == 0 {
		return "No themes registered.\n"
	}

	var b strings.Builder

	for _, name := range names {
		t := m.registry[name]

		b.WriteString(m.styles.Section.Render(name))
		b.WriteString("\n")

		for _, role := range t.Roles() {
			st := t.Style(role)
			fmt.Fprintf(&b, "  %-14s %-24s %s\n", role, st.String(), st.Render(m.sample))
		}

		b.WriteString("\n")
	}

	return b.String()
}

// writeEntry writes one swatch row. The columns are padded before any
// styling so that escape sequences do not skew the widths.
func (m *Model) writeEntry(b *strings.Builder, name string, st sgr.Style) {
	fmt.Fprintf(b, "  %-26s %-16q %s\n", name, st.Sequence(), st.Render(m.sample))
}
