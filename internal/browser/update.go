// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const percentFull = 100

// Init implements bubbletea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.EnableMouseCellMotion, // Enable mouse support
	)
}

// Update implements bubbletea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage):
			m.setPage((m.page + 1) % pageCount)
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.setPage((m.page + pageCount - 1) % pageCount)
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()

			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

		return m, nil
	}

	// All other messages (scrolling keys, mouse wheel) go to the viewport.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View implements bubbletea.Model.View.
func (m *Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	if !m.ready {
		return "Loading..."
	}

	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

// resize fits the viewport to the window, reserving space for the
// header and footer chrome.
func (m *Model) resize() {
	m.help.Width = m.width

	verticalMargin := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())

	height := m.height - verticalMargin
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.viewport.SetContent(m.pageContent())
		m.ready = true

		return
	}

	m.viewport.Width = m.width
	m.viewport.Height = height
}

func (m *Model) headerView() string {
	title := m.styles.Title.Render("sgr style browser")

	return title + "\n" + m.renderTabs()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, int(pageCount))

	for p := pageCatalog; p < pageCount; p++ {
		style := m.styles.TabInactive
		if p == m.page {
			style = m.styles.TabActive
		}

		parts = append(parts, style.Render(p.String()))
	}

	return strings.Join(parts, " | ")
}

func (m *Model) footerView() string {
	percent := m.styles.Footer.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*percentFull))

	return percent + " " + m.help.View(m.keys)
}
