// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package browser provides an interactive terminal browser over the
// attribute catalog, the package presets, and registered themes. Three
// pages are shown in a scrolling viewport, with one live swatch per
// entry. The swatches are rendered by the styles themselves; lipgloss
// styles only the surrounding chrome.
package browser
