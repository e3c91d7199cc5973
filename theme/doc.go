// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package theme maps message roles such as "ok" and "error" to styles,
// so that applications can restyle their output without touching the
// call sites.
//
// Themes can be declared in YAML or HCL files, or built in code. Style
// expressions use a small token vocabulary, e.g. "red on-black bold",
// parsed by ParseStyle. The built-in theme wires the sgr presets.
package theme
