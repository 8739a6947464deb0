// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the terminal interface for Lora.
//
// It is a single Bubble Tea model composed of a conversation sidebar, a
// message viewport, a text input, and a spinner shown while a send is in
// flight. Assistant messages are rendered as Markdown via glamour; all other
// styling goes through the Theme, which has a light and a dark palette
// matching the persisted theme setting.
//
// # Usage
//
//	m := ui.New(manager, logger)
//	p := tea.NewProgram(m, tea.WithAltScreen())
//	_, err := p.Run()
package ui
