// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/loralabs/lora-tui/internal/chat"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != StateSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		// The optimistic user append happens inside the send command, so the
		// tick doubles as the refresh that makes it visible.
		m.refreshViewport()
		return m, cmd

	case responseMsg:
		m.state = StateReady
		m.errText = ""
		m.statusMsg = ""
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case sendErrMsg:
		if errors.Is(msg.err, chat.ErrEmptyInput) || errors.Is(msg.err, chat.ErrSendInProgress) {
			m.state = StateReady
			return m, nil
		}
		m.state = StateError
		m.errText = msg.err.Error()
		m.refreshViewport()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.log.Warn("export failed", zap.Error(msg.err))
			m.statusMsg = "Dışa aktarma başarısız oldu"
		} else {
			m.statusMsg = "Kaydedildi: " + msg.path
		}
		return m, nil
	}

	return m.updateComponents(msg)
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Send):
		return m.handleSend()

	case key.Matches(msg, m.keyMap.NewChat):
		m.manager.CreateConversation()
		m.statusMsg = ""
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.DeleteChat):
		if id := m.manager.ActiveID(); id != "" {
			m.manager.DeleteConversation(id)
			m.refreshViewport()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.NextChat):
		m.selectAdjacent(1)
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.PrevChat):
		m.selectAdjacent(-1)
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleTheme):
		m.theme = NewTheme(m.manager.ToggleTheme())
		m.spinner.Style = m.theme.Spinner
		m.renderer = newRenderer(m.theme.IsDark, m.chatWidth()-2)
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		if conv := m.manager.Active(); conv != nil && !conv.IsEmpty() {
			return m, exportCmd(conv)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.DismissError):
		if m.state == StateError {
			m.state = StateReady
			m.errText = ""
		}
		return m, nil

	case key.Matches(msg, m.keyMap.ScrollUp), key.Matches(msg, m.keyMap.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleSend() (tea.Model, tea.Cmd) {
	if m.state == StateSending {
		return m, nil
	}

	text := m.input.Value()
	m.input.Reset()
	m.state = StateSending
	m.errText = ""
	m.statusMsg = ""

	return m, tea.Batch(m.sendCmd(text), m.spinner.Tick)
}

// selectAdjacent cycles the active pointer through the conversation list in
// the given direction.
func (m *Model) selectAdjacent(step int) {
	convs := m.manager.Conversations()
	if len(convs) == 0 {
		return
	}

	active := m.manager.ActiveID()
	for i, conv := range convs {
		if conv.ID == active {
			next := (i + step + len(convs)) % len(convs)
			m.manager.SelectConversation(convs[next].ID)
			return
		}
	}
	m.manager.SelectConversation(convs[0].ID)
}

// =============================================================================
// LAYOUT AND COMPONENT PLUMBING
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	chatWidth := m.chatWidth()
	// Header, error/status row, input box, and status bar take the rest.
	viewportHeight := m.height - 9
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	if !m.ready {
		m.viewport = viewport.New(chatWidth, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = chatWidth
		m.viewport.Height = viewportHeight
	}

	m.input.Width = chatWidth - 6
	m.renderer = newRenderer(m.theme.IsDark, chatWidth-2)
	m.refreshViewport()
	return m
}

// chatWidth is the width of the message column.
func (m Model) chatWidth() int {
	w := m.width - sidebarWidth
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
