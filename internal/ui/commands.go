// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/loralabs/lora-tui/internal/model"
	"github.com/loralabs/lora-tui/internal/util"
)

// =============================================================================
// MESSAGES
// =============================================================================

// responseMsg carries a completed assistant reply.
type responseMsg struct {
	reply string
}

// sendErrMsg carries a failed send. The error message is already localized.
type sendErrMsg struct {
	err error
}

// exportDoneMsg reports the outcome of a Markdown export.
type exportDoneMsg struct {
	path string
	err  error
}

// =============================================================================
// COMMANDS
// =============================================================================

// sendCmd runs one full turn through the conversation manager.
func (m Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.manager.SendMessage(context.Background(), text)
		if err != nil {
			return sendErrMsg{err: err}
		}
		return responseMsg{reply: reply}
	}
}

// exportCmd writes the conversation as Markdown into the working directory.
func exportCmd(conv *model.Conversation) tea.Cmd {
	return func() tea.Msg {
		path := fmt.Sprintf("lora-%s-%s.md", conv.CreatedAt.Format("2006-01-02"), shortID(conv.ID))
		err := util.AtomicWriteFile(path, []byte(conv.ExportMarkdown()), 0644)
		return exportDoneMsg{path: path, err: err}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatRelativeTime renders a timestamp for the sidebar.
func formatRelativeTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "şimdi"
	case d < time.Hour:
		return fmt.Sprintf("%d dk önce", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d sa önce", int(d.Hours()))
	default:
		return t.Format("02.01.2006")
	}
}
