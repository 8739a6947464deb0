// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/loralabs/lora-tui/internal/model"
)

// View renders the whole screen.
func (m Model) View() string {
	if !m.ready {
		return "Yükleniyor..."
	}

	chat := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderNotice(),
		m.renderInput(),
		m.renderStatusBar(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), chat)
}

// =============================================================================
// CHROME
// =============================================================================

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render(appTitle)
	sub := m.theme.HeaderSubtitle.Render(appDisclaimer)
	return m.theme.Header.Width(m.chatWidth()).Render(title + "\n" + sub)
}

// renderNotice renders the error banner, the thinking spinner, or a transient
// status line. It always occupies one row so the layout stays stable.
func (m Model) renderNotice() string {
	switch {
	case m.state == StateError && m.errText != "":
		return m.theme.ErrorBox.Width(m.chatWidth() - 2).Render(m.errText)
	case m.state == StateSending:
		return m.spinner.View() + " " + m.theme.StatusBar.Render("Lora düşünüyor...")
	case m.statusMsg != "":
		return m.theme.StatusBar.Render(m.statusMsg)
	default:
		return ""
	}
}

func (m Model) renderInput() string {
	return m.theme.InputContainer.Width(m.chatWidth() - 2).Render(m.input.View())
}

func (m Model) renderStatusBar() string {
	var parts []string
	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		parts = append(parts, m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	parts = append(parts, m.theme.Footer.Render(appFooter))
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}

// =============================================================================
// SIDEBAR
// =============================================================================

func (m Model) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString(m.theme.SidebarTitle.Render("Sohbetler"))
	sb.WriteString("\n\n")

	convs := m.manager.Conversations()
	active := m.manager.ActiveID()
	now := time.Now()

	if len(convs) == 0 {
		sb.WriteString(m.theme.SidebarItemMeta.Render("Henüz sohbet yok"))
	}

	for _, conv := range convs {
		title := runewidth.Truncate(conv.Title, sidebarWidth-4, "…")
		style := m.theme.SidebarItem
		prefix := "  "
		if conv.ID == active {
			style = m.theme.SidebarItemActive
			prefix = "> "
		}
		sb.WriteString(style.Render(prefix + title))
		sb.WriteString("\n")
		sb.WriteString(m.theme.SidebarItemMeta.Render("  " + formatRelativeTime(conv.LastUpdated, now)))
		sb.WriteString("\n")
	}

	height := m.height - 1
	if height < 3 {
		height = 3
	}
	return m.theme.Sidebar.Width(sidebarWidth - 2).Height(height).Render(sb.String())
}

// =============================================================================
// MESSAGE RENDERING
// =============================================================================

// refreshViewport re-renders the active conversation into the viewport.
func (m *Model) refreshViewport() {
	conv := m.manager.Active()
	if conv == nil || conv.IsEmpty() {
		m.viewport.SetContent(m.theme.SidebarItemMeta.Render("Merhaba! Size nasıl yardımcı olabilirim?"))
		return
	}

	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderMessages(conv.MessagesSnapshot()))
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m Model) renderMessages(messages []model.Message) string {
	var sb strings.Builder

	for i, msg := range messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		switch msg.Role {
		case model.RoleAssistant:
			sb.WriteString(m.theme.AssistantLabel.Render(msg.Role.DisplayName()))
			sb.WriteString("\n")
			sb.WriteString(m.renderMarkdown(msg.Content))
		default:
			sb.WriteString(m.theme.UserLabel.Render(msg.Role.DisplayName()))
			sb.WriteString("\n")
			sb.WriteString(m.theme.UserBubble.Render(msg.Content))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// renderMarkdown renders assistant content through glamour, falling back to
// the raw text when the renderer is unavailable or fails.
func (m Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content + "\n"
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return content + "\n"
	}
	return strings.TrimRight(out, "\n") + "\n"
}
