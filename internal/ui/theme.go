// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/loralabs/lora-tui/internal/model"
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application, built for either
// the light or the dark palette.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Header
	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// Sidebar
	Sidebar           lipgloss.Style
	SidebarTitle      lipgloss.Style
	SidebarItem       lipgloss.Style
	SidebarItemActive lipgloss.Style
	SidebarItemMeta   lipgloss.Style

	// Message area
	UserBubble      lipgloss.Style
	UserLabel       lipgloss.Style
	AssistantLabel  lipgloss.Style
	AssistantBubble lipgloss.Style

	// Input area
	InputContainer lipgloss.Style

	// Status and errors
	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	ErrorBox     lipgloss.Style
	Spinner      lipgloss.Style
	Footer       lipgloss.Style
}

// palette holds the raw colors a theme is built from.
type palette struct {
	accent    lipgloss.Color
	secondary lipgloss.Color
	text      lipgloss.Color
	muted     lipgloss.Color
	surface   lipgloss.Color
	errorFg   lipgloss.Color
}

var darkPalette = palette{
	accent:    lipgloss.Color("#A78BFA"),
	secondary: lipgloss.Color("#6D28D9"),
	text:      lipgloss.Color("#E5E7EB"),
	muted:     lipgloss.Color("#6B7280"),
	surface:   lipgloss.Color("#1F2937"),
	errorFg:   lipgloss.Color("#F87171"),
}

var lightPalette = palette{
	accent:    lipgloss.Color("#7C3AED"),
	secondary: lipgloss.Color("#A78BFA"),
	text:      lipgloss.Color("#111827"),
	muted:     lipgloss.Color("#9CA3AF"),
	surface:   lipgloss.Color("#F3F4F6"),
	errorFg:   lipgloss.Color("#DC2626"),
}

// NewTheme builds the style set for the given theme setting.
func NewTheme(setting model.Theme) *Theme {
	p := darkPalette
	isDark := setting == model.ThemeDark
	if !isDark {
		p = lightPalette
	}

	return &Theme{
		IsDark:       isDark,
		ColorProfile: termenv.ColorProfile(),

		Header: lipgloss.NewStyle().
			Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		HeaderSubtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, false, false).
			BorderForeground(p.muted).
			Padding(0, 1),
		SidebarTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.secondary),
		SidebarItem: lipgloss.NewStyle().
			Foreground(p.text),
		SidebarItemActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		SidebarItemMeta: lipgloss.NewStyle().
			Foreground(p.muted),

		UserBubble: lipgloss.NewStyle().
			Foreground(p.text),
		UserLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.secondary),
		AssistantLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		AssistantBubble: lipgloss.NewStyle().
			Foreground(p.text),

		InputContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.muted),
		ShortcutKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),
		ShortcutDesc: lipgloss.NewStyle().
			Foreground(p.muted),
		ErrorBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.errorFg).
			Foreground(p.errorFg).
			Padding(0, 1),
		Spinner: lipgloss.NewStyle().
			Foreground(p.accent),
		Footer: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}
