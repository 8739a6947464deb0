// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// THEME
// =============================================================================

// Theme is the persisted UI theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no theme has been persisted yet.
const DefaultTheme = ThemeDark

// ParseTheme maps a stored string to a Theme, falling back to the default for
// anything unrecognized (including a corrupt or missing record).
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s)
	default:
		return DefaultTheme
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// =============================================================================
// USER MEMORY
// =============================================================================

// UserMemory is the small key-value record of facts extracted from user
// input. It is process-wide, not per-conversation.
type UserMemory struct {
	Name            string    `json:"name,omitempty"`
	LastInteraction time.Time `json:"lastInteraction"`
}

// IsZero reports whether nothing has been remembered yet.
func (m UserMemory) IsZero() bool {
	return m.Name == "" && m.LastInteraction.IsZero()
}
