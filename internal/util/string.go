// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

// Rune-aware truncation preserves multi-byte characters. Conversation titles
// and sidebar previews contain Turkish text, so byte-index truncation would
// corrupt them.

// TruncateRunes truncates a string to a maximum number of runes, appending
// "..." when the string was cut. The budget includes the ellipsis.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// EllipsizeRunes keeps up to maxRunes runes and appends "..." only when
// something was dropped. Unlike TruncateRunes the budget does not include the
// ellipsis, matching how conversation titles are derived (30 runes + "...").
func EllipsizeRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
