// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"testing"
	"time"
)

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestNewConversation(t *testing.T) {
	conv := NewConversation()

	if conv.ID == "" {
		t.Error("Expected non-empty ID")
	}
	if conv.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", conv.Title, DefaultTitle)
	}
	if !conv.IsEmpty() {
		t.Error("New conversation should be empty")
	}
	if conv.CreatedAt.IsZero() || conv.LastUpdated.IsZero() {
		t.Error("Timestamps should be set")
	}
}

func TestNewConversation_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		conv := NewConversation()
		if seen[conv.ID] {
			t.Fatalf("Duplicate conversation ID: %s", conv.ID)
		}
		seen[conv.ID] = true
	}
}

func TestConversation_Append(t *testing.T) {
	conv := NewConversation()
	before := conv.LastUpdated

	time.Sleep(5 * time.Millisecond)
	conv.Append(NewUserMessage("Merhaba"))

	if conv.MessageCount() != 1 {
		t.Errorf("MessageCount = %d, want 1", conv.MessageCount())
	}
	if !conv.LastUpdated.After(before) {
		t.Error("Append should refresh LastUpdated")
	}

	last, ok := conv.LastMessage()
	if !ok || last.Content != "Merhaba" {
		t.Errorf("LastMessage = %+v, want Merhaba", last)
	}
}

func TestConversation_MessagesSnapshot(t *testing.T) {
	conv := NewConversation()
	conv.Append(NewUserMessage("bir"))
	conv.Append(NewAssistantMessage("iki"))

	snapshot := conv.MessagesSnapshot()
	conv.Append(NewUserMessage("üç"))

	if len(snapshot) != 2 {
		t.Errorf("Snapshot length = %d, want 2", len(snapshot))
	}
	if conv.MessageCount() != 3 {
		t.Errorf("MessageCount = %d, want 3", conv.MessageCount())
	}
}

// =============================================================================
// TITLE TESTS
// =============================================================================

func TestConversation_DeriveTitle_Once(t *testing.T) {
	conv := NewConversation()

	conv.DeriveTitle("İlk mesaj")
	if conv.Title != "İlk mesaj" {
		t.Errorf("Title = %q, want %q", conv.Title, "İlk mesaj")
	}

	// A second derivation must not change the title.
	conv.DeriveTitle("Başka bir mesaj")
	if conv.Title != "İlk mesaj" {
		t.Errorf("Title changed on second derivation: %q", conv.Title)
	}
}

func TestTitleFrom_Truncation(t *testing.T) {
	long := strings.Repeat("a", 45)
	title := TitleFrom(long)

	if !strings.HasSuffix(title, "...") {
		t.Error("Long title should end with ellipsis")
	}
	if runes := []rune(title); len(runes) != TitleMaxRunes+3 {
		t.Errorf("Title rune length = %d, want %d", len(runes), TitleMaxRunes+3)
	}
}

func TestTitleFrom_ShortMessageUnchanged(t *testing.T) {
	title := TitleFrom("Adım ne?")
	if title != "Adım ne?" {
		t.Errorf("Title = %q, want %q", title, "Adım ne?")
	}
	if strings.HasSuffix(title, "...") {
		t.Error("Short title should not carry an ellipsis")
	}
}

func TestTitleFrom_ExactBudgetUnchanged(t *testing.T) {
	exact := strings.Repeat("ş", TitleMaxRunes)
	if got := TitleFrom(exact); got != exact {
		t.Errorf("Title at exactly %d runes should be unchanged, got %q", TitleMaxRunes, got)
	}
}

// =============================================================================
// ROLE TESTS
// =============================================================================

func TestRole_DisplayName(t *testing.T) {
	if RoleUser.DisplayName() != "Kullanıcı" {
		t.Errorf("RoleUser.DisplayName() = %q", RoleUser.DisplayName())
	}
	if RoleAssistant.DisplayName() != "Lora" {
		t.Errorf("RoleAssistant.DisplayName() = %q", RoleAssistant.DisplayName())
	}
}

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage("çok uzun bir kullanıcı mesajı örneği")
	preview := msg.Preview(10)
	if runes := []rune(preview); len(runes) != 10 {
		t.Errorf("Preview rune length = %d, want 10", len(runes))
	}
	if !strings.HasSuffix(preview, "...") {
		t.Error("Truncated preview should end with ellipsis")
	}
}

// =============================================================================
// THEME TESTS
// =============================================================================

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input string
		want  Theme
	}{
		{"light", ThemeLight},
		{"dark", ThemeDark},
		{"", ThemeDark},
		{"solarized", ThemeDark},
	}

	for _, tc := range tests {
		if got := ParseTheme(tc.input); got != tc.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTheme_Toggle(t *testing.T) {
	if ThemeDark.Toggle() != ThemeLight {
		t.Error("dark should toggle to light")
	}
	if ThemeLight.Toggle() != ThemeDark {
		t.Error("light should toggle to dark")
	}
}

// =============================================================================
// EXPORT TESTS
// =============================================================================

func TestConversation_ExportMarkdown(t *testing.T) {
	conv := NewConversation()
	conv.DeriveTitle("Selam")
	conv.Append(NewUserMessage("Selam"))
	conv.Append(NewAssistantMessage("Merhaba! Nasıl yardımcı olabilirim?"))

	md := conv.ExportMarkdown()

	if !strings.Contains(md, "# Selam") {
		t.Error("Markdown should contain the title header")
	}
	if !strings.Contains(md, "**Kullanıcı**") {
		t.Error("Markdown should contain the user label")
	}
	if !strings.Contains(md, "**Lora**") {
		t.Error("Markdown should contain the assistant label")
	}
}
