// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loralabs/lora-tui/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

// =============================================================================
// CONVERSATION RECORD TESTS
// =============================================================================

func TestStore_ChatsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	conv := model.NewConversation()
	conv.DeriveTitle("Merhaba dünya")
	conv.Append(model.NewUserMessage("Merhaba dünya"))
	conv.Append(model.NewAssistantMessage("Merhaba! Size nasıl yardımcı olabilirim?"))

	if err := store.SaveChats([]*model.Conversation{conv}); err != nil {
		t.Fatalf("SaveChats failed: %v", err)
	}

	loaded := store.LoadChats()
	if len(loaded) != 1 {
		t.Fatalf("Loaded %d conversations, want 1", len(loaded))
	}

	got := loaded[0]
	if got.ID != conv.ID {
		t.Errorf("ID = %q, want %q", got.ID, conv.ID)
	}
	if got.Title != conv.Title {
		t.Errorf("Title = %q, want %q", got.Title, conv.Title)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("Messages = %d, want 2", len(got.Messages))
	}
	if got.Messages[0] != conv.Messages[0] || got.Messages[1] != conv.Messages[1] {
		t.Error("Messages should survive the round trip unchanged")
	}
	// Timestamps rehydrate from RFC 3339 strings.
	if !got.CreatedAt.Equal(conv.CreatedAt.Truncate(time.Nanosecond)) && !got.CreatedAt.Equal(conv.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, conv.CreatedAt)
	}
}

func TestStore_LoadChats_Missing(t *testing.T) {
	store := newTestStore(t)

	chats := store.LoadChats()
	if chats == nil {
		t.Fatal("LoadChats should never return nil")
	}
	if len(chats) != 0 {
		t.Errorf("Expected empty collection, got %d", len(chats))
	}
}

func TestStore_LoadChats_Corrupt(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(filepath.Join(store.BaseDir, "chats.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	chats := store.LoadChats()
	if len(chats) != 0 {
		t.Errorf("Corrupt record should load as empty collection, got %d", len(chats))
	}
}

// =============================================================================
// ACTIVE POINTER TESTS
// =============================================================================

func TestStore_ActiveChatRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if got := store.LoadActiveChat(); got != "" {
		t.Errorf("Default active chat = %q, want empty", got)
	}

	if err := store.SaveActiveChat("abc-123"); err != nil {
		t.Fatalf("SaveActiveChat failed: %v", err)
	}
	if got := store.LoadActiveChat(); got != "abc-123" {
		t.Errorf("LoadActiveChat = %q, want abc-123", got)
	}

	// Empty id clears the record.
	if err := store.SaveActiveChat(""); err != nil {
		t.Fatalf("SaveActiveChat(\"\") failed: %v", err)
	}
	if got := store.LoadActiveChat(); got != "" {
		t.Errorf("Cleared active chat = %q, want empty", got)
	}
}

// =============================================================================
// THEME TESTS
// =============================================================================

func TestStore_ThemeDefaultsToDark(t *testing.T) {
	store := newTestStore(t)

	if got := store.LoadTheme(); got != model.ThemeDark {
		t.Errorf("Default theme = %q, want dark", got)
	}
}

func TestStore_ThemeRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveTheme(model.ThemeLight); err != nil {
		t.Fatalf("SaveTheme failed: %v", err)
	}
	if got := store.LoadTheme(); got != model.ThemeLight {
		t.Errorf("LoadTheme = %q, want light", got)
	}
}

func TestStore_ThemeCorruptDefaultsToDark(t *testing.T) {
	store := newTestStore(t)

	os.WriteFile(filepath.Join(store.BaseDir, "theme"), []byte("mauve"), 0644)
	if got := store.LoadTheme(); got != model.ThemeDark {
		t.Errorf("Unrecognized theme = %q, want dark fallback", got)
	}
}

// =============================================================================
// MEMORY TESTS
// =============================================================================

func TestStore_MemoryRoundTrip(t *testing.T) {
	store := newTestStore(t)

	mem := model.UserMemory{Name: "Ali", LastInteraction: time.Now()}
	if err := store.SaveMemory(mem); err != nil {
		t.Fatalf("SaveMemory failed: %v", err)
	}

	loaded := store.LoadMemory()
	if loaded.Name != "Ali" {
		t.Errorf("Name = %q, want Ali", loaded.Name)
	}
	if !loaded.LastInteraction.Equal(mem.LastInteraction) {
		t.Errorf("LastInteraction = %v, want %v", loaded.LastInteraction, mem.LastInteraction)
	}
}

func TestStore_MemoryCorruptIsEmpty(t *testing.T) {
	store := newTestStore(t)

	os.WriteFile(filepath.Join(store.BaseDir, "memory.json"), []byte("]["), 0644)
	if mem := store.LoadMemory(); !mem.IsZero() {
		t.Errorf("Corrupt memory should load as zero record, got %+v", mem)
	}
}

func TestStore_RemoveMemory(t *testing.T) {
	store := newTestStore(t)

	store.SaveMemory(model.UserMemory{Name: "Ali"})
	if err := store.RemoveMemory(); err != nil {
		t.Fatalf("RemoveMemory failed: %v", err)
	}
	if mem := store.LoadMemory(); !mem.IsZero() {
		t.Errorf("Memory should be empty after removal, got %+v", mem)
	}

	// Removing a missing record is not an error.
	if err := store.RemoveMemory(); err != nil {
		t.Errorf("RemoveMemory on missing record failed: %v", err)
	}
}

// =============================================================================
// CLEAR TESTS
// =============================================================================

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	store.SaveChats([]*model.Conversation{model.NewConversation()})
	store.SaveActiveChat("id-1")
	store.SaveTheme(model.ThemeLight)
	store.SaveMemory(model.UserMemory{Name: "Ali"})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if len(store.LoadChats()) != 0 {
		t.Error("Chats should be empty after Clear")
	}
	if store.LoadActiveChat() != "" {
		t.Error("Active chat should be empty after Clear")
	}
	if store.LoadTheme() != model.ThemeDark {
		t.Error("Theme should be back to default after Clear")
	}
	if !store.LoadMemory().IsZero() {
		t.Error("Memory should be empty after Clear")
	}
}

// =============================================================================
// UNICODE TESTS
// =============================================================================

func TestStore_TurkishContentPreserved(t *testing.T) {
	store := newTestStore(t)

	conv := model.NewConversation()
	conv.Append(model.NewUserMessage("Benim adım Ayşegül, öğretmenim"))
	store.SaveChats([]*model.Conversation{conv})

	loaded := store.LoadChats()
	if loaded[0].Messages[0].Content != "Benim adım Ayşegül, öğretmenim" {
		t.Error("Turkish content should be preserved")
	}
}
