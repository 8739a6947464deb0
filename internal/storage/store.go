// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/loralabs/lora-tui/internal/model"
	"github.com/loralabs/lora-tui/internal/util"
)

// Record file names inside the data directory. Fixed keys: renaming them
// would orphan previously persisted state.
const (
	chatsFile      = "chats.json"
	activeChatFile = "active_chat"
	themeFile      = "theme"
	memoryFile     = "memory.json"
)

// =============================================================================
// STORE
// =============================================================================

// Store persists the four application records in a single directory.
type Store struct {
	// BaseDir is the data directory, default ~/.lora.
	BaseDir string
}

// NewStore creates a store rooted at ~/.lora.
func NewStore() (*Store, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return NewStoreWithDir(filepath.Join(homeDir, ".lora"))
}

// NewStoreWithDir creates a store rooted at a custom directory.
func NewStoreWithDir(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &Store{BaseDir: baseDir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BaseDir, name)
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

// SaveChats persists the whole conversation collection.
func (s *Store) SaveChats(chats []*model.Conversation) error {
	if chats == nil {
		chats = []*model.Conversation{}
	}
	data, err := json.MarshalIndent(chats, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path(chatsFile), data, 0644)
}

// LoadChats returns the persisted collection, or an empty collection when the
// record is absent or corrupt. Corruption is recovered silently: losing the
// history beats refusing to start.
func (s *Store) LoadChats() []*model.Conversation {
	data, err := os.ReadFile(s.path(chatsFile))
	if err != nil {
		return []*model.Conversation{}
	}

	var chats []*model.Conversation
	if err := json.Unmarshal(data, &chats); err != nil {
		return []*model.Conversation{}
	}
	if chats == nil {
		chats = []*model.Conversation{}
	}
	return chats
}

// =============================================================================
// ACTIVE CONVERSATION POINTER
// =============================================================================

// SaveActiveChat persists the id of the active conversation. An empty id
// removes the record.
func (s *Store) SaveActiveChat(id string) error {
	if id == "" {
		return removeIfExists(s.path(activeChatFile))
	}
	return util.AtomicWriteFile(s.path(activeChatFile), []byte(id), 0644)
}

// LoadActiveChat returns the persisted active conversation id, or "" when
// none was saved. The caller validates the id against the loaded collection.
func (s *Store) LoadActiveChat() string {
	data, err := os.ReadFile(s.path(activeChatFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// =============================================================================
// THEME
// =============================================================================

// SaveTheme persists the UI theme.
func (s *Store) SaveTheme(theme model.Theme) error {
	return util.AtomicWriteFile(s.path(themeFile), []byte(theme), 0644)
}

// LoadTheme returns the persisted theme, defaulting to dark for a missing or
// unrecognized record.
func (s *Store) LoadTheme() model.Theme {
	data, err := os.ReadFile(s.path(themeFile))
	if err != nil {
		return model.DefaultTheme
	}
	return model.ParseTheme(strings.TrimSpace(string(data)))
}

// =============================================================================
// USER MEMORY
// =============================================================================

// SaveMemory persists the user memory record.
func (s *Store) SaveMemory(mem model.UserMemory) error {
	data, err := json.MarshalIndent(mem, "", "  ")
	if err != nil {
		return err
	}
	return util.AtomicWriteFile(s.path(memoryFile), data, 0644)
}

// LoadMemory returns the persisted memory, or the zero record when absent or
// corrupt.
func (s *Store) LoadMemory() model.UserMemory {
	data, err := os.ReadFile(s.path(memoryFile))
	if err != nil {
		return model.UserMemory{}
	}

	var mem model.UserMemory
	if err := json.Unmarshal(data, &mem); err != nil {
		return model.UserMemory{}
	}
	return mem
}

// RemoveMemory deletes the persisted memory record.
func (s *Store) RemoveMemory() error {
	return removeIfExists(s.path(memoryFile))
}

// =============================================================================
// CLEAR
// =============================================================================

// Clear removes all four records. The data directory itself is kept.
func (s *Store) Clear() error {
	for _, name := range []string{chatsFile, activeChatFile, themeFile, memoryFile} {
		if err := removeIfExists(s.path(name)); err != nil {
			return err
		}
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
