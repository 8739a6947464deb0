// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/loralabs/lora-tui/internal/model"
	"github.com/loralabs/lora-tui/internal/storage"
)

// Sentinel errors for inputs SendMessage refuses. Callers treat both as
// no-ops rather than failures.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrSendInProgress = errors.New("a send is already in flight")
)

// Responder produces the assistant reply for a user input given the prior
// messages of the conversation.
type Responder interface {
	Generate(ctx context.Context, input string, prior []model.Message) (string, error)
}

// =============================================================================
// MANAGER
// =============================================================================

// Manager owns the conversation state. It is safe for concurrent use; the
// responder call itself runs outside the lock so the UI stays responsive
// while a send is in flight.
type Manager struct {
	mu        sync.Mutex
	store     *storage.Store
	responder Responder
	log       *zap.Logger

	conversations []*model.Conversation
	activeID      string
	theme         model.Theme
	sending       bool
}

// NewManager creates a manager rehydrated from the store. A persisted active
// pointer that no longer matches a conversation is discarded.
func NewManager(store *storage.Store, responder Responder, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}

	m := &Manager{
		store:         store,
		responder:     responder,
		log:           log,
		conversations: store.LoadChats(),
		theme:         store.LoadTheme(),
	}

	if id := store.LoadActiveChat(); m.findLocked(id) != nil {
		m.activeID = id
	}

	return m
}

// =============================================================================
// CONVERSATION ACCESS
// =============================================================================

// Conversations returns the collection in its stored order.
func (m *Manager) Conversations() []*model.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Conversation, len(m.conversations))
	copy(out, m.conversations)
	return out
}

// Active returns the active conversation, or nil when none is selected.
func (m *Manager) Active() *model.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findLocked(m.activeID)
}

// ActiveID returns the id of the active conversation, or "".
func (m *Manager) ActiveID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activeID
}

// Sending reports whether a send is currently in flight.
func (m *Manager) Sending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sending
}

func (m *Manager) findLocked(id string) *model.Conversation {
	if id == "" {
		return nil
	}
	for _, conv := range m.conversations {
		if conv.ID == id {
			return conv
		}
	}
	return nil
}

// =============================================================================
// CONVERSATION LIFECYCLE
// =============================================================================

// CreateConversation appends a fresh conversation, makes it active, and
// persists both records.
func (m *Manager) CreateConversation() *model.Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()

	conv := model.NewConversation()
	m.conversations = append(m.conversations, conv)
	m.activeID = conv.ID

	m.persistChatsLocked()
	m.persistActiveLocked()
	m.log.Info("created conversation", zap.String("id", conv.ID))
	return conv
}

// SelectConversation makes the given conversation active. Unknown ids are
// ignored.
func (m *Manager) SelectConversation(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findLocked(id) == nil {
		return false
	}
	m.activeID = id
	m.persistActiveLocked()
	return true
}

// DeleteConversation removes a conversation. When the active one is deleted,
// the first remaining conversation becomes active, or none.
func (m *Manager) DeleteConversation(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := -1
	for i, conv := range m.conversations {
		if conv.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	m.conversations = append(m.conversations[:index], m.conversations[index+1:]...)

	if m.activeID == id {
		m.activeID = ""
		if len(m.conversations) > 0 {
			m.activeID = m.conversations[0].ID
		}
		m.persistActiveLocked()
	}

	m.persistChatsLocked()
	m.log.Info("deleted conversation", zap.String("id", id))
	return true
}

// =============================================================================
// SENDING
// =============================================================================

// SendMessage runs one full turn: append the user message, generate, append
// the reply. On a generation failure the user message is kept, no assistant
// message is added, and the classified error is returned for display.
func (m *Manager) SendMessage(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyInput
	}

	m.mu.Lock()
	if m.sending {
		m.mu.Unlock()
		return "", ErrSendInProgress
	}

	conv := m.findLocked(m.activeID)
	if conv == nil {
		conv = model.NewConversation()
		m.conversations = append(m.conversations, conv)
		m.activeID = conv.ID
		m.persistActiveLocked()
	}

	// The responder sees the history as it was before this input.
	prior := conv.MessagesSnapshot()

	conv.Append(model.NewUserMessage(text))
	conv.DeriveTitle(text)
	m.persistChatsLocked()

	m.sending = true
	m.mu.Unlock()

	reply, err := m.responder.Generate(ctx, text, prior)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sending = false

	if err != nil {
		m.log.Warn("send failed", zap.String("conversation", conv.ID), zap.Error(err))
		return "", err
	}

	// If the conversation was deleted mid-flight, the reply lands on the
	// orphaned object and the next persist drops it with the conversation.
	conv.Append(model.NewAssistantMessage(reply))
	m.persistChatsLocked()
	return reply, nil
}

// =============================================================================
// THEME
// =============================================================================

// Theme returns the current UI theme.
func (m *Manager) Theme() model.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.theme
}

// SetTheme sets and persists the UI theme.
func (m *Manager) SetTheme(theme model.Theme) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = theme
	m.persistThemeLocked()
}

// ToggleTheme flips between light and dark and returns the new theme.
func (m *Manager) ToggleTheme() model.Theme {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.theme = m.theme.Toggle()
	m.persistThemeLocked()
	return m.theme
}

// =============================================================================
// PERSISTENCE
// =============================================================================

func (m *Manager) persistChatsLocked() {
	if err := m.store.SaveChats(m.conversations); err != nil {
		m.log.Warn("failed to persist conversations", zap.Error(err))
	}
}

func (m *Manager) persistActiveLocked() {
	if err := m.store.SaveActiveChat(m.activeID); err != nil {
		m.log.Warn("failed to persist active pointer", zap.Error(err))
	}
}

func (m *Manager) persistThemeLocked() {
	if err := m.store.SaveTheme(m.theme); err != nil {
		m.log.Warn("failed to persist theme", zap.Error(err))
	}
}
