// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/loralabs/lora-tui/internal/util"
)

// DefaultTitle is the title of a conversation before its first user message.
const DefaultTitle = "Yeni Sohbet"

// TitleMaxRunes is the rune budget for a derived conversation title; longer
// first messages are cut there and suffixed with an ellipsis.
const TitleMaxRunes = 30

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds a complete chat thread with its metadata. The JSON field
// names are the persisted wire format and must not change.
type Conversation struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Messages    []Message `json:"messages"`
	CreatedAt   time.Time `json:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// NewConversation creates an empty conversation with a fresh ID, the default
// title, and both timestamps set to now.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:          uuid.NewString(),
		Title:       DefaultTitle,
		Messages:    make([]Message, 0),
		CreatedAt:   now,
		LastUpdated: now,
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds a message to the conversation and refreshes LastUpdated.
func (c *Conversation) Append(msg Message) {
	c.Messages = append(c.Messages, msg)
	c.LastUpdated = time.Now()
}

// MessagesSnapshot returns a copy of the message list. Callers use it to keep
// a stable view of the history while new messages are appended.
func (c *Conversation) MessagesSnapshot() []Message {
	snapshot := make([]Message, len(c.Messages))
	copy(snapshot, c.Messages)
	return snapshot
}

// MessageCount returns the number of messages.
func (c *Conversation) MessageCount() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// LastMessage returns the most recent message, or the zero Message and false
// when the conversation is empty.
func (c *Conversation) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// =============================================================================
// TITLE MANAGEMENT
// =============================================================================

// HasDerivedTitle reports whether the title has already been set from a user
// message. A conversation keeps its derived title for its whole lifetime.
func (c *Conversation) HasDerivedTitle() bool {
	return c.Title != "" && c.Title != DefaultTitle
}

// DeriveTitle sets the title from the first user message. It is a no-op once
// a title has been derived: the title is set exactly once.
func (c *Conversation) DeriveTitle(firstMessage string) {
	if c.HasDerivedTitle() {
		return
	}
	c.Title = TitleFrom(firstMessage)
}

// TitleFrom computes a conversation title from a message: at most
// TitleMaxRunes runes, "..." appended when the message was longer.
func TitleFrom(message string) string {
	return util.EllipsizeRunes(strings.TrimSpace(message), TitleMaxRunes)
}

// =============================================================================
// EXPORT
// =============================================================================

// ExportMarkdown renders the conversation as a Markdown document with the
// title, creation time, and every message labeled by role.
func (c *Conversation) ExportMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# " + c.Title + "\n\n")
	sb.WriteString("Oluşturulma: " + c.CreatedAt.Format(time.RFC3339) + "\n\n")
	sb.WriteString("---\n\n")

	for _, msg := range c.Messages {
		sb.WriteString("**" + msg.Role.DisplayName() + "**:\n\n")
		sb.WriteString(msg.Content)
		sb.WriteString("\n\n---\n\n")
	}

	return sb.String()
}
