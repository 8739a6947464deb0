// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "github.com/loralabs/lora-tui/internal/util"

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns the transcript label for the role. The assistant is
// always labeled with the persona name.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "Kullanıcı"
	case RoleAssistant:
		return "Lora"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single message in a conversation. Messages are
// immutable once appended and keep their order within the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// NewUserMessage creates a new user message.
func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// NewAssistantMessage creates a new assistant message.
func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Preview returns a rune-truncated preview of the message content. The
// budget includes the ellipsis.
func (m Message) Preview(maxRunes int) string {
	return util.TruncateRunes(m.Content, maxRunes)
}
