// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the core domain types used throughout the application
// for representing chat conversations, messages, the persisted user memory,
// and the UI theme.
//
// # Key Types
//
//   - Conversation: Titled, ordered sequence of user/assistant exchanges
//   - Message: Single immutable message with role and content
//   - Role: Message role enumeration (user, assistant)
//   - UserMemory: Small persisted record of facts extracted from user input
//   - Theme: UI theme enumeration (light, dark)
//
// # Usage
//
// Create a new conversation and append messages:
//
//	conv := model.NewConversation()
//	conv.Append(model.NewUserMessage("Merhaba!"))
//
// The JSON field names (id, title, messages, createdAt, lastUpdated) are the
// on-disk wire format; timestamps serialize as RFC 3339 strings.
package model
