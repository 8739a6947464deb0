// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation manager.
//
// The Manager owns the conversation collection, the active-conversation
// pointer, the UI theme, and the single-outstanding-send flag. All state is
// rehydrated from the store at startup; every mutation persists before it
// returns. SendMessage appends the user message optimistically, calls the
// responder with the pre-append history, and either appends the assistant
// reply or surfaces the classified error with the conversation left
// consistent for a retry.
package chat
