// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides durable local persistence for the Lora client.
//
// Four named records live as files in the data directory (default ~/.lora):
//
//   - chats.json   — the conversation collection (JSON array)
//   - active_chat  — id of the active conversation (plain string)
//   - theme        — "light" or "dark"
//   - memory.json  — the extracted user memory (JSON object)
//
// Writes are atomic (write-fsync-rename). Reads never fail: a missing or
// corrupt record yields its documented default (empty collection, no active
// id, dark theme, empty memory). There is no schema migration — a successful
// load is a structural JSON round-trip of the last save.
package storage
