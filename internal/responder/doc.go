// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package responder orchestrates a single model turn.
//
// Generate feeds the input to the memory extractor, assembles the persona
// context from the system prompt, the remembered name and the last ten
// messages, dispatches the request raced against a 30 second timer, and
// normalizes the reply. Failures are classified into *ResponseError values
// whose messages are the Turkish strings shown to the user.
//
// # Key Types
//
//   - Responder: the orchestrator, safe for concurrent use.
//   - Generator: the remote-client seam, satisfied by *gemini.Client.
//   - ResponseError: a classified failure with a user-facing message.
package responder
