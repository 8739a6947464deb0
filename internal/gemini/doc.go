// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gemini provides the HTTP client for the Google Gemini
// generateContent API.
//
// The client speaks the v1beta REST surface: prior turns as contents with
// {user, model} roles and text parts, plus a fixed generationConfig. Errors
// are returned as typed *ClientError values categorized for classification by
// the caller (connection, auth, rate limit, timeout, invalid response).
package gemini
