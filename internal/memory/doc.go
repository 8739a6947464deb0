// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package memory implements the user-memory extractor.
//
// Every user input is scanned for the declarative name pattern
// ("benim adım <word>", case-insensitive); a match overwrites the remembered
// name. Every call also refreshes the last-interaction timestamp. State is
// loaded from the store once at startup and persisted synchronously on every
// mutation.
package memory
