// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package memory

import (
	"regexp"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/loralabs/lora-tui/internal/model"
	"github.com/loralabs/lora-tui/internal/storage"
)

// namePattern matches the Turkish name declaration. The captured token is a
// single \w+ word, no further validation — exactly what gets remembered.
var namePattern = regexp.MustCompile(`(?i)benim adım\s+(\w+)`)

// =============================================================================
// MEMORY MANAGER
// =============================================================================

// Manager holds the process-wide user memory. It is constructed once at
// startup and passed to whoever dispatches conversation actions; the mutex is
// needed because sends run on bubbletea command goroutines.
type Manager struct {
	mu    sync.Mutex
	store *storage.Store
	log   *zap.Logger
	mem   model.UserMemory
}

// NewManager creates a manager initialized from the persisted record.
func NewManager(store *storage.Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store: store,
		log:   log,
		mem:   store.LoadMemory(),
	}
}

// ProcessInput scans a user input for the name declaration and refreshes the
// last-interaction timestamp. Every call persists synchronously.
func (m *Manager) ProcessInput(input string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if match := namePattern.FindStringSubmatch(input); match != nil {
		m.mem.Name = match[1]
		m.log.Info("remembered user name", zap.String("name", m.mem.Name))
	}

	m.mem.LastInteraction = time.Now()
	m.persistLocked()
}

// Memory returns a snapshot copy of the current memory. Mutating the returned
// value does not affect internal state.
func (m *Manager) Memory() model.UserMemory {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mem
}

// Clear resets the memory and removes the persisted record.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mem = model.UserMemory{}
	if err := m.store.RemoveMemory(); err != nil {
		m.log.Warn("failed to remove persisted memory", zap.Error(err))
	}
}

func (m *Manager) persistLocked() {
	if err := m.store.SaveMemory(m.mem); err != nil {
		// Persistence is fire-and-forget; the in-memory state stays valid.
		m.log.Warn("failed to persist memory", zap.Error(err))
	}
}
