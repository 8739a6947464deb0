// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/loralabs/lora-tui/internal/chat"
)

// Fixed chrome text from the product header.
const (
	appTitle      = "Lora Alpha 0.53"
	appDisclaimer = "Lora hatalar yapabilir. Kesin olarak doğru bir yanıt için araştırma yapmayı ihmal etmeyin."
	appFooter     = "Loralabs 2024"
)

// sidebarWidth is the fixed width of the conversation list column.
const sidebarWidth = 28

// =============================================================================
// STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateReady   State = iota // Ready for input
	StateSending              // Waiting for the assistant reply
	StateError                // Showing an error
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the whole application.
type Model struct {
	// State
	state State

	// Domain
	manager *chat.Manager
	log     *zap.Logger

	// Styling
	theme    *Theme
	renderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
	ready  bool

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// Key bindings
	keyMap KeyMap

	// Error banner
	errText string

	// Transient status line, e.g. after an export
	statusMsg string
}

// New creates the application model.
func New(manager *chat.Manager, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	theme := NewTheme(manager.Theme())

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Mesajınızı yazın..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(80, 20)

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}
	sp.Style = theme.Spinner

	return Model{
		state:    StateReady,
		manager:  manager,
		log:      log,
		theme:    theme,
		renderer: newRenderer(theme.IsDark, 78),
		viewport: vp,
		input:    ti,
		spinner:  sp,
		keyMap:   DefaultKeyMap(),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// newRenderer builds the glamour renderer for assistant Markdown. A nil
// renderer falls back to plain text.
func newRenderer(isDark bool, wrap int) *glamour.TermRenderer {
	style := "light"
	if isDark {
		style = "dark"
	}
	if wrap < 20 {
		wrap = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}
