// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

package responder

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/loralabs/lora-tui/internal/gemini"
	"github.com/loralabs/lora-tui/internal/memory"
	"github.com/loralabs/lora-tui/internal/model"
)

const (
	// DefaultTimeout bounds how long a single turn is awaited. The losing
	// request is abandoned, not cancelled.
	DefaultTimeout = 30 * time.Second

	// historyWindow is how many trailing messages feed the context.
	historyWindow = 10
)

// namePrefix strips a leading self-label the model sometimes echoes back.
var namePrefix = regexp.MustCompile(`(?i)^lora:\s*`)

// =============================================================================
// RESPONDER
// =============================================================================

// Generator is the remote-client seam. *gemini.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, contents []gemini.Content) (string, error)
}

// Responder produces one assistant reply per call. It is safe for concurrent
// use; memory updates are serialized by the memory manager itself.
type Responder struct {
	client  Generator
	memory  *memory.Manager
	log     *zap.Logger
	timeout time.Duration
}

// New creates a responder with the default 30 second await.
func New(client Generator, mem *memory.Manager, log *zap.Logger) *Responder {
	return NewWithTimeout(client, mem, log, DefaultTimeout)
}

// NewWithTimeout creates a responder with a custom await duration.
func NewWithTimeout(client Generator, mem *memory.Manager, log *zap.Logger, timeout time.Duration) *Responder {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Responder{client: client, memory: mem, log: log, timeout: timeout}
}

// Generate produces the assistant reply for input given the prior messages of
// the conversation. It never panics out; an unrecoverable internal failure
// returns the fixed fallback text instead.
func (r *Responder) Generate(ctx context.Context, input string, prior []model.Message) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("responder panicked", zap.Any("panic", rec))
			text, err = FallbackMessage, nil
		}
	}()

	r.memory.ProcessInput(input)
	mem := r.memory.Memory()

	recent := prior
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	contents := buildContents(input, mem.Name, recent)

	start := time.Now()
	raw, genErr := r.await(ctx, contents)
	if genErr != nil {
		classified := classify(genErr)
		r.log.Warn("generation failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("kind", int(classified.Kind)),
			zap.Error(genErr))
		return "", classified
	}

	r.log.Info("generation complete",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("history", len(recent)))

	return namePrefix.ReplaceAllString(strings.TrimSpace(raw), ""), nil
}

// =============================================================================
// CONTEXT ASSEMBLY
// =============================================================================

// buildContents assembles the request turns: the role-mapped recent history
// followed by a final user turn that carries the full persona context.
func buildContents(input, name string, recent []model.Message) []gemini.Content {
	contextText := SystemPrompt
	if name != "" {
		contextText += "\nKullanıcının adı: " + name
	}
	if len(recent) > 0 {
		contextText += "\n\nÖnceki konuşma:\n" + formatTranscript(recent)
	}

	contents := make([]gemini.Content, 0, len(recent)+1)
	for _, msg := range recent {
		role := gemini.RoleUser
		if msg.Role == model.RoleAssistant {
			role = gemini.RoleModel
		}
		contents = append(contents, gemini.NewContent(role, msg.Content))
	}

	final := contextText + "\n\nKullanıcı: " + input + "\nLora:"
	return append(contents, gemini.NewContent(gemini.RoleUser, final))
}

// formatTranscript renders messages as labeled lines for the context block.
func formatTranscript(messages []model.Message) string {
	lines := make([]string, len(messages))
	for i, msg := range messages {
		lines[i] = msg.Role.DisplayName() + ": " + msg.Content
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// TIMEOUT RACE
// =============================================================================

type generateResult struct {
	text string
	err  error
}

// await races the remote call against the configured timer. The channel is
// buffered so an abandoned call can still complete its send and exit.
func (r *Responder) await(ctx context.Context, contents []gemini.Content) (string, error) {
	ch := make(chan generateResult, 1)

	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				ch <- generateResult{err: &ResponseError{
					Kind:    KindUnknown,
					Message: msgUnexpected,
					Cause:   fmt.Errorf("generation panicked: %v", rec),
				}}
			}
		}()
		text, err := r.client.Generate(ctx, contents)
		ch <- generateResult{text: text, err: err}
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res.text, res.err
	case <-timer.C:
		return "", &ResponseError{Kind: KindTimeout, Message: msgTimeout}
	}
}
