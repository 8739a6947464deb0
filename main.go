// Lora TUI - A Turkish-first terminal chat client backed by Gemini.
//
// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/loralabs/lora-tui/internal/chat"
	"github.com/loralabs/lora-tui/internal/config"
	"github.com/loralabs/lora-tui/internal/gemini"
	"github.com/loralabs/lora-tui/internal/logging"
	"github.com/loralabs/lora-tui/internal/memory"
	"github.com/loralabs/lora-tui/internal/responder"
	"github.com/loralabs/lora-tui/internal/storage"
	"github.com/loralabs/lora-tui/internal/ui"
)

// Version information (set at build time)
var (
	Version   = "0.53.0-alpha"
	GitCommit = "unknown"
)

func main() {
	// A missing or placeholder API key aborts startup: no response could
	// ever be produced.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hata: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hata: log dosyası açılamadı: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Info("starting lora", zap.String("version", Version), zap.String("commit", GitCommit))

	store, err := storage.NewStoreWithDir(cfg.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hata: veri dizini oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	client := gemini.NewClient(&gemini.ClientConfig{
		BaseURL: cfg.Gemini.BaseURL,
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Generation: gemini.GenerationConfig{
			Temperature:     cfg.Gemini.Temperature,
			TopP:            cfg.Gemini.TopP,
			TopK:            cfg.Gemini.TopK,
			MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		},
	})

	mem := memory.NewManager(store, log)
	resp := responder.NewWithTimeout(client, mem, log, cfg.Gemini.Timeout())
	manager := chat.NewManager(store, resp, log)

	p := tea.NewProgram(
		ui.New(manager, log),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Hata: %v\n", err)
		os.Exit(1)
	}
}
