// Copyright (c) 2024-2025 Loralabs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the application logger.
//
// The terminal is owned by the UI, so log output goes to a file in the data
// directory instead of stderr.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileName is the log file inside the data directory.
const FileName = "lora.log"

// New builds a production logger writing to <dataDir>/lora.log.
func New(dataDir string) (*zap.Logger, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	path := filepath.Join(dataDir, FileName)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	return cfg.Build()
}
