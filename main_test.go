// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/folio-tui/internal/config"
)

func TestSetupLogging_DebugWritesToFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(io.Discard) })

	cfg := config.Default()
	cfg.Log.Debug = true
	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "folio.log")

	closeLog, err := setupLogging(cfg, "session-1")
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	log.Printf("STORE_OPEN | path=test")
	closeLog()

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"LOG_OPEN | session=session-1", "STORE_OPEN | path=test"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log file missing %q:\n%s", want, data)
		}
	}
}

func TestSetupLogging_DisabledIsNoop(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Debug = false
	cfg.Log.File = filepath.Join(t.TempDir(), "folio.log")

	closeLog, err := setupLogging(cfg, "session-1")
	if err != nil {
		t.Fatalf("setupLogging() error = %v", err)
	}
	closeLog()

	if _, err := os.Stat(cfg.Log.File); !os.IsNotExist(err) {
		t.Errorf("log file created with debug off (stat err = %v)", err)
	}
}
