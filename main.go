// folio - a terminal portfolio with a ctrl+k command palette.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/folio-tui/internal/cli"
	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/opener"
	"github.com/jeranaias/folio-tui/internal/ui/app"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdVersion:
		cli.PrintVersion(os.Stdout)
		return
	case cli.CmdHelp:
		if args.Subcommand != "" {
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args.Subcommand)
			cli.PrintUsage(os.Stderr)
			os.Exit(cli.ExitUsageError)
		}
		cli.PrintUsage(os.Stdout)
		return
	}

	// Library logging stays quiet unless --debug routes it to a file.
	log.SetOutput(io.Discard)

	if err := run(cmd, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func run(cmd cli.Command, args cli.Args) error {
	ctx := context.Background()

	cfg, cfgPath, err := cli.LoadConfig(args)
	if err != nil {
		return err
	}

	// Route logging first so store and translator events reach the debug log.
	sessionID := uuid.NewString()
	closeLog, err := setupLogging(cfg, sessionID)
	if err != nil {
		return err
	}
	defer closeLog()

	env, err := cli.SetupWithConfig(ctx, args, cfg, cfgPath)
	if err != nil {
		return err
	}
	defer env.Close()

	log.Printf("FOLIO_START | session=%s command=%s version=%s", sessionID, cmd, Version)

	switch cmd {
	case cli.CmdShell:
		return cli.NewShell(env, opener.New(), os.Stdout).Run(ctx)
	case cli.CmdLang:
		return cli.HandleLang(ctx, env, args, os.Stdout)
	case cli.CmdCommands:
		return cli.HandleCommands(env, args, os.Stdout)
	case cli.CmdConfig:
		return cli.HandleConfig(env, args, os.Stdout)
	default:
		if !cli.CanRunTUI() {
			fmt.Fprintln(os.Stderr, "folio: not a terminal, listing commands (see 'folio help')")
			return cli.HandleCommands(env, args, os.Stdout)
		}
		return runTUI(ctx, env, sessionID)
	}
}

// setupLogging routes the log package to the debug log file when enabled.
// The returned func closes the file.
func setupLogging(cfg *config.Config, sessionID string) (func(), error) {
	if !cfg.Log.Debug {
		return func() {}, nil
	}

	path := cfg.Log.File
	if path == "" {
		var err error
		if path, err = config.DefaultLogPath(); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	f, err := tea.LogToFile(path, "folio")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	log.Printf("LOG_OPEN | session=%s path=%s", sessionID, path)
	return func() { f.Close() }, nil
}

// runTUI runs the full-screen application until the user quits.
func runTUI(ctx context.Context, env *cli.Env, sessionID string) error {
	cfg := env.Config

	if cfg.UI.NoColor {
		styles.DisableColor()
	}
	theme := styles.NewTheme(cfg.UI.Theme)

	var tick time.Duration
	if cfg.UI.Ticker {
		tick = time.Duration(cfg.UI.TickerIntervalMs) * time.Millisecond
	}

	m := app.New(app.Options{
		Context:        ctx,
		Content:        env.Content,
		Translator:     env.Translator,
		Registry:       env.Registry,
		Opener:         opener.New(),
		Theme:          theme,
		TickerInterval: tick,
		SessionID:      sessionID,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse wheel scrolling
	)

	if cfg.Content.Watch && cfg.Content.Dir != "" {
		debounce := time.Duration(cfg.Content.DebounceMs) * time.Millisecond
		w, err := content.NewWatcher(cfg.Content.Dir, debounce, app.ReloadSender(p.Send))
		if err != nil {
			log.Printf("CONTENT_WATCH_FAILED | dir=%s error=%v", cfg.Content.Dir, err)
		} else if err := w.Start(); err != nil {
			log.Printf("CONTENT_WATCH_FAILED | dir=%s error=%v", cfg.Content.Dir, err)
			w.Close()
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run folio: %w", err)
	}
	return nil
}
