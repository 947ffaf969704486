// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/jeranaias/folio-tui/internal/commands"
	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/i18n"
	"github.com/jeranaias/folio-tui/internal/storage"
)

// =============================================================================
// ENVIRONMENT
// =============================================================================

// Env bundles the collaborators every command needs.
type Env struct {
	Config     *config.Config
	ConfigPath string
	Store      storage.PreferenceStore
	Translator *i18n.Translator
	Registry   *commands.Registry
	Content    *content.Content
}

// Setup loads configuration, opens the preference store and builds the
// translator, registry and content. Callers must Close the returned Env.
func Setup(ctx context.Context, args Args) (*Env, error) {
	cfg, path, err := LoadConfig(args)
	if err != nil {
		return nil, err
	}
	return SetupWithConfig(ctx, args, cfg, path)
}

// SetupWithConfig is Setup over a configuration the caller already loaded,
// so logging can be routed before the translator logs anything.
//
// A preference database that cannot be opened is not fatal: the language
// then lives in memory for this run only.
func SetupWithConfig(ctx context.Context, args Args, cfg *config.Config, path string) (*Env, error) {
	store := openStore(cfg)
	env, err := NewEnv(ctx, cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	env.ConfigPath = path

	if args.Lang != "" {
		if err := env.Translator.SetLanguage(ctx, args.Lang); err != nil {
			env.Close()
			return nil, fmt.Errorf("--lang %s: %w", args.Lang, err)
		}
	}
	return env, nil
}

// openStore opens the SQLite preference store, falling back to a memory
// store when the database is unusable.
func openStore(cfg *config.Config) storage.PreferenceStore {
	dbPath := cfg.Storage.Path
	if dbPath == "" {
		var err error
		if dbPath, err = storage.DefaultPath(); err != nil {
			log.Printf("CLI_STORE_OPEN_FAILED | path=%s error=%v fallback=memory", dbPath, err)
			return storage.NewMemoryStore()
		}
	}
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		log.Printf("CLI_STORE_OPEN_FAILED | path=%s error=%v fallback=memory", dbPath, err)
		return storage.NewMemoryStore()
	}
	return store
}

// NewEnv builds an Env over an already opened store.
func NewEnv(ctx context.Context, cfg *config.Config, store storage.PreferenceStore) (*Env, error) {
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	reg, err := commands.Build(LinksFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("build commands: %w", err)
	}

	c, err := content.Load(cfg.Content.Dir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	return &Env{
		Config:     cfg,
		Store:      store,
		Translator: i18n.NewTranslator(ctx, catalog, store, cfg.I18n.DefaultLanguage),
		Registry:   reg,
		Content:    c,
	}, nil
}

// Close releases the preference store.
func (e *Env) Close() error {
	if e.Store == nil {
		return nil
	}
	if err := e.Store.Close(); err != nil {
		log.Printf("CLI_STORE_CLOSE_FAILED | error=%v", err)
		return err
	}
	return nil
}

// LinksFromConfig maps the [links] section onto command destinations.
func LinksFromConfig(cfg *config.Config) commands.Links {
	return commands.Links{
		Demo:     cfg.Links.Demo,
		GitHub:   cfg.Links.GitHub,
		LinkedIn: cfg.Links.LinkedIn,
		Email:    cfg.Links.Email,
	}
}

// LoadConfig loads args.ConfigPath when set, the default location otherwise,
// and applies the global flag overrides. The returned path is where
// "config set" writes.
func LoadConfig(args Args) (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path = args.ConfigPath
		err  error
	)
	if path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
		if err == nil {
			path, err = config.ConfigPathTOML()
		}
	}
	if err != nil {
		return nil, "", err
	}

	if args.Debug {
		cfg.Log.Debug = true
	}
	if args.NoColor {
		cfg.UI.NoColor = true
	}
	if cfg.UI.NoColor {
		ForceColorsEnabled(false)
	}
	return cfg, path, nil
}
