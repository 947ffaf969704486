// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for folio.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (FOLIO_*)
//   - ~/.folio/config.toml
//   - ~/.folio/config.json
//   - Built-in defaults
//
// # Sections
//
//   - [ui]: theme, color, ticker
//   - [i18n]: language used before any choice is stored
//   - [storage]: preference database path
//   - [content]: override directory and live reload
//   - [links]: external command targets
//   - [log]: debug log
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	lang := cfg.I18n.DefaultLanguage
package config
