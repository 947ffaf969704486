// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package i18n provides translation catalogs and the active-language
// translator used by every rendered string in folio.
//
// Catalogs are flat key tables, one embedded TOML file per language
// (locales/en.toml, locales/pt.toml). A lookup that misses returns the key
// itself, so an untranslated string is visible but never fatal.
//
// # Usage
//
//	tr := i18n.NewTranslator(ctx, i18n.MustLoadEmbedded(), store, cfg.I18n.DefaultLanguage)
//	title := tr.T("hero.title")
//	if err := tr.SetLanguage(ctx, "pt"); err != nil {
//		log.Printf("I18N_ERROR | error=%v", err)
//	}
package i18n
