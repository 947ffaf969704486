// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides preference persistence for the folio TUI.
//
// The only persisted state is the active language tag, stored under
// LanguageKey in a small SQLite key/value table.
//
// # Key Types
//
//   - PreferenceStore: Get/Set/Close contract used by the translator
//   - SQLiteStore: file-backed store (modernc.org/sqlite, no cgo)
//   - MemoryStore: in-process fallback and test double
//
// # Usage
//
//	store, err := storage.OpenSQLite(path)
//	if err != nil {
//		store = storage.NewMemoryStore()
//	}
//	defer store.Close()
//
//	lang, err := store.Get(ctx, storage.LanguageKey)
//
// # Storage Location
//
// The database lives at ~/.folio/folio.db unless storage.path is set.
package storage
