// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "folio.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}

	if _, err := store.Get(ctx, LanguageKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	for _, lang := range []string{"pt", "en"} {
		if err := store.Set(ctx, LanguageKey, lang); err != nil {
			t.Fatalf("Set(%q) error = %v", lang, err)
		}
	}

	got, err := store.Get(ctx, LanguageKey)
	if err != nil || got != "en" {
		t.Errorf("Get() = %q, %v; want %q, nil", got, err, "en")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Value survives reopening the file
	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	got, err = reopened.Get(ctx, LanguageKey)
	if err != nil || got != "en" {
		t.Errorf("Get() after reopen = %q, %v; want %q, nil", got, err, "en")
	}
}

func TestSQLiteStore_Closed(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "folio.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}

	if _, err := store.Get(context.Background(), LanguageKey); !errors.Is(err, ErrClosed) {
		t.Errorf("Get() after Close error = %v, want ErrClosed", err)
	}
	if err := store.Set(context.Background(), LanguageKey, "pt"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set() after Close error = %v, want ErrClosed", err)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite("  "); err == nil {
		t.Error("OpenSQLite(blank) should fail")
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
	if err := m.Set(ctx, LanguageKey, "pt"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, err := m.Get(ctx, LanguageKey); err != nil || got != "pt" {
		t.Errorf("Get() = %q, %v; want %q, nil", got, err, "pt")
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
