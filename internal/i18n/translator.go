// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/folio-tui/internal/storage"
)

// ChangeFunc is called after the active language changes.
type ChangeFunc func(from, to string)

// Translator holds the process-wide active language.
type Translator struct {
	mu        sync.RWMutex
	catalog   *Catalog
	store     storage.PreferenceStore
	lang      string
	listeners []ChangeFunc
}

// NewTranslator resolves the initial language from the persisted preference,
// then fallback, then DefaultLanguage. A missing or unsupported stored value
// is not an error.
func NewTranslator(ctx context.Context, catalog *Catalog, store storage.PreferenceStore, fallback string) *Translator {
	t := &Translator{catalog: catalog, store: store}
	t.lang = t.resolveInitial(ctx, fallback)
	return t
}

func (t *Translator) resolveInitial(ctx context.Context, fallback string) string {
	if t.store != nil {
		stored, err := t.store.Get(ctx, storage.LanguageKey)
		switch {
		case err == nil && t.catalog.Supports(stored):
			return stored
		case err == nil:
			log.Printf("I18N_STORED_UNSUPPORTED | lang=%q", stored)
		case !errors.Is(err, storage.ErrNotFound):
			log.Printf("I18N_STORED_READ_FAILED | error=%v", err)
		}
	}
	if fallback != "" {
		if matched, err := t.catalog.Match(fallback); err == nil {
			return matched
		}
	}
	return DefaultLanguage
}

// Language returns the active language tag.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Catalog returns the underlying catalog.
func (t *Translator) Catalog() *Catalog {
	return t.catalog
}

// T translates key in the active language.
func (t *Translator) T(key string) string {
	return t.catalog.Lookup(t.Language(), key)
}

// Tf translates key and formats the result with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// Upper returns s upper-cased with the active language's rules.
func (t *Translator) Upper(s string) string {
	tag, err := language.Parse(t.Language())
	if err != nil {
		tag = language.English
	}
	return cases.Upper(tag).String(s)
}

// OnChange registers fn to run after every language change.
func (t *Translator) OnChange(fn ChangeFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// SetLanguage switches the active language and persists it. The in-memory
// switch happens even when persisting fails; that error is returned wrapped.
func (t *Translator) SetLanguage(ctx context.Context, lang string) error {
	if !t.catalog.Supports(lang) {
		matched, err := t.catalog.Match(lang)
		if err != nil {
			return err
		}
		lang = matched
	}

	t.mu.Lock()
	from := t.lang
	t.lang = lang
	listeners := append([]ChangeFunc(nil), t.listeners...)
	t.mu.Unlock()

	var persistErr error
	if t.store != nil {
		if err := t.store.Set(ctx, storage.LanguageKey, lang); err != nil {
			log.Printf("I18N_PERSIST_FAILED | lang=%s error=%v", lang, err)
			persistErr = fmt.Errorf("persist language: %w", err)
		}
	}

	log.Printf("I18N_LANGUAGE | from=%s to=%s", from, lang)
	for _, fn := range listeners {
		fn(from, lang)
	}
	return persistErr
}

// Next switches to the language after the active one, wrapping around.
func (t *Translator) Next(ctx context.Context) (string, error) {
	langs := t.catalog.Languages()
	current := t.Language()
	next := langs[0]
	for i, l := range langs {
		if l == current {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	return next, t.SetLanguage(ctx, next)
}
