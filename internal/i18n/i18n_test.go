// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/folio-tui/internal/storage"
)

func TestEmbeddedCatalog(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "pt"}, c.Languages())
	assert.Equal(t, "RENAN MELO", c.Lookup("en", "hero.title"))
	assert.Equal(t, "RENAN MELO", c.Lookup("pt", "hero.title"))
	assert.Equal(t, "SELECTED WORK", c.Lookup("en", "work.title"))
	assert.Equal(t, "TRABALHOS SELECIONADOS", c.Lookup("pt", "work.title"))
}

func TestEmbeddedCatalog_KeyParity(t *testing.T) {
	c := MustLoadEmbedded()
	en := c.Keys("en")
	pt := c.Keys("pt")
	assert.Equal(t, en, pt, "every key must exist in both catalogs")
}

func TestLookup_Fallback(t *testing.T) {
	c := MustLoadEmbedded()

	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"missing key", "en", "does.not.exist", "does.not.exist"},
		{"missing language", "fr", "hero.title", "hero.title"},
		{"empty key", "pt", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Lookup(tt.lang, tt.key); got != tt.want {
				t.Errorf("Lookup(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}

	var nilCatalog *Catalog
	assert.Equal(t, "x.y", nilCatalog.Lookup("en", "x.y"))
}

func TestMatch(t *testing.T) {
	c := MustLoadEmbedded()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"en", "en", false},
		{"pt", "pt", false},
		{"pt-BR", "pt", false},
		{"pt_BR.UTF-8", "pt", false},
		{"en_US.UTF-8@euro", "en", false},
		{"ja", "", true},
		{"", "", true},
		{"not a tag!", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := c.Match(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedLanguage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFromFS_LocaleMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"loc/en.toml": {Data: []byte("locale = \"pt\"\n[messages]\n\"a\" = \"b\"\n")},
	}
	_, err := LoadFromFS(fsys, "loc")
	assert.Error(t, err)
}

func TestLoadFromFS_Empty(t *testing.T) {
	fsys := fstest.MapFS{"loc/readme.txt": {Data: []byte("x")}}
	_, err := LoadFromFS(fsys, "loc")
	assert.Error(t, err)
}

func TestTranslator_SetLanguagePersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	tr := NewTranslator(ctx, MustLoadEmbedded(), store, "")

	require.Equal(t, "en", tr.Language())

	var changes [][2]string
	tr.OnChange(func(from, to string) { changes = append(changes, [2]string{from, to}) })

	require.NoError(t, tr.SetLanguage(ctx, "pt"))

	stored, err := store.Get(ctx, storage.LanguageKey)
	require.NoError(t, err)
	assert.Equal(t, "pt", stored)
	assert.Equal(t, "pt", tr.Language())
	assert.Equal(t, "RENAN MELO", tr.Catalog().Lookup("pt", "hero.title"))
	assert.Equal(t, "SOBRE // NOTAS DO OPERADOR", tr.T("about.title"))
	assert.Equal(t, [][2]string{{"en", "pt"}}, changes)
}

func TestTranslator_SetLanguageUnsupported(t *testing.T) {
	ctx := context.Background()
	tr := NewTranslator(ctx, MustLoadEmbedded(), storage.NewMemoryStore(), "")

	err := tr.SetLanguage(ctx, "de")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, "en", tr.Language())
}

func TestTranslator_SetLanguageMatchesRegion(t *testing.T) {
	ctx := context.Background()
	tr := NewTranslator(ctx, MustLoadEmbedded(), nil, "")

	require.NoError(t, tr.SetLanguage(ctx, "pt-BR"))
	assert.Equal(t, "pt", tr.Language())
}

func TestTranslator_InitialLanguage(t *testing.T) {
	ctx := context.Background()
	c := MustLoadEmbedded()

	tests := []struct {
		name     string
		stored   string
		fallback string
		want     string
	}{
		{"nothing stored", "", "", "en"},
		{"stored pt", "pt", "", "pt"},
		{"stored unsupported uses fallback", "klingon", "pt", "pt"},
		{"stored unsupported no fallback", "klingon", "", "en"},
		{"bad fallback", "", "xx-invalid", "en"},
		{"fallback posix", "", "pt_BR.UTF-8", "pt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			if tt.stored != "" {
				require.NoError(t, store.Set(ctx, storage.LanguageKey, tt.stored))
			}
			tr := NewTranslator(ctx, c, store, tt.fallback)
			assert.Equal(t, tt.want, tr.Language())
		})
	}
}

type failingStore struct{ storage.MemoryStore }

func (f *failingStore) Get(context.Context, string) (string, error) {
	return "", errors.New("disk on fire")
}

func (f *failingStore) Set(context.Context, string, string) error {
	return errors.New("disk on fire")
}

func TestTranslator_PersistFailureStillSwitches(t *testing.T) {
	ctx := context.Background()
	tr := NewTranslator(ctx, MustLoadEmbedded(), &failingStore{}, "")

	err := tr.SetLanguage(ctx, "pt")
	assert.Error(t, err)
	assert.Equal(t, "pt", tr.Language())
}

func TestTranslator_Next(t *testing.T) {
	ctx := context.Background()
	tr := NewTranslator(ctx, MustLoadEmbedded(), storage.NewMemoryStore(), "")

	next, err := tr.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pt", next)

	next, err = tr.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", next)
}

func TestTranslator_Upper(t *testing.T) {
	tr := NewTranslator(context.Background(), MustLoadEmbedded(), nil, "pt")
	assert.Equal(t, "AÇÃO", tr.Upper("ação"))
}
