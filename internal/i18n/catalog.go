// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

// =============================================================================
// ERRORS
// =============================================================================

// ErrUnsupportedLanguage is returned when a tag does not match any catalog.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// DefaultLanguage is the language used when nothing else is configured.
const DefaultLanguage = "en"

// =============================================================================
// CATALOG
// =============================================================================

// catalogFile is the on-disk shape of a locale file.
type catalogFile struct {
	Locale   string            `toml:"locale"`
	Messages map[string]string `toml:"messages"`
}

// Catalog maps (language, key) pairs to display strings.
type Catalog struct {
	messages map[string]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
}

var (
	embeddedOnce    sync.Once
	embeddedCatalog *Catalog
	embeddedErr     error
)

// LoadEmbedded returns the catalog compiled into the binary. The result is
// parsed once and shared.
func LoadEmbedded() (*Catalog, error) {
	embeddedOnce.Do(func() {
		embeddedCatalog, embeddedErr = LoadFromFS(embeddedLocales, "locales")
	})
	return embeddedCatalog, embeddedErr
}

// MustLoadEmbedded is LoadEmbedded for callers that cannot proceed without
// the built-in catalog.
func MustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("i18n: embedded catalog: %v", err))
	}
	return c
}

// LoadFromFS reads every *.toml file in dir. Each file's locale field must
// match its base name.
func LoadFromFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locale dir: %w", err)
	}

	c := &Catalog{messages: make(map[string]map[string]string)}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".toml")

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", entry.Name(), err)
		}

		var file catalogFile
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", entry.Name(), err)
		}
		if file.Locale != name {
			return nil, fmt.Errorf("locale %s declares %q", entry.Name(), file.Locale)
		}

		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", entry.Name(), err)
		}
		c.add(tag, file.Messages)
	}

	if len(c.tags) == 0 {
		return nil, errors.New("no locale catalogs found")
	}
	c.buildMatcher()
	return c, nil
}

// NewCatalog builds a catalog from in-memory tables, keyed by language tag.
func NewCatalog(tables map[string]map[string]string) (*Catalog, error) {
	c := &Catalog{messages: make(map[string]map[string]string)}
	for lang, msgs := range tables {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("catalog %q: %w", lang, err)
		}
		c.add(tag, msgs)
	}
	if len(c.tags) == 0 {
		return nil, errors.New("no locale catalogs found")
	}
	c.buildMatcher()
	return c, nil
}

func (c *Catalog) add(tag language.Tag, msgs map[string]string) {
	key := tag.String()
	table := make(map[string]string, len(msgs))
	for k, v := range msgs {
		table[k] = v
	}
	c.messages[key] = table
	c.tags = append(c.tags, tag)
}

// buildMatcher orders tags so the default language comes first; the matcher
// falls back to its first entry.
func (c *Catalog) buildMatcher() {
	sort.SliceStable(c.tags, func(i, j int) bool {
		if c.tags[i].String() == DefaultLanguage {
			return true
		}
		if c.tags[j].String() == DefaultLanguage {
			return false
		}
		return c.tags[i].String() < c.tags[j].String()
	})
	c.matcher = language.NewMatcher(c.tags)
}

// Lookup returns the message for key in lang, or key itself when either the
// language or the key is missing.
func (c *Catalog) Lookup(lang, key string) string {
	if c == nil {
		return key
	}
	if table, ok := c.messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	return key
}

// Keys returns the sorted keys of lang.
func (c *Catalog) Keys(lang string) []string {
	table := c.messages[lang]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Languages returns the supported language tags, default first.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// Supports reports whether lang names a catalog exactly.
func (c *Catalog) Supports(lang string) bool {
	_, ok := c.messages[lang]
	return ok
}

// Match maps a requested tag such as "pt-BR" or a POSIX locale such as
// "pt_BR.UTF-8" to a supported language. Requests that match nothing with
// reasonable confidence return ErrUnsupportedLanguage.
func (c *Catalog) Match(requested string) (string, error) {
	raw := normalizePOSIX(requested)
	if raw == "" {
		return "", fmt.Errorf("%w: empty tag", ErrUnsupportedLanguage)
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, requested)
	}

	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, requested)
	}
	return c.tags[index].String(), nil
}

// normalizePOSIX turns "pt_BR.UTF-8@euro" into "pt-BR".
func normalizePOSIX(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
