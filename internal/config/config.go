// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete folio configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	UI      UIConfig      `toml:"ui" json:"ui"`
	I18n    I18nConfig    `toml:"i18n" json:"i18n"`
	Storage StorageConfig `toml:"storage" json:"storage"`
	Content ContentConfig `toml:"content" json:"content"`
	Links   LinksConfig   `toml:"links" json:"links"`
	Log     LogConfig     `toml:"log" json:"log"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// NoColor disables all color output
	NoColor bool `toml:"no_color" json:"no_color"`
	// Ticker enables the scrolling tech ticker on the landing panel
	Ticker bool `toml:"ticker" json:"ticker"`
	// TickerIntervalMs is the ticker step interval in milliseconds
	TickerIntervalMs int `toml:"ticker_interval_ms" json:"ticker_interval_ms"`
}

// I18nConfig contains language configuration.
type I18nConfig struct {
	// DefaultLanguage is used when no language has been stored yet
	DefaultLanguage string `toml:"default_language" json:"default_language"`
}

// StorageConfig contains preference storage configuration.
type StorageConfig struct {
	// Path is the SQLite preference database (empty = ~/.folio/folio.db)
	Path string `toml:"path" json:"path"`
}

// ContentConfig contains content override configuration.
type ContentConfig struct {
	// Dir holds TOML files that replace the embedded ones of the same name
	Dir string `toml:"dir" json:"dir"`
	// Watch reloads content when files in Dir change
	Watch bool `toml:"watch" json:"watch"`
	// DebounceMs is the reload debounce in milliseconds
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
}

// LinksConfig holds the external command targets. Empty values use the
// built-in links.
type LinksConfig struct {
	Demo     string `toml:"demo" json:"demo"`
	GitHub   string `toml:"github" json:"github"`
	LinkedIn string `toml:"linkedin" json:"linkedin"`
	Email    string `toml:"email" json:"email"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Debug writes the event log to File
	Debug bool `toml:"debug" json:"debug"`
	// File is the debug log path (empty = ~/.folio/debug.log)
	File string `toml:"file" json:"file"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		UI: UIConfig{
			Theme:            "dark",
			Ticker:           true,
			TickerIntervalMs: 150,
		},

		I18n: I18nConfig{
			DefaultLanguage: "en",
		},

		Content: ContentConfig{
			Watch:      true,
			DebounceMs: 250,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the folio configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".folio"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultLogPath returns ~/.folio/debug.log.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
// Files ending in .json are decoded as JSON, anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON config %s: %w", path, err)
		}
	} else {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			fmt.Fprintf(os.Stderr, "Warning: unknown config keys in %s: %s\n", path, strings.Join(keys, ", "))
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration atomically to path.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# folio configuration file\n")
	buf.WriteString("# Generated by folio - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}
	if c.UI.TickerIntervalMs < 0 {
		errs = append(errs, ValidationError{Field: "ui.ticker_interval_ms", Message: "must not be negative"})
	}

	if _, err := language.Parse(c.I18n.DefaultLanguage); err != nil {
		errs = append(errs, ValidationError{
			Field:   "i18n.default_language",
			Message: fmt.Sprintf("invalid language tag '%s'", c.I18n.DefaultLanguage),
		})
	}

	if c.Content.DebounceMs < 0 {
		errs = append(errs, ValidationError{Field: "content.debounce_ms", Message: "must not be negative"})
	}

	for field, raw := range map[string]string{
		"links.demo":     c.Links.Demo,
		"links.github":   c.Links.GitHub,
		"links.linkedin": c.Links.LinkedIn,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf("'%s' is not an http(s) URL", raw)})
		}
	}
	if c.Links.Email != "" {
		if _, err := mail.ParseAddress(c.Links.Email); err != nil {
			errs = append(errs, ValidationError{Field: "links.email", Message: fmt.Sprintf("'%s' is not an email address", c.Links.Email)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration fields.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.TickerIntervalMs == 0 {
		c.UI.TickerIntervalMs = defaults.UI.TickerIntervalMs
	}
	if c.I18n.DefaultLanguage == "" {
		c.I18n.DefaultLanguage = defaults.I18n.DefaultLanguage
	}
	if c.Content.DebounceMs == 0 {
		c.Content.DebounceMs = defaults.Content.DebounceMs
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - FOLIO_LANG: overrides i18n.default_language
//   - FOLIO_THEME: overrides ui.theme
//   - FOLIO_DB: overrides storage.path
//   - FOLIO_CONTENT_DIR: overrides content.dir
//   - FOLIO_DEBUG: set to "1" or "true" to enable log.debug
//   - NO_COLOR: any value disables color
func (c *Config) ApplyEnvOverrides() {
	if lang := os.Getenv("FOLIO_LANG"); lang != "" {
		c.I18n.DefaultLanguage = lang
	}
	if theme := os.Getenv("FOLIO_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if db := os.Getenv("FOLIO_DB"); db != "" {
		c.Storage.Path = db
	}
	if dir := os.Getenv("FOLIO_CONTENT_DIR"); dir != "" {
		c.Content.Dir = dir
	}
	if debug := os.Getenv("FOLIO_DEBUG"); debug != "" {
		c.Log.Debug = debug == "1" || strings.ToLower(debug) == "true"
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.UI.NoColor = true
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

func (c *Config) lookup(key string) (reflect.Value, error) {
	if strings.TrimSpace(key) == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("'%s' is a section, not a value", key)
			}
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(part[:1]))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strVal)
			if err != nil {
				boolVal = strings.EqualFold(strVal, "yes")
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) {
		field.Set(val.Convert(field.Type()))
		return nil
	}
	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"ui.theme",
		"ui.no_color",
		"ui.ticker",
		"ui.ticker_interval_ms",
		"i18n.default_language",
		"storage.path",
		"content.dir",
		"content.watch",
		"content.debounce_ms",
		"links.demo",
		"links.github",
		"links.linkedin",
		"links.email",
		"log.debug",
		"log.file",
	}
}

// String returns the configuration as TOML for display.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return buf.String()
}
