// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package opener

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/time/rate"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrScheme is returned for URLs outside http, https and mailto.
	ErrScheme = errors.New("unsupported url scheme")

	// ErrRateLimited is returned when launches come faster than allowed.
	ErrRateLimited = errors.New("open rate limited")

	// ErrUnsupportedPlatform is returned when no URL handler is known.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// =============================================================================
// OPENER
// =============================================================================

// Launcher starts the OS handler for a URL without waiting for it.
type Launcher func(target string) error

// ClipboardWriter puts text on the system clipboard.
type ClipboardWriter func(text string) error

// Opener hands URLs to the operating system. Open is fire-and-forget;
// OpenErr is the same operation with the error kept for callers that show it.
type Opener struct {
	launch  Launcher
	copy    ClipboardWriter
	limiter *rate.Limiter

	systemClipboard bool

	mu   sync.Mutex
	last string
}

// Option configures an Opener.
type Option func(*Opener)

// WithLauncher replaces the OS launcher.
func WithLauncher(l Launcher) Option {
	return func(o *Opener) { o.launch = l }
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(c ClipboardWriter) Option {
	return func(o *Opener) {
		o.copy = c
		o.systemClipboard = false
	}
}

// WithRate sets the sustained launch rate and burst.
func WithRate(every time.Duration, burst int) Option {
	return func(o *Opener) { o.limiter = rate.NewLimiter(rate.Every(every), burst) }
}

// New creates an Opener allowing one launch per second with a burst of two.
func New(opts ...Option) *Opener {
	o := &Opener{
		launch:  systemLaunch,
		copy:    clipboard.WriteAll,
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),

		systemClipboard: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open launches target and logs any failure.
func (o *Opener) Open(target string) {
	if err := o.OpenErr(target); err != nil {
		log.Printf("OPENER_FAILED | url=%s error=%v", target, err)
	}
}

// OpenErr launches target and reports what went wrong.
func (o *Opener) OpenErr(target string) error {
	if err := Validate(target); err != nil {
		return err
	}
	if !o.limiter.Allow() {
		return ErrRateLimited
	}

	o.mu.Lock()
	o.last = target
	o.mu.Unlock()

	if err := o.launch(target); err != nil {
		return fmt.Errorf("launch %s: %w", target, err)
	}
	log.Printf("OPENER_LAUNCHED | url=%s", target)
	return nil
}

// Copy puts target on the clipboard. mailto URLs are copied as the bare
// address.
func (o *Opener) Copy(target string) error {
	if err := Validate(target); err != nil {
		return err
	}
	text := target
	if strings.HasPrefix(strings.ToLower(text), "mailto:") {
		text = text[len("mailto:"):]
	}
	if o.copy == nil || (o.systemClipboard && clipboard.Unsupported) {
		return errors.New("clipboard not available")
	}
	if err := o.copy(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	log.Printf("OPENER_COPIED | text=%s", text)
	return nil
}

// Last returns the most recently launched URL.
func (o *Opener) Last() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.last
}

// Validate accepts absolute http, https and mailto URLs.
func Validate(target string) error {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if !allowedSchemes[scheme] {
		return fmt.Errorf("%w: %q", ErrScheme, u.Scheme)
	}
	if scheme == "mailto" {
		if u.Opaque == "" {
			return errors.New("mailto url has no address")
		}
		return nil
	}
	if u.Host == "" {
		return errors.New("url has no host")
	}
	return nil
}

// systemLaunch starts the platform URL handler.
func systemLaunch(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		// Empty quoted title so start treats the URL as the target
		cmd = exec.Command("cmd", "/c", "start", `""`, target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", target)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child so it does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}
