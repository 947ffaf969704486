// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// FlashDuration is how long a flash message stays up.
const FlashDuration = 3 * time.Second

// StatusBar is the bottom line: palette hint, key help, the last view
// transition and a transient flash message.
type StatusBar struct {
	Hint  string
	Keys  string
	Trail string
	Width int

	flash      string
	flashOK    bool
	flashUntil time.Time

	theme *styles.Theme
}

// NewStatusBar creates a StatusBar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// Flash shows msg until FlashDuration after now.
func (s *StatusBar) Flash(msg string, ok bool, now time.Time) {
	s.flash = msg
	s.flashOK = ok
	s.flashUntil = now.Add(FlashDuration)
}

// FlashText returns the active flash message at now, if any.
func (s *StatusBar) FlashText(now time.Time) string {
	if s.flash == "" || now.After(s.flashUntil) {
		return ""
	}
	return s.flash
}

// Render renders the status bar at now.
func (s *StatusBar) Render(now time.Time) string {
	width := s.Width
	if width < 20 {
		width = 20
	}
	inner := width - 2

	left := s.theme.ShortcutKey.Render(s.Hint)
	if msg := s.FlashText(now); msg != "" {
		if s.flashOK {
			left = s.theme.SuccessStyle.Render(styles.StatusIndicators.Success + " " + msg)
		} else {
			left = s.theme.ErrorStyle.Render(styles.StatusIndicators.Error + " " + msg)
		}
	}

	right := ""
	if s.theme.GetLayoutMode() != styles.LayoutNarrow {
		right = s.theme.ShortcutDesc.Render(s.Keys)
	}

	// The trail is the first thing dropped when space runs out
	if s.Trail != "" && right != "" {
		withTrail := s.theme.Muted.Render(s.Trail) + "  " + right
		if inner-lipgloss.Width(left)-lipgloss.Width(withTrail) >= 1 {
			right = withTrail
		}
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		right = ""
		gap = max(inner-lipgloss.Width(left), 0)
	}
	return s.theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
