// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// TECH TICKER
// =============================================================================

// TickerTickMsg advances the ticker by one cell.
type TickerTickMsg struct{}

// Ticker is a one-line marquee of the technology groups.
type Ticker struct {
	strip    []rune
	offset   int
	interval time.Duration
	running  bool
	theme    *styles.Theme
}

// NewTicker builds the marquee strip from items.
func NewTicker(items []content.TickerItem, interval time.Duration, theme *styles.Theme) *Ticker {
	t := &Ticker{interval: interval, theme: theme}
	t.SetItems(items)
	return t
}

// SetItems rebuilds the strip, keeping the offset in range.
func (t *Ticker) SetItems(items []content.TickerItem) {
	var b strings.Builder
	for _, it := range items {
		if it.IsLabel {
			b.WriteString("  //  ")
			b.WriteString(it.Text)
			b.WriteString(":")
			continue
		}
		b.WriteString(" ")
		b.WriteString(it.Text)
	}
	if b.Len() > 0 {
		b.WriteString("   ")
	}
	t.strip = []rune(b.String())
	if len(t.strip) > 0 {
		t.offset %= len(t.strip)
	} else {
		t.offset = 0
	}
}

// Start returns the first tick command. Further ticks come from Advance.
func (t *Ticker) Start() tea.Cmd {
	if t.interval <= 0 || len(t.strip) == 0 {
		return nil
	}
	t.running = true
	return t.tick()
}

func (t *Ticker) tick() tea.Cmd {
	return tea.Tick(t.interval, func(time.Time) tea.Msg { return TickerTickMsg{} })
}

// Advance moves the marquee one rune and schedules the next tick.
func (t *Ticker) Advance() tea.Cmd {
	if !t.running || len(t.strip) == 0 {
		return nil
	}
	t.offset = (t.offset + 1) % len(t.strip)
	return t.tick()
}

// Offset returns the current marquee position.
func (t *Ticker) Offset() int { return t.offset }

// Frame returns the plain text visible at width.
func (t *Ticker) Frame(width int) string {
	if width <= 0 || len(t.strip) == 0 {
		return ""
	}
	var b strings.Builder
	w := 0
	// Zero-width runes never advance w, so bound the loop by rune count too
	for i := 0; w < width && i < 2*width+len(t.strip); i++ {
		r := t.strip[(t.offset+i)%len(t.strip)]
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}

// View renders the marquee at width.
func (t *Ticker) View(width int) string {
	return t.theme.TickerItem.Render(t.Frame(width))
}
