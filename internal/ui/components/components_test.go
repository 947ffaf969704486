// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/folio-tui/internal/commands"
	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/i18n"
	"github.com/jeranaias/folio-tui/internal/palette"
	"github.com/jeranaias/folio-tui/internal/router"
	"github.com/jeranaias/folio-tui/internal/storage"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

type nopOpener struct{}

func (nopOpener) Open(string) {}

func newTestPalette(t *testing.T) (*CommandPalette, *router.Router) {
	t.Helper()
	tr := i18n.NewTranslator(context.Background(), i18n.MustLoadEmbedded(), storage.NewMemoryStore(), "en")
	r := router.New()
	ctrl := palette.New(commands.MustBuild(commands.DefaultLinks()), commands.NewDispatcher(r, nopOpener{}))
	return NewCommandPalette(ctrl, tr, styles.NewTheme("dark")), r
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// =============================================================================
// PALETTE
// =============================================================================

func TestCommandPalette_ClosedPassesKeysThrough(t *testing.T) {
	cp, _ := newTestPalette(t)

	handled, _ := cp.Update(runes("q"))
	assert.False(t, handled)
	assert.Empty(t, cp.View())
}

func TestCommandPalette_OpenTypeActivate(t *testing.T) {
	cp, r := newTestPalette(t)

	handled, _ := cp.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.True(t, handled)
	require.True(t, cp.IsVisible())

	handled, _ = cp.Update(runes("radar"))
	assert.True(t, handled)

	view := cp.View()
	assert.Contains(t, view, "CASE STUDIES")
	assert.Contains(t, view, "SNE Radar")
	assert.NotContains(t, view, "NAVIGATION", "empty groups are omitted")

	handled, _ = cp.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	assert.False(t, cp.IsVisible())
	assert.Equal(t, router.ViewCaseStudy, r.CurrentView())
	assert.Equal(t, "sne-radar", r.SelectedProjectID())
}

func TestCommandPalette_SwallowsKeysWhileOpen(t *testing.T) {
	cp, r := newTestPalette(t)
	cp.Open()

	handled, _ := cp.Update(runes("q"))
	assert.True(t, handled, "q is text while the palette is open")
	assert.True(t, cp.IsVisible())
	assert.Equal(t, router.ViewLanding, r.CurrentView())
}

func TestCommandPalette_EscapeCloses(t *testing.T) {
	cp, _ := newTestPalette(t)
	cp.Open()
	cp.Update(runes("go"))

	handled, _ := cp.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.False(t, cp.IsVisible())

	// Reopening starts from an empty query
	cp.Open()
	assert.Contains(t, cp.View(), "NAVIGATION")
}

func TestCommandPalette_EmptyState(t *testing.T) {
	cp, _ := newTestPalette(t)
	cp.Open()
	cp.Update(runes("zzzz"))
	assert.Contains(t, cp.View(), "No commands found")
}

func TestVisibleRows(t *testing.T) {
	rows := make([]paletteRow, 10)
	rows[8].selected = true

	got := visibleRows(rows, 4)
	require.Len(t, got, 4)
	found := false
	for _, r := range got {
		found = found || r.selected
	}
	assert.True(t, found, "window keeps the selection")

	assert.Len(t, visibleRows(rows, 0), 10)
	assert.Len(t, visibleRows(rows, 20), 10)
}

// =============================================================================
// HEADER / STATUS BAR
// =============================================================================

func TestHeader_Render(t *testing.T) {
	theme := styles.NewTheme("dark")
	theme.SetSize(120, 40)
	h := NewHeader(theme)
	h.SetWidth(120)
	h.Title = "RENAN MELO"
	h.View = "CASE STUDY"
	h.Language = "pt"

	out := h.Render()
	assert.Contains(t, out, "RENAN MELO")
	assert.Contains(t, out, "CASE STUDY")
	assert.Contains(t, out, "PT")
}

func TestStatusBar_Flash(t *testing.T) {
	theme := styles.NewTheme("dark")
	s := NewStatusBar(theme)
	s.Hint = "ctrl+k commands"
	now := time.Unix(1000, 0)

	assert.Contains(t, s.Render(now), "ctrl+k commands")

	s.Flash("link copied", true, now)
	assert.Equal(t, "link copied", s.FlashText(now.Add(time.Second)))
	assert.Contains(t, s.Render(now.Add(time.Second)), "link copied")

	assert.Empty(t, s.FlashText(now.Add(FlashDuration+time.Millisecond)))
	assert.Contains(t, s.Render(now.Add(FlashDuration+time.Second)), "ctrl+k commands")
}

func TestStatusBar_TrailDroppedWhenNarrow(t *testing.T) {
	theme := styles.NewTheme("dark")
	theme.SetSize(120, 40)
	s := NewStatusBar(theme)
	s.SetWidth(120)
	s.Hint = "ctrl+k commands"
	s.Keys = "b back | q quit"
	s.Trail = "landing -> architecture"
	now := time.Unix(1000, 0)

	if out := s.Render(now); !strings.Contains(out, s.Trail) || !strings.Contains(out, s.Keys) {
		t.Errorf("wide status bar should show trail and keys, got %q", out)
	}

	theme.SetSize(60, 40)
	s.SetWidth(60)
	s.Trail = strings.Repeat("x", 50)
	out := s.Render(now)
	if strings.Contains(out, s.Trail) {
		t.Errorf("trail should be dropped when it does not fit, got %q", out)
	}
	if !strings.Contains(out, "ctrl+k commands") {
		t.Errorf("hint missing, got %q", out)
	}
}

// =============================================================================
// TICKER
// =============================================================================

func TestTicker_FrameAndAdvance(t *testing.T) {
	theme := styles.NewTheme("dark")
	items := []content.TickerItem{{Text: "WEB3", IsLabel: true}, {Text: "Solidity"}}
	tk := NewTicker(items, 10*time.Millisecond, theme)

	first := tk.Frame(10)
	assert.Len(t, []rune(first), 10)

	assert.Nil(t, tk.Advance(), "not started")
	assert.Equal(t, 0, tk.Offset())

	require.NotNil(t, tk.Start())
	require.NotNil(t, tk.Advance())
	assert.Equal(t, 1, tk.Offset())
	assert.Equal(t, []rune(first)[1:], []rune(tk.Frame(10))[:9])
}

func TestTicker_Empty(t *testing.T) {
	tk := NewTicker(nil, time.Millisecond, styles.NewTheme("dark"))
	assert.Nil(t, tk.Start())
	assert.Empty(t, tk.Frame(20))
}

func TestTicker_FrameWiderThanStrip(t *testing.T) {
	tk := NewTicker([]content.TickerItem{{Text: "Go"}}, time.Millisecond, styles.NewTheme("dark"))
	frame := tk.Frame(40)
	assert.Len(t, []rune(frame), 40)
	assert.True(t, strings.Count(frame, "Go") > 1, "strip repeats to fill the width")
}

// =============================================================================
// CODE / MARKDOWN
// =============================================================================

func TestCodeBlock_Render(t *testing.T) {
	theme := styles.NewTheme("dark")
	cb := NewCodeBlock("python", "def f():\n    return 1\n")
	out := cb.Render(theme)
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}

func TestCodeBlock_MaxLines(t *testing.T) {
	theme := styles.NewTheme("dark")
	cb := NewCodeBlock("", "a\nb\nc\nd")
	cb.MaxLines = 2
	assert.Contains(t, cb.Render(theme), "...")
}

func TestHighlightCode_UnknownLanguageKeepsText(t *testing.T) {
	out := HighlightCode("graph TD\n  A --> B", "mermaid", true, false)
	assert.Contains(t, out, "graph TD")
}

func TestMarkdown_Render(t *testing.T) {
	md := NewMarkdown("notty")
	out := md.Render("# Title\n\nSome body text.", 40)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Some body text.")
	assert.Len(t, md.renderers, 1)

	md.Render("again", 40)
	assert.Len(t, md.renderers, 1, "renderer is cached per width")
}

func TestDetectLanguage(t *testing.T) {
	assert.Equal(t, "Bash", DetectLanguage("#!/bin/bash\necho hi\n"))

	cb := NewCodeBlock("", "#!/bin/bash\necho hi\n")
	assert.Contains(t, cb.Render(styles.NewTheme("dark")), "bash")
}
