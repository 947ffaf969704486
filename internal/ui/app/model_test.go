// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/folio-tui/internal/commands"
	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/i18n"
	"github.com/jeranaias/folio-tui/internal/router"
	"github.com/jeranaias/folio-tui/internal/storage"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

type fakeOpener struct {
	opened  []string
	copied  []string
	copyErr error
}

func (f *fakeOpener) Open(target string) { f.opened = append(f.opened, target) }

func (f *fakeOpener) Copy(target string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copied = append(f.copied, target)
	return nil
}

type harness struct {
	m      *Model
	opener *fakeOpener
	store  *storage.MemoryStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	c, err := content.LoadEmbedded()
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	op := &fakeOpener{}
	fixed := time.Unix(1_700_000_000, 0)

	m := New(Options{
		Context:       context.Background(),
		Content:       c,
		Translator:    i18n.NewTranslator(context.Background(), i18n.MustLoadEmbedded(), store, "en"),
		Registry:      commands.MustBuild(commands.DefaultLinks()),
		Opener:        op,
		Theme:         styles.NewTheme("dark"),
		MarkdownStyle: "notty",
		SessionID:     "test",
		Now:           func() time.Time { return fixed },
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &harness{m: m, opener: op, store: store}
}

func (h *harness) key(k tea.KeyMsg) tea.Cmd {
	_, cmd := h.m.Update(k)
	return cmd
}

func (h *harness) typeText(s string) {
	h.key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// =============================================================================
// PALETTE SCENARIOS
// =============================================================================

func TestPalette_OpenCaseStudyFromQuery(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
	require.True(t, h.m.Palette().IsOpen())

	h.typeText("case study")
	require.Len(t, h.m.Palette().Filtered(), 3)

	h.key(tea.KeyMsg{Type: tea.KeyDown})
	h.key(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, h.m.Palette().IsOpen())
	assert.Equal(t, router.ViewCaseStudy, h.m.Router().CurrentView())
	assert.Equal(t, "sne-radar", h.m.Router().SelectedProjectID())
	assert.Contains(t, h.m.View(), "SNE RADAR")
}

func TestPalette_EscapeLeavesViewUntouched(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.typeText("zzz")
	assert.Contains(t, h.m.View(), "No commands found")

	h.key(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, h.m.Palette().IsOpen())
	assert.Equal(t, router.ViewLanding, h.m.Router().CurrentView())
	assert.Empty(t, h.opener.opened)
}

func TestPalette_TrailingSpaceIsPartOfQuery(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.typeText("radar")
	if n := len(h.m.Palette().Filtered()); n != 1 {
		t.Fatalf("Filtered() for %q has %d commands, want 1", "radar", n)
	}

	h.typeText(" ")
	if n := len(h.m.Palette().Filtered()); n != 0 {
		t.Errorf("Filtered() for %q has %d commands, want 0", "radar ", n)
	}
	if !strings.Contains(h.m.View(), "No commands found") {
		t.Error("trailing space should show the empty state")
	}
}

func TestPalette_GoToSectionScrollsToAnchor(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.typeText("evidence room")
	require.Len(t, h.m.Palette().Filtered(), 1)
	h.key(tea.KeyMsg{Type: tea.KeyEnter})

	anchor, ok := h.m.anchors[SectionEvidence]
	require.True(t, ok)
	assert.Greater(t, anchor, 0)
	assert.Equal(t, anchor, h.m.viewport.YOffset)

	_, pending := h.m.Router().PendingScroll()
	assert.False(t, pending, "scroll is consumed after layout")
}

func TestPalette_ExternalCommandOpensLink(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.typeText("github")
	h.key(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"https://github.com/SNE-Labs"}, h.opener.opened)
	assert.False(t, h.m.Palette().IsOpen())
	assert.Equal(t, router.ViewLanding, h.m.Router().CurrentView())
}

func TestPalette_QIsTextWhileOpen(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
	h.key(keyRune('q'))

	assert.True(t, h.m.Palette().IsOpen())
	assert.Equal(t, "q", h.m.Palette().Query())
}

// =============================================================================
// COPY LINK
// =============================================================================

func TestCopyLink(t *testing.T) {
	t.Run("selected external command", func(t *testing.T) {
		h := newHarness(t)
		h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
		h.typeText("linkedin")
		h.key(tea.KeyMsg{Type: tea.KeyCtrlY})

		assert.Equal(t, []string{"https://linkedin.com/in/renan-melo-connexions"}, h.opener.copied)
		assert.True(t, h.m.Palette().IsOpen(), "copying keeps the palette open")
		assert.Equal(t, "link copied", h.m.status.FlashText(h.m.now()))
	})

	t.Run("navigation command copies nothing", func(t *testing.T) {
		h := newHarness(t)
		h.key(tea.KeyMsg{Type: tea.KeyCtrlK})
		h.key(tea.KeyMsg{Type: tea.KeyCtrlY})
		assert.Empty(t, h.opener.copied)
	})

	t.Run("case study link", func(t *testing.T) {
		h := newHarness(t)
		h.key(keyRune('2'))
		h.key(tea.KeyMsg{Type: tea.KeyCtrlY})
		assert.Equal(t, []string{"https://radar.snelabs.space"}, h.opener.copied)
	})

	t.Run("clipboard failure flashes an error", func(t *testing.T) {
		h := newHarness(t)
		h.opener.copyErr = errors.New("no clipboard")
		h.key(keyRune('1'))
		h.key(tea.KeyMsg{Type: tea.KeyCtrlY})
		assert.Equal(t, "copy failed", h.m.status.FlashText(h.m.now()))
	})
}

// =============================================================================
// VIEWS
// =============================================================================

func TestCaseStudy_NotFound(t *testing.T) {
	h := newHarness(t)

	h.m.Router().OpenCaseStudy("does-not-exist")
	h.m.refresh()

	assert.Equal(t, router.ViewCaseStudy, h.m.Router().CurrentView())
	view := h.m.View()
	assert.Contains(t, view, "Case study not found")
	assert.Contains(t, view, "does-not-exist")
}

func TestLandingKeys(t *testing.T) {
	tests := []struct {
		name    string
		key     rune
		view    router.View
		project string
	}{
		{"first project", '1', router.ViewCaseStudy, "sne-os"},
		{"third project", '3', router.ViewCaseStudy, "sne-vault"},
		{"architecture", 'a', router.ViewArchitecture, ""},
		{"unbound key", 'z', router.ViewLanding, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.key(keyRune(tt.key))
			assert.Equal(t, tt.view, h.m.Router().CurrentView())
			assert.Equal(t, tt.project, h.m.Router().SelectedProjectID())
		})
	}
}

func TestBackReturnsToLanding(t *testing.T) {
	for _, k := range []tea.KeyMsg{keyRune('b'), {Type: tea.KeyBackspace}} {
		h := newHarness(t)
		h.key(keyRune('a'))
		require.Equal(t, router.ViewArchitecture, h.m.Router().CurrentView())

		h.key(k)
		assert.Equal(t, router.ViewLanding, h.m.Router().CurrentView())
		assert.Equal(t, 0, h.m.viewport.YOffset)
	}
}

func TestEvidenceFilterCycles(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, content.KindAll, h.m.ActiveEvidenceFilter())

	h.key(keyRune('f'))
	assert.Equal(t, content.KindCode, h.m.ActiveEvidenceFilter())

	for range content.EvidenceFilters()[1:] {
		h.key(keyRune('f'))
	}
	assert.Equal(t, content.KindAll, h.m.ActiveEvidenceFilter(), "wraps after the last filter")
}

func TestArchitectureNavigation(t *testing.T) {
	h := newHarness(t)
	h.key(keyRune('a'))

	d, ok := h.m.ActiveDiagram()
	require.True(t, ok)
	assert.Equal(t, "overview", d.Key)

	h.key(tea.KeyMsg{Type: tea.KeyRight})
	d, _ = h.m.ActiveDiagram()
	assert.Equal(t, "desktop", d.Key)

	h.key(tea.KeyMsg{Type: tea.KeyLeft})
	h.key(tea.KeyMsg{Type: tea.KeyLeft})
	d, _ = h.m.ActiveDiagram()
	assert.Equal(t, "data", d.Key, "left from the first tab wraps")

	h.key(tea.KeyMsg{Type: tea.KeyTab})
	n, ok := h.m.ActiveNode()
	require.True(t, ok)
	assert.Equal(t, "backend-api", n.ID)
	assert.Contains(t, h.m.renderArchitecture(h.m.theme.ContentWidth()), "SNE CORE API")
}

func TestLanguageToggle(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, "en", h.m.tr.Language())

	h.key(keyRune('L'))

	assert.Equal(t, "pt", h.m.tr.Language())
	stored, err := h.store.Get(context.Background(), storage.LanguageKey)
	require.NoError(t, err)
	assert.Equal(t, "pt", stored)
	assert.Equal(t, "pt", h.m.header.Language)
	assert.Equal(t, h.m.tr.T("view.landing"), h.m.header.View)

	if got := h.m.status.FlashText(h.m.now()); got != "idioma: pt" {
		t.Errorf("flash = %q, want %q", got, "idioma: pt")
	}
}

func TestStatusTrailShowsLastTransition(t *testing.T) {
	h := newHarness(t)
	if h.m.status.Trail != "" {
		t.Fatalf("Trail = %q before any transition, want empty", h.m.status.Trail)
	}

	h.key(keyRune('2'))
	id := h.m.Router().SelectedProjectID()
	want := "landing " + styles.TreeChars.Arrow + " case-study:" + id
	if h.m.status.Trail != want {
		t.Errorf("Trail = %q, want %q", h.m.status.Trail, want)
	}

	h.key(keyRune('b'))
	want = "case-study:" + id + " " + styles.TreeChars.Arrow + " landing"
	if h.m.status.Trail != want {
		t.Errorf("Trail after back = %q, want %q", h.m.status.Trail, want)
	}
	if !strings.Contains(h.m.View(), want) {
		t.Errorf("status bar does not show %q", want)
	}
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	cmd := h.key(keyRune('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// =============================================================================
// BACKGROUND MESSAGES
// =============================================================================

func TestContentReloaded(t *testing.T) {
	h := newHarness(t)
	before := h.m.content

	h.m.Update(ContentReloadedMsg{Err: errors.New("bad toml")})
	assert.Same(t, before, h.m.content, "failed reloads keep the previous content")
	assert.Equal(t, "content reload failed, keeping previous", h.m.status.FlashText(h.m.now()))

	next := &content.Content{Projects: []content.Project{{ID: "only", Title: "Only Project"}}}
	h.m.Update(ContentReloadedMsg{Content: next})
	assert.Same(t, next, h.m.content)
	body, _ := h.m.renderLanding(h.m.theme.ContentWidth())
	assert.Contains(t, body, "Only Project")
}

func TestReloadSender(t *testing.T) {
	var got tea.Msg
	fn := ReloadSender(func(msg tea.Msg) { got = msg })
	fn(nil, errors.New("boom"))

	msg, ok := got.(ContentReloadedMsg)
	require.True(t, ok)
	assert.EqualError(t, msg.Err, "boom")
}

func TestTicker(t *testing.T) {
	c, err := content.LoadEmbedded()
	require.NoError(t, err)
	m := New(Options{
		Content:        c,
		Translator:     i18n.NewTranslator(context.Background(), i18n.MustLoadEmbedded(), nil, "en"),
		Registry:       commands.MustBuild(commands.DefaultLinks()),
		Opener:         &fakeOpener{},
		TickerInterval: 10 * time.Millisecond,
	})
	require.NotNil(t, m.Init())

	m.Update(components.TickerTickMsg{})
	assert.Equal(t, 1, m.ticker.Offset())
}

// =============================================================================
// LAYOUT
// =============================================================================

func TestSectionWriterAnchors(t *testing.T) {
	w := newSectionWriter()
	w.section("a", "one")
	w.section("b", "two\nthree")
	w.section("c", "four")

	assert.Equal(t, map[string]int{"a": 0, "b": 2, "c": 5}, w.anchors)
	lines := strings.Split(w.b.String(), "\n")
	assert.Equal(t, "two", lines[2])
	assert.Equal(t, "four", lines[5])
}

func TestLandingAnchorsCoverEverySection(t *testing.T) {
	h := newHarness(t)
	prev := -1
	for _, id := range LandingSections() {
		line, ok := h.m.anchors[id]
		require.True(t, ok, id)
		assert.Greater(t, line, prev, "%s starts after the previous section", id)
		prev = line
	}
}

func TestCaseStudyMarkdown(t *testing.T) {
	c, err := content.LoadEmbedded()
	require.NoError(t, err)
	tr := i18n.NewTranslator(context.Background(), i18n.MustLoadEmbedded(), nil, "en")

	radar, _ := c.CaseStudy("sne-radar")
	md := CaseStudyMarkdown(radar, tr)
	assert.Contains(t, md, "# SNE RADAR")
	assert.Contains(t, md, "## SECURITY MODEL")
	assert.Contains(t, md, "## FLOWS")
	assert.NotContains(t, md, "## THREAT MODEL")

	vault, _ := c.CaseStudy("sne-vault")
	md = CaseStudyMarkdown(vault, tr)
	assert.Contains(t, md, "## THREAT MODEL")
	assert.NotContains(t, md, "**LINK:**")
	assert.NotContains(t, md, "## KEY DECISIONS")
}
