// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/commands"
	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/i18n"
	"github.com/jeranaias/folio-tui/internal/palette"
	"github.com/jeranaias/folio-tui/internal/router"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Opener launches and copies external links.
type Opener interface {
	Open(target string)
	Copy(target string) error
}

// Options wires a Model. Content, Translator, Registry and Opener are
// required.
type Options struct {
	Context    context.Context
	Content    *content.Content
	Translator *i18n.Translator
	Registry   *commands.Registry
	Opener     Opener
	Theme      *styles.Theme

	// TickerInterval is the marquee step. Zero disables the ticker.
	TickerInterval time.Duration

	// MarkdownStyle is the glamour style for case studies. Empty picks
	// dark or light from the theme.
	MarkdownStyle string

	// SessionID tags log lines from this run.
	SessionID string

	// Now is the clock used for status flashes. Defaults to time.Now.
	Now func() time.Time
}

// =============================================================================
// MESSAGES
// =============================================================================

// ContentReloadedMsg delivers a content watcher reload to the event loop.
type ContentReloadedMsg struct {
	Content *content.Content
	Err     error
}

// ReloadSender adapts send (usually tea.Program.Send) to a content reload
// callback.
func ReloadSender(send func(tea.Msg)) content.ReloadFunc {
	return func(c *content.Content, err error) {
		send(ContentReloadedMsg{Content: c, Err: err})
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// Layout heights outside the viewport. Header renders with a bottom border.
const (
	headerHeight    = 2
	tickerHeight    = 1
	statusBarHeight = 1
)

// Model is the root Bubble Tea model. It is the single owner of router and
// palette state; panels only read it.
type Model struct {
	ctx context.Context

	router      *router.Router
	palette     *palette.Controller
	paletteView *components.CommandPalette
	tr          *i18n.Translator
	content     *content.Content
	opener      Opener

	theme    *styles.Theme
	header   *components.Header
	status   *components.StatusBar
	ticker   *components.Ticker
	markdown *components.Markdown
	viewport viewport.Model

	width  int
	height int
	ready  bool

	// Landing section anchors, in viewport lines, from the last layout.
	anchors map[string]int

	evidenceFilter int
	diagramIdx     int
	nodeIdx        int

	tickerOn  bool
	sessionID string
	now       func() time.Time
}

// New creates the application model.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme("dark")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	r := router.New()
	ctrl := palette.New(opts.Registry, commands.NewDispatcher(r, opts.Opener))

	mdStyle := opts.MarkdownStyle
	if mdStyle == "" {
		mdStyle = "dark"
		if !theme.IsDark {
			mdStyle = "light"
		}
	}

	m := &Model{
		ctx:         ctx,
		router:      r,
		palette:     ctrl,
		paletteView: components.NewCommandPalette(ctrl, opts.Translator, theme),
		tr:          opts.Translator,
		content:     opts.Content,
		opener:      opts.Opener,
		theme:       theme,
		header:      components.NewHeader(theme),
		status:      components.NewStatusBar(theme),
		ticker:      components.NewTicker(opts.Content.TickerItems(), opts.TickerInterval, theme),
		markdown:    components.NewMarkdown(mdStyle),
		viewport:    viewport.New(80, 20),
		tickerOn:    opts.TickerInterval > 0,
		sessionID:   opts.SessionID,
		now:         now,
	}

	m.tr.OnChange(func(from, to string) {
		log.Printf("APP_LANGUAGE | session=%s from=%s to=%s", m.sessionID, from, to)
	})
	m.refresh()
	return m
}

// Router exposes the view router for tests and the shell.
func (m *Model) Router() *router.Router { return m.router }

// Palette exposes the palette controller.
func (m *Model) Palette() *palette.Controller { return m.palette }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the ticker.
func (m *Model) Init() tea.Cmd {
	log.Printf("APP_START | session=%s lang=%s view=%s", m.sessionID, m.tr.Language(), m.router.State())
	if !m.tickerOn {
		return nil
	}
	return m.ticker.Start()
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case components.TickerTickMsg:
		return m, m.ticker.Advance()

	case ContentReloadedMsg:
		m.handleContentReloaded(msg)
		return m, nil
	}
	return m, nil
}

// View renders the header, the active panel (or the palette over it), the
// ticker and the status bar.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	body := m.viewport.View()
	if m.paletteView.IsVisible() {
		body = m.paletteView.View()
	}

	parts := []string{m.header.Render(), body}
	if m.tickerOn {
		parts = append(parts, m.ticker.View(m.width))
	}
	parts = append(parts, m.status.Render(m.now()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.header.SetWidth(msg.Width)
	m.status.SetWidth(msg.Width)

	reserved := headerHeight + statusBarHeight
	if m.tickerOn {
		reserved += tickerHeight
	}
	vpHeight := max(msg.Height-reserved, 1)

	m.viewport.Width = max(msg.Width, 1)
	m.viewport.Height = vpHeight
	m.paletteView.SetSize(msg.Width, vpHeight)

	m.ready = true
	m.refresh()
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Copying the selected link has to run before the palette swallows keys
	if key == "ctrl+y" {
		m.copyLink()
		return m, nil
	}

	before := m.router.State()
	if handled, cmd := m.paletteView.Update(msg); handled {
		if _, pending := m.router.PendingScroll(); pending || m.router.State() != before {
			m.refresh()
		}
		return m, cmd
	}

	switch key {
	case "q":
		log.Printf("APP_QUIT | session=%s transitions=%d", m.sessionID, len(m.router.History()))
		return m, tea.Quit

	case "L":
		lang, err := m.tr.Next(m.ctx)
		if err != nil {
			log.Printf("APP_LANGUAGE_PERSIST_FAILED | lang=%s error=%v", lang, err)
		}
		m.status.Flash(m.tr.Tf("status.language", lang), true, m.now())
		m.refresh()
		return m, nil

	case "b", "backspace":
		if m.router.CurrentView() != router.ViewLanding {
			m.router.GoBack()
			m.refresh()
		}
		return m, nil
	}

	switch m.router.CurrentView() {
	case router.ViewLanding:
		if m.handleLandingKey(key) {
			m.refresh()
			return m, nil
		}
	case router.ViewArchitecture:
		if m.handleArchitectureKey(key) {
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) handleLandingKey(key string) bool {
	switch key {
	case "1", "2", "3":
		i := int(key[0] - '1')
		if i < len(m.content.Projects) {
			m.router.OpenCaseStudy(m.content.Projects[i].ID)
			return true
		}
	case "f":
		m.evidenceFilter = (m.evidenceFilter + 1) % len(content.EvidenceFilters())
		return true
	case "a":
		m.router.OpenArchitecture()
		return true
	}
	return false
}

func (m *Model) handleArchitectureKey(key string) bool {
	n := len(m.content.Diagrams)
	switch key {
	case "right", "l":
		if n > 0 {
			m.diagramIdx = (m.diagramIdx + 1) % n
		}
		return true
	case "left", "h":
		if n > 0 {
			m.diagramIdx = (m.diagramIdx - 1 + n) % n
		}
		return true
	case "tab":
		if len(m.content.Nodes) > 0 {
			m.nodeIdx = (m.nodeIdx + 1) % len(m.content.Nodes)
		}
		return true
	case "shift+tab":
		if k := len(m.content.Nodes); k > 0 {
			m.nodeIdx = (m.nodeIdx - 1 + k) % k
		}
		return true
	}
	return false
}

func (m *Model) handleContentReloaded(msg ContentReloadedMsg) {
	if msg.Err != nil || msg.Content == nil {
		log.Printf("APP_CONTENT_RELOAD_FAILED | session=%s error=%v", m.sessionID, msg.Err)
		m.status.Flash(m.tr.T("status.reload_failed"), false, m.now())
		return
	}
	m.content = msg.Content
	m.ticker.SetItems(m.content.TickerItems())
	if m.diagramIdx >= len(m.content.Diagrams) {
		m.diagramIdx = 0
	}
	if m.nodeIdx >= len(m.content.Nodes) {
		m.nodeIdx = 0
	}
	m.status.Flash(m.tr.T("status.reloaded"), true, m.now())
	m.refresh()
}

// copyLink copies the selected external command's URL while the palette is
// open, otherwise the link of the case study on screen.
func (m *Model) copyLink() {
	target := ""
	if m.palette.IsOpen() {
		if cmd, ok := m.palette.Selected(); ok && cmd.Action.Kind == commands.ActionOpenExternal {
			target = cmd.Action.Target
		}
	} else if m.router.CurrentView() == router.ViewCaseStudy {
		if cs, ok := m.content.CaseStudy(m.router.SelectedProjectID()); ok {
			target = cs.Link
		}
	}
	if target == "" {
		return
	}

	if err := m.opener.Copy(target); err != nil {
		log.Printf("APP_COPY_FAILED | target=%s error=%v", target, err)
		m.status.Flash(m.tr.T("status.copy_failed"), false, m.now())
		return
	}
	m.status.Flash(m.tr.T("status.copied"), true, m.now())
}

// =============================================================================
// LAYOUT
// =============================================================================

// refresh lays out the active panel, then consumes any scroll request that
// was waiting for it.
func (m *Model) refresh() {
	view := m.router.CurrentView()

	m.header.Title = m.tr.T("hero.title")
	m.header.View = m.tr.T("view." + string(view))
	m.header.Language = m.tr.Language()
	m.header.Status = m.tr.T("system.status")
	m.status.Hint = m.tr.T("status.hint")
	m.status.Keys = m.tr.T("status.keys")
	if last, ok := m.router.Last(); ok {
		m.status.Trail = last.From.String() + " " + styles.TreeChars.Arrow + " " + last.To.String()
	}

	if !m.ready {
		return
	}

	width := m.theme.ContentWidth()
	var body string
	switch view {
	case router.ViewCaseStudy:
		body = m.renderCaseStudy(width)
		m.anchors = nil
	case router.ViewArchitecture:
		body = m.renderArchitecture(width)
		m.anchors = nil
	default:
		body, m.anchors = m.renderLanding(width)
	}
	m.viewport.SetContent(m.theme.Container.Render(body))

	m.applyScroll(view)
}

func (m *Model) applyScroll(view router.View) {
	req, ok := m.router.ConsumeScroll(view)
	if !ok {
		return
	}
	if req.Target == router.TargetTop {
		m.viewport.GotoTop()
		return
	}
	line, found := m.anchors[req.Target]
	if !found {
		log.Printf("APP_SCROLL_TARGET_MISSING | view=%s target=%s", view, req.Target)
		return
	}
	m.viewport.SetYOffset(line)
}
