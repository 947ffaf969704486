// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds every style the TUI renders with.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Dimensions
	Width  int
	Height int

	// ==========================================================================
	// LAYOUT
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER / STATUS BAR
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderView  lipgloss.Style
	LangBadge   lipgloss.Style

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Flash        lipgloss.Style

	// ==========================================================================
	// PANELS
	// ==========================================================================

	HeroTitle       lipgloss.Style
	HeroSubtitle    lipgloss.Style
	SectionTitle    lipgloss.Style
	SectionSubtitle lipgloss.Style
	Body            lipgloss.Style
	Muted           lipgloss.Style
	Card            lipgloss.Style
	CardTitle       lipgloss.Style
	CardSubtitle    lipgloss.Style
	Badge           lipgloss.Style
	Chip            lipgloss.Style
	Bullet          lipgloss.Style
	Quote           lipgloss.Style
	NotFound        lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Node         lipgloss.Style
	NodeSelected lipgloss.Style
	NodeKind     lipgloss.Style

	TickerLabel lipgloss.Style
	TickerItem  lipgloss.Style

	// ==========================================================================
	// COMMAND PALETTE
	// ==========================================================================

	PaletteBox          lipgloss.Style
	PaletteTitle        lipgloss.Style
	PaletteCategory     lipgloss.Style
	PaletteItem         lipgloss.Style
	PaletteItemSelected lipgloss.Style
	PaletteDesc         lipgloss.Style
	PaletteRecent       lipgloss.Style

	// ==========================================================================
	// CODE
	// ==========================================================================

	CodeBlock     lipgloss.Style
	CodeLangBadge lipgloss.Style
	CodeLineNum   lipgloss.Style

	// ==========================================================================
	// STATUS
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	LinkStyle    lipgloss.Style
}

// NewTheme creates a theme for mode ("dark", "light" or "auto"). Auto asks
// the terminal for its background.
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(mode) {
	case "light":
		isDark = false
	case "dark":
		isDark = true
	default:
		isDark = termenv.HasDarkBackground()
	}
	lipgloss.SetHasDarkBackground(isDark)

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

// DisableColor forces plain ASCII output for every style.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Signal)

	t.HeaderView = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.LangBadge = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Signal).
		Bold(true).
		Padding(0, 1)

	// Status bar
	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Flash = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	// Panels
	t.HeroTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Signal)

	t.HeroSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.SectionTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Signal).
		MarginTop(1)

	t.SectionSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Body = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1).
		MarginBottom(1)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	t.CardSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Badge = lipgloss.NewStyle().
		Foreground(Amber).
		Bold(true)

	t.Chip = lipgloss.NewStyle().
		Foreground(Signal).
		Background(SurfaceBright).
		Padding(0, 1)

	t.Bullet = lipgloss.NewStyle().
		Foreground(Signal)

	t.Quote = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Violet).
		PaddingLeft(1)

	t.NotFound = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.TabActive = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Violet).
		Bold(true).
		Padding(0, 1)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.Node = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.NodeSelected = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Signal).
		Bold(true).
		Padding(0, 1)

	t.NodeKind = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.TickerLabel = lipgloss.NewStyle().
		Foreground(Signal).
		Bold(true)

	t.TickerItem = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Command palette
	t.PaletteBox = lipgloss.NewStyle().
		Background(Surface).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Signal).
		Padding(1, 2)

	t.PaletteTitle = lipgloss.NewStyle().
		Foreground(Signal).
		Bold(true)

	t.PaletteCategory = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true).
		MarginTop(1)

	t.PaletteItem = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Padding(0, 1)

	t.PaletteItemSelected = lipgloss.NewStyle().
		Background(SignalDeep).
		Foreground(TextPrimary).
		Bold(true).
		Padding(0, 1)

	t.PaletteDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.PaletteRecent = lipgloss.NewStyle().
		Foreground(Amber)

	// Code
	t.CodeBlock = lipgloss.NewStyle().
		Background(SurfaceBright).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.CodeLangBadge = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(Overlay).
		Padding(0, 1).
		Bold(true)

	t.CodeLineNum = lipgloss.NewStyle().
		Foreground(TextMuted).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	// Status
	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.LinkStyle = lipgloss.NewStyle().
		Foreground(LinkColor).
		Underline(true)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // > 100 columns
)

// ContentWidth is the usable panel width for the current layout, capped so
// prose stays readable on very wide terminals.
func (t *Theme) ContentWidth() int {
	w := t.Width - 4
	if w > 100 {
		w = 100
	}
	if w < 20 {
		w = 20
	}
	return w
}
