// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/i18n"
	"github.com/jeranaias/folio-tui/internal/palette"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// COMMAND PALETTE
// =============================================================================

// CommandPalette renders a palette.Controller and feeds it keys. The
// controller owns all state; this type only owns the text input.
type CommandPalette struct {
	ctrl  *palette.Controller
	input textinput.Model
	tr    *i18n.Translator
	theme *styles.Theme

	width  int
	height int
}

// paletteRow is one rendered line: a category header or a command.
type paletteRow struct {
	header   string
	id       string
	label    string
	desc     string
	selected bool
}

// NewCommandPalette creates the palette view over ctrl.
func NewCommandPalette(ctrl *palette.Controller, tr *i18n.Translator, theme *styles.Theme) *CommandPalette {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 100
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.Signal).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimary)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)

	return &CommandPalette{
		ctrl:  ctrl,
		input: ti,
		tr:    tr,
		theme: theme,
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Update handles a key. handled is false when the palette is closed and the
// key was not the open shortcut, so the caller may use it. While open the
// palette swallows every key.
func (cp *CommandPalette) Update(msg tea.KeyMsg) (handled bool, cmd tea.Cmd) {
	key := msg.String()

	if cp.ctrl.HandleKey(key) {
		return true, cp.syncFocus()
	}
	if !cp.ctrl.IsOpen() {
		return false, nil
	}

	cp.input, cmd = cp.input.Update(msg)
	if v := cp.input.Value(); v != cp.ctrl.Query() {
		cp.ctrl.SetQuery(v)
	}
	return true, cmd
}

// Open opens the palette outside the keyboard path.
func (cp *CommandPalette) Open() tea.Cmd {
	cp.ctrl.Open()
	return cp.syncFocus()
}

// syncFocus aligns the text input with the controller after a state change.
func (cp *CommandPalette) syncFocus() tea.Cmd {
	if cp.ctrl.TakeFocusRequest() {
		cp.input.Reset()
		cp.input.Placeholder = cp.tr.T("palette.placeholder")
		return cp.input.Focus()
	}
	if !cp.ctrl.IsOpen() {
		cp.input.Blur()
	}
	return nil
}

// IsVisible reports whether the palette is open.
func (cp *CommandPalette) IsVisible() bool {
	return cp.ctrl.IsOpen()
}

// SetSize sets the area the palette is centered in.
func (cp *CommandPalette) SetSize(width, height int) {
	cp.width = width
	cp.height = height
}

// View renders the palette box, or "" when closed.
func (cp *CommandPalette) View() string {
	if !cp.ctrl.IsOpen() {
		return ""
	}

	boxWidth := 64
	if cp.width > 0 && cp.width < boxWidth+6 {
		boxWidth = cp.width - 6
	}
	if boxWidth < 30 {
		boxWidth = 30
	}
	inner := boxWidth - 6

	header := cp.theme.PaletteTitle.Render(cp.tr.T("palette.title"))
	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(strings.Repeat("-", inner))

	cp.input.Width = inner - 3
	inputView := cp.input.View()

	rows := cp.rows()
	var list string
	if len(rows) == 0 {
		list = cp.theme.Muted.Italic(true).Padding(1, 0).Render(cp.tr.T("palette.empty"))
	} else {
		budget := 0
		if cp.height > 0 {
			// Title, input, two separators, help and box padding
			budget = cp.height - 12
		}
		list = cp.renderRows(visibleRows(rows, budget), inner)
	}

	help := cp.theme.Muted.Padding(1, 0, 0, 0).Render(cp.tr.T("palette.help"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		separator,
		inputView,
		separator,
		list,
		help,
	)
	box := cp.theme.PaletteBox.Width(boxWidth).Render(content)

	if cp.width > 0 && cp.height > 0 {
		return lipgloss.Place(cp.width, cp.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// =============================================================================
// INTERNAL METHODS
// =============================================================================

func (cp *CommandPalette) rows() []paletteRow {
	selected, hasSel := cp.ctrl.Selected()

	var rows []paletteRow
	for _, g := range cp.ctrl.Groups() {
		rows = append(rows, paletteRow{header: cp.tr.T(g.Category.MessageKey())})
		for _, c := range g.Commands {
			rows = append(rows, paletteRow{
				id:       c.ID,
				label:    c.Label,
				desc:     c.Description,
				selected: hasSel && c.ID == selected.ID,
			})
		}
	}
	return rows
}

// visibleRows returns a window of at most budget rows that contains the
// selected row. A budget of zero or less means no limit.
func visibleRows(rows []paletteRow, budget int) []paletteRow {
	if budget <= 0 || len(rows) <= budget {
		return rows
	}
	sel := 0
	for i, r := range rows {
		if r.selected {
			sel = i
			break
		}
	}
	start := sel - budget/2
	if start < 0 {
		start = 0
	}
	if start+budget > len(rows) {
		start = len(rows) - budget
	}
	return rows[start : start+budget]
}

func (cp *CommandPalette) renderRows(rows []paletteRow, width int) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.header != "" {
			lines = append(lines, cp.theme.PaletteCategory.Render(r.header))
			continue
		}
		lines = append(lines, cp.renderItem(r, width))
	}
	return strings.Join(lines, "\n")
}

func (cp *CommandPalette) renderItem(r paletteRow, width int) string {
	indicator := "  "
	if r.selected {
		indicator = styles.StatusIndicators.Cursor + " "
	}
	recent := ""
	if cp.ctrl.IsRecent(r.id) {
		recent = cp.theme.PaletteRecent.Render(" " + styles.StatusIndicators.Recent)
	}

	label := r.label
	used := util.StringWidth(indicator) + util.StringWidth(label) + lipgloss.Width(recent) + 4
	descWidth := width - used
	desc := ""
	if descWidth >= 8 {
		desc = "  " + cp.theme.PaletteDesc.Render(util.TruncateWidth(r.desc, descWidth))
	}

	item := indicator + label + recent + desc
	if r.selected {
		return cp.theme.PaletteItemSelected.Width(width).Render(item)
	}
	return cp.theme.PaletteItem.Render(item)
}
