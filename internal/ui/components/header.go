// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the top bar: name, current view and language badge.
type Header struct {
	Title    string // Owner name
	View     string // Translated label of the current view
	Language string // Active language tag
	Status   string // Right-aligned system status
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a Header with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// Render renders the header.
func (h *Header) Render() string {
	width := h.Width
	if width < 20 {
		width = 20
	}
	inner := width - 2

	left := h.theme.HeaderTitle.Render(h.Title)
	if h.View != "" {
		left += h.theme.HeaderView.Render(" // " + h.View)
	}

	right := h.theme.LangBadge.Render(strings.ToUpper(h.Language))
	if h.Status != "" && h.theme.GetLayoutMode() == styles.LayoutWide {
		right = h.theme.Muted.Render(h.Status) + " " + right
	}

	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Narrow terminals drop the view label first
		left = h.theme.HeaderTitle.Render(util.TruncateWidth(h.Title, max(inner-lipgloss.Width(right)-1, 1)))
		gap = inner - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
	}

	return h.theme.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
