// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// init configures lipgloss for the CLI's output stream. It respects NO_COLOR
// and FORCE_COLOR.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES FOR CLI OUTPUT
// =============================================================================

var (
	// TitleStyle is used for command titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Signal)

	// SectionStyle is used for category headers
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Cyan).
			MarginTop(1)

	// LabelStyle is used for left-aligned field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Width(16)

	// ValueStyle is used for regular values
	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// IDStyle is used for command IDs
	IDStyle = lipgloss.NewStyle().
		Foreground(styles.Amber)

	// SuccessStyle is used for confirmations
	SuccessStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald).
			Bold(true)

	// ErrorStyle is used for errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// DimStyle is used for hints and descriptions
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// SeparatorStyle is used for separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay)
)

// RenderSeparator renders a horizontal separator of width (70 by default).
func RenderSeparator(width ...int) string {
	w := 70
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return SeparatorStyle.Render(strings.Repeat("=", w))
}

// RenderLabel renders a fixed-width label.
func RenderLabel(label string) string {
	return LabelStyle.Render(label)
}
