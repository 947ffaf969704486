// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// BRAND COLORS
// =============================================================================

// Signal - Brand accent, active section, selections
var Signal = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}

// SignalDeep - Darker signal for selection backgrounds
var SignalDeep = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#064E3B"}

// Cyan - Links, command ids, info
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Violet - Case study accents, diagram tabs
var Violet = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Errors, not-found states, failure modes
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, badges, "coming soon" markers
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Emerald - Success flashes, guarantees
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0F0E"}

// SurfaceDim - Headers and status bar
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#111816"}

// SurfaceBright - Cards and code blocks
var SurfaceBright = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#18221F"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#24332E"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E2E8E5"}

// TextSecondary - Subtitles and labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#A3B3AD"}

// TextMuted - Hints and disabled items
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#5F6F69"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0B0F0E"}

// LinkColor - Accessible link color with sufficient contrast
var LinkColor = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}

// =============================================================================
// ACCESSIBILITY: Shapes next to colors
// =============================================================================

// StatusIndicatorSet contains text indicators for status states.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Info    string
	Recent  string
	Cursor  string
}

// StatusIndicators are ASCII-only so they survive any terminal.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Info:    "[i]",
	Recent:  "*",
	Cursor:  ">",
}

// RenderSuccess renders a success message with its indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(Emerald).Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderInfo renders an info message with its indicator.
func RenderInfo(message string) string {
	return lipgloss.NewStyle().Foreground(Cyan).
		Render(StatusIndicators.Info + " " + message)
}

// RenderLink renders text as a link. Underline keeps it distinct without color.
func RenderLink(text string) string {
	return lipgloss.NewStyle().Foreground(LinkColor).Underline(true).Render(text)
}
