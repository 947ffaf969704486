// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the folio TUI.

All colors use Lip Gloss AdaptiveColor so one palette serves light and dark
terminals. The terminal's color profile comes from termenv; DisableColor
forces ASCII output for --no-color and NO_COLOR.

# Color System (colors.go)

  - Signal - brand accent, active section, selections
  - Cyan - links and command ids
  - Violet - case study and diagram tabs
  - Rose, Amber, Emerald - error, badge and success states

# Theme (theme.go)

Theme groups the styles per surface: header and status bar, landing and
case study panels, the command palette, and code blocks. NewTheme takes the
configured mode ("dark", "light", "auto").

# Accessibility

Status messages always pair color with an ASCII indicator ([OK], [X], [i])
and links are underlined.
*/
package styles
