// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the reusable UI pieces of the folio TUI.

# Components

CommandPalette (palette.go) - View over palette.Controller with a text input.
Header (header.go) - Name, current view and language badge.
StatusBar (statusbar.go) - Palette hint, key help and flash messages.
Ticker (ticker.go) - Scrolling technology marquee driven by tea.Tick.
CodeBlock (codeblock.go) - Chroma-highlighted snippets with line numbers.
Markdown (markdown.go) - Glamour rendering with a per-width renderer cache.

# Theme Integration

All components take a *styles.Theme:

	theme := styles.NewTheme(cfg.UI.Theme)
	header := components.NewHeader(theme)
	header.Title = tr.T("hero.title")
	view := header.Render()

Components never mutate navigation state themselves. The palette forwards
keys to its controller, which dispatches through the router.
*/
package components
