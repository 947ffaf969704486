// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// Markdown renders markdown with glamour, caching one renderer per width.
// Rendering failures fall back to the raw markdown.
type Markdown struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdown creates a renderer for the "dark", "light" or "notty" glamour
// style.
func NewMarkdown(style string) *Markdown {
	if style == "" {
		style = "dark"
	}
	return &Markdown{style: style, renderers: make(map[int]*glamour.TermRenderer)}
}

// Render renders md wrapped to width.
func (m *Markdown) Render(md string, width int) string {
	r := m.renderer(width)
	if r == nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("MARKDOWN_RENDER_FAILED | error=%v", err)
		return md
	}
	return strings.Trim(out, "\n")
}

func (m *Markdown) renderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	if r, ok := m.renderers[width]; ok {
		return r
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Printf("MARKDOWN_INIT_FAILED | style=%s error=%v", m.style, err)
		return nil
	}
	m.renderers[width] = r
	return r
}
