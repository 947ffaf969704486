// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
)

// =============================================================================
// ARCHITECTURE EXPLORER
// =============================================================================

// ActiveDiagram returns the diagram tab on screen.
func (m *Model) ActiveDiagram() (content.Diagram, bool) {
	if m.diagramIdx < 0 || m.diagramIdx >= len(m.content.Diagrams) {
		return content.Diagram{}, false
	}
	return m.content.Diagrams[m.diagramIdx], true
}

// ActiveNode returns the node selected in the explorer.
func (m *Model) ActiveNode() (content.Node, bool) {
	if m.nodeIdx < 0 || m.nodeIdx >= len(m.content.Nodes) {
		return content.Node{}, false
	}
	return m.content.Nodes[m.nodeIdx], true
}

func (m *Model) renderArchitecture(width int) string {
	t := m.theme
	parts := []string{
		t.Muted.Render("[b] " + m.tr.T("architecture.back")),
		m.sectionTitle("architecture.title", width),
		t.SectionSubtitle.Render(m.paragraphText(m.tr.T("architecture.subtitle"), width)),
		t.Muted.Render(m.tr.T("architecture.tip")),
		"",
	}

	if d, ok := m.ActiveDiagram(); ok {
		parts = append(parts, m.renderDiagramTabs(width), "",
			t.CardTitle.Render(m.tr.T(d.TitleKey())),
			t.Body.Render(m.paragraphText(m.tr.T(d.DescKey()), width)),
			"",
			t.SectionSubtitle.Bold(true).Render(m.tr.T("architecture.source")),
		)
		cb := components.NewCodeBlock("mermaid", d.Source)
		cb.MaxWidth = width
		parts = append(parts, cb.Render(t))
	}

	if len(m.content.Nodes) > 0 {
		parts = append(parts, "",
			t.SectionSubtitle.Bold(true).Render(m.tr.T("architecture.nodes")),
			m.renderNodeList(width),
		)
		if n, ok := m.ActiveNode(); ok {
			parts = append(parts, "", m.renderNodeDetail(n, width))
		}
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderDiagramTabs(width int) string {
	t := m.theme
	var (
		rows []string
		row  []string
		used int
	)
	for i, d := range m.content.Diagrams {
		label := strings.ToUpper(d.Key)
		var tab string
		if i == m.diagramIdx {
			tab = t.TabActive.Render(label)
		} else {
			tab = t.TabInactive.Render(label)
		}
		if used > 0 && used+lipgloss.Width(tab) > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, tab)
		used += lipgloss.Width(tab)
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderNodeList(width int) string {
	t := m.theme
	lines := make([]string, 0, len(m.content.Nodes))
	for i, n := range m.content.Nodes {
		kind := t.NodeKind.Render("[" + n.Kind + "]")
		if i == m.nodeIdx {
			lines = append(lines, t.NodeSelected.Render(styles.StatusIndicators.Cursor+" "+n.Label)+" "+kind)
		} else {
			lines = append(lines, t.Node.Render("  "+n.Label)+" "+kind)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderNodeDetail(n content.Node, width int) string {
	t := m.theme
	inner := max(width-4, 16)

	body := []string{
		t.CardTitle.Render(n.Label) + " " + t.NodeKind.Render(strings.ToUpper(n.Kind)),
		t.Body.Render(m.paragraphText(n.Description, inner)),
	}
	group := func(key string, items []string) {
		if len(items) == 0 {
			return
		}
		body = append(body, "", t.Badge.Render(m.tr.T(key)))
		for _, it := range items {
			body = append(body, m.bullet(it, inner))
		}
	}
	group("architecture.inputs", n.Inputs)
	group("architecture.outputs", n.Outputs)
	group("architecture.failures", n.Failures)
	group("architecture.guarantees", n.Guarantees)

	if len(n.Connections) > 0 {
		body = append(body, "", t.Badge.Render(m.tr.T("architecture.connections")))
		for i, id := range n.Connections {
			label := id
			if target, ok := m.content.Node(id); ok {
				label = target.Label
			}
			body = append(body, styles.RenderTreeLine(i == len(n.Connections)-1)+styles.TreeChars.Arrow+" "+label)
		}
	}

	if len(n.Links) > 0 {
		names := make([]string, 0, len(n.Links))
		for name := range n.Links {
			names = append(names, name)
		}
		sort.Strings(names)
		body = append(body, "", t.Badge.Render(m.tr.T("architecture.links")))
		for _, name := range names {
			body = append(body, t.Muted.Render(name+": ")+styles.RenderLink(n.Links[name]))
		}
	}

	return t.Card.Width(width).Render(strings.Join(body, "\n"))
}
