// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/ui/components"
	"github.com/jeranaias/folio-tui/internal/ui/styles"
	"github.com/jeranaias/folio-tui/internal/util"
)

// Landing section IDs, in render order. Navigation commands scroll to these.
const (
	SectionHome         = "home"
	SectionWork         = "work"
	SectionEvidence     = "evidence"
	SectionPublications = "publications"
	SectionArchitecture = "architecture-summary"
	SectionAbout        = "about"
	SectionContact      = "contact"
)

// LandingSections lists the landing sections in render order.
func LandingSections() []string {
	return []string{
		SectionHome, SectionWork, SectionEvidence, SectionPublications,
		SectionArchitecture, SectionAbout, SectionContact,
	}
}

// =============================================================================
// SECTION LAYOUT
// =============================================================================

// sectionWriter joins sections with a blank line and records the line each
// one starts on.
type sectionWriter struct {
	b       strings.Builder
	lines   int
	anchors map[string]int
}

func newSectionWriter() *sectionWriter {
	return &sectionWriter{anchors: make(map[string]int)}
}

func (w *sectionWriter) section(id, body string) {
	if w.b.Len() > 0 {
		w.b.WriteString("\n\n")
		w.lines += 2
	}
	w.anchors[id] = w.lines
	w.b.WriteString(body)
	w.lines += strings.Count(body, "\n")
}

// =============================================================================
// LANDING PANEL
// =============================================================================

// renderLanding renders every landing section and returns their anchors.
func (m *Model) renderLanding(width int) (string, map[string]int) {
	w := newSectionWriter()
	w.section(SectionHome, m.renderHero(width))
	w.section(SectionWork, m.renderWork(width))
	w.section(SectionEvidence, m.renderEvidence(width))
	w.section(SectionPublications, m.renderPublications(width))
	w.section(SectionArchitecture, m.renderArchitectureSummary(width))
	w.section(SectionAbout, m.renderAbout(width))
	w.section(SectionContact, m.renderContact(width))
	return w.b.String(), w.anchors
}

func (m *Model) renderHero(width int) string {
	t := m.theme
	lines := []string{
		t.HeroTitle.Render(m.tr.T("hero.title")),
		t.HeroSubtitle.Render(util.TruncateWidth(m.tr.T("hero.subtitle"), width)),
		"",
		m.paragraph(m.tr.T("hero.description"), width),
		"",
		m.chips(m.content.HeroChips, width),
		"",
		t.Muted.Render(fmt.Sprintf("[1-3] %s  [a] %s  ctrl+k",
			m.tr.T("hero.cta.work"), m.tr.T("hero.cta.architecture"))),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderWork(width int) string {
	t := m.theme
	parts := []string{
		m.sectionTitle("work.title", width),
		t.SectionSubtitle.Render(m.tr.T("work.subtitle")),
		t.Muted.Render(m.tr.T("work.hint")),
		"",
	}

	cardWidth := max(width-4, 16)
	for i, p := range m.content.Projects {
		body := []string{
			t.CardTitle.Render(fmt.Sprintf("[%d] %s", i+1, p.Title)),
			t.CardSubtitle.Render(m.paragraphText(p.Subtitle, cardWidth)),
			t.Body.Render(m.paragraphText(p.Impact, cardWidth)),
		}
		for _, h := range p.Highlights {
			body = append(body, m.bullet(h, cardWidth))
		}
		if len(p.Badges) > 0 {
			body = append(body, m.badges(p.Badges, cardWidth))
		}
		if p.Demo != "" {
			body = append(body, t.Muted.Render(m.tr.T("work.cta.demo")+": ")+styles.RenderLink(p.Demo))
		}
		parts = append(parts, t.Card.Width(width).Render(strings.Join(body, "\n")))
	}
	return strings.Join(parts, "\n")
}

// ActiveEvidenceFilter returns the evidence room filter on screen.
func (m *Model) ActiveEvidenceFilter() content.EvidenceKind {
	return content.EvidenceFilters()[m.evidenceFilter]
}

func (m *Model) renderEvidence(width int) string {
	t := m.theme
	active := m.ActiveEvidenceFilter()

	tabs := make([]string, 0, len(content.EvidenceFilters()))
	for _, k := range content.EvidenceFilters() {
		label := m.tr.T("evidence.filter." + string(k))
		if k == active {
			tabs = append(tabs, t.TabActive.Render(label))
		} else {
			tabs = append(tabs, t.TabInactive.Render(label))
		}
	}

	parts := []string{
		m.sectionTitle("evidence.title", width),
		t.SectionSubtitle.Render(m.paragraphText(m.tr.T("evidence.subtitle"), width)),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		t.Muted.Render(m.tr.T("evidence.hint")),
		"",
	}

	items := m.content.FilterEvidence(active)
	if len(items) == 0 {
		parts = append(parts, t.Muted.Italic(true).Render(m.tr.T("evidence.empty")))
		return strings.Join(parts, "\n")
	}

	for _, e := range items {
		body := []string{
			t.CardTitle.Render(e.Title) + " " + t.Badge.Render(strings.ToUpper(string(e.Kind))),
			t.Body.Render(m.paragraphText(e.Description, width-4)),
		}
		if e.Kind == content.KindCode && e.Snippet != "" {
			cb := components.NewCodeBlock(e.Language, e.Snippet)
			cb.MaxWidth = width - 4
			cb.MaxLines = 14
			body = append(body, cb.Render(t))
		}
		if e.URL != "" {
			body = append(body, t.Muted.Render(m.evidenceCTA(e.Kind)+": ")+styles.RenderLink(e.URL))
		}
		parts = append(parts, t.Card.Width(width).Render(strings.Join(body, "\n")))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) evidenceCTA(kind content.EvidenceKind) string {
	switch kind {
	case content.KindCode:
		return m.tr.T("evidence.cta.viewsource")
	case content.KindPDF:
		return m.tr.T("evidence.cta.openpdf")
	default:
		return m.tr.T("evidence.cta.view")
	}
}

func (m *Model) renderPublications(width int) string {
	t := m.theme
	pub := m.content.Publication

	parts := []string{
		m.sectionTitle("publications.title", width),
		t.SectionSubtitle.Render(m.paragraphText(m.tr.T("publications.subtitle"), width)),
		"",
		t.Badge.Render(m.tr.T("publications.featured")),
		t.CardTitle.Render(pub.Title) + "  " + t.Muted.Render(pub.Meta),
		m.paragraph(m.tr.T("publications.verify.description"), width),
	}
	if len(pub.Badges) > 0 {
		parts = append(parts, m.badges(pub.Badges, width))
	}

	if len(pub.Concepts) > 0 {
		parts = append(parts, "", t.SectionSubtitle.Bold(true).Render(m.tr.T("publications.verify.concepts")))
		for _, c := range pub.Concepts {
			parts = append(parts, m.bullet(c, width))
		}
	}

	if len(pub.Timeline) > 0 {
		parts = append(parts, "", t.SectionSubtitle.Bold(true).Render(m.tr.T("publications.verify.origin")))
		for i, e := range pub.Timeline {
			text := util.TruncateWidth(m.tr.T(e.Key), max(width-10, 10))
			parts = append(parts, styles.RenderTreeLine(i == len(pub.Timeline)-1)+t.Badge.Render(e.Year)+" "+text)
		}
	}

	if pub.Quote != "" {
		parts = append(parts, "", t.Quote.Render(pub.Quote))
	}
	if pub.URL != "" {
		parts = append(parts, t.Muted.Render(m.tr.T("evidence.cta.openpdf")+": ")+styles.RenderLink(pub.URL))
	}

	if len(pub.Upcoming) > 0 {
		parts = append(parts, "", t.Badge.Render(m.tr.T("publications.comingsoon")))
		for _, key := range pub.Upcoming {
			parts = append(parts,
				t.CardTitle.Render(m.tr.T(key+".title")),
				t.Muted.Render(m.paragraphText(m.tr.T(key+".desc"), width)))
		}
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderArchitectureSummary(width int) string {
	t := m.theme
	parts := []string{
		m.sectionTitle("architecture.title", width),
		t.SectionSubtitle.Render(m.paragraphText(m.tr.T("architecture.subtitle"), width)),
		"",
		t.Badge.Render(m.tr.T("project.spotlight")),
	}
	for i, d := range m.content.Diagrams {
		parts = append(parts, styles.RenderTreeLine(i == len(m.content.Diagrams)-1)+t.Body.Render(m.tr.T(d.TitleKey())))
	}
	parts = append(parts, "", t.ShortcutKey.Render(m.tr.T("architecture.open")))
	return strings.Join(parts, "\n")
}

func (m *Model) renderAbout(width int) string {
	t := m.theme
	parts := []string{m.sectionTitle("about.title", width)}
	for _, key := range []string{"about.p1", "about.p2", "about.p3", "about.p4"} {
		parts = append(parts, m.paragraph(m.tr.T(key), width), "")
	}
	parts = append(parts, t.SectionSubtitle.Bold(true).Render(m.tr.T("about.skills")), m.chips(m.content.Skills, width))
	return strings.Join(parts, "\n")
}

func (m *Model) renderContact(width int) string {
	t := m.theme
	parts := []string{
		m.sectionTitle("contact.title", width),
		t.SectionSubtitle.Render(m.paragraphText(m.tr.T("contact.subtitle"), width)),
		"",
	}
	for _, c := range m.content.Contact {
		prefix := "contact." + c.Key
		body := []string{
			t.CardTitle.Render(m.tr.T(prefix + ".title")),
			t.Body.Render(m.tr.T(prefix + ".desc")),
			t.ShortcutKey.Render(m.tr.T(prefix+".cta")) + "  " + styles.RenderLink(c.URL),
		}
		parts = append(parts, t.Card.Width(width).Render(strings.Join(body, "\n")))
	}
	parts = append(parts, t.Muted.Render(m.tr.T("contact.location")))
	return strings.Join(parts, "\n")
}

// =============================================================================
// HELPERS
// =============================================================================

func (m *Model) sectionTitle(key string, width int) string {
	return m.theme.SectionTitle.Width(width).Render(m.tr.Upper(m.tr.T(key)))
}

// paragraphText wraps s to width without styling.
func (m *Model) paragraphText(s string, width int) string {
	return strings.Join(util.WrapWords(s, max(width, 10)), "\n")
}

func (m *Model) paragraph(s string, width int) string {
	return m.theme.Body.Render(m.paragraphText(s, width))
}

func (m *Model) bullet(s string, width int) string {
	lines := util.WrapWords(s, max(width-2, 8))
	for i := range lines {
		if i == 0 {
			lines[i] = m.theme.Bullet.Render("- ") + lines[i]
		} else {
			lines[i] = "  " + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

// chips lays out labels left to right, wrapping at width.
func (m *Model) chips(labels []string, width int) string {
	return m.flow(labels, width, m.theme.Chip)
}

func (m *Model) badges(labels []string, width int) string {
	return m.flow(labels, width, m.theme.Badge)
}

func (m *Model) flow(labels []string, width int, style lipgloss.Style) string {
	var (
		rows []string
		row  []string
		used int
	)
	for _, l := range labels {
		cell := style.Render(l)
		cw := lipgloss.Width(cell) + 1
		if used > 0 && used+cw > width {
			rows = append(rows, strings.Join(row, " "))
			row, used = nil, 0
		}
		row = append(row, cell)
		used += cw
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}
