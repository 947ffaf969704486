// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"fmt"
	"strings"

	"github.com/jeranaias/folio-tui/internal/content"
	"github.com/jeranaias/folio-tui/internal/i18n"
)

// =============================================================================
// CASE STUDY PANEL
// =============================================================================

// renderCaseStudy renders the selected case study, or the not-found state
// when the router holds an ID the content does not know.
func (m *Model) renderCaseStudy(width int) string {
	id := m.router.SelectedProjectID()
	back := m.theme.Muted.Render("[b] " + m.tr.T("casestudy.back"))

	cs, ok := m.content.CaseStudy(id)
	if !ok {
		return strings.Join([]string{
			back,
			"",
			m.theme.NotFound.Render(m.tr.T("casestudy.notfound")),
			m.theme.Muted.Render(id),
		}, "\n")
	}

	var chips string
	if len(cs.ProofChips) > 0 {
		chips = "\n" + m.chips(cs.ProofChips, width) + "\n"
	}
	return back + "\n" + chips + "\n" + m.markdown.Render(CaseStudyMarkdown(cs, m.tr), width)
}

// CaseStudyMarkdown renders cs as markdown with translated headings.
// Optional sections are left out when empty.
func CaseStudyMarkdown(cs content.CaseStudy, tr *i18n.Translator) string {
	var b strings.Builder
	h2 := func(key string) { fmt.Fprintf(&b, "\n## %s\n\n", tr.T(key)) }
	list := func(items []string) {
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
	}

	fmt.Fprintf(&b, "# %s\n\n", cs.Title)
	fmt.Fprintf(&b, "**%s:** %s  \n", tr.T("casestudy.type"), cs.Type)
	if cs.Link != "" {
		fmt.Fprintf(&b, "**%s:** %s  \n", tr.T("casestudy.link"), cs.Link)
	}
	if cs.Role != "" {
		fmt.Fprintf(&b, "**%s:** %s\n", tr.T("casestudy.role"), cs.Role)
	}

	if cs.Summary.Intro != "" || cs.Summary.Description != "" {
		h2("casestudy.summary")
		if cs.Summary.Intro != "" {
			fmt.Fprintf(&b, "**%s**\n\n", cs.Summary.Intro)
		}
		if cs.Summary.Description != "" {
			fmt.Fprintf(&b, "%s\n", cs.Summary.Description)
		}
	}

	if len(cs.Problem.Points) > 0 {
		h2("casestudy.problem")
		if cs.Problem.Title != "" {
			fmt.Fprintf(&b, "%s\n\n", cs.Problem.Title)
		}
		list(cs.Problem.Points)
	}

	if len(cs.Approach.Points) > 0 {
		h2("casestudy.approach")
		if cs.Approach.Title != "" {
			fmt.Fprintf(&b, "%s\n\n", cs.Approach.Title)
		}
		list(cs.Approach.Points)
		if cs.Approach.Why != "" {
			fmt.Fprintf(&b, "\n> **%s:** %s\n", tr.T("casestudy.why"), cs.Approach.Why)
		}
	}

	if len(cs.Layers) > 0 {
		h2("casestudy.architecture")
		for _, l := range cs.Layers {
			fmt.Fprintf(&b, "### %s\n\n", l.Name)
			list(l.Items)
			b.WriteString("\n")
		}
	}

	if len(cs.Guarantees) > 0 {
		h2("casestudy.guarantees")
		for _, g := range cs.Guarantees {
			fmt.Fprintf(&b, "- `%s`\n", g)
		}
	}

	if sm := cs.SecurityModel; sm != nil && len(sm.Mechanisms) > 0 {
		h2("casestudy.security")
		if sm.Title != "" {
			fmt.Fprintf(&b, "%s\n\n", sm.Title)
		}
		list(sm.Mechanisms)
		if sm.Why != "" {
			fmt.Fprintf(&b, "\n> **%s:** %s\n", tr.T("casestudy.why"), sm.Why)
		}
	}

	if tm := cs.ThreatModel; tm != nil && (len(tm.Threats) > 0 || len(tm.Mitigations) > 0) {
		h2("casestudy.threats")
		list(tm.Threats)
		if len(tm.Mitigations) > 0 {
			fmt.Fprintf(&b, "\n### %s\n\n", tr.T("casestudy.mitigations"))
			list(tm.Mitigations)
		}
	}

	if len(cs.Flows) > 0 {
		h2("casestudy.flows")
		for _, f := range cs.Flows {
			fmt.Fprintf(&b, "### %s\n\n", f.Label)
			for _, s := range f.Steps {
				fmt.Fprintf(&b, "%d. **%s**: %s\n", s.Number, s.Title, s.Description)
			}
			if f.Guarantee != "" {
				fmt.Fprintf(&b, "\n> %s\n", f.Guarantee)
			}
			b.WriteString("\n")
		}
	}

	if len(cs.KeyDecisions) > 0 {
		h2("casestudy.decisions")
		list(cs.KeyDecisions)
	}

	if len(cs.Learnings) > 0 {
		h2("casestudy.learnings")
		list(cs.Learnings)
	}

	return b.String()
}
