// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed data/*.toml
var embeddedData embed.FS

// Files are the content files, in load order. Each owns a disjoint part of
// Content, so an override file replaces exactly that part.
var Files = []string{
	"projects.toml",
	"casestudies.toml",
	"evidence.toml",
	"architecture.toml",
	"profile.toml",
}

// =============================================================================
// MODEL
// =============================================================================

// Content is everything the panels render.
type Content struct {
	Projects    []Project     `toml:"projects"`
	CaseStudies []CaseStudy   `toml:"case_studies"`
	Evidence    []Evidence    `toml:"evidence"`
	Diagrams    []Diagram     `toml:"diagrams"`
	Nodes       []Node        `toml:"nodes"`
	HeroChips   []string      `toml:"hero_chips"`
	Skills      []string      `toml:"skills"`
	Contact     []ContactCard `toml:"contact"`
	Publication Publication   `toml:"publication"`
	Ticker      []TickerGroup `toml:"ticker"`

	// Sources records where each file came from ("embedded" or a path).
	Sources map[string]string `toml:"-"`
}

// Project is a selected-work card.
type Project struct {
	ID         string   `toml:"id"`
	Title      string   `toml:"title"`
	Subtitle   string   `toml:"subtitle"`
	Impact     string   `toml:"impact"`
	Highlights []string `toml:"highlights"`
	Badges     []string `toml:"badges"`
	Demo       string   `toml:"demo"`
}

// CaseStudy is the long-form write-up of a project.
type CaseStudy struct {
	ID            string         `toml:"id"`
	Title         string         `toml:"title"`
	Type          string         `toml:"type"`
	Link          string         `toml:"link"`
	Role          string         `toml:"role"`
	ProofChips    []string       `toml:"proof_chips"`
	Summary       Summary        `toml:"summary"`
	Problem       Points         `toml:"problem"`
	Approach      Approach       `toml:"approach"`
	Layers        []Layer        `toml:"layers"`
	Guarantees    []string       `toml:"guarantees"`
	SecurityModel *SecurityModel `toml:"security_model"`
	ThreatModel   *ThreatModel   `toml:"threat_model"`
	Flows         []Flow         `toml:"flows"`
	KeyDecisions  []string       `toml:"key_decisions"`
	Learnings     []string       `toml:"learnings"`
}

// Summary is the ten-second pitch.
type Summary struct {
	Intro       string `toml:"intro"`
	Description string `toml:"description"`
}

// Points is a titled bullet list.
type Points struct {
	Title  string   `toml:"title"`
	Points []string `toml:"points"`
}

// Approach is Points plus an optional rationale.
type Approach struct {
	Title  string   `toml:"title"`
	Points []string `toml:"points"`
	Why    string   `toml:"why"`
}

// Layer is one tier of an architecture.
type Layer struct {
	Name  string   `toml:"name"`
	Items []string `toml:"items"`
}

// SecurityModel lists mechanisms and why they matter.
type SecurityModel struct {
	Title      string   `toml:"title"`
	Mechanisms []string `toml:"mechanisms"`
	Why        string   `toml:"why"`
}

// ThreatModel pairs threats with mitigations.
type ThreatModel struct {
	Threats     []string `toml:"threats"`
	Mitigations []string `toml:"mitigations"`
}

// Flow is a numbered sequence of steps with a closing guarantee.
type Flow struct {
	ID        string `toml:"id"`
	Label     string `toml:"label"`
	Steps     []Step `toml:"steps"`
	Guarantee string `toml:"guarantee"`
}

// Step is one step of a Flow.
type Step struct {
	Number      int    `toml:"number"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// EvidenceKind classifies evidence items.
type EvidenceKind string

const (
	KindAll        EvidenceKind = "all"
	KindCode       EvidenceKind = "code"
	KindPDF        EvidenceKind = "pdf"
	KindDiagram    EvidenceKind = "diagram"
	KindScreenshot EvidenceKind = "screenshot"
)

// EvidenceFilters lists the evidence room filters in display order.
func EvidenceFilters() []EvidenceKind {
	return []EvidenceKind{KindAll, KindCode, KindPDF, KindDiagram, KindScreenshot}
}

// Evidence is one artifact in the evidence room.
type Evidence struct {
	ID          string       `toml:"id"`
	Title       string       `toml:"title"`
	Description string       `toml:"description"`
	Kind        EvidenceKind `toml:"kind"`
	Language    string       `toml:"language"`
	Snippet     string       `toml:"snippet"`
	URL         string       `toml:"url"`
}

// Diagram is a mermaid diagram. Key selects the diagram.<key>.title and
// diagram.<key>.desc translations.
type Diagram struct {
	ID     string `toml:"id"`
	Key    string `toml:"key"`
	Source string `toml:"source"`
}

// TitleKey is the translation key of the diagram title.
func (d Diagram) TitleKey() string { return "diagram." + d.Key + ".title" }

// DescKey is the translation key of the diagram description.
func (d Diagram) DescKey() string { return "diagram." + d.Key + ".desc" }

// Node is a component of the architecture explorer.
type Node struct {
	ID          string            `toml:"id"`
	Label       string            `toml:"label"`
	Kind        string            `toml:"kind"`
	Description string            `toml:"description"`
	Inputs      []string          `toml:"inputs"`
	Outputs     []string          `toml:"outputs"`
	Failures    []string          `toml:"failures"`
	Guarantees  []string          `toml:"guarantees"`
	Connections []string          `toml:"connections"`
	Links       map[string]string `toml:"links"`
}

// ContactCard routes a visitor to an email with a subject. Key selects the
// contact.<key>.* translations.
type ContactCard struct {
	Key string `toml:"key"`
	URL string `toml:"url"`
}

// Publication is the featured writing.
type Publication struct {
	Title    string          `toml:"title"`
	Meta     string          `toml:"meta"`
	URL      string          `toml:"url"`
	Concepts []string        `toml:"concepts"`
	Badges   []string        `toml:"badges"`
	Timeline []TimelineEntry `toml:"timeline"`
	Quote    string          `toml:"quote"`
	Upcoming []string        `toml:"upcoming"`
}

// TimelineEntry is a dated line of the origin story.
type TimelineEntry struct {
	Year string `toml:"year"`
	Key  string `toml:"key"`
}

// TickerGroup is a labelled run of technologies.
type TickerGroup struct {
	Label string   `toml:"label"`
	Techs []string `toml:"techs"`
}

// =============================================================================
// LOADING
// =============================================================================

// LoadEmbedded returns the content compiled into the binary.
func LoadEmbedded() (*Content, error) {
	return Load("")
}

// Load reads the embedded content, replacing any file that also exists in
// overrideDir. An empty overrideDir uses only embedded files.
func Load(overrideDir string) (*Content, error) {
	c := &Content{Sources: make(map[string]string, len(Files))}

	for _, name := range Files {
		data, source, err := readFile(overrideDir, name)
		if err != nil {
			return nil, err
		}
		if _, err := toml.Decode(string(data), c); err != nil {
			return nil, fmt.Errorf("parse %s (%s): %w", name, source, err)
		}
		c.Sources[name] = source
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func readFile(overrideDir, name string) ([]byte, string, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return data, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
	}
	data, err := embeddedData.ReadFile("data/" + name)
	if err != nil {
		return nil, "", fmt.Errorf("read embedded %s: %w", name, err)
	}
	return data, "embedded", nil
}

// Validate checks ids are present and unique within each collection.
func (c *Content) Validate() error {
	var errs []string
	check := func(kind string, ids []string) {
		seen := make(map[string]bool, len(ids))
		for i, id := range ids {
			if strings.TrimSpace(id) == "" {
				errs = append(errs, fmt.Sprintf("%s[%d]: empty id", kind, i))
				continue
			}
			if seen[id] {
				errs = append(errs, fmt.Sprintf("%s: duplicate id %q", kind, id))
			}
			seen[id] = true
		}
	}

	ids := func(n int, at func(int) string) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = at(i)
		}
		return out
	}
	check("projects", ids(len(c.Projects), func(i int) string { return c.Projects[i].ID }))
	check("case_studies", ids(len(c.CaseStudies), func(i int) string { return c.CaseStudies[i].ID }))
	check("evidence", ids(len(c.Evidence), func(i int) string { return c.Evidence[i].ID }))
	check("diagrams", ids(len(c.Diagrams), func(i int) string { return c.Diagrams[i].ID }))
	check("nodes", ids(len(c.Nodes), func(i int) string { return c.Nodes[i].ID }))

	for _, e := range c.Evidence {
		switch e.Kind {
		case KindCode, KindPDF, KindDiagram, KindScreenshot:
		default:
			errs = append(errs, fmt.Sprintf("evidence %q: unknown kind %q", e.ID, e.Kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid content: %s", strings.Join(errs, "; "))
	}
	return nil
}

// =============================================================================
// LOOKUPS
// =============================================================================

// CaseStudy returns the case study for id.
func (c *Content) CaseStudy(id string) (CaseStudy, bool) {
	for _, cs := range c.CaseStudies {
		if cs.ID == id {
			return cs, true
		}
	}
	return CaseStudy{}, false
}

// Project returns the project card for id.
func (c *Content) Project(id string) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Node returns the architecture node for id.
func (c *Content) Node(id string) (Node, bool) {
	for _, n := range c.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// FilterEvidence returns the evidence of kind, or all of it for KindAll.
func (c *Content) FilterEvidence(kind EvidenceKind) []Evidence {
	if kind == KindAll || kind == "" {
		return append([]Evidence(nil), c.Evidence...)
	}
	var out []Evidence
	for _, e := range c.Evidence {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// TickerItems flattens the ticker groups into display tokens. Labels come
// first in each group.
func (c *Content) TickerItems() []TickerItem {
	var items []TickerItem
	for _, g := range c.Ticker {
		items = append(items, TickerItem{Text: g.Label, IsLabel: true})
		for _, t := range g.Techs {
			items = append(items, TickerItem{Text: t})
		}
	}
	return items
}

// TickerItem is a single ticker token.
type TickerItem struct {
	Text    string
	IsLabel bool
}
