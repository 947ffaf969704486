// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
)

// =============================================================================
// CATEGORY
// =============================================================================

// Category groups commands in the palette.
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryCaseStudy  Category = "case-study"
	CategoryExternal   Category = "external"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryNavigation, CategoryCaseStudy, CategoryExternal}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryNavigation, CategoryCaseStudy, CategoryExternal:
		return true
	}
	return false
}

// MessageKey is the translation key for the category heading.
func (c Category) MessageKey() string {
	return "palette.category." + string(c)
}

// Label is the untranslated heading used outside the TUI.
func (c Category) Label() string {
	switch c {
	case CategoryNavigation:
		return "NAVIGATION"
	case CategoryCaseStudy:
		return "CASE STUDIES"
	case CategoryExternal:
		return "EXTERNAL LINKS"
	}
	return strings.ToUpper(string(c))
}

// =============================================================================
// ACTION
// =============================================================================

// ActionKind tags the variant of an Action.
type ActionKind int

const (
	ActionNavigate ActionKind = iota + 1
	ActionOpenExternal
	ActionOpenCaseStudy
)

// String returns the kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionNavigate:
		return "navigate"
	case ActionOpenExternal:
		return "open-external"
	case ActionOpenCaseStudy:
		return "open-case-study"
	}
	return fmt.Sprintf("action(%d)", int(k))
}

// Action is what a command does when activated. Target is a section ID,
// URL or project ID depending on Kind.
type Action struct {
	Kind   ActionKind
	Target string
}

// Navigation targets with dedicated router operations.
const (
	TargetHome         = "home"
	TargetArchitecture = "architecture"
)

// Navigate scrolls the landing view to a section.
func Navigate(section string) Action {
	return Action{Kind: ActionNavigate, Target: section}
}

// OpenExternal hands url to the system URL handler.
func OpenExternal(url string) Action {
	return Action{Kind: ActionOpenExternal, Target: url}
}

// OpenCaseStudy shows the case study for a project.
func OpenCaseStudy(projectID string) Action {
	return Action{Kind: ActionOpenCaseStudy, Target: projectID}
}

// String renders the action as kind(target).
func (a Action) String() string {
	return fmt.Sprintf("%s(%s)", a.Kind, a.Target)
}

// =============================================================================
// COMMAND
// =============================================================================

// Command is one entry of the palette.
type Command struct {
	ID          string
	Label       string
	Description string
	Category    Category
	Action      Action
}

// matches reports whether query is a case-insensitive substring of the
// label or the description. The query must already be lower-cased.
func (c Command) matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(c.Label), lowerQuery) ||
		strings.Contains(strings.ToLower(c.Description), lowerQuery)
}

// =============================================================================
// LINKS
// =============================================================================

// Links are the destinations of the external commands.
type Links struct {
	Demo     string
	GitHub   string
	LinkedIn string
	Email    string
}

// DefaultLinks returns the built-in external destinations.
func DefaultLinks() Links {
	return Links{
		Demo:     "https://snelabs.space",
		GitHub:   "https://github.com/SNE-Labs",
		LinkedIn: "https://linkedin.com/in/renan-melo-connexions",
		Email:    "byrenanmelo@gmail.com",
	}
}

// withDefaults fills empty fields from DefaultLinks.
func (l Links) withDefaults() Links {
	d := DefaultLinks()
	if strings.TrimSpace(l.Demo) == "" {
		l.Demo = d.Demo
	}
	if strings.TrimSpace(l.GitHub) == "" {
		l.GitHub = d.GitHub
	}
	if strings.TrimSpace(l.LinkedIn) == "" {
		l.LinkedIn = d.LinkedIn
	}
	if strings.TrimSpace(l.Email) == "" {
		l.Email = d.Email
	}
	return l
}

// mailto turns an address into a mailto URL; values already carrying the
// scheme are kept.
func mailto(addr string) string {
	if strings.HasPrefix(strings.ToLower(addr), "mailto:") {
		return addr
	}
	return "mailto:" + addr
}

// displayHost strips the scheme for labels like "Open Demo (snelabs.space)".
func displayHost(url string) string {
	host := url
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	return strings.TrimSuffix(host, "/")
}

// builtins returns the fixed command list for links.
func builtins(links Links) []Command {
	links = links.withDefaults()
	email := strings.TrimPrefix(links.Email, "mailto:")

	return []Command{
		{ID: "nav-home", Label: "Go to Home", Description: "Navigate to portfolio home", Category: CategoryNavigation, Action: Navigate(TargetHome)},
		{ID: "nav-work", Label: "Go to Selected Work", Description: "View project showcase", Category: CategoryNavigation, Action: Navigate("work")},
		{ID: "nav-about", Label: "Go to About", Description: "Learn more about Renan", Category: CategoryNavigation, Action: Navigate("about")},
		{ID: "nav-contact", Label: "Go to Contact", Description: "Get in touch", Category: CategoryNavigation, Action: Navigate("contact")},
		{ID: "nav-evidence", Label: "Go to Evidence Room", Description: "View documentation and artifacts", Category: CategoryNavigation, Action: Navigate("evidence")},
		{ID: "arch-explorer", Label: "Open Architecture Explorer", Description: "Explore system architecture", Category: CategoryNavigation, Action: Navigate(TargetArchitecture)},

		{ID: "case-sne-os", Label: "SNE OS Case Study", Description: "Control Plane Web", Category: CategoryCaseStudy, Action: OpenCaseStudy("sne-os")},
		{ID: "case-radar", Label: "SNE Radar Case Study", Description: "Desktop + Web + Backend", Category: CategoryCaseStudy, Action: OpenCaseStudy("sne-radar")},
		{ID: "case-vault", Label: "SNE Vault Case Study", Description: "Security & Infrastructure", Category: CategoryCaseStudy, Action: OpenCaseStudy("sne-vault")},

		{ID: "ext-demo", Label: fmt.Sprintf("Open Demo (%s)", displayHost(links.Demo)), Description: "Visit live demo", Category: CategoryExternal, Action: OpenExternal(links.Demo)},
		{ID: "ext-github", Label: "Open GitHub", Description: "View code repositories", Category: CategoryExternal, Action: OpenExternal(links.GitHub)},
		{ID: "ext-linkedin", Label: "Open LinkedIn", Description: "Connect on LinkedIn", Category: CategoryExternal, Action: OpenExternal(links.LinkedIn)},
		{ID: "ext-email", Label: "Send Email", Description: email, Category: CategoryExternal, Action: OpenExternal(mailto(email))},
	}
}
