// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package router

import (
	"fmt"
	"log"
	"strings"
)

// =============================================================================
// VIEWS
// =============================================================================

// View is one of the mutually exclusive top-level screens.
type View string

const (
	ViewLanding      View = "landing"
	ViewCaseStudy    View = "case-study"
	ViewArchitecture View = "architecture"
)

// TargetTop is the scroll target meaning "the top of the view".
const TargetTop = "top"

// State is a snapshot of the router.
type State struct {
	CurrentView       View
	SelectedProjectID string
}

// String renders the state for the status bar and logs.
func (s State) String() string {
	if s.SelectedProjectID == "" {
		return string(s.CurrentView)
	}
	return fmt.Sprintf("%s:%s", s.CurrentView, s.SelectedProjectID)
}

// ScrollRequest is a scroll that must wait until View has been laid out.
type ScrollRequest struct {
	View   View
	Target string
}

// Transition records one state change.
type Transition struct {
	Op   string
	From State
	To   State
}

// DefaultHistorySize bounds the transition log.
const DefaultHistorySize = 32

// =============================================================================
// ROUTER
// =============================================================================

// Router is the only mutator of view state. It is not safe for concurrent
// use; the UI event loop owns it.
type Router struct {
	state   State
	pending *ScrollRequest
	history []Transition
	maxHist int
}

// New returns a router on the landing view with nothing selected.
func New() *Router {
	return &Router{
		state:   State{CurrentView: ViewLanding},
		maxHist: DefaultHistorySize,
	}
}

// State returns a copy of the current state.
func (r *Router) State() State { return r.state }

// CurrentView returns the active view.
func (r *Router) CurrentView() View { return r.state.CurrentView }

// SelectedProjectID returns the selected project, or "".
func (r *Router) SelectedProjectID() string { return r.state.SelectedProjectID }

// GoHome shows the landing view scrolled to the top.
func (r *Router) GoHome() {
	r.transition("go-home", State{CurrentView: ViewLanding}, TargetTop)
}

// GoToSection shows the landing view and scrolls to sectionID. Unknown
// sections are resolved, and ignored, when the scroll is consumed.
func (r *Router) GoToSection(sectionID string) {
	sectionID = strings.TrimSpace(sectionID)
	if sectionID == "" {
		sectionID = TargetTop
	}
	r.transition("go-to-section", State{CurrentView: ViewLanding}, sectionID)
}

// OpenCaseStudy shows the case study for projectID. An empty ID is ignored
// so a case-study view always has a project.
func (r *Router) OpenCaseStudy(projectID string) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		log.Printf("ROUTER_IGNORED | op=open-case-study reason=empty-id")
		return
	}
	r.transition("open-case-study", State{CurrentView: ViewCaseStudy, SelectedProjectID: projectID}, TargetTop)
}

// OpenArchitecture shows the architecture explorer.
func (r *Router) OpenArchitecture() {
	r.transition("open-architecture", State{CurrentView: ViewArchitecture}, TargetTop)
}

// GoBack returns to the landing view.
func (r *Router) GoBack() {
	r.transition("go-back", State{CurrentView: ViewLanding}, TargetTop)
}

func (r *Router) transition(op string, to State, target string) {
	from := r.state
	r.state = to
	r.pending = &ScrollRequest{View: to.CurrentView, Target: target}

	r.history = append(r.history, Transition{Op: op, From: from, To: to})
	if len(r.history) > r.maxHist {
		r.history = r.history[len(r.history)-r.maxHist:]
	}
	log.Printf("ROUTER_TRANSITION | op=%s from=%s to=%s scroll=%s", op, from, to, target)
}

// =============================================================================
// SCROLL
// =============================================================================

// PendingScroll returns the outstanding scroll request, if any.
func (r *Router) PendingScroll() (ScrollRequest, bool) {
	if r.pending == nil {
		return ScrollRequest{}, false
	}
	return *r.pending, true
}

// ConsumeScroll returns and clears the pending scroll when mounted is the
// view it was requested for. A request for a different view stays pending.
func (r *Router) ConsumeScroll(mounted View) (ScrollRequest, bool) {
	if r.pending == nil || r.pending.View != mounted {
		return ScrollRequest{}, false
	}
	req := *r.pending
	r.pending = nil
	return req, true
}

// History returns the recorded transitions, oldest first.
func (r *Router) History() []Transition {
	out := make([]Transition, len(r.history))
	copy(out, r.history)
	return out
}

// Last returns the most recent transition.
func (r *Router) Last() (Transition, bool) {
	if len(r.history) == 0 {
		return Transition{}, false
	}
	return r.history[len(r.history)-1], true
}
