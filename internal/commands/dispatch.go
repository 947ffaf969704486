// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"log"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Navigator is the subset of the view router that actions drive.
type Navigator interface {
	GoHome()
	GoToSection(sectionID string)
	OpenCaseStudy(projectID string)
	OpenArchitecture()
}

// Opener launches external URLs. It never reports failure to the caller.
type Opener interface {
	Open(url string)
}

// Closer closes whatever surface the command was activated from.
type Closer interface {
	Close()
}

// CloserFunc adapts a function to Closer.
type CloserFunc func()

// Close calls f.
func (f CloserFunc) Close() { f() }

// =============================================================================
// DISPATCHER
// =============================================================================

// Dispatcher runs command actions against the router and the opener.
type Dispatcher struct {
	nav    Navigator
	opener Opener
}

// NewDispatcher creates a dispatcher. opener may be nil, in which case
// external actions are logged and dropped.
func NewDispatcher(nav Navigator, opener Opener) *Dispatcher {
	return &Dispatcher{nav: nav, opener: opener}
}

// Dispatch runs cmd's action and then closes closer (if non-nil).
func (d *Dispatcher) Dispatch(cmd Command, closer Closer) {
	d.Run(cmd.Action)
	log.Printf("COMMAND_DISPATCH | id=%s action=%s", cmd.ID, cmd.Action)
	if closer != nil {
		closer.Close()
	}
}

// Run executes a single action.
func (d *Dispatcher) Run(a Action) {
	switch a.Kind {
	case ActionNavigate:
		switch a.Target {
		case TargetHome:
			d.nav.GoHome()
		case TargetArchitecture:
			d.nav.OpenArchitecture()
		default:
			d.nav.GoToSection(a.Target)
		}
	case ActionOpenCaseStudy:
		d.nav.OpenCaseStudy(a.Target)
	case ActionOpenExternal:
		if d.opener == nil {
			log.Printf("COMMAND_OPEN_SKIPPED | url=%s reason=no-opener", a.Target)
			return
		}
		d.opener.Open(a.Target)
	default:
		log.Printf("COMMAND_UNKNOWN_ACTION | action=%s", a)
	}
}
