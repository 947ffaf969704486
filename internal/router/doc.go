// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package router holds folio's view state machine.
//
// Three views are mutually exclusive: landing, case-study and architecture.
// The router's named operations are the only way to change view; panels read
// state and never write it.
//
// # Key Types
//
//   - Router: current view, selected project, pending scroll, history
//   - State: immutable snapshot returned to renderers
//   - ScrollRequest: a scroll target bound to the view that must mount first
//
// # Deferred Scroll
//
// Every operation leaves a ScrollRequest behind. The UI calls ConsumeScroll
// with the view it just laid out; the request is returned only when the
// views match, so a section anchor is never resolved against a view that is
// about to be replaced.
//
//	r := router.New()
//	r.GoToSection("contact")
//	// after layout of the landing view:
//	if req, ok := r.ConsumeScroll(router.ViewLanding); ok {
//		viewport.SetYOffset(anchors[req.Target])
//	}
package router
