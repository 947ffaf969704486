// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model of the folio TUI.
//
// Model owns the view router and the palette controller and is the only
// place either is mutated. After every state change it lays out the active
// panel into a viewport, records the line each landing section starts on,
// and then consumes the router's pending scroll for the mounted view.
//
// Keys outside the palette:
//
//	ctrl+k, alt+k   open the command palette
//	ctrl+y          copy the selected link
//	L               next language
//	b, backspace    back to the landing view
//	1-3             open a case study (landing)
//	f               next evidence filter (landing)
//	a               architecture explorer (landing)
//	left, right     previous/next diagram (architecture)
//	tab             next node (architecture)
//	q               quit
package app
