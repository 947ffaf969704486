// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across folio.
//
// # Key Functions
//
// String Utilities (display width aware, via go-runewidth):
//   - TruncateWidth: cut to a column budget with an ellipsis
//   - PadRight: pad or cut to an exact column width
//   - WrapWords: word wrap to a column budget
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	title := util.TruncateWidth(project.Title, 40)
//	err := util.AtomicWriteFile(path, data, 0o600)
package util
