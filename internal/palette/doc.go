// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package palette implements the command palette state machine: open or
// closed, the query, the filtered command list and the selection index.
//
// The controller holds no rendering code. The TUI feeds it key names and
// query text and draws whatever Groups and State report.
//
// Invariants:
//
//   - SelectedIndex is 0 after Open and after every SetQuery
//   - SelectedIndex stays within [0, len(Filtered())-1], or 0 when empty
//   - activating a command always leaves the palette closed
package palette
