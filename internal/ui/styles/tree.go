// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

// TreeChars for rendering node connections and flow steps (ASCII-safe).
var TreeChars = struct {
	Pipe   string
	Tee    string
	Corner string
	Dash   string
	Arrow  string
}{
	Pipe:   "|",
	Tee:    "+",
	Corner: "`",
	Dash:   "-",
	Arrow:  "->",
}

// RenderTreeLine creates a tree line prefix.
// isLast: true if this is the last item in the list
func RenderTreeLine(isLast bool) string {
	if isLast {
		return TreeChars.Corner + TreeChars.Dash + " "
	}
	return TreeChars.Tee + TreeChars.Dash + " "
}
