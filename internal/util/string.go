// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "…"

// TruncateWidth shortens s to at most maxWidth terminal columns, ending in
// an ellipsis when anything was cut. Wide runes count as two columns.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRight pads s with spaces to width columns. Longer strings are truncated.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = TruncateWidth(s, width)
	return runewidth.FillRight(s, width)
}

// StringWidth returns the display width of s in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// WrapWords breaks s into lines no wider than width, splitting on spaces.
// A single word wider than width gets its own line and is truncated.
func WrapWords(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		switch {
		case curW == 0:
			cur.WriteString(TruncateWidth(w, width))
			curW = min(ww, width)
		case curW+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curW += 1 + ww
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(TruncateWidth(w, width))
			curW = min(ww, width)
		}
	}
	lines = append(lines, cur.String())
	return lines
}
