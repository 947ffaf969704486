// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/folio-tui/internal/commands"
	"github.com/jeranaias/folio-tui/internal/i18n"
	"github.com/jeranaias/folio-tui/internal/util"
)

// HandleCommands runs "folio commands [query]": the registry filtered the
// way the palette filters it, grouped by category.
func HandleCommands(env *Env, args Args, w io.Writer) error {
	matches := env.Registry.Filter(args.Query)
	if len(matches) == 0 {
		fmt.Fprintln(w, DimStyle.Render(env.Translator.T("palette.empty")))
		return nil
	}
	writeGroups(w, env.Translator, commands.GroupByCategory(matches), false, GetTerminalWidth())
	return nil
}

// writeGroups prints groups under translated headings. With numbered set,
// each command is prefixed by its 1-based position across all groups.
// Descriptions are cut to fit width.
func writeGroups(w io.Writer, tr *i18n.Translator, groups []commands.Group, numbered bool, width int) {
	n := 0
	for gi, g := range groups {
		if gi > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, SectionStyle.Render(tr.T(g.Category.MessageKey())))
		for _, c := range g.Commands {
			n++
			prefix := "  "
			if numbered {
				prefix = fmt.Sprintf("%3d ", n)
			}
			used := len(prefix) + 14 + 1 + util.StringWidth(c.Label) + 2
			desc := util.TruncateWidth(c.Description, max(width-used, 10))
			fmt.Fprintf(w, "%s%s %s  %s\n",
				prefix,
				IDStyle.Render(util.PadRight(c.ID, 14)),
				ValueStyle.Render(c.Label),
				DimStyle.Render(desc))
		}
	}
}
