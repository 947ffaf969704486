// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// HandleLang runs "folio lang [show|set <tag>]".
func HandleLang(ctx context.Context, env *Env, args Args, w io.Writer) error {
	switch args.Subcommand {
	case "", "show":
		return showLang(env, w)
	case "set":
		if args.Query == "" {
			return NewUsageError("lang", "set <tag>")
		}
		return setLang(ctx, env, args.Query, w)
	default:
		return NewUsageError("lang", "[show|set <tag>]")
	}
}

func showLang(env *Env, w io.Writer) error {
	tr := env.Translator
	fmt.Fprintf(w, "%s%s\n", RenderLabel("Language:"), ValueStyle.Render(tr.Language()))
	fmt.Fprintf(w, "%s%s\n", RenderLabel("Available:"), DimStyle.Render(strings.Join(tr.Catalog().Languages(), ", ")))
	fmt.Fprintf(w, "%s%s\n", RenderLabel("Default:"), DimStyle.Render(env.Config.I18n.DefaultLanguage))
	return nil
}

func setLang(ctx context.Context, env *Env, tag string, w io.Writer) error {
	from := env.Translator.Language()
	if err := env.Translator.SetLanguage(ctx, tag); err != nil {
		return NewCommandError("lang", "set", tag, err)
	}
	to := env.Translator.Language()
	fmt.Fprintf(w, "%s %s -> %s\n", SuccessStyle.Render("Language set:"), from, to)
	return nil
}
