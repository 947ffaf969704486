// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jeranaias/folio-tui/internal/config"
)

// HandleConfig runs "folio config [show|path|get|set]".
func HandleConfig(env *Env, args Args, w io.Writer) error {
	switch args.Subcommand {
	case "", "show":
		fmt.Fprintln(w, TitleStyle.Render("folio configuration"))
		fmt.Fprintln(w, RenderSeparator(40))
		fmt.Fprint(w, env.Config.String())
		return nil

	case "path":
		fmt.Fprintln(w, env.ConfigPath)
		return nil

	case "keys":
		for _, k := range config.GetAllKeys() {
			fmt.Fprintln(w, k)
		}
		return nil

	case "get":
		if args.ConfigKey == "" {
			return NewUsageError("config", "get <key>")
		}
		v, err := env.Config.Get(args.ConfigKey)
		if err != nil {
			return NewCommandError("config", "get", args.ConfigKey, err)
		}
		fmt.Fprintf(w, "%v\n", v)
		return nil

	case "set":
		if args.ConfigKey == "" || args.ConfigVal == "" {
			return NewUsageError("config", "set <key> <value>")
		}
		return setConfig(env, args.ConfigKey, args.ConfigVal, w)

	default:
		return NewUsageError("config", "[show|path|keys|get <key>|set <key> <value>]")
	}
}

// setConfig validates the change on the loaded config before writing it,
// so an invalid value never reaches disk.
func setConfig(env *Env, key, value string, w io.Writer) error {
	if err := env.Config.Set(key, value); err != nil {
		return NewCommandError("config", "set", key, err)
	}
	if err := env.Config.Validate(); err != nil {
		return NewCommandError("config", "set", key, err)
	}
	if env.ConfigPath == "" {
		return NewCommandError("config", "set", key, fmt.Errorf("no config path"))
	}
	if err := config.SaveTOML(env.Config, env.ConfigPath); err != nil {
		return NewCommandError("config", "set", key, err)
	}
	fmt.Fprintf(w, "%s %s = %s\n", SuccessStyle.Render("Set"), key, value)
	return nil
}
