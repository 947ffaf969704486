// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-TUI commands of
// folio.
//
// # Key Types
//
//   - Command: enumeration of the CLI commands
//   - Args: parsed global flags and command arguments
//   - Env: configuration, preference store, translator, registry and
//     content shared by every command
//   - Shell: line-oriented command palette on top of liner
//
// # Usage
//
//	cmd, args := cli.Parse()
//	env, err := cli.Setup(ctx, args)
//	if err != nil {
//	    fmt.Fprintf(os.Stderr, "Error: %v\n", err)
//	    os.Exit(cli.ExitCode(err))
//	}
//	defer env.Close()
//	err = cli.HandleCommands(env, args, os.Stdout)
//
// # Commands
//
//   - (none): TUI when stdin and stdout are terminals, shell otherwise
//   - shell: line-oriented palette with tab completion
//   - lang [show|set <tag>]: persisted language
//   - commands [query]: filtered, grouped registry
//   - config [show|path|get|set]: configuration
//   - version, help
package cli
