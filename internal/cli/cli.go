// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for folio.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdShell
	CmdLang
	CmdCommands
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdShell:
		return "shell"
	case CmdLang:
		return "lang"
	case CmdCommands:
		return "commands"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Lang       string
	ConfigPath string
	Debug      bool
	NoColor    bool

	// Command-specific
	Subcommand string
	Query      string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `folio - terminal portfolio

Case studies, an evidence room, publications and an architecture explorer,
driven from the keyboard with a ctrl+k command palette.

Usage:
  folio                         Start the TUI (default)
  folio shell                   Line-oriented command palette
  folio lang [show|set <tag>]   Show or change the language
  folio commands [query]        List palette commands
  folio config [show|path]      Show configuration
  folio config get <key>        Print one configuration value
  folio config set <key> <val>  Change one configuration value
  folio version                 Show version information
  folio help                    Show this help

Global Flags:
  --lang <tag>       Start in this language (en, pt); persisted
  --config <path>    Use this config file instead of ~/.folio/config.toml
  --debug            Write a debug log to ~/.folio/debug.log
  --no-color         Disable colors (also honors NO_COLOR)

TUI Keys:
  ctrl+k, alt+k      Command palette
  1-3                Open a case study
  a                  Architecture explorer
  f                  Cycle evidence filter
  L                  Toggle language
  ctrl+y             Copy the selected link
  b, backspace       Back
  q                  Quit

Environment:
  FOLIO_LANG, FOLIO_THEME, FOLIO_DB, FOLIO_CONTENT_DIR, FOLIO_DEBUG, NO_COLOR
`

// PrintUsage writes the usage text to w.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// PrintVersion writes version information to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "folio %s\n", Version)
	fmt.Fprintf(w, "  commit:  %s\n", GitCommit)
	fmt.Fprintf(w, "  built:   %s\n", BuildDate)
	fmt.Fprintf(w, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// =============================================================================
// PARSING
// =============================================================================

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses args (without the program name) into a command and its
// arguments. Unknown commands resolve to CmdHelp.
func ParseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui":
		return CmdTUI, parsedArgs

	case "shell", "sh":
		return CmdShell, parsedArgs

	case "lang", "language":
		parseLangArgs(&parsedArgs, remaining)
		return CmdLang, parsedArgs

	case "commands", "cmds":
		parsedArgs.Query = strings.Join(remaining, " ")
		return CmdCommands, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, remaining)
		return CmdConfig, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		parsedArgs.Subcommand = cmd
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts the global flags from anywhere in args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "--debug":
			parsedArgs.Debug = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--lang":
			if i+1 < len(args) {
				i++
				parsedArgs.Lang = args[i]
			}
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--lang="):
				parsedArgs.Lang = strings.TrimPrefix(arg, "--lang=")
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseLangArgs parses "lang [show|set <tag>]". A bare tag means set.
func parseLangArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}
	sub := strings.ToLower(remaining[0])
	switch sub {
	case "show", "set":
		args.Subcommand = sub
		if len(remaining) > 1 {
			args.Query = remaining[1]
		}
	default:
		args.Subcommand = "set"
		args.Query = remaining[0]
	}
}

// parseConfigArgs parses "config [show|path|get <key>|set <key> <value>]".
func parseConfigArgs(args *Args, remaining []string) {
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}
	args.Subcommand = strings.ToLower(remaining[0])
	if len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		args.ConfigVal = strings.Join(remaining[2:], " ")
	}
}
