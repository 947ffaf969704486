// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/folio-tui/internal/commands"
	"github.com/jeranaias/folio-tui/internal/config"
	"github.com/jeranaias/folio-tui/internal/router"
)

// shellBuiltins are offered by tab completion next to command IDs.
var shellBuiltins = []string{"help", "back", "lang", "quit", "exit"}

// =============================================================================
// SHELL
// =============================================================================

// Shell is the line-oriented command palette. A query lists grouped matches,
// a number picks from the last listing and an exact ID runs that command.
type Shell struct {
	env        *Env
	router     *router.Router
	dispatcher *commands.Dispatcher
	completer  *commands.Completer
	out        io.Writer
	listing    []commands.Command
}

// NewShell creates a shell writing to out. opener receives external links.
func NewShell(env *Env, opener commands.Opener, out io.Writer) *Shell {
	r := router.New()
	return &Shell{
		env:        env,
		router:     r,
		dispatcher: commands.NewDispatcher(r, opener),
		completer:  commands.NewCompleter(env.Registry, shellBuiltins...),
		out:        out,
	}
}

// Router exposes the shell's navigation state.
func (s *Shell) Router() *router.Router {
	return s.router
}

// Run reads lines until quit, EOF or ctrl+c.
func (s *Shell) Run(ctx context.Context) error {
	if err := RequiresTTY("run the shell"); err != nil {
		return err
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.completer.Values)

	historyPath := shellHistoryPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	log.Printf("SHELL_START | commands=%d lang=%s", s.env.Registry.Len(), s.env.Translator.Language())
	fmt.Fprintln(s.out, TitleStyle.Render("folio shell"))
	fmt.Fprintln(s.out, DimStyle.Render(s.env.Translator.T("palette.placeholder")+"  (help, quit)"))

	for {
		input, err := line.Prompt(s.prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("read input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if quit := s.Execute(ctx, input); quit {
			break
		}
	}

	if historyPath != "" {
		if f, err := os.OpenFile(historyPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	log.Printf("SHELL_END | state=%s", s.router.State())
	return nil
}

func (s *Shell) prompt() string {
	return fmt.Sprintf("folio [%s]> ", s.router.State())
}

// Execute handles one input line and reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	word, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(word) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		s.printHelp()
		return false
	case "back":
		s.router.GoBack()
		s.printState()
		return false
	case "lang":
		s.switchLanguage(ctx, rest)
		return false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(s.listing) {
			fmt.Fprintf(s.out, "%s no entry %d\n", ErrorStyle.Render("!"), n)
			return false
		}
		s.activate(s.listing[n-1])
		return false
	}

	if cmd, ok := s.env.Registry.Get(input); ok {
		s.activate(cmd)
		return false
	}

	s.list(input)
	return false
}

// list prints the grouped matches for query and remembers their order for
// numeric selection.
func (s *Shell) list(query string) {
	groups := commands.GroupByCategory(s.env.Registry.Filter(query))
	s.listing = s.listing[:0]
	for _, g := range groups {
		s.listing = append(s.listing, g.Commands...)
	}
	if len(s.listing) == 0 {
		fmt.Fprintln(s.out, DimStyle.Render(s.env.Translator.T("palette.empty")))
		return
	}
	writeGroups(s.out, s.env.Translator, groups, true, GetTerminalWidth())
}

func (s *Shell) activate(cmd commands.Command) {
	s.dispatcher.Dispatch(cmd, nil)
	if cmd.Action.Kind == commands.ActionOpenExternal {
		fmt.Fprintf(s.out, "%s %s\n", SuccessStyle.Render("opened"), cmd.Action.Target)
		return
	}
	s.printState()
}

// printState shows where the last command navigated, consuming the scroll
// request the way the TUI does once the view is mounted.
func (s *Shell) printState() {
	state := s.router.State()
	where := state.String()
	if req, ok := s.router.ConsumeScroll(state.CurrentView); ok && req.Target != router.TargetTop {
		where += "#" + req.Target
	}
	fmt.Fprintf(s.out, "%s %s\n", SectionStyle.UnsetMarginTop().Render("->"), where)

	if state.CurrentView == router.ViewCaseStudy {
		if cs, ok := s.env.Content.CaseStudy(state.SelectedProjectID); ok {
			fmt.Fprintf(s.out, "   %s  %s\n", ValueStyle.Render(cs.Title), DimStyle.Render(cs.Summary.Intro))
		} else {
			fmt.Fprintf(s.out, "   %s\n", ErrorStyle.Render(s.env.Translator.T("casestudy.notfound")))
		}
	}
}

func (s *Shell) switchLanguage(ctx context.Context, tag string) {
	var err error
	if tag == "" {
		_, err = s.env.Translator.Next(ctx)
	} else {
		err = s.env.Translator.SetLanguage(ctx, tag)
	}
	if err != nil {
		DisplayError(s.out, err)
		return
	}
	fmt.Fprintf(s.out, "%s %s\n", SuccessStyle.Render("language:"), s.env.Translator.Language())
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, "  <query>   list matching commands")
	fmt.Fprintln(s.out, "  <n>       run entry n of the last listing")
	fmt.Fprintln(s.out, "  <id>      run a command by id (tab completes)")
	fmt.Fprintln(s.out, "  back      go back")
	fmt.Fprintln(s.out, "  lang [t]  toggle or set the language")
	fmt.Fprintln(s.out, "  quit      leave the shell")
}

// shellHistoryPath returns ~/.folio/shell_history, or "" when the home
// directory is unknown.
func shellHistoryPath() string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return ""
	}
	return filepath.Join(dir, "shell_history")
}
