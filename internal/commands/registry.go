// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrDuplicateCommand is returned when two commands share an ID.
	ErrDuplicateCommand = errors.New("duplicate command id")

	// ErrUnknownCategory is returned for a category outside the known set.
	ErrUnknownCategory = errors.New("unknown command category")
)

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry is an ordered, immutable list of commands.
type Registry struct {
	commands []Command
	byID     map[string]int
}

// Build returns the registry of built-in commands, with external
// destinations taken from links.
func Build(links Links) (*Registry, error) {
	return NewRegistry(builtins(links))
}

// MustBuild is Build for callers with known-good links.
func MustBuild(links Links) *Registry {
	r, err := Build(links)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry validates cmds and freezes them in the given order.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make([]Command, 0, len(cmds)),
		byID:     make(map[string]int, len(cmds)),
	}
	for _, cmd := range cmds {
		if strings.TrimSpace(cmd.ID) == "" {
			return nil, errors.New("command id cannot be empty")
		}
		if !cmd.Category.Valid() {
			return nil, fmt.Errorf("%w: %q (command %s)", ErrUnknownCategory, cmd.Category, cmd.ID)
		}
		if _, dup := r.byID[cmd.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCommand, cmd.ID)
		}
		r.byID[cmd.ID] = len(r.commands)
		r.commands = append(r.commands, cmd)
	}
	return r, nil
}

// All returns the commands in registry order. The slice is a copy.
func (r *Registry) All() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Get returns the command with id.
func (r *Registry) Get(id string) (Command, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// IDs returns the command IDs in registry order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.commands))
	for i, c := range r.commands {
		ids[i] = c.ID
	}
	return ids
}

// Filter returns the commands whose label or description contains query,
// ignoring case, in registry order. Whitespace is part of the query; only
// the empty query returns everything.
func (r *Registry) Filter(query string) []Command {
	if query == "" {
		return r.All()
	}
	q := strings.ToLower(query)
	var out []Command
	for _, cmd := range r.commands {
		if cmd.matches(q) {
			out = append(out, cmd)
		}
	}
	return out
}

// =============================================================================
// GROUPING
// =============================================================================

// Group is a run of commands sharing a category.
type Group struct {
	Category Category
	Commands []Command
}

// GroupByCategory partitions cmds into groups in category display order,
// keeping the relative order inside each group and dropping empty groups.
func GroupByCategory(cmds []Command) []Group {
	buckets := make(map[Category][]Command, 3)
	for _, c := range cmds {
		buckets[c.Category] = append(buckets[c.Category], c)
	}
	var groups []Group
	for _, cat := range Categories() {
		if len(buckets[cat]) == 0 {
			continue
		}
		groups = append(groups, Group{Category: cat, Commands: buckets[cat]})
	}
	return groups
}
