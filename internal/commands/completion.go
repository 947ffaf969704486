// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is a single tab-completion candidate.
type Completion struct {
	Value       string
	Description string
	Score       int
}

// Completer completes command IDs for the line-oriented shell.
type Completer struct {
	registry *Registry
	extra    []string
}

// NewCompleter creates a completer over registry. extra words (shell
// built-ins such as "help" or "quit") are offered alongside command IDs.
func NewCompleter(registry *Registry, extra ...string) *Completer {
	return &Completer{registry: registry, extra: extra}
}

// Complete returns candidates whose value starts with partial, best first.
func (c *Completer) Complete(partial string) []Completion {
	partial = strings.ToLower(strings.TrimSpace(partial))

	var completions []Completion
	for _, cmd := range c.registry.All() {
		if strings.HasPrefix(cmd.ID, partial) {
			completions = append(completions, Completion{
				Value:       cmd.ID,
				Description: cmd.Label,
				Score:       calculateScore(cmd.ID, partial),
			})
		}
	}
	for _, word := range c.extra {
		if strings.HasPrefix(word, partial) {
			completions = append(completions, Completion{
				Value: word,
				Score: calculateScore(word, partial),
			})
		}
	}

	sortCompletions(completions)
	return completions
}

// Values returns just the completion strings, in rank order.
func (c *Completer) Values(partial string) []string {
	comps := c.Complete(partial)
	out := make([]string, len(comps))
	for i, comp := range comps {
		out[i] = comp.Value
	}
	return out
}

// calculateScore ranks a candidate; higher is better.
func calculateScore(value, partial string) int {
	value = strings.ToLower(value)
	partial = strings.ToLower(partial)

	score := 100

	if value == partial {
		return score + 100
	}

	if strings.HasPrefix(value, partial) {
		score += 50
		// Shorter candidates first
		score += 20 - len(value)
	}

	score -= len(value) / 2

	return score
}

// sortCompletions sorts by score (descending), then alphabetically.
func sortCompletions(completions []Completion) {
	sort.Slice(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Value < completions[j].Value
	})
}
