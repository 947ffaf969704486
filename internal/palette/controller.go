// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import (
	"log"

	"github.com/jeranaias/folio-tui/internal/commands"
)

// =============================================================================
// STATE
// =============================================================================

// State is a snapshot of the palette.
type State struct {
	IsOpen        bool
	Query         string
	SelectedIndex int
}

// Direction is a selection movement.
type Direction int

const (
	Up Direction = iota
	Down
)

// Keys understood by HandleKey, spelled the way bubbletea's KeyMsg.String
// reports them.
const (
	KeyEscape   = "esc"
	KeyUp       = "up"
	KeyDown     = "down"
	KeyEnter    = "enter"
	KeyOpen     = "ctrl+k"
	KeyOpenMeta = "alt+k"
)

// IsOpenShortcut reports whether key opens the palette.
func IsOpenShortcut(key string) bool {
	return key == KeyOpen || key == KeyOpenMeta
}

// Dispatcher runs a command and closes the palette through closer.
type Dispatcher interface {
	Dispatch(cmd commands.Command, closer commands.Closer)
}

const maxRecent = 10

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller owns palette state. It is not safe for concurrent use.
type Controller struct {
	registry   *commands.Registry
	dispatcher Dispatcher

	state    State
	filtered []commands.Command

	focusRequested bool
	recent         []string
}

// New creates a closed palette over registry.
func New(registry *commands.Registry, dispatcher Dispatcher) *Controller {
	c := &Controller{registry: registry, dispatcher: dispatcher}
	c.refilter()
	return c
}

// Open opens the palette with an empty query and requests input focus.
// Opening an already open palette resets it.
func (c *Controller) Open() {
	c.state = State{IsOpen: true}
	c.refilter()
	c.focusRequested = true
	log.Printf("PALETTE_OPEN")
}

// Close closes the palette. Query and selection are left as they were; the
// next Open resets them.
func (c *Controller) Close() {
	if !c.state.IsOpen {
		return
	}
	c.state.IsOpen = false
	c.focusRequested = false
	log.Printf("PALETTE_CLOSE")
}

// Toggle opens a closed palette and closes an open one.
func (c *Controller) Toggle() {
	if c.state.IsOpen {
		c.Close()
		return
	}
	c.Open()
}

// SetQuery replaces the query, refilters and selects the first result.
func (c *Controller) SetQuery(text string) {
	c.state.Query = text
	c.refilter()
}

// MoveSelection moves the selection by one, clamped to the filtered list.
func (c *Controller) MoveSelection(dir Direction) {
	n := len(c.filtered)
	if n == 0 {
		return
	}
	switch dir {
	case Up:
		if c.state.SelectedIndex > 0 {
			c.state.SelectedIndex--
		}
	case Down:
		if c.state.SelectedIndex < n-1 {
			c.state.SelectedIndex++
		}
	}
}

// ActivateSelected dispatches the selected command. It returns false, and
// does nothing, when the filtered list is empty.
func (c *Controller) ActivateSelected() bool {
	cmd, ok := c.Selected()
	if !ok {
		return false
	}
	c.recordRecent(cmd.ID)
	if c.dispatcher == nil {
		c.Close()
		return true
	}
	c.dispatcher.Dispatch(cmd, c)
	return true
}

// HandleKey applies the keyboard contract and reports whether key was
// consumed. The open shortcut works in any state; the rest only while open.
func (c *Controller) HandleKey(key string) bool {
	if IsOpenShortcut(key) {
		c.Open()
		return true
	}
	if !c.state.IsOpen {
		return false
	}
	switch key {
	case KeyEscape:
		c.Close()
	case KeyDown:
		c.MoveSelection(Down)
	case KeyUp:
		c.MoveSelection(Up)
	case KeyEnter:
		c.ActivateSelected()
	default:
		return false
	}
	return true
}

func (c *Controller) refilter() {
	c.filtered = c.registry.Filter(c.state.Query)
	c.state.SelectedIndex = 0
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns a snapshot of the palette state.
func (c *Controller) State() State { return c.state }

// IsOpen reports whether the palette is showing.
func (c *Controller) IsOpen() bool { return c.state.IsOpen }

// Query returns the current query.
func (c *Controller) Query() string { return c.state.Query }

// Filtered returns the commands matching the query, in registry order.
func (c *Controller) Filtered() []commands.Command {
	out := make([]commands.Command, len(c.filtered))
	copy(out, c.filtered)
	return out
}

// Groups returns the filtered commands grouped for display.
func (c *Controller) Groups() []commands.Group {
	return commands.GroupByCategory(c.filtered)
}

// Selected returns the command under the selection, if any.
func (c *Controller) Selected() (commands.Command, bool) {
	i := c.state.SelectedIndex
	if i < 0 || i >= len(c.filtered) {
		return commands.Command{}, false
	}
	return c.filtered[i], true
}

// TakeFocusRequest returns true once after each Open.
func (c *Controller) TakeFocusRequest() bool {
	r := c.focusRequested
	c.focusRequested = false
	return r
}

// IsRecent reports whether id was activated recently. Recents are a display
// marker only; they never reorder results.
func (c *Controller) IsRecent(id string) bool {
	for _, r := range c.recent {
		if r == id {
			return true
		}
	}
	return false
}

func (c *Controller) recordRecent(id string) {
	for i, r := range c.recent {
		if r == id {
			c.recent = append(c.recent[:i], c.recent[i+1:]...)
			break
		}
	}
	c.recent = append([]string{id}, c.recent...)
	if len(c.recent) > maxRecent {
		c.recent = c.recent[:maxRecent]
	}
}
