// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError is a CLI command failure with context.
type CommandError struct {
	Command string // e.g. "lang"
	Action  string // e.g. "set"
	Reason  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %s: %v", e.Command, e.Action, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %s", e.Command, e.Action, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// UsageError is returned for malformed command lines.
type UsageError struct {
	Command string
	Usage   string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: folio %s %s", e.Command, e.Usage)
}

// NewCommandError creates a new command error.
func NewCommandError(command, action, reason string, err error) error {
	return &CommandError{Command: command, Action: action, Reason: reason, Err: err}
}

// NewUsageError creates a new usage error.
func NewUsageError(command, usage string) error {
	return &UsageError{Command: command, Usage: usage}
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsageError
	}
	return ExitGeneralError
}

// DisplayError prints err in the CLI's error format.
func DisplayError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("Error:"), err)
}
