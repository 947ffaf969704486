// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands defines folio's command registry and the dispatcher that
// turns a selected command into router or opener calls.
//
// # Key Types
//
//   - Command: ID, label, description, category and Action
//   - Action: tagged union of Navigate, OpenExternal and OpenCaseStudy
//   - Registry: ordered, immutable command list with substring filtering
//   - Dispatcher: runs an Action against a Navigator and an Opener
//   - Completer: command ID completion for the line shell
//
// # Usage
//
//	reg, err := commands.Build(commands.DefaultLinks())
//	if err != nil {
//		return err
//	}
//	for _, g := range commands.GroupByCategory(reg.Filter("radar")) {
//		fmt.Println(g.Category.Label())
//	}
//
//	d := commands.NewDispatcher(router, opener)
//	d.Dispatch(cmd, palette)
package commands
