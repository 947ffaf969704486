// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package content holds the portfolio copy: projects, case studies,
// evidence, architecture diagrams and nodes, and profile data.
//
// Content ships embedded as TOML under data/. A directory of same-named
// files can override any of them, and Watcher reloads that directory when
// it changes. Reloading replaces only what panels render; the command
// registry is built once at startup and never rebuilt.
package content
