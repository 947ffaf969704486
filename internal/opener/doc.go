// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package opener launches external links (demo, GitHub, LinkedIn, email)
// with the operating system's URL handler.
//
// Launches are best effort: Open logs failures and returns nothing. Only
// http, https and mailto URLs are accepted, and a token bucket keeps a held
// Enter key from starting a browser per key repeat. Copy is the fallback for
// sessions with no URL handler, such as SSH.
package opener
