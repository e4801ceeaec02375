// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tui is the terminal client. It is a Bubble Tea program with three
// screens (login, lists, items) behind a thin top-level App model that only
// handles navigation. The server is the source of truth throughout: every
// mutation waits for the server's confirmed object before the screen
// changes, and the local cache is only shown, clearly marked, when the
// server cannot be reached.
package tui
