// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Listly API server.

Listly is a multi-user checklist service: users register, log in, and manage
named lists of items with a pending/completed status. A terminal client
lives in cmd/listly.

# Starting the Server

The server runs on SQLite out of the box:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Settings come from CLI flags, environment variables, or a .env file:

  - PORT (-p): listen port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string or sqlite file path
  - ALLOWED_ORIGINS (-origins): CORS allow-list for browser clients
  - SESSION_TTL (-session-ttl): session lifetime (default: 24h)
  - SECURE_COOKIES (-secure-cookies): required behind HTTPS for
    cross-origin cookies

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, lists, items)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session guard, CORS, logging, JSON helpers
  - store: the resource store owning users, lists, items
  - session: token → identity mapping with expiry
  - models: domain/wire types and error kinds
  - auth: password hashing and token generation
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
