// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session maps opaque tokens to authenticated identities.

Session storage is an injected capability rather than package-global state:
the HTTP layer receives a Store, tests inject their own, and the in-memory
implementation can later be swapped for a shared store without touching
handlers.

# Lifecycle

	sessions := session.NewMemoryStore(24 * time.Hour)
	token, err := sessions.Create(identity)   // on login/register
	identity, ok := sessions.Get(token)       // on every request
	sessions.Delete(token)                    // on logout; idempotent

Sessions expire ttl after creation. Expired entries are refused by Get and
swept when new sessions are created, so the map does not grow unbounded
under abandoned logins.
*/
package session
