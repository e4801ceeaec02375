// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the Listly API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: register, login, logout, session lookup (needs store,
    session store, and config for cookie settings)
  - ListHandler: list CRUD
  - ItemHandler: item CRUD with partial updates

# Auth Flow

	POST /register → Register (hashes password, starts session, sets cookie)
	POST /login    → Login (generic 401 for unknown user or bad password)
	GET /logout    → Logout (idempotent, clears cookie)
	GET /get-session → GetSession (pure lookup)

# List and Item Flow

All routes below run behind middleware.RequireSession and act only on the
session user's data:

	GET /get-list             → GetLists (newest first)
	POST /add-list            → AddList
	POST /update-list/{id}    → UpdateList
	POST /delete-list/{id}    → DeleteList (items go with it, atomically)
	GET /get-items/{listId}   → GetItems (creation order)
	POST /add-item            → AddItem (status starts pending)
	POST /update-item/{id}    → UpdateItem (partial: description and/or status)
	POST /delete-item/{id}    → DeleteItem

Validation happens here, before any store access: trimming is server-side
and authoritative, and values that are empty after trimming are rejected
with 400 no matter what the client sent.
*/
package handlers
