// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types, wire types, and error kinds shared
by the server and the terminal client.

# Domain Types

  - User: credential record; the password hash never serializes to JSON
  - Identity: the public (id, username, name) projection of a User
  - List: a named container of items, owned by one user
  - Item: a checklist entry with a pending/completed status

# Wire Types

Request and response bodies mirror the HTTP API exactly. Every response
carries a success flag; failed requests carry ErrorResponse with a message.

# Error Kinds

Seven sentinel errors classify every failure: ErrInvalidInput,
ErrUnauthenticated, ErrUnauthorized, ErrNotFound, ErrConflict, ErrTransient,
ErrInternal. HTTPStatus and KindForStatus translate between kinds and status
codes at the two HTTP boundaries.
*/
package models
