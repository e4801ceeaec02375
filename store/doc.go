// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the resource store: the single owner of canonical state for
users, lists, and items.

# Scoping

Lists are per-user. Every list and item method takes the acting user's id
and filters by it; a row owned by someone else reads as not found, never as
forbidden, so the API does not confirm foreign ids.

# Partial Updates

Item updates take a typed models.ItemPatch. The set clause is built only
from fields that are present, an empty patch fails with ErrInvalidInput
before any SQL is emitted, and absent fields are never overwritten.

# Cascade Delete

DeleteList deletes the items and then the list inside one transaction. The
schema also declares ON DELETE CASCADE, but the no-orphaned-items invariant
must not depend on backend support, so it is emulated explicitly and
atomically.

# Error Translation

Driver failures are translated at this boundary: uniqueness violations to
models.ErrConflict, missing rows (sql.ErrNoRows or zero rows affected) to
models.ErrNotFound. Anything else is wrapped and reaches the handler as an
internal error. No reads are cached; every query hits the database.
*/
package store
