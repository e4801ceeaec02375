// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Store owns all durable state: users, lists, items. Handlers never touch
// SQL directly; they call Store methods and map the returned error kinds.
//
// Every method takes the acting user's id where scoping applies. A row that
// exists but belongs to another user is reported as not found, so the API
// never confirms the existence of someone else's data.
type Store struct {
	db *sql.DB

	// newID and now are replaceable in tests
	newID func() string
	now   func() time.Time
}

// New creates a Store over an open database connection.
func New(db *sql.DB) *Store {
	return &Store{
		db:    db,
		newID: uuid.NewString,
		now:   time.Now,
	}
}
