// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured backend. dbType is "sqlite" or "postgres";
// url is a file path (sqlite) or connection string (postgres).
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "sqlite":
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// modernc/sqlite serializes writes; a single connection avoids
		// SQLITE_BUSY under concurrent handlers.
		conn.SetMaxOpenConns(1)
		return conn, nil
	case "postgres":
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown database type %q", dbType)
	}
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure
// from either backend.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
