// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the relational backend and creates the schema.

# Backends

Two drivers are supported behind database/sql:

  - sqlite (modernc.org/sqlite): default, zero-setup local file
  - postgres (lib/pq): production deployments

All statements in the store layer use $n placeholders, which both drivers
accept, so the SQL is written once.

# Schema

CreateSchema is idempotent (IF NOT EXISTS) and portable: timestamps are
supplied by the application rather than backend defaults. Username
uniqueness is a real constraint; IsUniqueViolation recognizes the
duplicate-key failure of either driver so the store can surface it as a
conflict instead of racing a check-then-insert.
*/
package db
