// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listly/db"
	"listly/models"
)

// CreateUser persists a new user. Username uniqueness is enforced by the
// database constraint, not a racy check-then-insert; a duplicate surfaces
// as models.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, name, username, passwordHash string) (models.User, error) {
	user := models.User{
		ID:           s.newID(),
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Username, user.Name, user.PasswordHash, user.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.User{}, fmt.Errorf("username %q taken: %w", username, models.ErrConflict)
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// GetUserByUsername looks up a user including the password hash, for
// credential verification. Missing users are models.ErrNotFound.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, name, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("query user: %w", err)
	}

	return user, nil
}
