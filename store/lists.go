// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listly/models"
)

// ListLists returns the user's lists, newest-created first.
func (s *Store) ListLists(ctx context.Context, userID string) ([]models.List, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, created_at
		FROM list
		WHERE user_id = $1
		ORDER BY created_at DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	lists := []models.List{}
	for rows.Next() {
		var l models.List
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}

	return lists, nil
}

// CreateList inserts a new list owned by the user. The title is assumed
// already trimmed and non-empty by the caller.
func (s *Store) CreateList(ctx context.Context, userID, title string) (models.List, error) {
	list := models.List{
		ID:        s.newID(),
		UserID:    userID,
		Title:     title,
		CreatedAt: s.now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO list (id, user_id, title, created_at)
		VALUES ($1, $2, $3, $4)
	`, list.ID, list.UserID, list.Title, list.CreatedAt)
	if err != nil {
		return models.List{}, fmt.Errorf("insert list: %w", err)
	}

	return list, nil
}

// RenameList updates the title of a list the user owns and returns the
// updated row. A list that is absent, or owned by someone else, is
// models.ErrNotFound.
func (s *Store) RenameList(ctx context.Context, id, userID, title string) (models.List, error) {
	var list models.List
	err := s.db.QueryRowContext(ctx, `
		UPDATE list
		SET title = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, title, created_at
	`, title, id, userID).Scan(&list.ID, &list.UserID, &list.Title, &list.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.List{}, fmt.Errorf("list %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.List{}, fmt.Errorf("update list: %w", err)
	}

	return list, nil
}

// DeleteList removes a list and every item it contains. Both deletes run in
// one transaction: a crash can never leave orphaned items behind, whether or
// not the backend honors the ON DELETE CASCADE constraint.
func (s *Store) DeleteList(ctx context.Context, id, userID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete-list: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE list_id = $1`, id); err != nil {
		return fmt.Errorf("delete items of list: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM list WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete list rows: %w", err)
	}
	if n == 0 {
		// Rollback also undoes the item delete above for foreign lists.
		return fmt.Errorf("list %q: %w", id, models.ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete-list: %w", err)
	}
	return nil
}

// ownsList reports whether the list exists and belongs to the user.
func (s *Store) ownsList(ctx context.Context, listID, userID string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM list WHERE id = $1 AND user_id = $2
	`, listID, userID).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("list %q: %w", listID, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("check list: %w", err)
	}
	return nil
}
