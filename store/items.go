// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"listly/models"
)

// ListItems returns a list's items in creation order. The list must exist
// and belong to the user.
func (s *Store) ListItems(ctx context.Context, listID, userID string) ([]models.Item, error) {
	if err := s.ownsList(ctx, listID, userID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, list_id, description, status, created_at
		FROM items
		WHERE list_id = $1
		ORDER BY created_at, id
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.ListID, &it.Description, &it.Status, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

// CreateItem inserts a new pending item into a list the user owns.
func (s *Store) CreateItem(ctx context.Context, listID, userID, description string) (models.Item, error) {
	if err := s.ownsList(ctx, listID, userID); err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		ID:          s.newID(),
		ListID:      listID,
		Description: description,
		Status:      models.StatusPending,
		CreatedAt:   s.now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, list_id, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, item.ID, item.ListID, item.Description, item.Status, item.CreatedAt)
	if err != nil {
		return models.Item{}, fmt.Errorf("insert item: %w", err)
	}

	return item, nil
}

// UpdateItem applies a partial update. Only fields present in the patch
// reach the set clause; absent fields keep their stored value. An empty
// patch is rejected before any statement is built.
func (s *Store) UpdateItem(ctx context.Context, id, userID string, patch models.ItemPatch) (models.Item, error) {
	if patch.Empty() {
		return models.Item{}, fmt.Errorf("nothing to update: %w", models.ErrInvalidInput)
	}

	sets := []string{}
	args := []any{}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, "description = $"+strconv.Itoa(len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, "status = $"+strconv.Itoa(len(args)))
	}
	args = append(args, id, userID)

	query := fmt.Sprintf(`
		UPDATE items
		SET %s
		WHERE id = $%d AND list_id IN (SELECT id FROM list WHERE user_id = $%d)
		RETURNING id, list_id, description, status, created_at
	`, strings.Join(sets, ", "), len(args)-1, len(args))

	var item models.Item
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&item.ID, &item.ListID, &item.Description, &item.Status, &item.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, fmt.Errorf("item %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("update item: %w", err)
	}

	return item, nil
}

// DeleteItem removes one item from a list the user owns.
func (s *Store) DeleteItem(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM items
		WHERE id = $1 AND list_id IN (SELECT id FROM list WHERE user_id = $2)
	`, id, userID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %q: %w", id, models.ErrNotFound)
	}
	return nil
}
