// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"listly/models"
)

// Snapshot is the last server truth the client saw. It is a disposable
// projection: useful when the server is unreachable, never authoritative.
type Snapshot struct {
	Lists     []models.List            `json:"lists"`
	Items     map[string][]models.Item `json:"items"`
	FetchedAt time.Time                `json:"fetched_at"`
}

// Cache is a single JSON file. Human-readable, portable.
type Cache struct {
	path string
}

func New(path string) *Cache {
	return &Cache{path: path}
}

// DefaultPath returns the cache location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "listly", "cache.json"), nil
}

// Load reads the snapshot. A missing file is an empty snapshot, not an error.
func (c *Cache) Load() (Snapshot, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{Items: map[string][]models.Item{}}, nil
		}
		return Snapshot{}, fmt.Errorf("read cache: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	if s.Items == nil {
		s.Items = map[string][]models.Item{}
	}
	return s, nil
}

// Save writes the snapshot, creating the directory if needed.
func (c *Cache) Save(s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(c.path, b, 0o600); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// ReconcileLists is the single merge rule between server and cache: the
// server result wins whenever the fetch succeeded; the cached lists are
// used, marked stale, only when the fetch failed. Never a field-by-field
// splice.
func ReconcileLists(server []models.List, cached Snapshot, fetchErr error) (lists []models.List, stale bool) {
	if fetchErr == nil {
		return server, false
	}
	return cached.Lists, true
}

// ReconcileItems is the same rule for one list's items.
func ReconcileItems(listID string, server []models.Item, cached Snapshot, fetchErr error) (items []models.Item, stale bool) {
	if fetchErr == nil {
		return server, false
	}
	return cached.Items[listID], true
}
