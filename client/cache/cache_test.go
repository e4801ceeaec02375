package cache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listly/models"
)

func TestLoadMissingFileIsEmptySnapshot(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "nope", "cache.json"))

	s, err := c.Load()
	require.NoError(t, err)
	assert.Empty(t, s.Lists)
	assert.NotNil(t, s.Items)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "listly", "cache.json"))

	want := Snapshot{
		Lists: []models.List{{ID: "l-1", Title: "Groceries"}},
		Items: map[string][]models.Item{
			"l-1": {{ID: "i-1", ListID: "l-1", Description: "milk", Status: models.StatusPending}},
		},
		FetchedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Save(want))

	got, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, want.Lists, got.Lists)
	assert.Equal(t, want.Items, got.Items)
	assert.True(t, want.FetchedAt.Equal(got.FetchedAt))
}

func TestReconcileListsServerWins(t *testing.T) {
	cached := Snapshot{Lists: []models.List{{ID: "l-stale", Title: "Old"}}}
	server := []models.List{{ID: "l-1", Title: "Fresh"}}

	lists, stale := ReconcileLists(server, cached, nil)
	assert.False(t, stale)
	assert.Equal(t, server, lists)

	// Even an empty server result replaces the cache when the fetch worked
	lists, stale = ReconcileLists(nil, cached, nil)
	assert.False(t, stale)
	assert.Empty(t, lists)
}

func TestReconcileListsFallsBackWhenFetchFails(t *testing.T) {
	cached := Snapshot{Lists: []models.List{{ID: "l-1", Title: "Cached"}}}

	lists, stale := ReconcileLists(nil, cached, errors.New("connection refused"))
	assert.True(t, stale, "fallback data must be marked stale")
	assert.Equal(t, cached.Lists, lists)
}

func TestReconcileItems(t *testing.T) {
	cached := Snapshot{Items: map[string][]models.Item{
		"l-1": {{ID: "i-1", Description: "cached item"}},
	}}
	server := []models.Item{{ID: "i-2", Description: "fresh item"}}

	items, stale := ReconcileItems("l-1", server, cached, nil)
	assert.False(t, stale)
	assert.Equal(t, server, items)

	items, stale = ReconcileItems("l-1", nil, cached, errors.New("timeout"))
	assert.True(t, stale)
	assert.Equal(t, cached.Items["l-1"], items)
}
