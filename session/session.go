// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"sync"
	"time"

	"listly/auth"
	"listly/models"
)

// Store is the session capability handed to the HTTP layer. It is an
// interface so tests can inject a fake and so the token->identity map can
// later move to a shared store without touching handlers.
type Store interface {
	// Create starts a session for the identity and returns its opaque token.
	Create(identity models.Identity) (string, error)
	// Get resolves a token to its identity. A missing or expired token
	// returns ok == false; expiry has no other side effect visible to callers.
	Get(token string) (models.Identity, bool)
	// Delete ends the session. Deleting an unknown token is a no-op.
	Delete(token string)
}

type entry struct {
	identity  models.Identity
	expiresAt time.Time
}

// MemoryStore is the process-local Store implementation: a mutex-guarded
// map with absolute per-entry expiry. Expired entries are rejected on Get
// and swept opportunistically on Create.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry

	// now is replaceable in tests
	now func() time.Time
}

// NewMemoryStore creates a store whose sessions live for ttl after Create.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Create(identity models.Identity) (string, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	s.entries[token] = entry{
		identity:  identity,
		expiresAt: s.now().Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryStore) Get(token string) (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return models.Identity{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, token)
		return models.Identity{}, false
	}
	return e.identity, true
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

// sweepLocked drops expired entries. Caller holds the lock.
func (s *MemoryStore) sweepLocked() {
	now := s.now()
	swept := 0
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
			swept++
		}
	}
	if swept > 0 {
		slog.Debug("swept expired sessions", "count", swept)
	}
}
