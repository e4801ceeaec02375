// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"listly/auth"
	"listly/cliparse"
	"listly/db"
	"listly/store"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Each test gets its own database; closing it drops everything.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3000,
		DatabaseType:   "sqlite",
		DatabaseURL:    ":memory:",
		AllowedOrigins: []string{"http://localhost:5173"},
		SessionTTL:     time.Hour,
	}
}

// CreateTestUser inserts a user with the given credentials and returns its ID.
func CreateTestUser(t *testing.T, st *store.Store, name, username, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user, err := st.CreateUser(context.Background(), name, username, hash)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// CreateTestList inserts a list for the user and returns its ID.
func CreateTestList(t *testing.T, st *store.Store, userID, title string) string {
	t.Helper()

	list, err := st.CreateList(context.Background(), userID, title)
	if err != nil {
		t.Fatalf("Failed to create test list: %v", err)
	}
	return list.ID
}

// CreateTestItem inserts a pending item into the list and returns its ID.
func CreateTestItem(t *testing.T, st *store.Store, listID, userID, description string) string {
	t.Helper()

	item, err := st.CreateItem(context.Background(), listID, userID, description)
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return item.ID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
