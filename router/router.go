// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"listly/cliparse"
	"listly/handlers"
	"listly/middleware"
	"listly/session"
	"listly/store"
)

func NewRouter(st *store.Store, sessions session.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, sessions, cfg)
	listHandler := handlers.NewListHandler(st)
	itemHandler := handlers.NewItemHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Auth (these populate the session gate rather than pass through it)
	mux.HandleFunc("POST /register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /get-session", middleware.WithLogging(authHandler.GetSession))

	// Lists (session required)
	mux.HandleFunc("GET /get-list", guarded(sessions, listHandler.GetLists))
	mux.HandleFunc("POST /add-list", guarded(sessions, listHandler.AddList))
	mux.HandleFunc("POST /update-list/{id}", guarded(sessions, listHandler.UpdateList))
	mux.HandleFunc("POST /delete-list/{id}", guarded(sessions, listHandler.DeleteList))

	// Items (session required)
	mux.HandleFunc("GET /get-items/{listId}", guarded(sessions, itemHandler.GetItems))
	mux.HandleFunc("POST /add-item", guarded(sessions, itemHandler.AddItem))
	mux.HandleFunc("POST /update-item/{id}", guarded(sessions, itemHandler.UpdateItem))
	mux.HandleFunc("POST /delete-item/{id}", guarded(sessions, itemHandler.DeleteItem))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("listly API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins, mux)
}

func guarded(sessions session.Store, h http.HandlerFunc) http.HandlerFunc {
	return middleware.WithLogging(middleware.RequireSession(sessions, h))
}
