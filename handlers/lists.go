// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"listly/middleware"
	"listly/models"
	"listly/store"
)

type ListHandler struct {
	store *store.Store
}

func NewListHandler(st *store.Store) *ListHandler {
	return &ListHandler{store: st}
}

// GetLists handles GET /get-list
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	lists, err := h.store.ListLists(r.Context(), identity.ID)
	if err != nil {
		slog.Error("failed to query lists", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListsResponse{
		Success: true,
		Lists:   lists,
	})
}

// AddList handles POST /add-list
func (h *ListHandler) AddList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req models.AddListRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	title := strings.TrimSpace(req.ListTitle)
	if title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "List title required")
		return
	}

	list, err := h.store.CreateList(r.Context(), identity.ID, title)
	if err != nil {
		slog.Error("failed to insert list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("list created", "list_id", list.ID, "user_id", identity.ID)

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse{
		Success: true,
		List:    list,
	})
}

// UpdateList handles POST /update-list/{id}
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "List id required")
		return
	}

	var req models.UpdateListRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	title := strings.TrimSpace(req.ListTitle)
	if title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "List title cannot be empty")
		return
	}

	list, err := h.store.RenameList(r.Context(), id, identity.ID, title)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.FailWith(w, err, "List not found")
			return
		}
		slog.Error("failed to update list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse{
		Success: true,
		List:    list,
	})
}

// DeleteList handles POST /delete-list/{id}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "List id required")
		return
	}

	if err := h.store.DeleteList(r.Context(), id, identity.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.FailWith(w, err, "List not found")
			return
		}
		slog.Error("failed to delete list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("list deleted", "list_id", id, "user_id", identity.ID)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{Success: true})
}
