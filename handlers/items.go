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

type ItemHandler struct {
	store *store.Store
}

func NewItemHandler(st *store.Store) *ItemHandler {
	return &ItemHandler{store: st}
}

// GetItems handles GET /get-items/{listId}
func (h *ItemHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	listID := r.PathValue("listId")
	if listID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "List id required")
		return
	}

	items, err := h.store.ListItems(r.Context(), listID, identity.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.FailWith(w, err, "List not found")
			return
		}
		slog.Error("failed to query items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemsResponse{
		Success: true,
		Items:   items,
	})
}

// AddItem handles POST /add-item
func (h *ItemHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req models.AddItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	description := strings.TrimSpace(req.Description)
	if req.ListID == "" || description == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing listId or description")
		return
	}

	item, err := h.store.CreateItem(r.Context(), req.ListID, identity.ID, description)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.FailWith(w, err, "List not found")
			return
		}
		slog.Error("failed to insert item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("item created", "item_id", item.ID, "list_id", item.ListID)

	middleware.JSONResponse(w, http.StatusOK, models.ItemResponse{
		Success: true,
		Item:    item,
	})
}

// UpdateItem handles POST /update-item/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Item id required")
		return
	}

	var req models.UpdateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Only supplied fields make it into the patch; supplied-but-invalid
	// fields are rejected here, before the store sees them.
	var patch models.ItemPatch
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Description cannot be empty")
			return
		}
		patch.Description = &description
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Status must be pending or completed")
			return
		}
		patch.Status = req.Status
	}
	if patch.Empty() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Nothing to update")
		return
	}

	item, err := h.store.UpdateItem(r.Context(), id, identity.ID, patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.FailWith(w, err, "Item not found")
			return
		}
		slog.Error("failed to update item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemResponse{
		Success: true,
		Item:    item,
	})
}

// DeleteItem handles POST /delete-item/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Item id required")
		return
	}

	if err := h.store.DeleteItem(r.Context(), id, identity.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.FailWith(w, err, "Item not found")
			return
		}
		slog.Error("failed to delete item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{Success: true})
}
