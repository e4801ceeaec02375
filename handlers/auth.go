// Copyright (c) 2025 Listly Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"listly/auth"
	"listly/cliparse"
	"listly/middleware"
	"listly/models"
	"listly/session"
	"listly/store"
)

type AuthHandler struct {
	store    *store.Store
	sessions session.Store
	cfg      cliparse.Config
}

func NewAuthHandler(st *store.Store, sessions session.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, sessions: sessions, cfg: cfg}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Server-side trim is authoritative; the password is taken verbatim
	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	if req.Name == "" || req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Incomplete data")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Name, req.Username, hash)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			middleware.FailWith(w, err, "User already exists")
			return
		}
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Registration logs the user straight in
	h.startSession(w, user.Identity())
	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{
		Success: true,
		User:    user.Identity(),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Incomplete data")
		return
	}

	// Unknown username and wrong password get the same answer, so the
	// endpoint cannot be used to probe which usernames exist.
	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	h.startSession(w, user.Identity())
	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.UserResponse{
		Success: true,
		User:    user.Identity(),
	})
}

// Logout handles GET /logout. Idempotent: logging out twice is not an error.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		h.sessions.Delete(cookie.Value)
	}
	h.clearSessionCookie(w)

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{Success: true})
}

// GetSession handles GET /get-session. Pure lookup, no side effect.
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil {
		middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{Session: false})
		return
	}

	identity, ok := h.sessions.Get(cookie.Value)
	if !ok {
		middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{Session: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Session: true,
		User:    &identity,
	})
}

// startSession creates a session and sets its cookie on the response.
func (h *AuthHandler) startSession(w http.ResponseWriter, identity models.Identity) {
	token, err := h.sessions.Create(identity)
	if err != nil {
		// The caller still gets a success body; they just have to log in
		// again. Extremely unlikely (entropy exhaustion).
		slog.Error("failed to create session", "error", err)
		return
	}
	http.SetCookie(w, h.sessionCookie(token, int(h.cfg.SessionTTL.Seconds())))
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, h.sessionCookie("", -1))
}

func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	// SameSite=None is required for credentialed cross-origin requests,
	// and browsers require Secure alongside it.
	sameSite := http.SameSiteLaxMode
	if h.cfg.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: sameSite,
	}
}
