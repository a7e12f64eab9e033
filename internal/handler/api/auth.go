// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"folio/internal/auth"
	"folio/internal/middleware"
	"folio/internal/store"
)

// LoginRequest is the credential payload. The endpoint accepts either a
// JSON body or classic form encoding.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// parseLoginRequest reads credentials from a JSON or form body. The form
// variant also accepts "username" for the email field, matching OAuth2
// password-grant clients.
func parseLoginRequest(w http.ResponseWriter, r *http.Request) (LoginRequest, bool) {
	var req LoginRequest

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if !decodeJSON(w, r, &req) {
			return req, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return req, false
	}
	req.Email = r.PostFormValue("email")
	if req.Email == "" {
		req.Email = r.PostFormValue("username")
	}
	req.Password = r.PostFormValue("password")
	return req, true
}

// Login handles POST /api/auth/login. Unknown emails and wrong passwords
// produce the same response so the endpoint does not leak which accounts
// exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := parseLoginRequest(w, r)
	if !ok {
		return
	}
	if req.Email == "" || req.Password == "" {
		WriteValidationError(w, map[string]string{
			"email":    "Email is required",
			"password": "Password is required",
		})
		return
	}

	user, err := h.store.GetUserByEmail(r.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			WriteUnauthorized(w, "Invalid email or password")
			return
		}
		WriteInternalError(w, "Failed to verify credentials")
		return
	}

	match, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		WriteUnauthorized(w, "Invalid email or password")
		return
	}

	token, expiresAt, err := h.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		WriteInternalError(w, "Failed to issue token")
		return
	}

	// Best effort; a failed timestamp write must not block the login.
	_ = h.store.UpdateUserLastLogin(r.Context(), user.ID)

	WriteSuccess(w, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil)
}

// MeResponse describes the authenticated identity.
type MeResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Me handles GET /api/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, MeResponse{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil)
}
