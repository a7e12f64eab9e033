// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, rate limiting, and CORS handling.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"folio/internal/auth"
)

// ContextKey is the type for request context keys set by this package.
type ContextKey string

// ContextKeyClaims is the context key for the authenticated identity claims.
const ContextKeyClaims ContextKey = "claims"

// APIError represents a JSON error response.
type APIError struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	apiErr := APIError{}
	apiErr.Error.Code = code
	apiErr.Error.Message = message
	apiErr.Error.Details = details

	_ = json.NewEncoder(w).Encode(apiErr)
}

// bearerToken extracts the token from an Authorization header.
// Returns "" when the header is absent or not in Bearer form.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// RequireAuth creates middleware that validates the bearer token and puts
// the decoded identity claims into the request context. Requests without a
// valid token are rejected before reaching any handler.
func RequireAuth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized",
					"Missing or malformed Authorization header. Use: Bearer <token>", nil)
				return
			}

			claims, err := tm.Validate(token)
			if err != nil {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized",
					"Invalid or expired token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin creates middleware that requires an admin role claim. It
// must be used after RequireAuth. Token possession alone does not grant
// write access.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r)
			if !ok {
				WriteAPIError(w, http.StatusUnauthorized, "unauthorized",
					"Authentication required", nil)
				return
			}
			if !claims.IsAdmin() {
				WriteAPIError(w, http.StatusForbidden, "forbidden",
					"Admin privileges required", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth creates middleware that decodes a bearer token when one is
// present but never rejects the request. Handlers use the claims to widen
// visibility for authenticated callers.
func OptionalAuth(tm *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := tm.Validate(token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims retrieves the identity claims from the request context.
func GetClaims(r *http.Request) (auth.Claims, bool) {
	claims, ok := r.Context().Value(ContextKeyClaims).(auth.Claims)
	return claims, ok
}

// IsAuthenticated reports whether the request carries validated claims.
func IsAuthenticated(r *http.Request) bool {
	_, ok := GetClaims(r)
	return ok
}
