// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, structure,
// or expiry checks. Callers treat all three cases identically.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity envelope carried inside an access token.
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"sub"`
	Role   string `json:"role"`
}

// IsAdmin returns true if the claims carry the admin role.
func (c Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// tokenClaims is the wire representation registered with the JWT library.
type tokenClaims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HMAC-signed access tokens.
// The signing key is read-only after construction.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager with the given signing secret,
// issuer name, and token lifetime.
func NewTokenManager(secret []byte, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: secret,
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue creates a signed token for the given identity. The token embeds an
// absolute expiry of now + the configured TTL and is opaque to callers.
func (m *TokenManager) Issue(userID int64, email, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := tokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate verifies the token signature and expiry and returns the embedded
// identity claims. Malformed, tampered, or expired tokens all yield
// ErrInvalidToken.
func (m *TokenManager) Validate(tokenString string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		// Pin the algorithm; never accept what the token header asks for.
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}

	tc, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		UserID: tc.UserID,
		Email:  tc.Subject,
		Role:   tc.Role,
	}, nil
}
