// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"folio/internal/model"
)

const userColumns = "id, email, password_hash, role, name, created_at, last_login_at"

func scanUser(row RowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name,
		&u.CreatedAt, &u.LastLoginAt)
	return u, err
}

// GetUserByEmail fetches a user by email for credential verification.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// CreateUser inserts a new user and returns it.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash, role, name string) (model.User, error) {
	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, role, name, created_at) VALUES (?, ?, ?, ?, ?)",
		email, passwordHash, role, name, time.Now())
	if err != nil {
		return model.User{}, fmt.Errorf("creating user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return model.User{}, fmt.Errorf("reading insert id: %w", err)
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	u, err := scanUser(row)
	if err != nil {
		return model.User{}, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// UpdateUserLastLogin records a successful login.
func (s *Store) UpdateUserLastLogin(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx,
		"UPDATE users SET last_login_at = ? WHERE id = ?", time.Now(), id); err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}
	return nil
}
