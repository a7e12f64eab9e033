// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned on uniqueness violations: a duplicate slug,
	// or a create on an already-populated singleton type.
	ErrConflict = errors.New("record conflict")
)
