// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the
// application: the admin User plus the portfolio content entities.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string stored as a JSON array in a TEXT column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshaling string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return l.unmarshal([]byte(v))
	case []byte:
		return l.unmarshal(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

func (l *StringList) unmarshal(data []byte) error {
	if len(data) == 0 {
		*l = nil
		return nil
	}
	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("unmarshaling string list: %w", err)
	}
	return nil
}

// StringMap is a map[string]string stored as a JSON object in a TEXT column.
type StringMap map[string]string

// Value implements driver.Valuer.
func (m StringMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshaling string map: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *StringMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = nil
		return nil
	case string:
		return m.unmarshal([]byte(v))
	case []byte:
		return m.unmarshal(v)
	default:
		return fmt.Errorf("cannot scan %T into StringMap", src)
	}
}

func (m *StringMap) unmarshal(data []byte) error {
	if len(data) == 0 {
		*m = nil
		return nil
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshaling string map: %w", err)
	}
	return nil
}
