// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

// Fields is an ordered set of column/value pairs for a create or partial
// update. Handlers build it from typed request structs, adding only the
// fields the caller actually supplied, so unspecified columns are never
// touched by an update.
type Fields struct {
	names []string
	args  []any
}

// Set adds a column value, replacing any previous value for the column.
func (f *Fields) Set(column string, value any) {
	for i, n := range f.names {
		if n == column {
			f.args[i] = value
			return
		}
	}
	f.names = append(f.names, column)
	f.args = append(f.args, value)
}

// Get returns the value set for a column, if any.
func (f *Fields) Get(column string) (any, bool) {
	for i, n := range f.names {
		if n == column {
			return f.args[i], true
		}
	}
	return nil, false
}

// GetString returns the value for a column as a string. Missing or
// non-string values yield "".
func (f *Fields) GetString(column string) string {
	v, ok := f.Get(column)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Has reports whether a value was set for the column.
func (f *Fields) Has(column string) bool {
	_, ok := f.Get(column)
	return ok
}

// Len returns the number of set columns.
func (f *Fields) Len() int {
	return len(f.names)
}

// Names returns the set column names in insertion order.
func (f *Fields) Names() []string {
	return f.names
}

// Args returns the values in the same order as Names.
func (f *Fields) Args() []any {
	return f.args
}
