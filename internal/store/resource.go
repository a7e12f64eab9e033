// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"folio/internal/util"
)

// MaxPageSize is the upper bound on list page sizes.
const MaxPageSize = 100

// RowScanner abstracts *sql.Row and *sql.Rows for entity scan functions.
type RowScanner interface {
	Scan(dest ...any) error
}

// Resource describes one content entity type to the generic collection:
// its table, columns, and which of the shared behaviors (slug derivation,
// publish gating, explicit ordering, view counting, singleton cardinality)
// apply to it. Empty column names mean the behavior is absent.
type Resource[T any] struct {
	Table   string
	Columns []string // data columns in table order, excluding id

	// Scan reads one row laid out as: id, Columns...
	Scan func(RowScanner) (T, error)

	SlugColumn    string
	TitleColumn   string // slug derivation source; required when SlugColumn is set
	PublishColumn string
	ViewColumn    string
	OrderColumn   string
	// SecondaryOrder is the DESC tie-breaker after OrderColumn; defaults to created_at.
	SecondaryOrder string

	// Filters maps allowed list-filter names to their columns.
	Filters map[string]string

	Singleton    bool
	HasUpdatedAt bool
}

// ListParams bounds and filters a list query.
type ListParams struct {
	// Filters holds column -> required equality value. Columns must appear
	// in the resource's filter allow-list.
	Filters       map[string]any
	Offset        int64
	Limit         int64
	PublishedOnly bool
}

// Collection implements the generic CRUD contract for one entity type.
// All mutating operations run inside a single transaction.
type Collection[T any] struct {
	db  *sql.DB
	res Resource[T]
}

// NewCollection creates a collection over db for the described resource.
func NewCollection[T any](db *sql.DB, res Resource[T]) *Collection[T] {
	if res.SecondaryOrder == "" {
		res.SecondaryOrder = "created_at"
	}
	return &Collection[T]{db: db, res: res}
}

func (c *Collection[T]) selectList() string {
	return "id, " + strings.Join(c.res.Columns, ", ")
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// slugTaken reports whether another record of this type already uses slug.
func (c *Collection[T]) slugTaken(ctx context.Context, q querier, slug string, excludeID int64) (bool, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ? AND id != ?", c.res.Table, c.res.SlugColumn)
	var n int64
	if err := q.QueryRowContext(ctx, query, slug, excludeID).Scan(&n); err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}
	return n > 0, nil
}

func (c *Collection[T]) getByID(ctx context.Context, q querier, id int64) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", c.selectList(), c.res.Table)
	rec, err := c.res.Scan(q.QueryRowContext(ctx, query, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("getting %s: %w", c.res.Table, err)
	}
	return rec, nil
}

// Create inserts a new record. When the type has a slug column and the
// caller supplied none, the slug is derived from the title field. Duplicate
// slugs and already-populated singletons are rejected with ErrConflict.
func (c *Collection[T]) Create(ctx context.Context, f Fields) (T, error) {
	var zero T

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if c.res.Singleton {
		var n int64
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.res.Table).Scan(&n); err != nil {
			return zero, fmt.Errorf("counting %s: %w", c.res.Table, err)
		}
		if n > 0 {
			return zero, ErrConflict
		}
	}

	if c.res.SlugColumn != "" {
		slug := f.GetString(c.res.SlugColumn)
		if slug == "" {
			slug = util.Slugify(f.GetString(c.res.TitleColumn))
		}
		if slug == "" {
			return zero, fmt.Errorf("%s: cannot derive slug from empty title", c.res.Table)
		}
		taken, err := c.slugTaken(ctx, tx, slug, 0)
		if err != nil {
			return zero, err
		}
		if taken {
			return zero, ErrConflict
		}
		f.Set(c.res.SlugColumn, slug)
	}

	f.Set("created_at", time.Now())

	cols := f.Names()
	placeholders := strings.Repeat("?, ", len(cols)-1) + "?"
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		c.res.Table, strings.Join(cols, ", "), placeholders)

	result, err := tx.ExecContext(ctx, query, f.Args()...)
	if err != nil {
		return zero, fmt.Errorf("inserting %s: %w", c.res.Table, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return zero, fmt.Errorf("reading insert id: %w", err)
	}

	rec, err := c.getByID(ctx, tx, id)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("committing: %w", err)
	}
	return rec, nil
}

// Get fetches a record by id. With publishedOnly set, unpublished records
// of publish-gated types are reported as not found.
func (c *Collection[T]) Get(ctx context.Context, id int64, publishedOnly bool) (T, error) {
	var zero T
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", c.selectList(), c.res.Table)
	if publishedOnly && c.res.PublishColumn != "" {
		query += fmt.Sprintf(" AND %s = 1", c.res.PublishColumn)
	}
	rec, err := c.res.Scan(c.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("getting %s: %w", c.res.Table, err)
	}
	return rec, nil
}

// GetBySlug fetches a record by its slug.
func (c *Collection[T]) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (T, error) {
	var zero T
	if c.res.SlugColumn == "" {
		return zero, ErrNotFound
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", c.selectList(), c.res.Table, c.res.SlugColumn)
	if publishedOnly && c.res.PublishColumn != "" {
		query += fmt.Sprintf(" AND %s = 1", c.res.PublishColumn)
	}
	rec, err := c.res.Scan(c.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("getting %s by slug: %w", c.res.Table, err)
	}
	return rec, nil
}

// GetSingleton fetches the single record of a singleton type.
func (c *Collection[T]) GetSingleton(ctx context.Context) (T, error) {
	var zero T
	query := fmt.Sprintf("SELECT %s FROM %s LIMIT 1", c.selectList(), c.res.Table)
	rec, err := c.res.Scan(c.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("getting %s: %w", c.res.Table, err)
	}
	return rec, nil
}

// buildWhere turns validated filters into a WHERE clause and its arguments.
func (c *Collection[T]) buildWhere(filters map[string]any, publishedOnly bool) (string, []any, error) {
	allowed := make(map[string]bool, len(c.res.Filters))
	for _, col := range c.res.Filters {
		allowed[col] = true
	}

	var conds []string
	var args []any
	for col, val := range filters {
		if !allowed[col] {
			return "", nil, fmt.Errorf("filter on %s.%s is not allowed", c.res.Table, col)
		}
		conds = append(conds, col+" = ?")
		args = append(args, val)
	}
	if publishedOnly && c.res.PublishColumn != "" {
		conds = append(conds, c.res.PublishColumn+" = 1")
	}
	if len(conds) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func (c *Collection[T]) orderClause() string {
	if c.res.OrderColumn != "" {
		return fmt.Sprintf(" ORDER BY %s ASC, %s DESC", c.res.OrderColumn, c.res.SecondaryOrder)
	}
	return " ORDER BY created_at DESC"
}

// List returns a page of records plus the total size of the filtered set
// before pagination.
func (c *Collection[T]) List(ctx context.Context, p ListParams) ([]T, int64, error) {
	where, args, err := c.buildWhere(p.Filters, p.PublishedOnly)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM " + c.res.Table + where
	if err := c.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting %s: %w", c.res.Table, err)
	}

	limit := p.Limit
	if limit < 1 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT ? OFFSET ?",
		c.selectList(), c.res.Table, where, c.orderClause())

	rows, err := c.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", c.res.Table, err)
	}
	defer rows.Close()

	records := make([]T, 0, limit)
	for rows.Next() {
		rec, err := c.res.Scan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning %s: %w", c.res.Table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", c.res.Table, err)
	}

	return records, total, nil
}

// Count returns the number of records matching the allow-listed filters.
func (c *Collection[T]) Count(ctx context.Context, filters map[string]any) (int64, error) {
	where, args, err := c.buildWhere(filters, false)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.res.Table+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", c.res.Table, err)
	}
	return n, nil
}

// Update merges only the supplied fields into the stored record. When the
// title changes and no explicit slug accompanies it, the slug is re-derived;
// collisions are rejected with ErrConflict. The update timestamp is set for
// types that carry one.
func (c *Collection[T]) Update(ctx context.Context, id int64, f Fields) (T, error) {
	var zero T

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if c.res.SlugColumn != "" {
		var curTitle, curSlug string
		query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE id = ?",
			c.res.TitleColumn, c.res.SlugColumn, c.res.Table)
		if err := tx.QueryRowContext(ctx, query, id).Scan(&curTitle, &curSlug); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return zero, ErrNotFound
			}
			return zero, fmt.Errorf("loading %s: %w", c.res.Table, err)
		}

		if title, ok := f.Get(c.res.TitleColumn); ok && !f.Has(c.res.SlugColumn) {
			if s, _ := title.(string); s != curTitle {
				f.Set(c.res.SlugColumn, util.Slugify(s))
			}
		}
		if f.Has(c.res.SlugColumn) {
			slug := f.GetString(c.res.SlugColumn)
			if slug == "" {
				return zero, fmt.Errorf("%s: cannot derive slug from empty title", c.res.Table)
			}
			if slug != curSlug {
				taken, err := c.slugTaken(ctx, tx, slug, id)
				if err != nil {
					return zero, err
				}
				if taken {
					return zero, ErrConflict
				}
			}
		}
	} else {
		var n int64
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.res.Table+" WHERE id = ?", id).Scan(&n); err != nil {
			return zero, fmt.Errorf("loading %s: %w", c.res.Table, err)
		}
		if n == 0 {
			return zero, ErrNotFound
		}
	}

	if c.res.HasUpdatedAt {
		f.Set("updated_at", time.Now())
	}

	if f.Len() > 0 {
		sets := make([]string, 0, f.Len())
		for _, name := range f.Names() {
			sets = append(sets, name+" = ?")
		}
		query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?",
			c.res.Table, strings.Join(sets, ", "))
		args := make([]any, 0, f.Len()+1)
		args = append(args, f.Args()...)
		args = append(args, id)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return zero, fmt.Errorf("updating %s: %w", c.res.Table, err)
		}
	}

	rec, err := c.getByID(ctx, tx, id)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("committing: %w", err)
	}
	return rec, nil
}

// UpsertSingleton updates the singleton record, creating it when none
// exists yet.
func (c *Collection[T]) UpsertSingleton(ctx context.Context, f Fields) (T, error) {
	var zero T

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM "+c.res.Table+" LIMIT 1").Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		f.Set("created_at", time.Now())
		cols := f.Names()
		placeholders := strings.Repeat("?, ", len(cols)-1) + "?"
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			c.res.Table, strings.Join(cols, ", "), placeholders)
		result, err := tx.ExecContext(ctx, query, f.Args()...)
		if err != nil {
			return zero, fmt.Errorf("inserting %s: %w", c.res.Table, err)
		}
		if id, err = result.LastInsertId(); err != nil {
			return zero, fmt.Errorf("reading insert id: %w", err)
		}
	case err != nil:
		return zero, fmt.Errorf("loading %s: %w", c.res.Table, err)
	default:
		if c.res.HasUpdatedAt {
			f.Set("updated_at", time.Now())
		}
		if f.Len() > 0 {
			sets := make([]string, 0, f.Len())
			for _, name := range f.Names() {
				sets = append(sets, name+" = ?")
			}
			query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?",
				c.res.Table, strings.Join(sets, ", "))
			args := make([]any, 0, f.Len()+1)
			args = append(args, f.Args()...)
			args = append(args, id)
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return zero, fmt.Errorf("updating %s: %w", c.res.Table, err)
			}
		}
	}

	rec, err := c.getByID(ctx, tx, id)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("committing: %w", err)
	}
	return rec, nil
}

// Delete removes a record permanently.
func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	result, err := c.db.ExecContext(ctx, "DELETE FROM "+c.res.Table+" WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.res.Table, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting %s: %w", c.res.Table, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementView atomically bumps the view counter for types that track one.
func (c *Collection[T]) IncrementView(ctx context.Context, id int64) error {
	if c.res.ViewColumn == "" {
		return nil
	}
	query := fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE id = ?",
		c.res.Table, c.res.ViewColumn, c.res.ViewColumn)
	if _, err := c.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("incrementing %s views: %w", c.res.Table, err)
	}
	return nil
}
