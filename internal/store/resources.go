// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"

	"folio/internal/model"
)

// Store bundles the per-entity collections over one database handle.
type Store struct {
	db *sql.DB

	Profiles     *Collection[model.Profile]
	Projects     *Collection[model.Project]
	Posts        *Collection[model.Post]
	Skills       *Collection[model.Skill]
	Experiences  *Collection[model.Experience]
	Contacts     *Collection[model.Contact]
	Services     *Collection[model.Service]
	Testimonials *Collection[model.Testimonial]
}

// New creates a Store with all entity collections configured.
func New(db *sql.DB) *Store {
	return &Store{
		db:           db,
		Profiles:     NewCollection(db, profileResource),
		Projects:     NewCollection(db, projectResource),
		Posts:        NewCollection(db, postResource),
		Skills:       NewCollection(db, skillResource),
		Experiences:  NewCollection(db, experienceResource),
		Contacts:     NewCollection(db, contactResource),
		Services:     NewCollection(db, serviceResource),
		Testimonials: NewCollection(db, testimonialResource),
	}
}

// DB exposes the underlying handle for user queries and health checks.
func (s *Store) DB() *sql.DB {
	return s.db
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

var profileResource = Resource[model.Profile]{
	Table: "profiles",
	Columns: []string{
		"name", "title", "bio", "avatar", "email", "phone", "location",
		"resume_url", "social_links", "created_at", "updated_at",
	},
	Scan: func(row RowScanner) (model.Profile, error) {
		var p model.Profile
		var updatedAt sql.NullTime
		err := row.Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Avatar, &p.Email,
			&p.Phone, &p.Location, &p.ResumeURL, &p.SocialLinks,
			&p.CreatedAt, &updatedAt)
		p.UpdatedAt = nullableTime(updatedAt)
		return p, err
	},
	Singleton:    true,
	HasUpdatedAt: true,
}

var projectResource = Resource[model.Project]{
	Table: "projects",
	Columns: []string{
		"title", "slug", "description", "content", "image", "category",
		"technologies", "features", "github_url", "live_url", "year",
		"is_featured", "is_published", "position", "created_at", "updated_at",
	},
	Scan: func(row RowScanner) (model.Project, error) {
		var p model.Project
		var updatedAt sql.NullTime
		err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Content,
			&p.Image, &p.Category, &p.Technologies, &p.Features,
			&p.GithubURL, &p.LiveURL, &p.Year, &p.IsFeatured,
			&p.IsPublished, &p.Position, &p.CreatedAt, &updatedAt)
		p.UpdatedAt = nullableTime(updatedAt)
		return p, err
	},
	SlugColumn:    "slug",
	TitleColumn:   "title",
	PublishColumn: "is_published",
	OrderColumn:   "position",
	Filters: map[string]string{
		"featured":  "is_featured",
		"category":  "category",
		"published": "is_published",
	},
	HasUpdatedAt: true,
}

var postResource = Resource[model.Post]{
	Table: "posts",
	Columns: []string{
		"title", "slug", "excerpt", "content", "image", "category", "tags",
		"read_time", "is_published", "views", "created_at", "updated_at",
	},
	Scan: func(row RowScanner) (model.Post, error) {
		var p model.Post
		var updatedAt sql.NullTime
		err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content,
			&p.Image, &p.Category, &p.Tags, &p.ReadTime, &p.IsPublished,
			&p.Views, &p.CreatedAt, &updatedAt)
		p.UpdatedAt = nullableTime(updatedAt)
		return p, err
	},
	SlugColumn:    "slug",
	TitleColumn:   "title",
	PublishColumn: "is_published",
	ViewColumn:    "views",
	Filters: map[string]string{
		"category":  "category",
		"published": "is_published",
	},
	HasUpdatedAt: true,
}

var skillResource = Resource[model.Skill]{
	Table: "skills",
	Columns: []string{
		"name", "category", "icon", "color", "level", "proficiency",
		"is_active", "position", "created_at", "updated_at",
	},
	Scan: func(row RowScanner) (model.Skill, error) {
		var s model.Skill
		var updatedAt sql.NullTime
		err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Icon, &s.Color,
			&s.Level, &s.Proficiency, &s.IsActive, &s.Position,
			&s.CreatedAt, &updatedAt)
		s.UpdatedAt = nullableTime(updatedAt)
		return s, err
	},
	PublishColumn: "is_active",
	OrderColumn:   "position",
	Filters: map[string]string{
		"category": "category",
		"active":   "is_active",
	},
	HasUpdatedAt: true,
}

var experienceResource = Resource[model.Experience]{
	Table: "experiences",
	Columns: []string{
		"title", "organization", "type", "location", "description", "skills",
		"start_date", "end_date", "is_current", "position",
		"created_at", "updated_at",
	},
	Scan: func(row RowScanner) (model.Experience, error) {
		var e model.Experience
		var updatedAt sql.NullTime
		err := row.Scan(&e.ID, &e.Title, &e.Organization, &e.Type, &e.Location,
			&e.Description, &e.Skills, &e.StartDate, &e.EndDate,
			&e.IsCurrent, &e.Position, &e.CreatedAt, &updatedAt)
		e.UpdatedAt = nullableTime(updatedAt)
		return e, err
	},
	OrderColumn:    "position",
	SecondaryOrder: "start_date",
	Filters: map[string]string{
		"type": "type",
	},
	HasUpdatedAt: true,
}

var contactResource = Resource[model.Contact]{
	Table: "contacts",
	Columns: []string{
		"name", "email", "subject", "message", "is_read", "created_at",
	},
	Scan: func(row RowScanner) (model.Contact, error) {
		var c model.Contact
		err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message,
			&c.IsRead, &c.CreatedAt)
		return c, err
	},
	Filters: map[string]string{
		"read": "is_read",
	},
}

var serviceResource = Resource[model.Service]{
	Table: "services",
	Columns: []string{
		"title", "subtitle", "description", "active", "created_at", "updated_at",
	},
	Scan: func(row RowScanner) (model.Service, error) {
		var s model.Service
		var updatedAt sql.NullTime
		err := row.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Description,
			&s.Active, &s.CreatedAt, &updatedAt)
		s.UpdatedAt = nullableTime(updatedAt)
		return s, err
	},
	PublishColumn: "active",
	Filters: map[string]string{
		"active": "active",
	},
	HasUpdatedAt: true,
}

var testimonialResource = Resource[model.Testimonial]{
	Table: "testimonials",
	Columns: []string{
		"author", "role", "content", "featured", "created_at", "updated_at",
	},
	Scan: func(row RowScanner) (model.Testimonial, error) {
		var t model.Testimonial
		var updatedAt sql.NullTime
		err := row.Scan(&t.ID, &t.Author, &t.Role, &t.Content, &t.Featured,
			&t.CreatedAt, &updatedAt)
		t.UpdatedAt = nullableTime(updatedAt)
		return t, err
	},
	Filters: map[string]string{
		"featured": "featured",
	},
	HasUpdatedAt: true,
}
