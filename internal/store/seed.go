// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"folio/internal/auth"
	"folio/internal/model"
)

// SeedAdmin creates the initial admin user when no user with the given
// email exists yet. Credentials come from configuration.
func SeedAdmin(ctx context.Context, s *Store, email, password string) error {
	_, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.CreateUser(ctx, email, passwordHash, model.RoleAdmin, "Administrator")
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user", "id", user.ID, "email", user.Email)
	return nil
}

// SeedDemo inserts demo portfolio content into an empty database. It is a
// no-op when any project already exists.
func SeedDemo(ctx context.Context, s *Store) error {
	n, err := s.Projects.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("counting projects: %w", err)
	}
	if n > 0 {
		slog.Info("content already present, skipping demo seed")
		return nil
	}

	var f Fields
	f.Set("title", "Demo Portfolio Site")
	f.Set("description", "A demo portfolio site powered by the CMS")
	f.Set("content", "Detailed content for the demo portfolio.")
	f.Set("category", "Web App")
	f.Set("technologies", model.StringList{"React", "Go", "Tailwind"})
	f.Set("year", "2025")
	f.Set("is_featured", true)
	if _, err := s.Projects.Create(ctx, f); err != nil {
		return fmt.Errorf("seeding project: %w", err)
	}

	f = Fields{}
	f.Set("title", "Getting Started with the CMS")
	f.Set("excerpt", "Intro to the portfolio CMS")
	f.Set("content", "This post explains how to use the CMS.")
	if _, err := s.Posts.Create(ctx, f); err != nil {
		return fmt.Errorf("seeding post: %w", err)
	}

	skills := []struct {
		name, category, level string
		proficiency           int64
	}{
		{"Go", "Language", "Expert", 95},
		{"TypeScript", "Language", "Advanced", 85},
	}
	for _, sk := range skills {
		f = Fields{}
		f.Set("name", sk.name)
		f.Set("category", sk.category)
		f.Set("level", sk.level)
		f.Set("proficiency", sk.proficiency)
		if _, err := s.Skills.Create(ctx, f); err != nil {
			return fmt.Errorf("seeding skill: %w", err)
		}
	}

	slog.Info("seeded demo content")
	return nil
}
