// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"folio/internal/model"
)

func TestProjectLifecycle(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	// Create derives the slug from the title.
	rec := env.request(t, http.MethodPost, "/api/projects", token,
		`{"title":"My Cool App","description":"demo","technologies":["Go","React"]}`)
	wantStatus(t, rec, http.StatusCreated)

	var created model.Project
	decodeData(t, rec, &created)
	if created.Slug != "my-cool-app" {
		t.Errorf("slug = %q, want my-cool-app", created.Slug)
	}
	if len(created.Technologies) != 2 {
		t.Errorf("technologies = %v, want 2 entries", created.Technologies)
	}

	// Same title again: slug conflict.
	rec = env.request(t, http.MethodPost, "/api/projects", token,
		`{"title":"My Cool App"}`)
	wantStatus(t, rec, http.StatusConflict)

	// Partial update leaves unspecified fields alone.
	rec = env.request(t, http.MethodPut, "/api/projects/1", token,
		`{"description":"updated"}`)
	wantStatus(t, rec, http.StatusOK)

	var updated model.Project
	decodeData(t, rec, &updated)
	if updated.Title != "My Cool App" {
		t.Errorf("title = %q, want unchanged", updated.Title)
	}
	if updated.Description != "updated" {
		t.Errorf("description = %q, want updated", updated.Description)
	}
	if updated.UpdatedAt == nil {
		t.Error("updated_at not set")
	}

	// Fetch by slug.
	rec = env.request(t, http.MethodGet, "/api/projects/my-cool-app", "", "")
	wantStatus(t, rec, http.StatusOK)

	// Delete, then the record is gone.
	rec = env.request(t, http.MethodDelete, "/api/projects/1", token, "")
	wantStatus(t, rec, http.StatusOK)
	rec = env.request(t, http.MethodGet, "/api/projects/1", token, "")
	wantStatus(t, rec, http.StatusNotFound)
	rec = env.request(t, http.MethodDelete, "/api/projects/1", token, "")
	wantStatus(t, rec, http.StatusNotFound)
}

func TestProjectPublishGating(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/projects", token,
		`{"title":"Published","is_published":true}`)
	wantStatus(t, rec, http.StatusCreated)
	rec = env.request(t, http.MethodPost, "/api/projects", token,
		`{"title":"Draft","is_published":false}`)
	wantStatus(t, rec, http.StatusCreated)

	// Anonymous list sees only published work.
	rec = env.request(t, http.MethodGet, "/api/projects", "", "")
	wantStatus(t, rec, http.StatusOK)
	var public []model.Project
	decodeData(t, rec, &public)
	if len(public) != 1 || public[0].Title != "Published" {
		t.Errorf("public list = %+v, want only the published project", public)
	}
	if meta := decodeMeta(t, rec); meta.Total != 1 {
		t.Errorf("public total = %d, want 1", meta.Total)
	}

	// Authenticated list sees drafts too.
	rec = env.request(t, http.MethodGet, "/api/projects", token, "")
	wantStatus(t, rec, http.StatusOK)
	var all []model.Project
	decodeData(t, rec, &all)
	if len(all) != 2 {
		t.Errorf("authenticated list = %d records, want 2", len(all))
	}

	// Single-record reads obey the same gate.
	rec = env.request(t, http.MethodGet, "/api/projects/draft", "", "")
	wantStatus(t, rec, http.StatusNotFound)
	rec = env.request(t, http.MethodGet, "/api/projects/draft", token, "")
	wantStatus(t, rec, http.StatusOK)
}

func TestProjectValidation(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/projects", token, `{"description":"no title"}`)
	wantStatus(t, rec, http.StatusUnprocessableEntity)

	rec = env.request(t, http.MethodPost, "/api/projects", token, `{not json`)
	wantStatus(t, rec, http.StatusBadRequest)

	rec = env.request(t, http.MethodPut, "/api/projects/abc", token, `{}`)
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestProjectMutationsRequireAdmin(t *testing.T) {
	env := testSetup(t)

	// No token: 401.
	rec := env.request(t, http.MethodPost, "/api/projects", "", `{"title":"X"}`)
	wantStatus(t, rec, http.StatusUnauthorized)

	// Valid token without the admin role: 403.
	viewer, _, err := env.tokens.Issue(99, "viewer@example.com", "viewer")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	rec = env.request(t, http.MethodPost, "/api/projects", viewer, `{"title":"X"}`)
	wantStatus(t, rec, http.StatusForbidden)
}

func TestProjectFilters(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	for _, body := range []string{
		`{"title":"Web One","category":"web","is_featured":true}`,
		`{"title":"Web Two","category":"web"}`,
		`{"title":"CLI Tool","category":"cli"}`,
	} {
		rec := env.request(t, http.MethodPost, "/api/projects", token, body)
		wantStatus(t, rec, http.StatusCreated)
	}

	rec := env.request(t, http.MethodGet, "/api/projects?category=web", "", "")
	wantStatus(t, rec, http.StatusOK)
	if meta := decodeMeta(t, rec); meta.Total != 2 {
		t.Errorf("category=web total = %d, want 2", meta.Total)
	}

	rec = env.request(t, http.MethodGet, "/api/projects?featured=true", "", "")
	wantStatus(t, rec, http.StatusOK)
	if meta := decodeMeta(t, rec); meta.Total != 1 {
		t.Errorf("featured=true total = %d, want 1", meta.Total)
	}

	// Pagination reports the pre-pagination total.
	rec = env.request(t, http.MethodGet, "/api/projects?limit=1&skip=1", "", "")
	wantStatus(t, rec, http.StatusOK)
	var page []model.Project
	decodeData(t, rec, &page)
	if len(page) != 1 {
		t.Errorf("page size = %d, want 1", len(page))
	}
	if meta := decodeMeta(t, rec); meta.Total != 3 {
		t.Errorf("paginated total = %d, want 3", meta.Total)
	}
}
