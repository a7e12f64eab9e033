// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"folio/internal/model"
)

func TestSkillActiveGating(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/skills", token,
		`{"name":"Go","category":"backend","proficiency":90,"is_active":true}`)
	wantStatus(t, rec, http.StatusCreated)
	rec = env.request(t, http.MethodPost, "/api/skills", token,
		`{"name":"Flash","category":"frontend","is_active":false}`)
	wantStatus(t, rec, http.StatusCreated)

	// Inactive skills stay hidden from anonymous callers.
	rec = env.request(t, http.MethodGet, "/api/skills", "", "")
	wantStatus(t, rec, http.StatusOK)
	var public []model.Skill
	decodeData(t, rec, &public)
	if len(public) != 1 || public[0].Name != "Go" {
		t.Errorf("public skills = %+v, want only Go", public)
	}

	rec = env.request(t, http.MethodGet, "/api/skills", token, "")
	wantStatus(t, rec, http.StatusOK)
	var all []model.Skill
	decodeData(t, rec, &all)
	if len(all) != 2 {
		t.Errorf("admin skills = %d, want 2", len(all))
	}

	// The active filter is admin-only; category works for everyone.
	rec = env.request(t, http.MethodGet, "/api/skills?active=false", token, "")
	wantStatus(t, rec, http.StatusOK)
	if meta := decodeMeta(t, rec); meta.Total != 1 {
		t.Errorf("active=false total = %d, want 1", meta.Total)
	}
	rec = env.request(t, http.MethodGet, "/api/skills?category=backend", "", "")
	wantStatus(t, rec, http.StatusOK)
	if meta := decodeMeta(t, rec); meta.Total != 1 {
		t.Errorf("category=backend total = %d, want 1", meta.Total)
	}
}

func TestSkillOrdering(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	for _, body := range []string{
		`{"name":"Second","order":2}`,
		`{"name":"First","order":1}`,
	} {
		rec := env.request(t, http.MethodPost, "/api/skills", token, body)
		wantStatus(t, rec, http.StatusCreated)
	}

	rec := env.request(t, http.MethodGet, "/api/skills", token, "")
	wantStatus(t, rec, http.StatusOK)
	var skills []model.Skill
	decodeData(t, rec, &skills)
	if len(skills) != 2 || skills[0].Name != "First" {
		t.Errorf("skills = %+v, want position order", skills)
	}
}

func TestSkillValidation(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/skills", token, `{"category":"backend"}`)
	wantStatus(t, rec, http.StatusUnprocessableEntity)
}
