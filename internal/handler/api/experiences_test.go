// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"folio/internal/model"
)

func TestExperienceLifecycle(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/experiences", token,
		`{"title":"Backend Engineer","organization":"Acme","type":"work","start_date":"2022-01","is_current":true,"skills":["Go","SQL"]}`)
	wantStatus(t, rec, http.StatusCreated)

	var created model.Experience
	decodeData(t, rec, &created)
	if created.Organization != "Acme" || !created.IsCurrent {
		t.Errorf("created = %+v", created)
	}
	if len(created.Skills) != 2 {
		t.Errorf("skills = %v, want 2 entries", created.Skills)
	}

	// Timeline entries need no publish flag; anonymous reads work.
	rec = env.request(t, http.MethodGet, "/api/experiences/1", "", "")
	wantStatus(t, rec, http.StatusOK)

	rec = env.request(t, http.MethodPut, "/api/experiences/1", token,
		`{"end_date":"2024-06","is_current":false}`)
	wantStatus(t, rec, http.StatusOK)
	var updated model.Experience
	decodeData(t, rec, &updated)
	if updated.IsCurrent || updated.EndDate != "2024-06" {
		t.Errorf("updated = %+v", updated)
	}

	rec = env.request(t, http.MethodDelete, "/api/experiences/1", token, "")
	wantStatus(t, rec, http.StatusOK)
	rec = env.request(t, http.MethodGet, "/api/experiences/1", "", "")
	wantStatus(t, rec, http.StatusNotFound)
}

func TestExperienceTypeFilter(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	for _, body := range []string{
		`{"title":"Job","type":"work"}`,
		`{"title":"Degree","type":"education"}`,
	} {
		rec := env.request(t, http.MethodPost, "/api/experiences", token, body)
		wantStatus(t, rec, http.StatusCreated)
	}

	rec := env.request(t, http.MethodGet, "/api/experiences?type=education", "", "")
	wantStatus(t, rec, http.StatusOK)
	var entries []model.Experience
	decodeData(t, rec, &entries)
	if len(entries) != 1 || entries[0].Title != "Degree" {
		t.Errorf("type=education = %+v, want only the degree", entries)
	}
}
