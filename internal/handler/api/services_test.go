// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"testing"

	"folio/internal/model"
)

func TestServiceActiveGating(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/services", token,
		`{"title":"Consulting","subtitle":"Architecture reviews","active":true}`)
	wantStatus(t, rec, http.StatusCreated)
	rec = env.request(t, http.MethodPost, "/api/services", token,
		`{"title":"Retired Offering","active":false}`)
	wantStatus(t, rec, http.StatusCreated)

	rec = env.request(t, http.MethodGet, "/api/services", "", "")
	wantStatus(t, rec, http.StatusOK)
	var public []model.Service
	decodeData(t, rec, &public)
	if len(public) != 1 || public[0].Title != "Consulting" {
		t.Errorf("public services = %+v, want only the active card", public)
	}

	// Inactive cards are invisible to anonymous single reads too.
	rec = env.request(t, http.MethodGet, "/api/services/2", "", "")
	wantStatus(t, rec, http.StatusNotFound)
	rec = env.request(t, http.MethodGet, "/api/services/2", token, "")
	wantStatus(t, rec, http.StatusOK)
}

func TestServiceValidation(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/services", token, `{"subtitle":"no title"}`)
	wantStatus(t, rec, http.StatusUnprocessableEntity)
}
