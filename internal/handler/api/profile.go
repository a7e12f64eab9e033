// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"folio/internal/model"
	"folio/internal/store"
)

// ProfileRequest is the create/upsert payload for the profile. All fields
// are optional; absent fields keep their stored (or default) values.
type ProfileRequest struct {
	Name        *string           `json:"name,omitempty"`
	Title       *string           `json:"title,omitempty"`
	Bio         *string           `json:"bio,omitempty"`
	Avatar      *string           `json:"avatar,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Location    *string           `json:"location,omitempty"`
	ResumeURL   *string           `json:"resume_url,omitempty"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
}

// Fields converts the supplied values into store fields.
func (req ProfileRequest) Fields() store.Fields {
	var f store.Fields
	setString(&f, "name", req.Name)
	setString(&f, "title", req.Title)
	setString(&f, "bio", req.Bio)
	setString(&f, "avatar", req.Avatar)
	setString(&f, "email", req.Email)
	setString(&f, "phone", req.Phone)
	setString(&f, "location", req.Location)
	setString(&f, "resume_url", req.ResumeURL)
	if req.SocialLinks != nil {
		f.Set("social_links", model.StringMap(req.SocialLinks))
	}
	return f
}

// GetProfile handles GET /api/profile. Returns 404 until a profile is set.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.store.Profiles.GetSingleton(r.Context())
	if err != nil {
		writeStoreError(w, err, "profile")
		return
	}
	WriteSuccess(w, profile, nil)
}

// CreateProfile handles POST /api/profile. Rejected with 409 once a
// profile exists; PUT is the idempotent alternative.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.store.Profiles.Create(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "profile")
		return
	}
	WriteCreated(w, profile)
}

// UpsertProfile handles PUT /api/profile, creating the profile when none
// exists yet.
func (h *Handler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.store.Profiles.UpsertSingleton(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "profile")
		return
	}
	WriteSuccess(w, profile, nil)
}

// setString adds a string field when the request supplied one.
func setString(f *store.Fields, column string, v *string) {
	if v != nil {
		f.Set(column, *v)
	}
}

// setBool adds a boolean field when the request supplied one.
func setBool(f *store.Fields, column string, v *bool) {
	if v != nil {
		f.Set(column, *v)
	}
}

// setInt64 adds an integer field when the request supplied one.
func setInt64(f *store.Fields, column string, v *int64) {
	if v != nil {
		f.Set(column, *v)
	}
}
