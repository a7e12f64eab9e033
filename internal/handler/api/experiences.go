// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"folio/internal/model"
	"folio/internal/store"
)

// ExperienceRequest is the create/update payload for timeline entries.
type ExperienceRequest struct {
	Title        *string  `json:"title,omitempty"`
	Organization *string  `json:"organization,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	IsCurrent    *bool    `json:"is_current,omitempty"`
	Order        *int64   `json:"order,omitempty"`
}

// Fields converts the supplied values into store fields.
func (req ExperienceRequest) Fields() store.Fields {
	var f store.Fields
	setString(&f, "title", req.Title)
	setString(&f, "organization", req.Organization)
	setString(&f, "type", req.Type)
	setString(&f, "location", req.Location)
	setString(&f, "description", req.Description)
	if req.Skills != nil {
		f.Set("skills", model.StringList(req.Skills))
	}
	setString(&f, "start_date", req.StartDate)
	setString(&f, "end_date", req.EndDate)
	setBool(&f, "is_current", req.IsCurrent)
	setInt64(&f, "position", req.Order)
	return f
}

// ListExperiences handles GET /api/experiences.
func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseListQuery(r)

	filters := map[string]any{}
	stringFilter(r, "type", "type", filters)

	experiences, total, err := h.store.Experiences.List(r.Context(), store.ListParams{
		Filters: filters,
		Offset:  skip,
		Limit:   limit,
	})
	if err != nil {
		WriteInternalError(w, "Failed to list experiences")
		return
	}

	WriteSuccess(w, experiences, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetExperience handles GET /api/experiences/{id}.
func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid experience ID", nil)
		return
	}

	experience, err := h.store.Experiences.Get(r.Context(), id, false)
	if err != nil {
		writeStoreError(w, err, "experience")
		return
	}
	WriteSuccess(w, experience, nil)
}

// CreateExperience handles POST /api/experiences.
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req ExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == nil || *req.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title is required"})
		return
	}

	experience, err := h.store.Experiences.Create(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "experience")
		return
	}
	WriteCreated(w, experience)
}

// UpdateExperience handles PUT /api/experiences/{id}.
func (h *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid experience ID", nil)
		return
	}

	var req ExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	experience, err := h.store.Experiences.Update(r.Context(), id, req.Fields())
	if err != nil {
		writeStoreError(w, err, "experience")
		return
	}
	WriteSuccess(w, experience, nil)
}

// DeleteExperience handles DELETE /api/experiences/{id}.
func (h *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid experience ID", nil)
		return
	}

	if err := h.store.Experiences.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "experience")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Experience deleted"})
}
