// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"folio/internal/middleware"
	"folio/internal/store"
)

// SkillRequest is the create/update payload for skills.
type SkillRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Level       *string `json:"level,omitempty"`
	Proficiency *int64  `json:"proficiency,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Order       *int64  `json:"order,omitempty"`
}

// Fields converts the supplied values into store fields.
func (req SkillRequest) Fields() store.Fields {
	var f store.Fields
	setString(&f, "name", req.Name)
	setString(&f, "category", req.Category)
	setString(&f, "icon", req.Icon)
	setString(&f, "color", req.Color)
	setString(&f, "level", req.Level)
	setInt64(&f, "proficiency", req.Proficiency)
	setBool(&f, "is_active", req.IsActive)
	setInt64(&f, "position", req.Order)
	return f
}

// ListSkills handles GET /api/skills. Unauthenticated callers see active
// skills only.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseListQuery(r)

	filters := map[string]any{}
	stringFilter(r, "category", "category", filters)
	if middleware.IsAuthenticated(r) {
		boolFilter(r, "active", "is_active", filters)
	}

	skills, total, err := h.store.Skills.List(r.Context(), store.ListParams{
		Filters:       filters,
		Offset:        skip,
		Limit:         limit,
		PublishedOnly: !middleware.IsAuthenticated(r),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list skills")
		return
	}

	WriteSuccess(w, skills, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetSkill handles GET /api/skills/{id}.
func (h *Handler) GetSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid skill ID", nil)
		return
	}

	skill, err := h.store.Skills.Get(r.Context(), id, !middleware.IsAuthenticated(r))
	if err != nil {
		writeStoreError(w, err, "skill")
		return
	}
	WriteSuccess(w, skill, nil)
}

// CreateSkill handles POST /api/skills.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == nil || *req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	skill, err := h.store.Skills.Create(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "skill")
		return
	}
	WriteCreated(w, skill)
}

// UpdateSkill handles PUT /api/skills/{id}.
func (h *Handler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid skill ID", nil)
		return
	}

	var req SkillRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	skill, err := h.store.Skills.Update(r.Context(), id, req.Fields())
	if err != nil {
		writeStoreError(w, err, "skill")
		return
	}
	WriteSuccess(w, skill, nil)
}

// DeleteSkill handles DELETE /api/skills/{id}.
func (h *Handler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid skill ID", nil)
		return
	}

	if err := h.store.Skills.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "skill")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Skill deleted"})
}
