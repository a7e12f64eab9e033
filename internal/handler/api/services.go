// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"folio/internal/middleware"
	"folio/internal/store"
)

// ServiceRequest is the create/update payload for service cards.
type ServiceRequest struct {
	Title       *string `json:"title,omitempty"`
	Subtitle    *string `json:"subtitle,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// Fields converts the supplied values into store fields.
func (req ServiceRequest) Fields() store.Fields {
	var f store.Fields
	setString(&f, "title", req.Title)
	setString(&f, "subtitle", req.Subtitle)
	setString(&f, "description", req.Description)
	setBool(&f, "active", req.Active)
	return f
}

// ListServices handles GET /api/services. Unauthenticated callers see
// active services only.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseListQuery(r)

	filters := map[string]any{}
	if middleware.IsAuthenticated(r) {
		boolFilter(r, "active", "active", filters)
	}

	services, total, err := h.store.Services.List(r.Context(), store.ListParams{
		Filters:       filters,
		Offset:        skip,
		Limit:         limit,
		PublishedOnly: !middleware.IsAuthenticated(r),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list services")
		return
	}

	WriteSuccess(w, services, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetService handles GET /api/services/{id}.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid service ID", nil)
		return
	}

	svc, err := h.store.Services.Get(r.Context(), id, !middleware.IsAuthenticated(r))
	if err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteSuccess(w, svc, nil)
}

// CreateService handles POST /api/services (admin).
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == nil || *req.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title is required"})
		return
	}

	svc, err := h.store.Services.Create(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteCreated(w, svc)
}

// UpdateService handles PUT /api/services/{id} (admin).
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid service ID", nil)
		return
	}

	var req ServiceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	svc, err := h.store.Services.Update(r.Context(), id, req.Fields())
	if err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteSuccess(w, svc, nil)
}

// DeleteService handles DELETE /api/services/{id} (admin).
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid service ID", nil)
		return
	}

	if err := h.store.Services.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "service")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Service deleted"})
}
