// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"folio/internal/store"
)

// TestimonialRequest is the create/update payload for testimonials.
type TestimonialRequest struct {
	Author   *string `json:"author,omitempty"`
	Role     *string `json:"role,omitempty"`
	Content  *string `json:"content,omitempty"`
	Featured *bool   `json:"featured,omitempty"`
}

// Fields converts the supplied values into store fields.
func (req TestimonialRequest) Fields() store.Fields {
	var f store.Fields
	setString(&f, "author", req.Author)
	setString(&f, "role", req.Role)
	setString(&f, "content", req.Content)
	setBool(&f, "featured", req.Featured)
	return f
}

// ListTestimonials handles GET /api/testimonials.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseListQuery(r)

	filters := map[string]any{}
	boolFilter(r, "featured", "featured", filters)

	testimonials, total, err := h.store.Testimonials.List(r.Context(), store.ListParams{
		Filters: filters,
		Offset:  skip,
		Limit:   limit,
	})
	if err != nil {
		WriteInternalError(w, "Failed to list testimonials")
		return
	}

	WriteSuccess(w, testimonials, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetTestimonial handles GET /api/testimonials/{id}.
func (h *Handler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid testimonial ID", nil)
		return
	}

	testimonial, err := h.store.Testimonials.Get(r.Context(), id, false)
	if err != nil {
		writeStoreError(w, err, "testimonial")
		return
	}
	WriteSuccess(w, testimonial, nil)
}

// CreateTestimonial handles POST /api/testimonials (admin).
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req TestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	errs := map[string]string{}
	if req.Author == nil || *req.Author == "" {
		errs["author"] = "Author is required"
	}
	if req.Content == nil || *req.Content == "" {
		errs["content"] = "Content is required"
	}
	if len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	testimonial, err := h.store.Testimonials.Create(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "testimonial")
		return
	}
	WriteCreated(w, testimonial)
}

// UpdateTestimonial handles PUT /api/testimonials/{id} (admin).
func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid testimonial ID", nil)
		return
	}

	var req TestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	testimonial, err := h.store.Testimonials.Update(r.Context(), id, req.Fields())
	if err != nil {
		writeStoreError(w, err, "testimonial")
		return
	}
	WriteSuccess(w, testimonial, nil)
}

// DeleteTestimonial handles DELETE /api/testimonials/{id} (admin).
func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid testimonial ID", nil)
		return
	}

	if err := h.store.Testimonials.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "testimonial")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Testimonial deleted"})
}
