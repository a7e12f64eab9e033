// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio/internal/middleware"
	"folio/internal/model"
	"folio/internal/store"
)

// ProjectRequest is the create/update payload for projects. Pointer
// fields distinguish "absent" from "set to zero value".
type ProjectRequest struct {
	Title        *string  `json:"title,omitempty"`
	Slug         *string  `json:"slug,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Content      *string  `json:"content,omitempty"`
	Image        *string  `json:"image,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Features     []string `json:"features,omitempty"`
	GithubURL    *string  `json:"github_url,omitempty"`
	LiveURL      *string  `json:"live_url,omitempty"`
	Year         *string  `json:"year,omitempty"`
	IsFeatured   *bool    `json:"is_featured,omitempty"`
	IsPublished  *bool    `json:"is_published,omitempty"`
	Order        *int64   `json:"order,omitempty"`
}

// Fields converts the supplied values into store fields.
func (req ProjectRequest) Fields() store.Fields {
	var f store.Fields
	setString(&f, "title", req.Title)
	setString(&f, "slug", req.Slug)
	setString(&f, "description", req.Description)
	setString(&f, "content", req.Content)
	setString(&f, "image", req.Image)
	setString(&f, "category", req.Category)
	if req.Technologies != nil {
		f.Set("technologies", model.StringList(req.Technologies))
	}
	if req.Features != nil {
		f.Set("features", model.StringList(req.Features))
	}
	setString(&f, "github_url", req.GithubURL)
	setString(&f, "live_url", req.LiveURL)
	setString(&f, "year", req.Year)
	setBool(&f, "is_featured", req.IsFeatured)
	setBool(&f, "is_published", req.IsPublished)
	setInt64(&f, "position", req.Order)
	return f
}

// ListProjects handles GET /api/projects. Unauthenticated callers see
// published projects only.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseListQuery(r)

	filters := map[string]any{}
	stringFilter(r, "category", "category", filters)
	boolFilter(r, "featured", "is_featured", filters)
	if middleware.IsAuthenticated(r) {
		boolFilter(r, "published", "is_published", filters)
	}

	projects, total, err := h.store.Projects.List(r.Context(), store.ListParams{
		Filters:       filters,
		Offset:        skip,
		Limit:         limit,
		PublishedOnly: !middleware.IsAuthenticated(r),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list projects")
		return
	}

	WriteSuccess(w, projects, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetProject handles GET /api/projects/{idOrSlug}. Numeric path values
// address by ID, anything else by slug.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	publishedOnly := !middleware.IsAuthenticated(r)

	key := chi.URLParam(r, "idOrSlug")
	var (
		project model.Project
		err     error
	)
	if id, perr := strconv.ParseInt(key, 10, 64); perr == nil {
		project, err = h.store.Projects.Get(r.Context(), id, publishedOnly)
	} else {
		project, err = h.store.Projects.GetBySlug(r.Context(), key, publishedOnly)
	}
	if err != nil {
		writeStoreError(w, err, "project")
		return
	}

	WriteSuccess(w, project, nil)
}

// CreateProject handles POST /api/projects.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == nil || *req.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title is required"})
		return
	}

	project, err := h.store.Projects.Create(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "project")
		return
	}
	WriteCreated(w, project)
}

// UpdateProject handles PUT /api/projects/{id}. Only supplied fields
// change; the rest keep their stored values.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid project ID", nil)
		return
	}

	var req ProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title != nil && *req.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title cannot be empty"})
		return
	}

	project, err := h.store.Projects.Update(r.Context(), id, req.Fields())
	if err != nil {
		writeStoreError(w, err, "project")
		return
	}
	WriteSuccess(w, project, nil)
}

// DeleteProject handles DELETE /api/projects/{id}.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid project ID", nil)
		return
	}

	if err := h.store.Projects.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "project")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Project deleted"})
}
