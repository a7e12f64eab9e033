// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"folio/internal/middleware"
	"folio/internal/model"
	"folio/internal/service"
	"folio/internal/store"
)

// PostRequest is the create/update payload for blog posts.
type PostRequest struct {
	Title       *string  `json:"title,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	Excerpt     *string  `json:"excerpt,omitempty"`
	Content     *string  `json:"content,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ReadTime    *int64   `json:"read_time,omitempty"`
	IsPublished *bool    `json:"is_published,omitempty"`
}

// Fields converts the supplied values into store fields.
func (req PostRequest) Fields() store.Fields {
	var f store.Fields
	setString(&f, "title", req.Title)
	setString(&f, "slug", req.Slug)
	setString(&f, "excerpt", req.Excerpt)
	setString(&f, "content", req.Content)
	setString(&f, "image", req.Image)
	setString(&f, "category", req.Category)
	if req.Tags != nil {
		f.Set("tags", model.StringList(req.Tags))
	}
	setInt64(&f, "read_time", req.ReadTime)
	setBool(&f, "is_published", req.IsPublished)
	return f
}

// PostResponse is a post plus its markdown content rendered to HTML.
type PostResponse struct {
	model.Post
	ContentHTML string `json:"content_html,omitempty"`
}

// postToResponse renders the post body to sanitized HTML. Render failures
// leave content_html empty rather than failing the request.
func postToResponse(p model.Post) PostResponse {
	resp := PostResponse{Post: p}
	if html, err := service.RenderMarkdown(p.Content); err == nil {
		resp.ContentHTML = html
	}
	return resp
}

// ListPosts handles GET /api/posts. Unauthenticated callers see published
// posts only.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseListQuery(r)

	filters := map[string]any{}
	stringFilter(r, "category", "category", filters)
	if middleware.IsAuthenticated(r) {
		boolFilter(r, "published", "is_published", filters)
	}

	posts, total, err := h.store.Posts.List(r.Context(), store.ListParams{
		Filters:       filters,
		Offset:        skip,
		Limit:         limit,
		PublishedOnly: !middleware.IsAuthenticated(r),
	})
	if err != nil {
		WriteInternalError(w, "Failed to list posts")
		return
	}

	WriteSuccess(w, posts, &Meta{Total: total, Skip: skip, Limit: limit})
}

// GetPost handles GET /api/posts/{idOrSlug}. Public reads count as a view;
// the increment is a single atomic UPDATE so concurrent reads never lose
// counts.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	public := !middleware.IsAuthenticated(r)

	key := chi.URLParam(r, "idOrSlug")
	var (
		post model.Post
		err  error
	)
	if id, perr := strconv.ParseInt(key, 10, 64); perr == nil {
		post, err = h.store.Posts.Get(r.Context(), id, public)
	} else {
		post, err = h.store.Posts.GetBySlug(r.Context(), key, public)
	}
	if err != nil {
		writeStoreError(w, err, "post")
		return
	}

	if public {
		if err := h.store.Posts.IncrementView(r.Context(), post.ID); err == nil {
			post.Views++
		}
	}

	WriteSuccess(w, postToResponse(post), nil)
}

// CreatePost handles POST /api/posts.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == nil || *req.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title is required"})
		return
	}

	post, err := h.store.Posts.Create(r.Context(), req.Fields())
	if err != nil {
		writeStoreError(w, err, "post")
		return
	}
	WriteCreated(w, post)
}

// UpdatePost handles PUT /api/posts/{id}.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid post ID", nil)
		return
	}

	var req PostRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title != nil && *req.Title == "" {
		WriteValidationError(w, map[string]string{"title": "Title cannot be empty"})
		return
	}

	post, err := h.store.Posts.Update(r.Context(), id, req.Fields())
	if err != nil {
		writeStoreError(w, err, "post")
		return
	}
	WriteSuccess(w, post, nil)
}

// DeletePost handles DELETE /api/posts/{id}.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid post ID", nil)
		return
	}

	if err := h.store.Posts.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "post")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}
