// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"
	"testing"

	"folio/internal/model"
)

func TestPostRendersContentHTML(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/posts", token,
		`{"title":"Hello World","content":"# Heading\n\nSome **bold** text.","is_published":true}`)
	wantStatus(t, rec, http.StatusCreated)

	// Single reads carry the rendered body; lists stay lean.
	rec = env.request(t, http.MethodGet, "/api/posts/hello-world", "", "")
	wantStatus(t, rec, http.StatusOK)

	var post PostResponse
	decodeData(t, rec, &post)
	if !strings.Contains(post.ContentHTML, "<strong>bold</strong>") {
		t.Errorf("content_html = %q, want rendered markdown", post.ContentHTML)
	}

	rec = env.request(t, http.MethodGet, "/api/posts", "", "")
	wantStatus(t, rec, http.StatusOK)
	if strings.Contains(rec.Body.String(), "content_html") {
		t.Error("list response carries content_html")
	}
}

func TestPostViewCounting(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/posts", token,
		`{"title":"Counted","is_published":true}`)
	wantStatus(t, rec, http.StatusCreated)

	// Two public reads, one authenticated read.
	for i := 0; i < 2; i++ {
		rec = env.request(t, http.MethodGet, "/api/posts/counted", "", "")
		wantStatus(t, rec, http.StatusOK)
	}
	rec = env.request(t, http.MethodGet, "/api/posts/counted", token, "")
	wantStatus(t, rec, http.StatusOK)

	// Only the public reads counted. The response reflects the read that
	// just happened, so the second public read already reported 2.
	var post PostResponse
	decodeData(t, rec, &post)
	if post.Views != 2 {
		t.Errorf("views = %d, want 2", post.Views)
	}
}

func TestPostPublishGating(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/posts", token,
		`{"title":"Draft Notes","is_published":false}`)
	wantStatus(t, rec, http.StatusCreated)

	rec = env.request(t, http.MethodGet, "/api/posts/draft-notes", "", "")
	wantStatus(t, rec, http.StatusNotFound)
	rec = env.request(t, http.MethodGet, "/api/posts/draft-notes", token, "")
	wantStatus(t, rec, http.StatusOK)

	rec = env.request(t, http.MethodGet, "/api/posts", "", "")
	wantStatus(t, rec, http.StatusOK)
	var public []model.Post
	decodeData(t, rec, &public)
	if len(public) != 0 {
		t.Errorf("public list = %d posts, want 0", len(public))
	}
}

func TestPostTagsRoundTrip(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.request(t, http.MethodPost, "/api/posts", token,
		`{"title":"Tagged","tags":["go","sqlite"]}`)
	wantStatus(t, rec, http.StatusCreated)

	var post model.Post
	decodeData(t, rec, &post)
	if len(post.Tags) != 2 || post.Tags[0] != "go" {
		t.Errorf("tags = %v, want [go sqlite]", post.Tags)
	}
}
