// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folio/internal/service"
)

// uploadRequest builds a multipart POST with a single "file" part.
func (e *testEnv) uploadRequest(t *testing.T, path, token, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 240, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestUpload(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.uploadRequest(t, "/api/upload", token, "resume.svg", []byte("<svg></svg>"))
	wantStatus(t, rec, http.StatusCreated)

	var result service.UploadResult
	decodeData(t, rec, &result)
	if !strings.HasPrefix(result.URL, "/uploads/") {
		t.Errorf("URL = %q, want /uploads/ prefix", result.URL)
	}
	if result.OriginalFilename != "resume.svg" {
		t.Errorf("original_filename = %q", result.OriginalFilename)
	}
}

func TestUploadRequiresAdmin(t *testing.T) {
	env := testSetup(t)

	rec := env.uploadRequest(t, "/api/upload", "", "file.png", testPNG(t, 10, 10))
	wantStatus(t, rec, http.StatusUnauthorized)
}

func TestUploadRejectsDisallowedType(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.uploadRequest(t, "/api/upload", token, "run.sh", []byte("#!/bin/sh"))
	wantStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestUploadMissingFilePart(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("note", "no file here"); err != nil {
		t.Fatalf("writing field: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	wantStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestUploadImage(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.uploadRequest(t, "/api/upload/image", token, "photo.png", testPNG(t, 640, 480))
	wantStatus(t, rec, http.StatusCreated)

	var result service.UploadResult
	decodeData(t, rec, &result)
	if result.Width != 640 || result.Height != 480 {
		t.Errorf("dimensions = %dx%d, want 640x480", result.Width, result.Height)
	}
	if !strings.Contains(result.URL, "/images/") {
		t.Errorf("URL = %q, want images subtree", result.URL)
	}
	if result.ThumbnailURL == "" {
		t.Error("missing thumbnail for a large image")
	}
}

func TestUploadImageRejectsNonImage(t *testing.T) {
	env := testSetup(t)
	token := env.createAdmin(t, "admin@example.com", "password1234")

	rec := env.uploadRequest(t, "/api/upload/image", token, "vector.svg", []byte("<svg></svg>"))
	wantStatus(t, rec, http.StatusUnprocessableEntity)
}
