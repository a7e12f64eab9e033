// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strings"
)

// Upload handles POST /api/upload (admin). Accepts one multipart part
// named "file" and stores it under the date-partitioned upload tree.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.media.MaxSize()+1<<20)
	if err := r.ParseMultipartForm(h.media.MaxSize()); err != nil {
		WriteBadRequest(w, "Invalid multipart request", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteValidationError(w, map[string]string{"file": "File is required"})
		return
	}
	defer file.Close()

	result, err := h.media.SaveFile(file, header)
	if err != nil {
		writeUploadError(w, err)
		return
	}
	WriteCreated(w, result)
}

// UploadImage handles POST /api/upload/image (admin). Like Upload, but
// restricted to raster images, which are re-encoded and get a thumbnail
// variant.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.media.MaxSize()+1<<20)
	if err := r.ParseMultipartForm(h.media.MaxSize()); err != nil {
		WriteBadRequest(w, "Invalid multipart request", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteValidationError(w, map[string]string{"file": "File is required"})
		return
	}
	defer file.Close()

	result, err := h.media.SaveImage(file, header)
	if err != nil {
		writeUploadError(w, err)
		return
	}
	WriteCreated(w, result)
}

// writeUploadError distinguishes caller mistakes (bad type, oversize) from
// storage failures.
func writeUploadError(w http.ResponseWriter, err error) {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "not allowed"), strings.Contains(msg, "not an image"):
		WriteValidationError(w, map[string]string{"file": msg})
	case strings.Contains(msg, "exceeds maximum"):
		WriteError(w, http.StatusRequestEntityTooLarge, "file_too_large", msg, nil)
	default:
		WriteInternalError(w, "Failed to store upload")
	}
}
