// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service contains application services that sit between the HTTP
// handlers and the store: media uploads and markdown rendering.
package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"folio/internal/imaging"
)

// DefaultUploadDir is used when no upload directory is configured.
const DefaultUploadDir = "./uploads"

// AllowedExtensions defines the file extensions that can be uploaded.
var AllowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// imageExtensions are the raster formats accepted by SaveImage.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// UploadResult describes a stored file.
type UploadResult struct {
	URL              string `json:"url"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	Size             int64  `json:"size"`
	ContentType      string `json:"content_type"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	Width            int    `json:"width,omitempty"`
	Height           int    `json:"height,omitempty"`
}

// MediaService stores uploaded files under a date-partitioned directory
// tree and serves them back by URL path.
type MediaService struct {
	uploadDir string
	maxSize   int64
}

// NewMediaService creates a media service rooted at uploadDir.
func NewMediaService(uploadDir string, maxSize int64) *MediaService {
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}
	return &MediaService{
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

// UploadDir returns the root directory files are stored under.
func (s *MediaService) UploadDir() string {
	return s.uploadDir
}

// MaxSize returns the configured upload size ceiling in bytes.
func (s *MediaService) MaxSize() int64 {
	return s.maxSize
}

// SaveFile validates and stores an uploaded file. Files land under
// <uploadDir>/YYYY/MM with a generated name so uploads never collide and
// never execute an attacker-chosen filename.
func (s *MediaService) SaveFile(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	ext, err := s.validate(header)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("file size exceeds maximum allowed (%d bytes)", s.maxSize)
	}

	now := time.Now().UTC()
	subdir := now.Format("2006/01")
	filename := generateFilename(now, ext)

	relPath, err := s.write(subdir, filename, data)
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		URL:              "/uploads/" + relPath,
		Filename:         filename,
		OriginalFilename: header.Filename,
		Size:             int64(len(data)),
		ContentType:      contentTypeForExt(ext),
	}, nil
}

// SaveImage validates, processes, and stores an uploaded raster image.
// The image is decoded, auto-oriented, and re-encoded (stripping EXIF),
// and a thumbnail variant is written next to it when the source is large
// enough to need one. Images land under <uploadDir>/images/YYYY/MM.
func (s *MediaService) SaveImage(file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	ext, err := s.validate(header)
	if err != nil {
		return nil, err
	}
	if !imageExtensions[ext] {
		return nil, fmt.Errorf("file type %s is not an image", ext)
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("file size exceeds maximum allowed (%d bytes)", s.maxSize)
	}

	processed, err := imaging.Process(data)
	if err != nil {
		return nil, fmt.Errorf("processing image: %w", err)
	}

	now := time.Now().UTC()
	subdir := filepath.Join("images", now.Format("2006/01"))
	filename := generateFilename(now, "."+processed.Format)

	relPath, err := s.write(subdir, filename, processed.Data)
	if err != nil {
		return nil, err
	}

	result := &UploadResult{
		URL:              "/uploads/" + relPath,
		Filename:         filename,
		OriginalFilename: header.Filename,
		Size:             int64(len(processed.Data)),
		ContentType:      contentTypeForExt("." + processed.Format),
		Width:            processed.Width,
		Height:           processed.Height,
	}

	thumb, err := imaging.Thumbnail(data)
	if err == nil && thumb != nil {
		thumbName := thumbnailName(filename, "."+thumb.Format)
		thumbPath, werr := s.write(subdir, thumbName, thumb.Data)
		if werr != nil {
			// Roll back the main file rather than leave a half upload
			_ = os.Remove(filepath.Join(s.uploadDir, filepath.FromSlash(relPath)))
			return nil, werr
		}
		result.ThumbnailURL = "/uploads/" + thumbPath
	}

	return result, nil
}

// validate checks the upload against size and extension limits and returns
// the normalized extension.
func (s *MediaService) validate(header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !AllowedExtensions[ext] {
		return "", fmt.Errorf("file type %s is not allowed", ext)
	}
	return ext, nil
}

// write stores data at <uploadDir>/<subdir>/<filename>, creating the
// directory as needed, and returns the slash-separated relative path.
func (s *MediaService) write(subdir, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.uploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subdir, filename)), nil
}

// generateFilename builds a collision-free name: <uuid-hex>_<timestamp><ext>.
func generateFilename(now time.Time, ext string) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s%s", id, now.Format("20060102150405"), ext)
}

// thumbnailName derives the variant name from the stored filename. The
// extension may differ from the original when re-encoding changed formats.
func thumbnailName(filename, ext string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + "_thumb" + ext
}

// contentTypeForExt maps an upload extension to its MIME type.
func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
