// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer is the sanitization policy applied to all rendered HTML.
// UGCPolicy allows safe formatting tags while stripping scripts, event
// handlers, and other dangerous elements.
var htmlSanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts markdown content to sanitized HTML.
func RenderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// SanitizeHTML strips unsafe markup from caller-supplied HTML.
func SanitizeHTML(s string) string {
	return htmlSanitizer.Sanitize(s)
}
