// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
	"time"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FOLIO_SECRET_KEY", "Xk9#mP2$vL8@nQ5&wR3^tY7*zB4!cD6%")
}

func TestLoadDefaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %q", cfg.ServerAddr())
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
	if cfg.TokenTTL != 168*time.Hour {
		t.Errorf("TokenTTL = %s, want 168h", cfg.TokenTTL)
	}
	if cfg.MaxUploadSize != 5242880 {
		t.Errorf("MaxUploadSize = %d", cfg.MaxUploadSize)
	}
}

func TestLoadEmptySecret(t *testing.T) {
	t.Setenv("FOLIO_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an empty secret key")
	}
}

func TestLoadShortSecret(t *testing.T) {
	t.Setenv("FOLIO_SECRET_KEY", "too-short")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted a short secret key")
	}
	if !strings.Contains(err.Error(), "at least 32 bytes") {
		t.Errorf("error = %v, want length complaint", err)
	}
}

func TestLoadKnownWeakSecret(t *testing.T) {
	t.Setenv("FOLIO_SECRET_KEY", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted a known default secret")
	}
}

func TestLoadCORSOrigins(t *testing.T) {
	validEnv(t)
	t.Setenv("FOLIO_CORS_ORIGINS", "https://example.com,https://www.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestHasMinimumEntropy(t *testing.T) {
	tests := []struct {
		secret string
		want   bool
	}{
		{"Xk9#mP2$vL8@nQ5&wR3^tY7*zB4!cD6%", true},
		{"aB3aB3aB3aB3aB3aB3aB3aB3aB3aB3aB", true},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"abcdefgh12345678abcdefgh12345678", false},
	}
	for _, tt := range tests {
		if got := hasMinimumEntropy(tt.secret); got != tt.want {
			t.Errorf("hasMinimumEntropy(%q) = %v, want %v", tt.secret, got, tt.want)
		}
	}
}
