// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIPRateLimit(t *testing.T) {
	handler := IPRateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2 passes, the third request is throttled.
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("request 1: status = %d, want 200", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("request 2: status = %d, want 200", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("request 3: status = %d, want 429", code)
	}

	// Another client has its own budget.
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", code)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5000"
	if got := getClientIP(req); got != "192.0.2.7" {
		t.Errorf("getClientIP = %q, want 192.0.2.7", got)
	}

	req.RemoteAddr = "no-port-here"
	if got := getClientIP(req); got != "no-port-here" {
		t.Errorf("getClientIP = %q, want raw address", got)
	}
}
