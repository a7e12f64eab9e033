// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/mail"
	"strings"

	"folio/internal/store"
)

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// validate returns field errors for missing or malformed values.
func (req ContactRequest) validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errs["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(req.Email); err != nil {
		errs["email"] = "Email is not a valid address"
	}
	if strings.TrimSpace(req.Message) == "" {
		errs["message"] = "Message is required"
	}
	return errs
}

// SubmitContact handles POST /api/contact. Public, rate limited per IP.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		WriteValidationError(w, errs)
		return
	}

	var f store.Fields
	f.Set("name", strings.TrimSpace(req.Name))
	f.Set("email", strings.TrimSpace(req.Email))
	f.Set("subject", strings.TrimSpace(req.Subject))
	f.Set("message", req.Message)
	f.Set("is_read", false)

	contact, err := h.store.Contacts.Create(r.Context(), f)
	if err != nil {
		writeStoreError(w, err, "contact")
		return
	}
	WriteCreated(w, contact)
}

// ListContacts handles GET /api/contacts (admin). The meta block carries
// the unread count across the whole mailbox, not just the current page.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	skip, limit := parseListQuery(r)

	filters := map[string]any{}
	boolFilter(r, "read", "is_read", filters)

	contacts, total, err := h.store.Contacts.List(r.Context(), store.ListParams{
		Filters: filters,
		Offset:  skip,
		Limit:   limit,
	})
	if err != nil {
		WriteInternalError(w, "Failed to list contacts")
		return
	}

	unread, err := h.store.Contacts.Count(r.Context(), map[string]any{"is_read": false})
	if err != nil {
		WriteInternalError(w, "Failed to count unread contacts")
		return
	}

	WriteSuccess(w, contacts, &Meta{Total: total, Skip: skip, Limit: limit, Unread: unread})
}

// GetContact handles GET /api/contacts/{id} (admin).
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid contact ID", nil)
		return
	}

	contact, err := h.store.Contacts.Get(r.Context(), id, false)
	if err != nil {
		writeStoreError(w, err, "contact")
		return
	}
	WriteSuccess(w, contact, nil)
}

// UpdateContactRequest toggles triage state on a submission.
type UpdateContactRequest struct {
	IsRead *bool `json:"is_read,omitempty"`
}

// UpdateContact handles PUT /api/contacts/{id} (admin). Only the read
// flag is mutable; submissions themselves are immutable.
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid contact ID", nil)
		return
	}

	var req UpdateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var f store.Fields
	setBool(&f, "is_read", req.IsRead)

	contact, err := h.store.Contacts.Update(r.Context(), id, f)
	if err != nil {
		writeStoreError(w, err, "contact")
		return
	}
	WriteSuccess(w, contact, nil)
}

// DeleteContact handles DELETE /api/contacts/{id} (admin).
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		WriteBadRequest(w, "Invalid contact ID", nil)
		return
	}

	if err := h.store.Contacts.Delete(r.Context(), id); err != nil {
		writeStoreError(w, err, "contact")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Contact deleted"})
}
