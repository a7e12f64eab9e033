// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"github.com/go-chi/chi/v5"

	"folio/internal/middleware"
)

// Rate limits for the two anonymous write endpoints.
const (
	loginRPS     = 1.0
	loginBurst   = 5
	contactRPS   = 0.5
	contactBurst = 3
)

// Routes assembles the API router. Public reads run under OptionalAuth so
// authenticated callers see unpublished records; every mutation except the
// contact form sits behind the admin chain.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/status", h.Status)

	r.Group(func(r chi.Router) {
		r.Use(middleware.IPRateLimit(loginRPS, loginBurst))
		r.Post("/auth/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.tokens))
		r.Get("/auth/me", h.Me)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.IPRateLimit(contactRPS, contactBurst))
		r.Post("/contact", h.SubmitContact)
	})

	// Public reads
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(h.tokens))

		r.Get("/profile", h.GetProfile)

		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{idOrSlug}", h.GetProject)

		r.Get("/posts", h.ListPosts)
		r.Get("/posts/{idOrSlug}", h.GetPost)

		r.Get("/skills", h.ListSkills)
		r.Get("/skills/{id}", h.GetSkill)

		r.Get("/experiences", h.ListExperiences)
		r.Get("/experiences/{id}", h.GetExperience)

		r.Get("/services", h.ListServices)
		r.Get("/services/{id}", h.GetService)

		r.Get("/testimonials", h.ListTestimonials)
		r.Get("/testimonials/{id}", h.GetTestimonial)
	})

	// Admin mutations
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.tokens))
		r.Use(middleware.RequireAdmin())

		r.Post("/profile", h.CreateProfile)
		r.Put("/profile", h.UpsertProfile)

		r.Post("/projects", h.CreateProject)
		r.Put("/projects/{id}", h.UpdateProject)
		r.Delete("/projects/{id}", h.DeleteProject)

		r.Post("/posts", h.CreatePost)
		r.Put("/posts/{id}", h.UpdatePost)
		r.Delete("/posts/{id}", h.DeletePost)

		r.Post("/skills", h.CreateSkill)
		r.Put("/skills/{id}", h.UpdateSkill)
		r.Delete("/skills/{id}", h.DeleteSkill)

		r.Post("/experiences", h.CreateExperience)
		r.Put("/experiences/{id}", h.UpdateExperience)
		r.Delete("/experiences/{id}", h.DeleteExperience)

		r.Get("/contacts", h.ListContacts)
		r.Get("/contacts/{id}", h.GetContact)
		r.Put("/contacts/{id}", h.UpdateContact)
		r.Delete("/contacts/{id}", h.DeleteContact)

		r.Post("/services", h.CreateService)
		r.Put("/services/{id}", h.UpdateService)
		r.Delete("/services/{id}", h.DeleteService)

		r.Post("/testimonials", h.CreateTestimonial)
		r.Put("/testimonials/{id}", h.UpdateTestimonial)
		r.Delete("/testimonials/{id}", h.DeleteTestimonial)

		r.Post("/upload", h.Upload)
		r.Post("/upload/image", h.UploadImage)
	})

	return r
}
