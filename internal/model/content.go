// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Profile is the site owner's bio card. At most one profile row exists.
type Profile struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Bio         string     `json:"bio"`
	Avatar      string     `json:"avatar"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Location    string     `json:"location"`
	ResumeURL   string     `json:"resume_url"`
	SocialLinks StringMap  `json:"social_links"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Project is a portfolio work item, addressable by slug.
type Project struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	Content      string     `json:"content"`
	Image        string     `json:"image"`
	Category     string     `json:"category"`
	Technologies StringList `json:"technologies"`
	Features     StringList `json:"features"`
	GithubURL    string     `json:"github_url"`
	LiveURL      string     `json:"live_url"`
	Year         string     `json:"year"`
	IsFeatured   bool       `json:"is_featured"`
	IsPublished  bool       `json:"is_published"`
	Position     int64      `json:"order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Post is a blog entry, addressable by slug. Views counts public reads.
type Post struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	Image       string     `json:"image"`
	Category    string     `json:"category"`
	Tags        StringList `json:"tags"`
	ReadTime    int64      `json:"read_time"`
	IsPublished bool       `json:"is_published"`
	Views       int64      `json:"views"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Skill is a single proficiency entry. IsActive gates public listing.
type Skill struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	Level       string     `json:"level"` // Beginner, Intermediate, Advanced, Expert
	Proficiency int64      `json:"proficiency"`
	IsActive    bool       `json:"is_active"`
	Position    int64      `json:"order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Experience is a work, education, or certification timeline entry.
type Experience struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Organization string     `json:"organization"`
	Type         string     `json:"type"` // Work, Education, Certification
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	Skills       StringList `json:"skills"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"` // empty means current
	IsCurrent    bool       `json:"is_current"`
	Position     int64      `json:"order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Contact is a contact-form submission. IsRead tracks admin triage state.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Service is an offered-services card.
type Service struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Subtitle    string     `json:"subtitle"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Testimonial is a quote from a client or colleague.
type Testimonial struct {
	ID        int64      `json:"id"`
	Author    string     `json:"author"`
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Featured  bool       `json:"featured"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
