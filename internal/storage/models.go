package storage

import "time"

// Candidate is one applicant folder loaded into the store.
// The display_urls/experience/education lists are persisted as JSON text
// columns; the struct carries the structured form for the API.
type Candidate struct {
	ID           int64             `json:"id"`
	FolderName   string            `json:"folder_name"`
	FullName     string            `json:"full_name"`
	Title        string            `json:"title,omitempty"`
	PrimaryEmail string            `json:"primary_email,omitempty"`
	LinkedinURL  string            `json:"linkedin_url,omitempty"`
	DisplayURLs  []string          `json:"display_urls"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`

	// Flattened text for search, computed once at ingest.
	ExperienceText string `json:"experience_text,omitempty"`
	EducationText  string `json:"education_text,omitempty"`
	CVText         string `json:"cv_text,omitempty"`

	// Reviewer state
	Starred  bool       `json:"starred"`
	Notes    string     `json:"notes,omitempty"`
	Viewed   bool       `json:"viewed"`
	ViewedAt *time.Time `json:"viewed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExperienceEntry struct {
	Title string `json:"title,omitempty"`
	Work  string `json:"work,omitempty"`
	Time  string `json:"time,omitempty"`
}

type EducationEntry struct {
	Degree string `json:"degree,omitempty"`
	Major  string `json:"major,omitempty"`
	School string `json:"school,omitempty"`
	Time   string `json:"time,omitempty"`
}

// CandidateSummary is the reduced projection used by the list view.
type CandidateSummary struct {
	ID         int64  `json:"id"`
	FolderName string `json:"folder_name"`
	FullName   string `json:"full_name"`
	Title      string `json:"title,omitempty"`
	Starred    bool   `json:"starred"`
	Viewed     bool   `json:"viewed"`
	HasNotes   bool   `json:"has_notes"`
}

// CandidateUpdate carries a partial update of the reviewer fields.
// Nil means "leave unchanged".
type CandidateUpdate struct {
	Starred *bool   `json:"starred"`
	Notes   *string `json:"notes"`
	Viewed  *bool   `json:"viewed"`
}

type Stats struct {
	Total     int `json:"total"`
	Viewed    int `json:"viewed"`
	Unviewed  int `json:"unviewed"`
	Starred   int `json:"starred"`
	WithNotes int `json:"with_notes"`
}
