package ingest

import (
	"strings"

	"recruiting-review/internal/storage"
)

// excludedDomain is stripped from display URLs; the reviewer UI links papers
// from a separate surface.
const excludedDomain = "arxiv.org"

// FilterURLs removes URLs containing the excluded domain, preserving order.
func FilterURLs(urls []string) []string {
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.Contains(u, excludedDomain) {
			continue
		}
		filtered = append(filtered, u)
	}
	return filtered
}

// FlattenExperience flattens an experience list into searchable text.
func FlattenExperience(entries []storage.ExperienceEntry) string {
	var parts []string
	for _, e := range entries {
		if s := joinFields(e.Title, e.Work); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// FlattenEducation flattens an education list into searchable text.
func FlattenEducation(entries []storage.EducationEntry) string {
	var parts []string
	for _, e := range entries {
		if s := joinFields(e.Degree, e.Major, e.School); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// joinFields joins the non-empty fields with single spaces.
func joinFields(fields ...string) string {
	present := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			present = append(present, f)
		}
	}
	return strings.Join(present, " ")
}
