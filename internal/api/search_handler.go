package api

import (
	"fmt"
	"net/http"

	"recruiting-review/internal/storage"
)

// searchResult is the projection returned for search hits: the summary fields
// plus the flattened text the match most likely came from.
type searchResult struct {
	ID             int64  `json:"id"`
	FolderName     string `json:"folder_name"`
	FullName       string `json:"full_name"`
	Title          string `json:"title,omitempty"`
	ExperienceText string `json:"experience_text,omitempty"`
	EducationText  string `json:"education_text,omitempty"`
	Starred        bool   `json:"starred"`
	Viewed         bool   `json:"viewed"`
}

// SearchHandler searches candidates by whole-word match
// @Summary Search candidates
// @Description Search candidates by name, title, experience, education, or CV text (whole word match)
// @Tags search
// @Produce json
// @Param q query string true "Search query" minLength(1)
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 500 {object} api.Response
// @Router /search [get]
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "query parameter 'q' is required")
		return
	}

	// Coarse substring pass in the store, then whole-word refinement.
	candidates, err := a.store.SearchCandidates(r.Context(), q)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "search error")
		return
	}
	refined := storage.RefineWholeWord(q, candidates)

	results := make([]searchResult, 0, len(refined))
	for _, c := range refined {
		results = append(results, searchResult{
			ID:             c.ID,
			FolderName:     c.FolderName,
			FullName:       c.FullName,
			Title:          c.Title,
			ExperienceText: c.ExperienceText,
			EducationText:  c.EducationText,
			Starred:        c.Starred,
			Viewed:         c.Viewed,
		})
	}

	respondOK(w, fmt.Sprintf("Found %d results for '%s'", len(results), q),
		map[string]interface{}{"candidates": results, "query": q})
}

// StatsHandler returns aggregate review statistics
// @Summary Get stats
// @Description Aggregate counts: total, viewed, unviewed, starred, with notes
// @Tags stats
// @Produce json
// @Success 200 {object} api.Response
// @Failure 500 {object} api.Response
// @Router /stats [get]
func (a *API) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := a.store.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	respondOK(w, "Stats retrieved", stats)
}
