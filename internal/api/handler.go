package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"recruiting-review/internal/storage"
)

type API struct {
	store         *storage.Store
	applicantsDir string
}

func NewAPI(store *storage.Store, applicantsDir string) *API {
	return &API{
		store:         store,
		applicantsDir: applicantsDir,
	}
}

func candidateID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// ListCandidatesHandler returns the summary projection of all candidates
// @Summary List candidates
// @Description Get all candidates (summary view), ordered by full name
// @Tags candidates
// @Produce json
// @Success 200 {object} api.Response
// @Failure 500 {object} api.Response
// @Router /candidates [get]
func (a *API) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	candidates, err := a.store.ListCandidates(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}

	respondOK(w, "Retrieved "+strconv.Itoa(len(candidates))+" candidates",
		map[string]interface{}{"candidates": candidates})
}

// GetCandidateHandler returns the full candidate and marks it viewed
// @Summary Get candidate
// @Description Get full candidate data; the first retrieval marks the candidate as viewed
// @Tags candidates
// @Produce json
// @Param id path int true "Candidate ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /candidates/{id} [get]
func (a *API) GetCandidateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	c, err := a.store.GetCandidate(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load candidate")
		return
	}

	// First retrieval flips viewed and stamps viewed_at.
	if !c.Viewed {
		if err := a.store.MarkViewed(r.Context(), id); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to mark candidate viewed")
			return
		}
		if c, err = a.store.GetCandidate(r.Context(), id); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to load candidate")
			return
		}
	}

	respondOK(w, "Candidate retrieved", c)
}

// UpdateCandidateHandler applies a partial update of the reviewer fields
// @Summary Update candidate
// @Description Update candidate review fields (starred, notes, viewed)
// @Tags candidates
// @Accept json
// @Produce json
// @Param id path int true "Candidate ID"
// @Param update body storage.CandidateUpdate true "Fields to update"
// @Success 200 {object} api.Response
// @Failure 400 {object} api.Response
// @Failure 404 {object} api.Response
// @Router /candidates/{id} [patch]
func (a *API) UpdateCandidateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	var upd storage.CandidateUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	c, err := a.store.UpdateCandidate(r.Context(), id, &upd)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update candidate")
		return
	}

	respondOK(w, "Candidate updated", c)
}

// ResumeHandler streams the candidate's stored CV document
// @Summary Get resume
// @Description Serve the candidate's resume PDF inline
// @Tags candidates
// @Produce application/pdf
// @Param id path int true "Candidate ID"
// @Success 200 {file} file
// @Failure 404 {object} api.Response
// @Router /candidates/{id}/resume [get]
func (a *API) ResumeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := candidateID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid candidate id")
		return
	}

	c, err := a.store.GetCandidate(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "Candidate not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load candidate")
		return
	}

	pdfPath := filepath.Join(a.applicantsDir, c.FolderName, "cv.pdf")
	if _, err := os.Stat(pdfPath); err != nil {
		respondError(w, http.StatusNotFound, "Resume not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline")
	http.ServeFile(w, r, pdfPath)
}
