package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-review/internal/storage"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestAPI(t *testing.T) (*storage.Store, string, http.Handler) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewStore(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	applicantsDir := filepath.Join(dir, "applicants")
	require.NoError(t, os.MkdirAll(applicantsDir, 0o755))

	return store, applicantsDir, NewRouter(NewAPI(store, applicantsDir))
}

func doJSON(t *testing.T, router http.Handler, method, path string, body io.Reader) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func seed(t *testing.T, store *storage.Store, candidates ...*storage.Candidate) {
	t.Helper()
	require.NoError(t, store.InsertCandidates(context.Background(), candidates))
}

func TestListCandidatesHandler(t *testing.T) {
	store, _, router := newTestAPI(t)
	seed(t, store,
		&storage.Candidate{FolderName: "a", FullName: "Alice Jones", Notes: "good"},
		&storage.Candidate{FolderName: "b", FullName: "Bob Brown"},
	)

	rec, env := doJSON(t, router, http.MethodGet, "/api/candidates", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)
	assert.Equal(t, "Retrieved 2 candidates", env.Message)

	var data struct {
		Candidates []storage.CandidateSummary `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Candidates, 2)
	assert.Equal(t, "Alice Jones", data.Candidates[0].FullName)
	assert.True(t, data.Candidates[0].HasNotes)
}

func TestGetCandidateHandler_NotFound(t *testing.T) {
	_, _, router := newTestAPI(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/candidates/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "Candidate not found", env.Message)
}

func TestGetCandidateHandler_MarksViewedOnce(t *testing.T) {
	store, _, router := newTestAPI(t)
	seed(t, store, &storage.Candidate{FolderName: "a", FullName: "Alice Jones"})

	rec, env := doJSON(t, router, http.MethodGet, "/api/candidates/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)

	var first storage.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.True(t, first.Viewed)
	require.NotNil(t, first.ViewedAt)

	// Second retrieval leaves viewed_at unchanged.
	time.Sleep(10 * time.Millisecond)
	_, env = doJSON(t, router, http.MethodGet, "/api/candidates/1", nil)
	var second storage.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &second))
	require.NotNil(t, second.ViewedAt)
	assert.Equal(t, *first.ViewedAt, *second.ViewedAt)
}

func TestUpdateCandidateHandler(t *testing.T) {
	store, _, router := newTestAPI(t)
	seed(t, store, &storage.Candidate{FolderName: "a", FullName: "Alice Jones"})

	body := bytes.NewBufferString(`{"starred": true, "notes": "promising"}`)
	rec, env := doJSON(t, router, http.MethodPatch, "/api/candidates/1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)
	assert.Equal(t, "Candidate updated", env.Message)

	var c storage.Candidate
	require.NoError(t, json.Unmarshal(env.Data, &c))
	assert.True(t, c.Starred)
	assert.Equal(t, "promising", c.Notes)
	assert.False(t, c.Viewed)
}

func TestUpdateCandidateHandler_InvalidJSON(t *testing.T) {
	store, _, router := newTestAPI(t)
	seed(t, store, &storage.Candidate{FolderName: "a", FullName: "Alice Jones"})

	rec, env := doJSON(t, router, http.MethodPatch, "/api/candidates/1", bytes.NewBufferString("{broken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
}

func TestUpdateCandidateHandler_NotFound(t *testing.T) {
	_, _, router := newTestAPI(t)

	rec, env := doJSON(t, router, http.MethodPatch, "/api/candidates/7", bytes.NewBufferString(`{"starred": true}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Status)
}

func TestResumeHandler(t *testing.T) {
	store, applicantsDir, router := newTestAPI(t)
	seed(t, store, &storage.Candidate{FolderName: "jane-doe", FullName: "Jane Doe"})

	// Candidate exists but no PDF on disk.
	rec, env := doJSON(t, router, http.MethodGet, "/api/candidates/1/resume", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resume not found", env.Message)

	// With the file present the bytes are streamed inline.
	folder := filepath.Join(applicantsDir, "jane-doe")
	require.NoError(t, os.MkdirAll(folder, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(folder, "cv.pdf"), []byte("%PDF-1.4 fake"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/1/resume", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	assert.Equal(t, "inline", rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 fake", rr.Body.String())
}

func TestResumeHandler_UnknownCandidate(t *testing.T) {
	_, _, router := newTestAPI(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/candidates/9/resume", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Candidate not found", env.Message)
}

func TestSearchHandler_RequiresQuery(t *testing.T) {
	_, _, router := newTestAPI(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/search", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
}

func TestSearchHandler_WholeWordOnly(t *testing.T) {
	store, _, router := newTestAPI(t)
	seed(t, store, &storage.Candidate{
		FolderName:     "alice-jones",
		FullName:       "Alice Jones",
		ExperienceText: "Engineer Meta",
	})

	type searchData struct {
		Candidates []searchResult `json:"candidates"`
		Query      string         `json:"query"`
	}

	// Substring hit, whole-word miss: refined away.
	rec, env := doJSON(t, router, http.MethodGet, "/api/search?q=eta", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var data searchData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Empty(t, data.Candidates)
	assert.Equal(t, "eta", data.Query)

	// Whole word, case-insensitive.
	_, env = doJSON(t, router, http.MethodGet, "/api/search?q=meta", nil)
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Candidates, 1)
	assert.Equal(t, "Alice Jones", data.Candidates[0].FullName)
	assert.Equal(t, "Engineer Meta", data.Candidates[0].ExperienceText)
}

func TestStatsHandler(t *testing.T) {
	store, _, router := newTestAPI(t)
	seed(t, store,
		&storage.Candidate{FolderName: "a", FullName: "Alice", Starred: true, Viewed: true},
		&storage.Candidate{FolderName: "b", FullName: "Bob"},
		&storage.Candidate{FolderName: "c", FullName: "Carol"},
	)

	rec, env := doJSON(t, router, http.MethodGet, "/api/stats", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)

	var stats storage.Stats
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Viewed)
	assert.Equal(t, 2, stats.Unviewed)
	assert.Equal(t, 1, stats.Starred)
}

func TestHealthEndpoint(t *testing.T) {
	_, _, router := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	_, _, router := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/candidates", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
