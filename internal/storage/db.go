package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type Store struct {
	db *sql.DB
}

func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS candidates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		folder_name TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		title TEXT,
		primary_email TEXT,
		linkedin_url TEXT,
		display_urls TEXT,
		experience TEXT,
		education TEXT,
		experience_text TEXT,
		education_text TEXT,
		cv_text TEXT,
		starred INTEGER NOT NULL DEFAULT 0,
		notes TEXT,
		viewed INTEGER NOT NULL DEFAULT 0,
		viewed_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_candidates_folder_name ON candidates(folder_name);
	CREATE INDEX IF NOT EXISTS idx_candidates_full_name ON candidates(full_name);
	`

	_, err := s.db.Exec(schema)
	return err
}

const candidateColumns = `id, folder_name, full_name, title, primary_email, linkedin_url,
	display_urls, experience, education, experience_text, education_text, cv_text,
	starred, notes, viewed, viewed_at, created_at, updated_at`

// InsertCandidates stages all candidates in a single transaction so one
// ingest pass commits atomically.
func (s *Store) InsertCandidates(ctx context.Context, candidates []*Candidate) error {
	if len(candidates) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO candidates (folder_name, full_name, title, primary_email, linkedin_url,
		display_urls, experience, education, experience_text, education_text, cv_text,
		starred, notes, viewed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC()
	for _, c := range candidates {
		c.CreatedAt = now
		c.UpdatedAt = now
		res, err := tx.ExecContext(ctx, query,
			c.FolderName,
			c.FullName,
			c.Title,
			c.PrimaryEmail,
			c.LinkedinURL,
			marshalList(c.DisplayURLs),
			marshalList(c.Experience),
			marshalList(c.Education),
			c.ExperienceText,
			c.EducationText,
			c.CVText,
			c.Starred,
			c.Notes,
			c.Viewed,
			c.CreatedAt,
			c.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert candidate %s: %w", c.FolderName, err)
		}
		if id, err := res.LastInsertId(); err == nil {
			c.ID = id
		}
	}

	return tx.Commit()
}

// HasFolder checks if a candidate with the given folder name already exists.
func (s *Store) HasFolder(ctx context.Context, folderName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE folder_name = ?)`
	err := s.db.QueryRowContext(ctx, query, folderName).Scan(&exists)
	return exists, err
}

// ListCandidates returns the summary projection for all candidates ordered by name.
func (s *Store) ListCandidates(ctx context.Context) ([]CandidateSummary, error) {
	query := `SELECT id, folder_name, full_name, title, starred, viewed, notes
		FROM candidates ORDER BY full_name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []CandidateSummary{}
	for rows.Next() {
		var cs CandidateSummary
		var title, notes sql.NullString
		if err := rows.Scan(&cs.ID, &cs.FolderName, &cs.FullName, &title, &cs.Starred, &cs.Viewed, &notes); err != nil {
			return nil, err
		}
		cs.Title = title.String
		cs.HasNotes = notes.String != ""
		summaries = append(summaries, cs)
	}
	return summaries, rows.Err()
}

// GetCandidate returns the full candidate row. Callers should check for
// sql.ErrNoRows to map missing candidates to a not-found outcome.
func (s *Store) GetCandidate(ctx context.Context, id int64) (*Candidate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id)
	return scanCandidate(row)
}

// MarkViewed flips a candidate to viewed and stamps viewed_at, but only on
// the first transition. Re-marking an already viewed candidate is a no-op.
func (s *Store) MarkViewed(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	query := `UPDATE candidates SET viewed = 1, viewed_at = ?, updated_at = ? WHERE id = ? AND viewed = 0`
	_, err := s.db.ExecContext(ctx, query, now, now, id)
	return err
}

// UpdateCandidate applies a partial update of the reviewer fields and returns
// the updated row. viewed_at is stamped only the first time viewed turns true
// and is never cleared.
func (s *Store) UpdateCandidate(ctx context.Context, id int64, upd *CandidateUpdate) (*Candidate, error) {
	c, err := s.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Starred != nil {
		c.Starred = *upd.Starred
	}
	if upd.Notes != nil {
		c.Notes = *upd.Notes
	}
	now := time.Now().UTC()
	if upd.Viewed != nil {
		c.Viewed = *upd.Viewed
		if c.Viewed && c.ViewedAt == nil {
			c.ViewedAt = &now
		}
	}
	c.UpdatedAt = now

	query := `UPDATE candidates SET starred = ?, notes = ?, viewed = ?, viewed_at = ?, updated_at = ? WHERE id = ?`
	var viewedAt interface{}
	if c.ViewedAt != nil {
		viewedAt = *c.ViewedAt
	}
	if _, err := s.db.ExecContext(ctx, query, c.Starred, c.Notes, c.Viewed, viewedAt, c.UpdatedAt, id); err != nil {
		return nil, err
	}
	return c, nil
}

// GetStats returns aggregate counts over the whole candidate set.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	query := `SELECT COUNT(*),
		COALESCE(SUM(viewed), 0),
		COALESCE(SUM(starred), 0),
		COALESCE(SUM(CASE WHEN notes IS NOT NULL AND notes != '' THEN 1 ELSE 0 END), 0)
		FROM candidates`
	err := s.db.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.Viewed, &stats.Starred, &stats.WithNotes)
	if err != nil {
		return nil, err
	}
	stats.Unviewed = stats.Total - stats.Viewed
	return stats, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCandidate(row rowScanner) (*Candidate, error) {
	c := &Candidate{}
	var title, email, linkedin, displayURLs, experience, education sql.NullString
	var expText, eduText, cvText, notes sql.NullString
	var viewedAt sql.NullTime

	err := row.Scan(
		&c.ID, &c.FolderName, &c.FullName, &title, &email, &linkedin,
		&displayURLs, &experience, &education, &expText, &eduText, &cvText,
		&c.Starred, &notes, &c.Viewed, &viewedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.Title = title.String
	c.PrimaryEmail = email.String
	c.LinkedinURL = linkedin.String
	c.ExperienceText = expText.String
	c.EducationText = eduText.String
	c.CVText = cvText.String
	c.Notes = notes.String
	if viewedAt.Valid {
		t := viewedAt.Time
		c.ViewedAt = &t
	}

	unmarshalList(displayURLs.String, &c.DisplayURLs)
	unmarshalList(experience.String, &c.Experience)
	unmarshalList(education.String, &c.Education)

	return c, nil
}

// marshalList serializes a list column, writing "[]" instead of "null" for
// empty lists so the stored text stays a JSON array.
func marshalList(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return "[]"
	}
	return string(b)
}

func unmarshalList(s string, v interface{}) {
	if s == "" {
		return
	}
	// Stored text is always written by marshalList; a decode failure just
	// leaves the structured field empty.
	_ = json.Unmarshal([]byte(s), v)
}
