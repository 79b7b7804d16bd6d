package ingest

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"recruiting-review/internal/storage"
)

// Scanner reconciles on-disk applicant folders with the store.
type Scanner struct {
	store *storage.Store
}

func NewScanner(store *storage.Store) *Scanner {
	return &Scanner{store: store}
}

// Result reports what one scan pass did. The counts are observability only.
type Result struct {
	Loaded  int
	Skipped int
}

// LoadFromDisk scans the applicants root and inserts candidates for folders
// not yet in the store, committing all insertions in one transaction.
// Re-running against an unchanged directory inserts nothing. A missing root
// is logged and treated as a no-op, not an error.
func (s *Scanner) LoadFromDisk(ctx context.Context, root string) (Result, error) {
	var res Result

	if _, err := os.Stat(root); err != nil {
		log.Printf("Warning: applicants path does not exist: %s", root)
		return res, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return res, err
	}

	var staged []*storage.Candidate
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		exists, err := s.store.HasFolder(ctx, entry.Name())
		if err != nil {
			return res, err
		}
		if exists {
			res.Skipped++
			continue
		}

		staged = append(staged, LoadCandidateFromFolder(filepath.Join(root, entry.Name())))
		res.Loaded++
	}

	if err := s.store.InsertCandidates(ctx, staged); err != nil {
		return res, err
	}

	log.Printf("Loaded %d new candidates, skipped %d existing", res.Loaded, res.Skipped)
	return res, nil
}
