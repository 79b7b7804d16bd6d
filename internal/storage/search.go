package storage

import (
	"context"
	"regexp"
)

// searchFields returns the fields a query is matched against.
func searchFields(c *Candidate) []string {
	return []string{c.FullName, c.Title, c.ExperienceText, c.EducationText, c.CVText}
}

// SearchCandidates returns candidates containing the query as a substring in
// any searchable field, ordered by full name. This is the coarse pass; callers
// refine the result with RefineWholeWord.
func (s *Store) SearchCandidates(ctx context.Context, query string) ([]*Candidate, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx, `SELECT `+candidateColumns+` FROM candidates
		WHERE full_name LIKE ? OR title LIKE ? OR experience_text LIKE ? OR education_text LIKE ? OR cv_text LIKE ?
		ORDER BY full_name`,
		pattern, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []*Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// RefineWholeWord narrows a substring-matched candidate set to whole-word
// matches of the query, case-insensitive. Multi-word queries are matched as a
// single literal token sequence with boundaries only at the two ends. Input
// order is preserved.
func RefineWholeWord(query string, candidates []*Candidate) []*Candidate {
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(query) + `\b`)

	refined := make([]*Candidate, 0, len(candidates))
	for _, c := range candidates {
		for _, field := range searchFields(c) {
			if field != "" && re.MatchString(field) {
				refined = append(refined, c)
				break
			}
		}
	}
	return refined
}
