package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFolder(t *testing.T, root, name string, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for filename, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644))
	}
	return dir
}

func TestLoadCandidateFromFolder(t *testing.T) {
	dir := writeFolder(t, t.TempDir(), "jane-doe", map[string]string{
		"basic_info.json": `{"data": {
			"fullName": "Jane Doe",
			"title": "Research Scientist",
			"experience": [{"title": "Engineer", "work": "Google", "time": "2019-2023"}],
			"education": [{"degree": "PhD", "major": "CS", "school": "MIT"}]
		}}`,
		"personal_info.json": `{"data": {
			"primaryEmail": "jane@example.com",
			"linkedinUrl": "https://linkedin.com/in/janedoe",
			"displayUrls": ["https://github.com/jane", "https://arxiv.org/abs/1234"]
		}}`,
	})

	c := LoadCandidateFromFolder(dir)

	assert.Equal(t, "jane-doe", c.FolderName)
	assert.Equal(t, "Jane Doe", c.FullName)
	assert.Equal(t, "Research Scientist", c.Title)
	assert.Equal(t, "jane@example.com", c.PrimaryEmail)
	assert.Equal(t, "https://linkedin.com/in/janedoe", c.LinkedinURL)
	assert.Equal(t, []string{"https://github.com/jane"}, c.DisplayURLs)
	assert.Equal(t, "Engineer Google", c.ExperienceText)
	assert.Equal(t, "PhD CS MIT", c.EducationText)
	require.Len(t, c.Experience, 1)
	assert.Equal(t, "2019-2023", c.Experience[0].Time)
}

func TestLoadCandidateFromFolder_EmptyFolder(t *testing.T) {
	// No JSON files at all: blank fields, name derived from the folder.
	dir := writeFolder(t, t.TempDir(), "john-smith", nil)

	c := LoadCandidateFromFolder(dir)

	assert.Equal(t, "john-smith", c.FolderName)
	assert.Equal(t, "john smith", c.FullName)
	assert.Empty(t, c.Title)
	assert.Empty(t, c.Experience)
	assert.Empty(t, c.ExperienceText)
	assert.Empty(t, c.CVText)
}

func TestLoadCandidateFromFolder_CorruptJSON(t *testing.T) {
	dir := writeFolder(t, t.TempDir(), "bad-data", map[string]string{
		"basic_info.json":    `{not valid json`,
		"personal_info.json": `also broken`,
	})

	c := LoadCandidateFromFolder(dir)

	assert.Equal(t, "bad data", c.FullName)
	assert.Empty(t, c.PrimaryEmail)
	assert.Empty(t, c.DisplayURLs)
}

func TestLoadCandidateFromFolder_MissingName(t *testing.T) {
	dir := writeFolder(t, t.TempDir(), "no-name", map[string]string{
		"basic_info.json": `{"data": {"title": "Engineer"}}`,
	})

	c := LoadCandidateFromFolder(dir)

	assert.Equal(t, "no name", c.FullName)
	assert.Equal(t, "Engineer", c.Title)
}
