package ingest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"recruiting-review/internal/storage"
)

// Fixed filenames inside each applicant folder.
const (
	basicInfoFile    = "basic_info.json"
	personalInfoFile = "personal_info.json"
	cvFile           = "cv.pdf"
)

type basicInfo struct {
	Data struct {
		FullName   string                    `json:"fullName"`
		Title      string                    `json:"title"`
		Experience []storage.ExperienceEntry `json:"experience"`
		Education  []storage.EducationEntry  `json:"education"`
	} `json:"data"`
}

type personalInfo struct {
	Data struct {
		PrimaryEmail string   `json:"primaryEmail"`
		LinkedinURL  string   `json:"linkedinUrl"`
		DisplayURLs  []string `json:"displayUrls"`
	} `json:"data"`
}

// loadJSON reads a JSON file into v, leaving v untouched on any error.
// Missing and malformed files are deliberately indistinguishable from empty
// data so a bad folder never blocks ingest.
func loadJSON(path string, v interface{}) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, v)
}

// LoadCandidateFromFolder builds a candidate from one applicant directory.
// It never fails: unreadable source files produce blank fields, and the full
// name falls back to the folder name with dashes replaced by spaces.
func LoadCandidateFromFolder(dir string) *storage.Candidate {
	folderName := filepath.Base(dir)

	var basic basicInfo
	var personal personalInfo
	loadJSON(filepath.Join(dir, basicInfoFile), &basic)
	loadJSON(filepath.Join(dir, personalInfoFile), &personal)

	fullName := basic.Data.FullName
	if fullName == "" {
		fullName = strings.ReplaceAll(folderName, "-", " ")
	}

	return &storage.Candidate{
		FolderName:     folderName,
		FullName:       fullName,
		Title:          basic.Data.Title,
		PrimaryEmail:   personal.Data.PrimaryEmail,
		LinkedinURL:    personal.Data.LinkedinURL,
		DisplayURLs:    FilterURLs(personal.Data.DisplayURLs),
		Experience:     basic.Data.Experience,
		Education:      basic.Data.Education,
		ExperienceText: FlattenExperience(basic.Data.Experience),
		EducationText:  FlattenEducation(basic.Data.Education),
		CVText:         ExtractPDFText(filepath.Join(dir, cvFile)),
	}
}
