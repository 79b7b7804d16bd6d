package ingest

import (
	"log"
	"os"
	"strings"

	"code.sajari.com/docconv"
)

// ExtractPDFText extracts the text content of a PDF for search. Extraction is
// best-effort enrichment: a missing file or a conversion failure yields an
// empty string, never an error.
func ExtractPDFText(pdfPath string) string {
	if _, err := os.Stat(pdfPath); err != nil {
		return ""
	}

	res, err := docconv.ConvertPath(pdfPath)
	if err != nil {
		log.Printf("Warning: failed to extract text from %s: %v", pdfPath, err)
		return ""
	}

	return normalizeText(res.Body)
}

// normalizeText trims each line and drops empty lines, preserving line order.
func normalizeText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
