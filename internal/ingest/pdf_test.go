package ingest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPDFText_MissingFile(t *testing.T) {
	got := ExtractPDFText(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Equal(t, "", got)
}

func TestNormalizeText(t *testing.T) {
	input := "  First line  \n\n\n  Second line\n\t\nThird line  "
	got := normalizeText(input)
	assert.Equal(t, "First line\nSecond line\nThird line", got)
}

func TestNormalizeText_OnlyWhitespace(t *testing.T) {
	assert.Equal(t, "", normalizeText("  \n\t\n  "))
}
