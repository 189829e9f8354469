// Package extraction turns resume source files into raw text.
package extraction

import (
	"os"
	"path/filepath"
	"strings"
)

// TextExtractor supplies raw text for a resume source. Implementations must
// return an empty string, never an error, for missing files or unsupported
// formats: an empty document scores near zero but does not fail the batch.
type TextExtractor interface {
	ExtractText(path string) string
}

// FileExtractor reads plain-text resume files. Binary formats (PDF, DOCX)
// are handled by external converters upstream of this pipeline.
type FileExtractor struct{}

// supportedExtensions lists the file types FileExtractor will read.
var supportedExtensions = map[string]struct{}{
	".txt":  {},
	".text": {},
	".md":   {},
}

// ExtractText implements TextExtractor.
func (FileExtractor) ExtractText(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := supportedExtensions[ext]; !ok {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
