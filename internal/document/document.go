// Package document extracts candidate equation lines from uploaded
// files. Each supported format is flattened to plain text lines; a
// line that looks like a polynomial equation becomes a candidate for
// the solver.
package document

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/reroreo1/computer-v1/internal/equation"
)

// Document is the flattened content of one file.
type Document struct {
	Title string
	Lines []string
}

// Extractor converts raw file bytes into a flattened Document.
type Extractor interface {
	Extract(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".csv":
		return &CSVExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// FindEquations returns the lines of d that plausibly hold a
// polynomial equation: exactly one '=', at least one digit or X, and
// only characters the equation grammar allows. Whether a candidate
// actually parses is the pipeline's concern.
func FindEquations(d *Document) []string {
	var out []string
	for _, line := range d.Lines {
		line = strings.TrimSpace(line)
		if strings.Count(line, "=") != 1 {
			continue
		}
		if !strings.ContainsAny(line, "0123456789X") {
			continue
		}
		if equation.Validate(line) != nil {
			continue
		}
		out = append(out, line)
	}
	return out
}

// splitLines breaks flattened text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

func titleFromFilename(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
