// Package ingest loads document text from local files and remote URLs.
// Files dispatch on extension: plain text and Markdown are read as-is,
// HTML is reduced to text, and PDFs go through page-by-page extraction.
// URL fetches pass a robots.txt gate and a per-host rate limit first.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxFileBytes caps local document size at 10MB.
const maxFileBytes = 10 << 20

// FromFile extracts document text from a local file. The extension
// decides the reader; anything but .txt, .md, .html, .htm, or .pdf is
// rejected.
func FromFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxFileBytes {
		return "", fmt.Errorf("%s is %d bytes, above the %d byte limit", path, info.Size(), maxFileBytes)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return string(data), nil
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		text, err := HTMLToText(string(data))
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
		return text, nil
	case ".pdf":
		return pdfText(path)
	default:
		return "", fmt.Errorf("unsupported file type %q: expected .txt, .md, .html, or .pdf", ext)
	}
}

// cleanText trims each line, collapses runs of spaces, and caps blank
// runs at one empty line so paragraph breaks survive extraction.
func cleanText(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		lines[i] = strings.TrimSpace(line)
	}

	out := strings.Join(lines, "\n")
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(out)
}
