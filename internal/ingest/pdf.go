package ingest

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts plain text from every readable page. Corrupt files
// and image-only PDFs yield nothing, which is a terminal error here.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	out := cleanText(buf.String())
	if out == "" {
		return "", fmt.Errorf("no text in %s: scanned or image-only PDFs are not supported", path)
	}
	return out, nil
}
