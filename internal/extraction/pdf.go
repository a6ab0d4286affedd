package extraction

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls plain text from every page, joined by newlines.
// Pages with no extractable text (image-only scans) contribute nothing
// rather than failing: the orchestrator turns a fully empty result into
// a user-facing message instead of an error.
func extractPDF(data []byte) (res *Result, err error) {
	// The pdf library panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &ExtractionError{Format: "pdf", Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Format: "pdf", Message: "opening document", Cause: err}
	}

	totalPages := reader.NumPage()
	meta := Metadata{Pages: totalPages, Bytes: len(data)}

	pages := make([]string, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			meta.Warnings = append(meta.Warnings, fmt.Sprintf("page %d: %v", i, err))
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return &Result{Content: strings.Join(pages, "\n"), Metadata: meta}, nil
}
