// Package extraction converts uploaded document bytes into plain text.
package extraction

import "fmt"

// ExtractionError represents a malformed or unreadable document of a known format.
type ExtractionError struct {
	Format  string // "pdf", "docx", "txt"
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError represents input that could not be matched to any
// supported format, even after content sniffing.
type UnsupportedTypeError struct {
	MimeType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.MimeType)
}
