package extraction

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// Supported MIME types.
const (
	MimePDF   = "application/pdf"
	MimeDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

var pdfMagic = []byte("%PDF")

// Result is the outcome of text extraction from one document.
type Result struct {
	Content  string
	Metadata Metadata
}

// Metadata carries non-fatal extraction context for audit output.
type Metadata struct {
	Pages    int      `json:"pages,omitempty"`
	Encoding string   `json:"encoding,omitempty"`
	Bytes    int      `json:"bytes"`
	Warnings []string `json:"warnings,omitempty"`
}

// Extract converts document bytes into plain text, dispatching on the
// declared MIME type. An unknown or missing MIME type falls back to
// content sniffing: the PDF magic number first, then zip-based DOCX
// detection, then a UTF-8 decode attempt.
func Extract(data []byte, mimeType string) (*Result, error) {
	switch mimeType {
	case MimePDF:
		return extractPDF(data)
	case MimeDOCX:
		return extractDOCX(data)
	case MimePlain:
		return extractPlain(data)
	}

	if bytes.HasPrefix(data, pdfMagic) {
		return extractPDF(data)
	}

	if kind := mimetype.Detect(data); kind.Is(MimeDOCX) {
		return extractDOCX(data)
	}

	if utf8.Valid(data) {
		return extractPlain(data)
	}

	return nil, &UnsupportedTypeError{MimeType: mimeType}
}

// MimeTypeForExtension maps a file extension (with or without dot) to
// one of the supported MIME types. Unknown extensions return "" so the
// caller falls through to content sniffing.
func MimeTypeForExtension(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "pdf":
		return MimePDF
	case "docx":
		return MimeDOCX
	case "txt", "text":
		return MimePlain
	default:
		return ""
	}
}
