package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// extractDOCX unzips the OOXML package and walks word/document.xml,
// collecting run text. Paragraph ends become newlines; tabs and line
// breaks become whitespace. Anomalies that do not prevent extraction
// are surfaced as metadata warnings.
func extractDOCX(data []byte) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Format: "docx", Message: "opening package", Cause: err}
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, &ExtractionError{Format: "docx", Message: "word/document.xml not found"}
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, &ExtractionError{Format: "docx", Message: "opening document.xml", Cause: err}
	}
	defer rc.Close()

	xmlData, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ExtractionError{Format: "docx", Message: "reading document.xml", Cause: err}
	}

	content, warnings := parseDocumentXML(xmlData)

	return &Result{
		Content: content,
		Metadata: Metadata{
			Bytes:    len(data),
			Warnings: warnings,
		},
	}, nil
}

// parseDocumentXML streams the document tokens and rebuilds raw text.
func parseDocumentXML(data []byte) (string, []string) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var sb strings.Builder
	var warnings []string
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, "document.xml truncated: "+err.Error())
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingNS && t.Name.Space != "" {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimSpace(sb.String()), warnings
}
