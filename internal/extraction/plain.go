package extraction

import "strings"

// extractPlain decodes the bytes as UTF-8 and normalizes line endings so
// downstream line splitting sees a single convention.
func extractPlain(data []byte) (*Result, error) {
	content := string(data)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	return &Result{
		Content: content,
		Metadata: Metadata{
			Encoding: "utf-8",
			Bytes:    len(data),
		},
	}, nil
}
