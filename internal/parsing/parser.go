// Package parsing is the single entry point of the CV pipeline: it runs
// text extraction, the heuristic analyzer and quality checks, and wraps
// everything in a transport-friendly result.
package parsing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hubhub/cvparser/internal/analyzer"
	"github.com/hubhub/cvparser/internal/extraction"
	"github.com/hubhub/cvparser/internal/types"
)

// Options controls a single parse call.
type Options struct {
	// IncludeRawText keeps the full extracted text in the result. Nil
	// means true; callers that persist results clear it to save space.
	IncludeRawText *bool
	// StrictParsing fails the parse when required fields are missing
	// instead of returning a low-quality success.
	StrictParsing bool
}

// Result is the outcome of one parse attempt. Either Data or Error is
// set, never both; ProcessingTimeMs is always populated.
type Result struct {
	Success          bool                `json:"success"`
	Data             *types.ParsedCVData `json:"data,omitempty"`
	Error            string              `json:"error,omitempty"`
	ProcessingTimeMs int64               `json:"processingTimeMs"`
}

// ParseCV extracts text from the document bytes and runs the heuristic
// analyzer over it. It never panics outward and never returns an error:
// failures are reported inside the Result so transport layers can relay
// them verbatim.
func ParseCV(ctx context.Context, data []byte, mimeType string, opts Options) (result *Result) {
	start := time.Now()
	result = &Result{}
	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Data = nil
			result.Error = fmt.Sprintf("unexpected parsing failure: %v", r)
		}
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
	}()

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result
	}

	extracted, err := extraction.Extract(data, mimeType)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	if strings.TrimSpace(extracted.Content) == "" {
		result.Error = "No text content found in the CV file"
		return result
	}

	parsed := analyzer.New(extracted.Content).Parse()

	if opts.StrictParsing {
		if quality := ValidateParsedData(parsed); !quality.IsValid {
			result.Error = (&QualityError{MissingFields: quality.MissingFields}).Error()
			return result
		}
	}

	if opts.IncludeRawText != nil && !*opts.IncludeRawText {
		parsed.RawText = ""
	}

	result.Success = true
	result.Data = parsed
	return result
}
