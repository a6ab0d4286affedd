// Package aiparse provides the AI-assisted CV extraction path: a Gemini
// structured-output call with a self-contained regex fallback.
package aiparse

import "fmt"

// MissingCredentialError indicates no model credential was configured.
// The parser fails fast without calling out to the model.
type MissingCredentialError struct{}

func (e *MissingCredentialError) Error() string {
	return "AI parsing unavailable: no API key configured"
}

// ModelCallError represents a failed call to the generative-model service
// (network, quota, timeout).
type ModelCallError struct {
	Message string
	Cause   error
}

func (e *ModelCallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("model call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("model call failed: %s", e.Message)
}

func (e *ModelCallError) Unwrap() error {
	return e.Cause
}

// ResponseFormatError indicates the model responded but no usable JSON
// object could be recovered from the response text.
type ResponseFormatError struct {
	Message string
	Cause   error
}

func (e *ResponseFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unparseable model response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("unparseable model response: %s", e.Message)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Cause
}
