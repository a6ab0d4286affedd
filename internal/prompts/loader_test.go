package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtractionPrompt(t *testing.T) {
	template, err := Get("extraction.json", "extract-cv")
	require.NoError(t, err)

	assert.Contains(t, template, "Extract structured information")
	assert.Contains(t, template, "{{.RawText}}")
}

func TestGetMissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "some-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGetMissingKey(t *testing.T) {
	_, err := Get("extraction.json", "nonexistent-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGetPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "nonexistent-key")
	})
	assert.NotPanics(t, func() {
		MustGet("extraction.json", "extract-cv")
	})
}

func TestFormat(t *testing.T) {
	out := Format("Parse this: {{.RawText}} ({{.Hint}})", map[string]string{
		"RawText": "Jane Doe",
		"Hint":    "designer",
	})
	assert.Equal(t, "Parse this: Jane Doe (designer)", out)

	// Unreferenced placeholders and literal braces survive untouched.
	assert.Equal(t, `{"a": 1} {{.Missing}}`, Format(`{"a": 1} {{.Missing}}`, nil))
}
