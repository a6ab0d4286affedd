package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hubhub/cvparser/internal/types"
)

func TestPrintParsedCV(t *testing.T) {
	data := types.NewParsedCVData()
	data.Personal.Name = types.StringPtr("Jane Doe")
	data.Personal.Email = types.StringPtr("jane@example.com")
	data.Confidence = 0.9
	data.WorkExperience = []types.WorkExperience{
		{
			JobTitle:  types.StringPtr("Product Designer"),
			Company:   types.StringPtr("Acme Corp"),
			IsCurrent: true,
		},
	}
	data.Skills.Design = []string{"Figma", "Sketch"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedCV(data)

	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@example.com")
	assert.Contains(t, out, "90%")
	assert.Contains(t, out, "Product Designer at Acme Corp")
	assert.Contains(t, out, "(current)")
	assert.Contains(t, out, "Figma, Sketch")
}

func TestPrintParsedCVMissingFields(t *testing.T) {
	data := types.NewParsedCVData()
	data.Errors = append(data.Errors, "analysis failed: boom")

	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedCV(data)

	out := buf.String()
	assert.Contains(t, out, "(not found)")
	assert.Contains(t, out, "analysis failed: boom")
}

func TestPrintParsedCVNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedCV(nil)
	assert.Empty(t, buf.String())
}

func TestPrintValidationResult(t *testing.T) {
	result := &types.ValidationResult{
		IsValid:              false,
		MissingFields:        []string{"email", "skills_proficiency"},
		Suggestions:          []string{"Please provide a valid email address"},
		CompletionPercentage: 82,
		Severity:             types.SeverityWarning,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationResult(result)

	out := buf.String()
	assert.Contains(t, out, "82%")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "profile is incomplete")
	assert.Contains(t, out, "skills_proficiency")
}

func TestPrintValidationResultComplete(t *testing.T) {
	result := &types.ValidationResult{
		IsValid:              true,
		CompletionPercentage: 100,
		Severity:             types.SeverityComplete,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintValidationResult(result)

	assert.Contains(t, buf.String(), "profile is complete")
}
