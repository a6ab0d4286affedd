package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/hubhub/cvparser/internal/schemas"
	"github.com/hubhub/cvparser/internal/types"
)

func loadSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("parsed_cv.schema.json")
	require.NoError(t, err, "should be able to read schema file")
	return string(data)
}

func TestParsedCVSchemaIsValidJSON(t *testing.T) {
	var v interface{}
	assert.NoError(t, json.Unmarshal([]byte(loadSchema(t)), &v))
}

func TestParsedCVSchemaCompiles(t *testing.T) {
	_, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(loadSchema(t)))
	assert.NoError(t, err, "schema should compile as JSON Schema")
}

func TestParsedCVSchemaAcceptsParserOutput(t *testing.T) {
	data := types.NewParsedCVData()
	data.Personal.Name = types.StringPtr("Jane Doe")
	data.Personal.Email = types.StringPtr("jane@example.com")
	data.WorkExperience = []types.WorkExperience{
		{
			JobTitle:  types.StringPtr("Product Designer"),
			Company:   types.StringPtr("Acme Corp"),
			StartDate: types.StringPtr("Jan 2020"),
			EndDate:   types.StringPtr("present"),
			IsCurrent: true,
		},
	}
	data.Skills.Design = []string{"Figma"}
	data.Skills.Languages = []types.Language{
		{Name: "Spanish", Proficiency: types.StringPtr("Fluent")},
	}
	data.RawText = "Jane Doe\njane@example.com"
	data.Confidence = 0.9

	encoded, err := json.Marshal(data)
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(loadSchema(t), string(encoded)))
}

func TestParsedCVSchemaRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "missing required fields",
			document: `{"personal": {}}`,
		},
		{
			name: "confidence out of range",
			document: `{
				"personal": {}, "workExperience": [], "education": [],
				"skills": {"technical": [], "design": [], "tools": [], "soft": [], "languages": []},
				"rawText": "", "confidence": 1.2, "errors": []
			}`,
		},
		{
			name: "unknown top-level field",
			document: `{
				"personal": {}, "workExperience": [], "education": [],
				"skills": {"technical": [], "design": [], "tools": [], "soft": [], "languages": []},
				"rawText": "", "confidence": 0.5, "errors": [], "extra": true
			}`,
		},
	}

	schema := loadSchema(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.ValidateJSONString(schema, tt.document)

			var validationErr *schemas.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}
