package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["confidence"],
	"properties": {
		"confidence": {"type": "number", "minimum": 0, "maximum": 1}
	}
}`

func TestValidateJSONString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "valid document", content: `{"confidence": 0.9}`, wantErr: false},
		{name: "missing required field", content: `{}`, wantErr: true},
		{name: "out of range", content: `{"confidence": 1.5}`, wantErr: true},
		{name: "wrong type", content: `{"confidence": "high"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSONString(testSchema, tt.content)
			if tt.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.NotEmpty(t, validationErr.Errors)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateJSONStringBadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	docPath := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"confidence": 0.5}`), 0o644))
	assert.NoError(t, ValidateJSON(schemaPath, docPath))

	badPath := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"confidence": -1}`), 0o644))
	err := ValidateJSON(schemaPath, badPath)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "confidence", validationErr.Errors[0].Field)
}

func TestValidateJSONMissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	assert.Error(t, ValidateJSON(filepath.Join(dir, "nope.schema.json"), schemaPath))
	assert.Error(t, ValidateJSON(schemaPath, filepath.Join(dir, "nope.json")))
}

func TestResolveSchemaPath(t *testing.T) {
	// The parsed CV schema sits two levels above this package.
	resolved := ResolveSchemaPath(ParsedCVSchemaPath)
	require.NotEmpty(t, resolved)
	assert.FileExists(t, resolved)
}

func TestResolveSchemaPathMissing(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}
