// Package schemas validates emitted parse artifacts against the JSON
// Schema files in the repository's schemas/ directory.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ParsedCVSchemaPath is the repo-relative location of the parsed CV schema.
const ParsedCVSchemaPath = "schemas/parsed_cv.schema.json"

// maxSchemaSearchDepth bounds the upward walk in ResolveSchemaPath.
const maxSchemaSearchDepth = 2

// ResolveSchemaPath finds a schema file by walking from the working
// directory up through its parents. CLI commands and tests run from
// different depths of the repository, so a fixed relative path is not
// enough. Returns "" when the file is not found within the search depth.
func ResolveSchemaPath(relativePath string) string {
	candidate := relativePath
	for depth := 0; depth <= maxSchemaSearchDepth; depth++ {
		abs, err := filepath.Abs(candidate)
		if err == nil {
			if _, statErr := os.Stat(abs); statErr == nil {
				return abs
			}
		}
		candidate = filepath.Join("..", candidate)
	}
	return ""
}

// ValidationError carries every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself,
// as opposed to violations in the validated document.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateParsedCV validates serialized ParsedCVData JSON against the
// parsed CV schema. Returns a SchemaLoadError when the schema file
// cannot be located or read.
func ValidateParsedCV(jsonContent string) error {
	schemaPath := ResolveSchemaPath(ParsedCVSchemaPath)
	if schemaPath == "" {
		return &SchemaLoadError{Path: ParsedCVSchemaPath, Message: "schema file not found"}
	}

	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "reading schema", Cause: err}
	}
	return validate(schemaPath, string(schemaContent), jsonContent)
}

// ValidateJSON validates a JSON file on disk against a schema file on disk.
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "reading schema", Cause: err}
	}

	jsonContent, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read JSON file %s: %w", jsonPath, err)
	}
	return validate(schemaPath, string(schemaContent), string(jsonContent))
}

// ValidateJSONString validates JSON string content against schema string content.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)", schemaContent, jsonContent)
}

// validate runs gojsonschema and folds the outcome into the package's
// error types: SchemaLoadError when the schema itself will not compile,
// ValidationError when the document violates it, nil otherwise.
func validate(schemaName, schemaContent, jsonContent string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
	)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
