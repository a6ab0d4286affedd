package types

import (
	"github.com/go-playground/validator/v10"
)

// MVPData bundles the user-declared profile fields that cannot be derived
// from free-text CV parsing alone. It is supplied alongside a ParsedCVData
// when computing profile completion.
type MVPData struct {
	Title                string         `json:"title" validate:"omitempty,min=1"`
	Availability         string         `json:"availability" validate:"omitempty,min=1"`
	TotalExperienceYears float64        `json:"totalExperienceYears" validate:"gte=0,lte=50"`
	SkillsProficiency    map[string]int `json:"skillsProficiency" validate:"omitempty,dive,gte=0,lte=5"`
	LanguagesProficiency map[string]int `json:"languagesProficiency" validate:"omitempty,dive,gte=0,lte=5"`
}

// Validate validates the MVPData using the validator. This is a sanity
// check on user-supplied input; the completion rubric itself tolerates
// out-of-range proficiencies by treating them as unset.
func (m *MVPData) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// ValidationResult is the outcome of a profile completion check. It is
// derived, never stored: a pure function of ParsedCVData + MVPData.
type ValidationResult struct {
	// IsValid is true iff every rubric point is satisfied. This binary
	// gate is deliberately stricter than any percentage threshold.
	IsValid       bool     `json:"isValid"`
	MissingFields []string `json:"missingFields"`
	Suggestions   []string `json:"suggestions"`
	// CompletionPercentage is the weighted rubric satisfaction, 0-100.
	CompletionPercentage int                    `json:"completionPercentage"`
	FieldValidation      map[string]FieldStatus `json:"fieldValidation"`
	Severity             Severity               `json:"severity"`
}

// FieldStatus is the per-field validation outcome, usable for UI highlighting.
type FieldStatus struct {
	IsValid  bool   `json:"isValid"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning", "info"
	Required bool   `json:"required"`
}

// Severity classifies an overall validation result.
type Severity string

// Overall severity levels.
const (
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityComplete Severity = "complete"
)

// CompletionStatus is the per-group completion breakdown behind the
// weighted percentage, exported for progress UI.
type CompletionStatus struct {
	CoreProfile    GroupStatus     `json:"coreProfile"`
	WorkExperience GroupStatus     `json:"workExperience"`
	Skills         GroupStatus     `json:"skills"`
	Languages      GroupStatus     `json:"languages"`
	Overall        OverallStatus   `json:"overall"`
	CoreFields     map[string]bool `json:"coreFields"`
}

// GroupStatus counts satisfied points within one rubric group.
type GroupStatus struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// OverallStatus is the unweighted point tally across all groups.
type OverallStatus struct {
	CompletedFields int `json:"completedFields"`
	TotalFields     int `json:"totalFields"`
	Percentage      int `json:"percentage"`
}
