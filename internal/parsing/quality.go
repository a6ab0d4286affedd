package parsing

import "github.com/hubhub/cvparser/internal/types"

// Quality is a coarse post-parse check: did the document yield the fields
// a recruiter profile cannot exist without. The profile package performs
// the full weighted validation; this one gates raw parser output.
type Quality struct {
	IsValid       bool     `json:"isValid"`
	MissingFields []string `json:"missingFields"`
	Suggestions   []string `json:"suggestions"`
}

// ValidateParsedData checks presence of contact details, work experience
// and skills. Suggestions are user-facing remediation hints, one per
// missing field.
func ValidateParsedData(data *types.ParsedCVData) *Quality {
	missingFields := []string{}
	suggestions := []string{}

	if !hasValue(data.Personal.Email) {
		missingFields = append(missingFields, "email")
		suggestions = append(suggestions, "Please ensure your email address is clearly visible in the CV")
	}
	if !hasValue(data.Personal.Name) {
		missingFields = append(missingFields, "name")
		suggestions = append(suggestions, "Please ensure your full name appears at the top of the CV")
	}
	if !hasValue(data.Personal.Phone) {
		missingFields = append(missingFields, "phone")
		suggestions = append(suggestions, "Please include your phone number in the contact information")
	}

	if len(data.WorkExperience) == 0 {
		missingFields = append(missingFields, "work_experience")
		suggestions = append(suggestions, "Please include your work experience with company names and job titles")
	}

	// Soft skills alone do not satisfy the skills requirement.
	totalSkills := len(data.Skills.Technical) + len(data.Skills.Design) + len(data.Skills.Tools)
	if totalSkills == 0 {
		missingFields = append(missingFields, "skills")
		suggestions = append(suggestions, "Please include a skills section with your technical and design capabilities")
	}

	return &Quality{
		IsValid:       len(missingFields) == 0,
		MissingFields: missingFields,
		Suggestions:   suggestions,
	}
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}
