// Package types provides type definitions for structured data used throughout the CV parsing system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ParsedCVData is the canonical output of a single CV parse attempt.
// Almost every field is optional: a pointer or empty collection means
// "not found in the document", which the validators rely on.
type ParsedCVData struct {
	Personal       PersonalInfo     `json:"personal"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         Skills           `json:"skills"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
	Awards         []Award          `json:"awards,omitempty"`
	Publications   []Publication    `json:"publications,omitempty"`

	// RawText retains the full extracted text for audit and confidence computation.
	RawText string `json:"rawText"`
	// Confidence is a heuristic quality estimate in [0,1], not a probability.
	Confidence float64 `json:"confidence"`
	// Errors lists non-fatal extraction problems in the order encountered.
	Errors []string `json:"errors"`
}

// PersonalInfo holds contact and summary fields scraped from the whole document.
type PersonalInfo struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Portfolio *string `json:"portfolio,omitempty"`
	Summary   *string `json:"summary,omitempty"`
}

// WorkExperience is one employment entry in document order.
// Dates are free text as they appeared in the source, not guaranteed ISO.
type WorkExperience struct {
	JobTitle     *string  `json:"jobTitle,omitempty"`
	Company      *string  `json:"company,omitempty"`
	Industry     *string  `json:"industry,omitempty"`
	Location     *string  `json:"location,omitempty"`
	StartDate    *string  `json:"startDate,omitempty"`
	EndDate      *string  `json:"endDate,omitempty"`
	IsCurrent    bool     `json:"isCurrent,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Education is one education entry in document order.
type Education struct {
	Degree      *string  `json:"degree,omitempty"`
	Institution *string  `json:"institution,omitempty"`
	Location    *string  `json:"location,omitempty"`
	StartDate   *string  `json:"startDate,omitempty"`
	EndDate     *string  `json:"endDate,omitempty"`
	GPA         *string  `json:"gpa,omitempty"` // string, possibly non-numeric
	Honors      []string `json:"honors,omitempty"`
	Coursework  []string `json:"relevantCoursework,omitempty"`
}

// Skills groups extracted skill tokens by category. Categories are not
// mutually exclusive in source documents; extraction assigns each token
// to exactly one category by keyword matching.
type Skills struct {
	Technical []string   `json:"technical"`
	Design    []string   `json:"design"`
	Tools     []string   `json:"tools"`
	Soft      []string   `json:"soft"`
	Languages []Language `json:"languages"`
}

// Language is a spoken language with its free-text proficiency word.
type Language struct {
	Name        string  `json:"name"`
	Proficiency *string `json:"proficiency,omitempty"`
}

// Certification is a best-effort certification capture.
type Certification struct {
	Name   *string `json:"name,omitempty"`
	Issuer *string `json:"issuer,omitempty"`
	Date   *string `json:"date,omitempty"`
	URL    *string `json:"url,omitempty"`
}

// Project is a best-effort project capture.
type Project struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          *string  `json:"url,omitempty"`
	Duration     *string  `json:"duration,omitempty"`
}

// Award is a best-effort award capture.
type Award struct {
	Title       *string `json:"title,omitempty"`
	Issuer      *string `json:"issuer,omitempty"`
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Publication is a best-effort publication capture.
type Publication struct {
	Title     *string `json:"title,omitempty"`
	Publisher *string `json:"publisher,omitempty"`
	Date      *string `json:"date,omitempty"`
	URL       *string `json:"url,omitempty"`
}

// NewParsedCVData returns a ParsedCVData with all collections initialized
// so JSON output carries empty arrays rather than null.
func NewParsedCVData() *ParsedCVData {
	return &ParsedCVData{
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		Skills: Skills{
			Technical: []string{},
			Design:    []string{},
			Tools:     []string{},
			Soft:      []string{},
			Languages: []Language{},
		},
		Errors: []string{},
	}
}

// AllSkills returns every skill token across the four categories, in
// category order. Languages are not included.
func (s *Skills) AllSkills() []string {
	all := make([]string, 0, len(s.Technical)+len(s.Design)+len(s.Tools)+len(s.Soft))
	all = append(all, s.Technical...)
	all = append(all, s.Design...)
	all = append(all, s.Tools...)
	all = append(all, s.Soft...)
	return all
}

// LanguageNames returns the names of all extracted languages.
func (s *Skills) LanguageNames() []string {
	names := make([]string, 0, len(s.Languages))
	for _, l := range s.Languages {
		if l.Name != "" {
			names = append(names, l.Name)
		}
	}
	return names
}

// StringPtr returns a pointer to s. Convenience for building optional fields.
func StringPtr(s string) *string {
	return &s
}
