// Package profile implements the weighted MVP completion rubric over
// parsed CV data plus the user-declared profile fields.
package profile

// DesignTitles are the professional titles a designer can declare.
var DesignTitles = []string{
	"UX Designer",
	"UI Designer",
	"Product Designer",
	"UX/UI Designer",
	"Visual Designer",
	"Interaction Designer",
	"Service Designer",
	"Design Lead",
	"Senior Designer",
	"Junior Designer",
	"Design Manager",
	"Creative Director",
	"Other",
}

// AvailabilityOptions are the accepted availability states.
var AvailabilityOptions = []string{
	"Available",
	"Busy",
	"Not Available",
}

// Industries categorize work experience entries.
var Industries = []string{
	"Automotive", "Energy", "IT", "Finance", "Insurance", "Banking",
	"Healthcare", "Startups", "Blockchain/Crypto", "AdTech/MarTech",
	"Manufacturing", "Construction", "eCommerce", "Education",
	"Transport/Logistics", "Agriculture", "Tourism/Hospitality",
	"Telecommunications", "Green Tech", "HR", "Other",
}

// IsKnownTitle reports whether the declared title is one of the
// selectable options.
func IsKnownTitle(title string) bool {
	return containsString(DesignTitles, title)
}

// IsKnownAvailability reports whether the declared availability is one
// of the selectable options.
func IsKnownAvailability(availability string) bool {
	return containsString(AvailabilityOptions, availability)
}

// IsKnownIndustry reports whether the industry is one of the selectable
// options.
func IsKnownIndustry(industry string) bool {
	return containsString(Industries, industry)
}

func containsString(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}

// Minimum requirements for a complete profile.
const (
	MinWorkExperiences  = 1
	MinSkills           = 1
	MinLanguages        = 1
	ProficiencyMin      = 1
	ProficiencyMax      = 5
	ExperienceYearsMin  = 0
	ExperienceYearsMax  = 50
	SummaryMinimumChars = 50
)

// User-facing validation messages.
const (
	MsgNameRequired            = "Please ensure your full name appears at the top of the CV"
	MsgEmailRequired           = "Please ensure your email address is clearly visible in the CV"
	MsgEmailInvalid            = "Please provide a valid email address"
	MsgPhoneRequired           = "Please include your phone number in the contact information"
	MsgPhoneInvalid            = "Please provide a valid phone number"
	MsgTitleRequired           = "Please select your professional title/position"
	MsgAvailabilityRequired    = "Please specify your availability status"
	MsgPortfolioRequired       = "Please provide your portfolio URL or LinkedIn profile"
	MsgPortfolioInvalid        = "Please provide a valid URL (e.g., https://portfolio.com or www.linkedin.com/in/username)"
	MsgSummaryRequired         = "Please add a professional summary"
	MsgSummaryTooShort         = "Professional summary should be at least 50 characters"
	MsgExperienceYearsRequired = "Please specify your total years of experience"
	MsgExperienceYearsInvalid  = "Experience years must be between 0 and 50"

	MsgWorkExperienceRequired         = "Please include at least one work experience"
	MsgWorkExperienceCompanyRequired  = "Please provide company name for all work experiences"
	MsgWorkExperienceIndustryRequired = "Please specify the industry for all work experiences"
	MsgWorkExperienceIncomplete       = "Please complete all work experience details"

	MsgSkillsRequired            = "Please include at least one skill"
	MsgSkillsProficiencyRequired = "Please rate your proficiency level for all skills (1-5 scale)"

	MsgLanguagesRequired            = "Please include at least one language"
	MsgLanguagesProficiencyRequired = "Please rate your proficiency level for all languages (1-5 scale)"
)

// requiredMessages maps core field names to their "missing" message.
var requiredMessages = map[string]string{
	"name":                   MsgNameRequired,
	"email":                  MsgEmailRequired,
	"phone":                  MsgPhoneRequired,
	"title":                  MsgTitleRequired,
	"availability":           MsgAvailabilityRequired,
	"portfolio_url":          MsgPortfolioRequired,
	"professional_summary":   MsgSummaryRequired,
	"total_experience_years": MsgExperienceYearsRequired,
}

// FieldDisplayNames maps rubric field keys to user-friendly labels.
var FieldDisplayNames = map[string]string{
	"name":                   "Full Name",
	"email":                  "Email Address",
	"phone":                  "Phone Number",
	"title":                  "Professional Title",
	"availability":           "Availability Status",
	"portfolio_url":          "Portfolio/LinkedIn URL",
	"professional_summary":   "Professional Summary",
	"total_experience_years": "Total Experience Years",
	"work_experience":        "Work Experience",
	"skills":                 "Skills",
	"languages":              "Languages",
}

// Weights distributes the completion percentage across rubric groups.
// They should sum to 1; DefaultWeights reflects matching priority.
type Weights struct {
	CoreProfile    float64
	WorkExperience float64
	Skills         float64
	Languages      float64
}

// DefaultWeights is the production rubric weighting.
var DefaultWeights = Weights{
	CoreProfile:    0.5,
	WorkExperience: 0.2,
	Skills:         0.2,
	Languages:      0.1,
}
