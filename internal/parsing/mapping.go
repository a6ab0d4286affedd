package parsing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hubhub/cvparser/internal/types"
)

// DatabaseRecord is ParsedCVData reshaped for persistence: snake_case
// field names, parsed dates and numeric proficiencies. The storage layer
// itself lives outside this module.
type DatabaseRecord struct {
	DesignerProfile DesignerProfileRecord  `json:"designer_profile"`
	WorkExperiences []WorkExperienceRecord `json:"work_experiences"`
	Educations      []EducationRecord      `json:"educations"`
	Skills          []SkillRecord          `json:"skills"`
	Languages       []LanguageRecord       `json:"languages"`
	Certifications  []CertificationRecord  `json:"certifications"`
	CVProjects      []CVProjectRecord      `json:"cv_projects"`
	Awards          []AwardRecord          `json:"awards"`
	Publications    []PublicationRecord    `json:"publications"`
}

// DesignerProfileRecord carries the profile head row. Title, availability
// and the CV file URL are set by the application separately.
type DesignerProfileRecord struct {
	UserID               uuid.UUID `json:"user_id"`
	Name                 *string   `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	Location             *string   `json:"location"`
	PortfolioURL         string    `json:"portfolio_url"`
	ProfessionalSummary  string    `json:"professional_summary"`
	TotalExperienceYears float64   `json:"total_experience_years"`
}

type WorkExperienceRecord struct {
	JobTitle         *string    `json:"job_title"`
	CompanyName      string     `json:"company_name"`
	Location         *string    `json:"location"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsCurrent        bool       `json:"is_current"`
	Description      *string    `json:"description"`
	TechnologiesUsed []string   `json:"technologies_used"`
	Industry         string     `json:"industry"`
}

type EducationRecord struct {
	InstitutionName *string    `json:"institution_name"`
	DegreeType      *string    `json:"degree_type"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	GPA             *float64   `json:"gpa"`
	Honors          []string   `json:"honors"`
}

type SkillRecord struct {
	SkillName        string `json:"skill_name"`
	Category         string `json:"category"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

type LanguageRecord struct {
	LanguageName     string `json:"language_name"`
	ProficiencyLevel int    `json:"proficiency_level"`
	IsNative         bool   `json:"is_native"`
}

type CertificationRecord struct {
	CertificationName   *string    `json:"certification_name"`
	IssuingOrganization *string    `json:"issuing_organization"`
	IssueDate           *time.Time `json:"issue_date"`
	CredentialURL       *string    `json:"credential_url"`
}

type CVProjectRecord struct {
	ProjectName      *string  `json:"project_name"`
	Description      *string  `json:"description"`
	TechnologiesUsed []string `json:"technologies_used"`
	ProjectURL       *string  `json:"project_url"`
	DurationMonths   *int     `json:"duration_months"`
}

type AwardRecord struct {
	Title               *string    `json:"title"`
	IssuingOrganization *string    `json:"issuing_organization"`
	IssueDate           *time.Time `json:"issue_date"`
	Description         *string    `json:"description"`
}

type PublicationRecord struct {
	Title           *string    `json:"title"`
	Publisher       *string    `json:"publisher"`
	PublicationDate *time.Time `json:"publication_date"`
	PublicationURL  *string    `json:"publication_url"`
}

// defaultProficiency is assigned to every parsed skill; the user refines
// proficiency levels after review.
const defaultProficiency = 3

// MapToDatabase reshapes parsed CV data into persistence-ready records
// keyed by the owning user.
func MapToDatabase(data *types.ParsedCVData, userID uuid.UUID) *DatabaseRecord {
	record := &DatabaseRecord{
		DesignerProfile: DesignerProfileRecord{
			UserID:               userID,
			Name:                 data.Personal.Name,
			Email:                deref(data.Personal.Email),
			Phone:                deref(data.Personal.Phone),
			Location:             data.Personal.Location,
			PortfolioURL:         firstNonEmpty(data.Personal.Portfolio, data.Personal.LinkedIn),
			ProfessionalSummary:  deref(data.Personal.Summary),
			TotalExperienceYears: CalculateTotalExperience(data.WorkExperience),
		},
		WorkExperiences: []WorkExperienceRecord{},
		Educations:      []EducationRecord{},
		Skills:          []SkillRecord{},
		Languages:       []LanguageRecord{},
		Certifications:  []CertificationRecord{},
		CVProjects:      []CVProjectRecord{},
		Awards:          []AwardRecord{},
		Publications:    []PublicationRecord{},
	}

	for _, exp := range data.WorkExperience {
		industry := deref(exp.Industry)
		if industry == "" {
			industry = "Other"
		}
		record.WorkExperiences = append(record.WorkExperiences, WorkExperienceRecord{
			JobTitle:         exp.JobTitle,
			CompanyName:      deref(exp.Company),
			Location:         exp.Location,
			StartDate:        parseFlexibleDate(deref(exp.StartDate)),
			EndDate:          parseEndDate(deref(exp.EndDate)),
			IsCurrent:        exp.IsCurrent,
			Description:      exp.Description,
			TechnologiesUsed: orEmpty(exp.Technologies),
			Industry:         industry,
		})
	}

	for _, edu := range data.Education {
		record.Educations = append(record.Educations, EducationRecord{
			InstitutionName: edu.Institution,
			DegreeType:      edu.Degree,
			StartDate:       parseFlexibleDate(deref(edu.StartDate)),
			EndDate:         parseFlexibleDate(deref(edu.EndDate)),
			GPA:             parseGPA(edu.GPA),
			Honors:          orEmpty(edu.Honors),
		})
	}

	appendSkills := func(names []string, category string) {
		for _, name := range names {
			record.Skills = append(record.Skills, SkillRecord{
				SkillName:        name,
				Category:         category,
				ProficiencyLevel: defaultProficiency,
			})
		}
	}
	appendSkills(data.Skills.Technical, "technical")
	appendSkills(data.Skills.Design, "design")
	appendSkills(data.Skills.Tools, "tool")
	appendSkills(data.Skills.Soft, "soft")

	for _, lang := range data.Skills.Languages {
		proficiency := deref(lang.Proficiency)
		record.Languages = append(record.Languages, LanguageRecord{
			LanguageName:     lang.Name,
			ProficiencyLevel: MapLanguageProficiency(proficiency),
			IsNative:         strings.Contains(strings.ToLower(proficiency), "native"),
		})
	}

	for _, cert := range data.Certifications {
		record.Certifications = append(record.Certifications, CertificationRecord{
			CertificationName:   cert.Name,
			IssuingOrganization: cert.Issuer,
			IssueDate:           parseFlexibleDate(deref(cert.Date)),
			CredentialURL:       cert.URL,
		})
	}

	for _, project := range data.Projects {
		record.CVProjects = append(record.CVProjects, CVProjectRecord{
			ProjectName:      project.Name,
			Description:      project.Description,
			TechnologiesUsed: orEmpty(project.Technologies),
			ProjectURL:       project.URL,
			DurationMonths:   parseDurationMonths(deref(project.Duration)),
		})
	}

	for _, award := range data.Awards {
		record.Awards = append(record.Awards, AwardRecord{
			Title:               award.Title,
			IssuingOrganization: award.Issuer,
			IssueDate:           parseFlexibleDate(deref(award.Date)),
			Description:         award.Description,
		})
	}

	for _, pub := range data.Publications {
		record.Publications = append(record.Publications, PublicationRecord{
			Title:           pub.Title,
			Publisher:       pub.Publisher,
			PublicationDate: parseFlexibleDate(deref(pub.Date)),
			PublicationURL:  pub.URL,
		})
	}

	return record
}

// CalculateTotalExperience sums the duration of all dated experience
// entries and returns years rounded to one decimal. Open-ended entries
// count up to the current month.
func CalculateTotalExperience(experience []types.WorkExperience) float64 {
	if len(experience) == 0 {
		return 0
	}

	now := time.Now()
	totalMonths := 0
	for _, exp := range experience {
		start := parseFlexibleDate(deref(exp.StartDate))
		if start == nil {
			continue
		}
		end := &now
		if raw := deref(exp.EndDate); raw != "" && !strings.EqualFold(raw, "present") {
			if parsed := parseFlexibleDate(raw); parsed != nil {
				end = parsed
			}
		}
		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		if months > 0 {
			totalMonths += months
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}

// MapLanguageProficiency converts a free-text proficiency word to the
// 1..5 scale used by profile records.
func MapLanguageProficiency(proficiency string) int {
	prof := strings.ToLower(proficiency)
	switch {
	case prof == "":
		return 3
	case strings.Contains(prof, "native") || strings.Contains(prof, "fluent"):
		return 5
	case strings.Contains(prof, "advanced") || strings.Contains(prof, "proficient"):
		return 4
	case strings.Contains(prof, "intermediate"):
		return 3
	case strings.Contains(prof, "basic") || strings.Contains(prof, "beginner"):
		return 2
	case strings.Contains(prof, "elementary"):
		return 1
	default:
		return 3
	}
}

// dateLayouts covers the formats the analyzer and the regex fallback
// actually emit.
var dateLayouts = []string{"Jan 2006", "January 2006", "2006"}

func parseFlexibleDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}

// parseEndDate treats "present" (any case) as an open-ended engagement.
func parseEndDate(raw string) *time.Time {
	if strings.EqualFold(strings.TrimSpace(raw), "present") {
		return nil
	}
	return parseFlexibleDate(raw)
}

func parseGPA(gpa *string) *float64 {
	if gpa == nil {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(*gpa), 64)
	if err != nil {
		return nil
	}
	return &value
}

var (
	durationMonthsRe = regexp.MustCompile(`(?i)(\d+)\s*month`)
	durationYearsRe  = regexp.MustCompile(`(?i)(\d+)\s*year`)
)

func parseDurationMonths(duration string) *int {
	if duration == "" {
		return nil
	}
	if m := durationMonthsRe.FindStringSubmatch(duration); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return &n
		}
	}
	if m := durationYearsRe.FindStringSubmatch(duration); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			months := n * 12
			return &months
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...*string) string {
	for _, v := range values {
		if v != nil && *v != "" {
			return *v
		}
	}
	return ""
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
