package aiparse

import (
	"regexp"
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

// The regex fallback is intentionally self-contained: it shares no state
// with the heuristic analyzer so a model outage degrades to a predictable,
// independently testable path.

var (
	fbTitleNoiseRe = regexp.MustCompile(`(?i)(resume|cv|curriculum|vitae)`)
	fbEmailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	fbPhoneRe      = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	fbLocLabelRe   = regexp.MustCompile(`(?i)(?:Location|Address|Based in|Located in):\s*([^\n]+)`)
	fbLocCityRe    = regexp.MustCompile(`([A-Za-z\s]+,\s*[A-Z]{2}(?:\s+\d{5})?)`)
	fbPortfolioRe  = regexp.MustCompile(`(?i)(?:portfolio|website|site):\s*(https?://\S+)`)
	fbLinkedInRe   = regexp.MustCompile(`(?i)(?:linkedin|linked-in):\s*(https?://\S+)`)

	fbHeaderLineRe = regexp.MustCompile(`\n[A-Z\s]+\n`)
	fbSummaryRe    = regexp.MustCompile(`(?i)(?:PROFESSIONAL SUMMARY|SUMMARY|PROFILE|ABOUT|OVERVIEW)\s*\n`)
	fbWorkRe       = regexp.MustCompile(`(?i)(?:WORK EXPERIENCE|EXPERIENCE|EMPLOYMENT)\s*\n`)
	fbSkillsRe     = regexp.MustCompile(`(?i)(?:SKILLS|TECHNICAL SKILLS|COMPETENCIES)\s*\n`)
	fbLanguagesRe  = regexp.MustCompile(`(?i)(?:LANGUAGES)\s*\n`)
	fbEducationRe  = regexp.MustCompile(`(?i)(?:EDUCATION)\s*\n`)
	fbCertsRe      = regexp.MustCompile(`(?i)(?:CERTIFICATIONS|CERTIFICATES)\s*\n`)

	fbJobLineRe     = regexp.MustCompile(`^(.+?)\s+at\s+(.+)$`)
	fbDateTokenRe   = regexp.MustCompile(`\w+\s+\d{4}|\d{4}`)
	fbYearRe        = regexp.MustCompile(`\d{4}`)
	fbGPARe         = regexp.MustCompile(`(?i)GPA:\s*(\d+\.?\d*)`)
	fbEducationEnRe = regexp.MustCompile(`([^\n]+)\n([^\n]+)\n?([^\n]*\d{4}[^\n]*)`)
	fbCertEntryRe   = regexp.MustCompile(`([^\n-]+?)\s*-\s*(\d{4})`)
	fbLangEntryRe   = regexp.MustCompile(`(?i)([A-Za-z]+):\s*(Native|Fluent|Advanced|Intermediate|Basic|Beginner)`)
	fbBulletRe      = regexp.MustCompile(`^[•-]\s*`)
)

// Ordered so a company name matching several industries resolves the same
// way every run.
var fbIndustryKeywords = []struct {
	industry string
	keywords []string
}{
	{"Technology", []string{"tech", "software", "digital", "app", "platform"}},
	{"Healthcare", []string{"health", "medical", "hospital", "clinic"}},
	{"Finance", []string{"bank", "financial", "investment", "capital"}},
	{"Retail", []string{"retail", "shop", "store", "commerce"}},
	{"Education", []string{"university", "school", "education", "academic"}},
}

// ParseWithRegex extracts CV data using label and section patterns only.
// It never fails; whatever it cannot find is simply absent from the result.
// The fixed confidence reflects that this path sees less context than the model.
func ParseWithRegex(text string) *types.ParsedCVData {
	data := types.NewParsedCVData()
	data.RawText = text
	data.Confidence = fallbackConfidence

	data.Personal = types.PersonalInfo{
		Name:      optional(fbName(text)),
		Email:     optional(fbEmailRe.FindString(text)),
		Phone:     optional(fbPhoneRe.FindString(text)),
		Location:  optional(fbLocation(text)),
		Portfolio: optional(captureFirst(fbPortfolioRe, text)),
		LinkedIn:  optional(captureFirst(fbLinkedInRe, text)),
		Summary:   optional(sectionBody(text, fbSummaryRe)),
	}

	data.WorkExperience = fbWorkExperience(text)
	data.Skills = fbSkills(text)
	data.Education = fbEducation(text)
	data.Certifications = fbCertifications(text)
	return data
}

// fbName takes the first non-empty line unless it is a document title
// like "Resume" or "Curriculum Vitae", in which case the second line wins.
func fbName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	if !fbTitleNoiseRe.MatchString(lines[0]) {
		return lines[0]
	}
	if len(lines) > 1 {
		return lines[1]
	}
	return ""
}

func fbLocation(text string) string {
	if m := fbLocLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fbLocCityRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// fbWorkExperience scans the experience section for "Title at Company"
// lines. An entry only counts when the following line carries a date,
// which filters out prose that merely mentions "at".
func fbWorkExperience(text string) []types.WorkExperience {
	section := sectionBody(text, fbWorkRe)
	if section == "" {
		return []types.WorkExperience{}
	}

	lines := strings.Split(section, "\n")
	experiences := []types.WorkExperience{}
	for i := 0; i < len(lines); i++ {
		m := fbJobLineRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil || i+1 >= len(lines) {
			continue
		}
		dateLine := strings.TrimSpace(lines[i+1])
		dates := fbDateTokenRe.FindAllString(dateLine, -1)
		if len(dates) == 0 {
			continue
		}

		entry := types.WorkExperience{
			JobTitle:  optional(strings.TrimSpace(m[1])),
			Company:   optional(strings.TrimSpace(m[2])),
			Industry:  optional(inferIndustry(strings.TrimSpace(m[2]))),
			StartDate: optional(dates[0]),
			EndDate:   optional(dates[len(dates)-1]),
		}

		// Body runs until the next job line.
		var body []string
		j := i + 2
		for ; j < len(lines); j++ {
			if fbJobLineRe.MatchString(strings.TrimSpace(lines[j])) {
				break
			}
			body = append(body, lines[j])
		}
		i = j - 1

		description := strings.TrimSpace(strings.Join(body, "\n"))
		entry.Description = optional(description)
		entry.Achievements = fbAchievements(description)
		experiences = append(experiences, entry)
	}
	return experiences
}

func fbAchievements(description string) []string {
	var achievements []string
	for _, line := range strings.Split(description, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") {
			if item := strings.TrimSpace(fbBulletRe.ReplaceAllString(trimmed, "")); item != "" {
				achievements = append(achievements, item)
			}
		}
	}
	return achievements
}

// fbSkills reads labeled category lines such as "Technical: Go, SQL".
// Each category accepts a few synonymous labels; the first one found wins.
func fbSkills(text string) types.Skills {
	section := sectionBody(text, fbSkillsRe)
	return types.Skills{
		Technical: fbSkillCategory(section, []string{"Technical", "Programming", "Development"}),
		Design:    fbSkillCategory(section, []string{"Design", "Creative", "Visual"}),
		Tools:     fbSkillCategory(section, []string{"Tools", "Software", "Applications"}),
		Soft:      fbSkillCategory(section, []string{"Soft", "Personal", "Communication"}),
		Languages: fbLanguages(text),
	}
}

func fbSkillCategory(section string, labels []string) []string {
	for _, label := range labels {
		re := regexp.MustCompile(`(?i)` + label + `:\s*([^\n]+)`)
		m := re.FindStringSubmatch(section)
		if m == nil {
			continue
		}
		var skills []string
		for _, token := range strings.Split(m[1], ",") {
			if skill := strings.TrimSpace(token); skill != "" {
				skills = append(skills, skill)
			}
		}
		return skills
	}
	return []string{}
}

func fbLanguages(text string) []types.Language {
	section := sectionBody(text, fbLanguagesRe)
	languages := []types.Language{}
	for _, m := range fbLangEntryRe.FindAllStringSubmatch(section, -1) {
		languages = append(languages, types.Language{
			Name:        strings.TrimSpace(m[1]),
			Proficiency: optional(strings.TrimSpace(m[2])),
		})
	}
	return languages
}

// fbEducation expects degree, institution and a year line in sequence.
func fbEducation(text string) []types.Education {
	section := sectionBody(text, fbEducationRe)
	education := []types.Education{}
	for _, m := range fbEducationEnRe.FindAllStringSubmatch(section, -1) {
		education = append(education, types.Education{
			Degree:      optional(strings.TrimSpace(m[1])),
			Institution: optional(strings.TrimSpace(m[2])),
			EndDate:     optional(fbYearRe.FindString(m[3])),
			GPA:         optional(captureFirst(fbGPARe, m[3])),
		})
	}
	return education
}

func fbCertifications(text string) []types.Certification {
	section := sectionBody(text, fbCertsRe)
	certifications := []types.Certification{}
	for _, m := range fbCertEntryRe.FindAllStringSubmatch(section, -1) {
		certifications = append(certifications, types.Certification{
			Name: optional(strings.TrimSpace(m[1])),
			Date: optional(m[2]),
		})
	}
	return certifications
}

func inferIndustry(company string) string {
	lower := strings.ToLower(company)
	for _, entry := range fbIndustryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.industry
			}
		}
	}
	return ""
}

// sectionBody returns the text after the first match of headerRe, cut at
// the next all-caps header line. Empty when the header is absent.
func sectionBody(text string, headerRe *regexp.Regexp) string {
	loc := headerRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	body := text[loc[1]:]
	if end := fbHeaderLineRe.FindStringIndex(body); end != nil {
		body = body[:end[0]]
	}
	return strings.TrimSpace(body)
}

func captureFirst(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return types.StringPtr(s)
}
