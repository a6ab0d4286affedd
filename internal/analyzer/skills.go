package analyzer

import (
	"regexp"
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

var skillsSectionKeywords = []string{"skills", "technologies", "tools", "competencies"}

// Category keyword lists. Classification matches the skill token itself,
// not the label it was listed under, so "Figma" under a "Technical:"
// heading still lands in design. Known heuristic limitation, preserved.
var (
	designSkillKeywords = []string{
		"ui", "ux", "design", "figma", "sketch", "adobe",
		"photoshop", "illustrator", "indesign",
	}
	technicalSkillKeywords = []string{
		"javascript", "python", "java", "react", "angular",
		"vue", "node", "sql", "html", "css",
	}
	toolSkillKeywords = []string{
		"git", "docker", "kubernetes", "aws", "azure",
		"jenkins", "jira", "confluence",
	}
)

var (
	skillDelimiterRe = regexp.MustCompile(`[,;|•·]`)
	skillLabelRe     = regexp.MustCompile(`^[A-Za-z][A-Za-z ]{0,29}:\s*`)
	languageRe       = regexp.MustCompile(`(?i)([A-Za-z]+):\s*(Native|Fluent|Advanced|Intermediate|Basic|Beginner|Elementary)`)
)

const (
	minSkillLen = 2  // tokens must be at least this long
	maxSkillLen = 29 // and at most this long
)

// extractSkills splits each line of the skills section into candidate
// tokens and classifies every token into exactly one category. Languages
// are collected independently from a LANGUAGES-headed region.
func (a *Analyzer) extractSkills() types.Skills {
	skills := types.Skills{
		Technical: []string{},
		Design:    []string{},
		Tools:     []string{},
		Soft:      []string{},
		Languages: []types.Language{},
	}

	start := a.findSectionStart(skillsSectionKeywords)
	if start != -1 {
		for _, line := range a.lines[start:] {
			if isSectionHeader(line) {
				break
			}

			for _, token := range tokenizeSkillLine(line) {
				switch classifySkill(token) {
				case "design":
					skills.Design = append(skills.Design, token)
				case "technical":
					skills.Technical = append(skills.Technical, token)
				case "tools":
					skills.Tools = append(skills.Tools, token)
				default:
					skills.Soft = append(skills.Soft, token)
				}
			}
		}
	}

	skills.Languages = a.extractLanguages()

	return skills
}

// tokenizeSkillLine strips an optional "Category:" label, splits on the
// common delimiters, and keeps tokens of plausible skill length.
func tokenizeSkillLine(line string) []string {
	line = skillLabelRe.ReplaceAllString(line, "")

	var tokens []string
	for _, raw := range skillDelimiterRe.Split(line, -1) {
		token := strings.TrimSpace(raw)
		if len(token) >= minSkillLen && len(token) <= maxSkillLen {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// classifySkill assigns a token to design, technical or tools by keyword
// substring; anything unmatched defaults to soft.
func classifySkill(token string) string {
	lower := strings.ToLower(token)

	for _, kw := range designSkillKeywords {
		if strings.Contains(lower, kw) {
			return "design"
		}
	}
	for _, kw := range technicalSkillKeywords {
		if strings.Contains(lower, kw) {
			return "technical"
		}
	}
	for _, kw := range toolSkillKeywords {
		if strings.Contains(lower, kw) {
			return "tools"
		}
	}
	return "soft"
}

// extractLanguages matches "LanguageName: ProficiencyWord" lines inside
// a languages-headed section.
func (a *Analyzer) extractLanguages() []types.Language {
	languages := []types.Language{}

	start := a.findSectionStart([]string{"languages"})
	if start == -1 {
		return languages
	}

	for _, line := range a.lines[start:] {
		if isSectionHeader(line) {
			break
		}
		for _, m := range languageRe.FindAllStringSubmatch(line, -1) {
			languages = append(languages, types.Language{
				Name:        m[1],
				Proficiency: types.StringPtr(m[2]),
			})
		}
	}

	return languages
}
