package analyzer

import (
	"regexp"
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

var (
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe     = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe  = regexp.MustCompile(`(?i)(?:linkedin\.com/in/|linkedin\.com/pub/)[\w-]+`)
	portfolioRe = regexp.MustCompile(`(?i)(?:portfolio|website|site):\s*(https?://\S+)`)
	digitRunRe  = regexp.MustCompile(`\d{3}`)
	spacesRe    = regexp.MustCompile(`\s+`)
)

var summaryKeywords = []string{"summary", "objective", "profile", "about", "overview"}

const summaryMaxLines = 10

// extractPersonalInfo scans the whole text (not section-scoped) for
// contact fields, then applies positional heuristics for name and summary.
func (a *Analyzer) extractPersonalInfo() types.PersonalInfo {
	var p types.PersonalInfo

	if email := emailRe.FindString(a.text); email != "" {
		p.Email = types.StringPtr(email)
	}

	if phone := phoneRe.FindString(a.text); phone != "" {
		p.Phone = types.StringPtr(strings.TrimSpace(spacesRe.ReplaceAllString(phone, " ")))
	}

	if linkedin := linkedinRe.FindString(a.text); linkedin != "" {
		p.LinkedIn = types.StringPtr(linkedin)
	}

	if m := portfolioRe.FindStringSubmatch(a.text); m != nil {
		p.Portfolio = types.StringPtr(strings.TrimSpace(m[1]))
	}

	if name := a.extractName(); name != "" {
		p.Name = types.StringPtr(name)
	}

	if summary := a.extractSummary(); summary != "" {
		p.Summary = types.StringPtr(summary)
	}

	return p
}

// extractName infers the name as the first short line (3-50 chars, 2-4
// words) among the first five lines that contains neither an "@" nor a
// 3+-digit run. Best effort, not a guarantee.
func (a *Analyzer) extractName() string {
	limit := len(a.lines)
	if limit > 5 {
		limit = 5
	}

	for _, line := range a.lines[:limit] {
		if strings.Contains(line, "@") || digitRunRe.MatchString(line) {
			continue
		}
		if len(line) <= 3 || len(line) >= 50 {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 2 && len(words) <= 4 {
			return line
		}
	}
	return ""
}

// extractSummary takes the paragraph after the first summary-keyword
// line, stopping at the next section header or after ten lines.
func (a *Analyzer) extractSummary() string {
	for i, line := range a.lines {
		lower := strings.ToLower(line)
		matched := false
		for _, kw := range summaryKeywords {
			if strings.Contains(lower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		var parts []string
		for j := i + 1; j < len(a.lines) && j <= i+summaryMaxLines; j++ {
			if isSectionHeader(a.lines[j]) {
				break
			}
			parts = append(parts, a.lines[j])
		}
		return strings.TrimSpace(strings.Join(parts, " "))
	}
	return ""
}
