package analyzer

import (
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

var educationSectionKeywords = []string{"education", "academic", "university", "college", "degree"}

var educationEntryKeywords = []string{
	"university", "college", "institute", "school",
	"bachelor", "master", "phd", "degree",
}

var degreeKeywords = []string{"bachelor", "master", "phd"}

// extractEducation mirrors the work-experience state machine, keyed on
// institution-type keywords instead of the at/-/| separators.
func (a *Analyzer) extractEducation() []types.Education {
	educations := []types.Education{}

	start := a.findSectionStart(educationSectionKeywords)
	if start == -1 {
		return educations
	}

	state := inSection
	var current types.Education

	for _, line := range a.lines[start:] {
		if isSectionHeader(line) && !strings.Contains(strings.ToLower(line), "education") {
			break
		}

		switch {
		case looksLikeEducationEntry(line):
			if state == inEntry {
				educations = append(educations, current)
			}
			current = parseEducationLine(line)
			state = inEntry

		case state == inEntry && containsDate(line):
			dates := extractDates(line)
			if dates.start != "" {
				current.StartDate = types.StringPtr(dates.start)
			}
			if dates.end != "" {
				current.EndDate = types.StringPtr(dates.end)
			}
		}
	}

	if state == inEntry {
		educations = append(educations, current)
	}

	return educations
}

func looksLikeEducationEntry(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range educationEntryKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// parseEducationLine records the line as the institution, and also as
// the degree when the line itself carries a lowercase degree keyword.
// The case-sensitive degree check is a long-standing quirk kept as is.
func parseEducationLine(line string) types.Education {
	var edu types.Education
	edu.Institution = types.StringPtr(line)

	for _, kw := range degreeKeywords {
		if strings.Contains(line, kw) {
			edu.Degree = types.StringPtr(line)
			break
		}
	}
	return edu
}
