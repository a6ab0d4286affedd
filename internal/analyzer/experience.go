package analyzer

import (
	"regexp"
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

var experienceKeywords = []string{"experience", "employment", "work history", "career", "professional"}

var jobSeparatorRe = regexp.MustCompile(`\s+(?:at|@|-|\|)\s+`)

// sectionState drives the positional loop over a section's line list.
type sectionState int

const (
	inSection sectionState = iota // inside the section, no entry open
	inEntry                       // accumulating lines into an open entry
)

// extractWorkExperience walks the experience section as an explicit
// state machine: job-entry lines open a record, date lines fill its
// range, everything else accretes onto the description. A record is
// appended only when a new entry line or a section boundary closes it.
func (a *Analyzer) extractWorkExperience() []types.WorkExperience {
	experiences := []types.WorkExperience{}

	start := a.findSectionStart(experienceKeywords)
	if start == -1 {
		return experiences
	}

	state := inSection
	var current types.WorkExperience

	for _, line := range a.lines[start:] {
		if isSectionHeader(line) && !strings.Contains(strings.ToLower(line), "experience") {
			break
		}

		switch {
		case state == inEntry && containsDate(line):
			dates := extractDates(line)
			if dates.start != "" {
				current.StartDate = types.StringPtr(dates.start)
			}
			if dates.end != "" {
				current.EndDate = types.StringPtr(dates.end)
			}
			current.IsCurrent = dates.isCurrent

		case looksLikeJobEntry(line):
			if state == inEntry {
				experiences = append(experiences, finishExperience(current))
			}
			current = parseJobLine(line)
			state = inEntry

		case state == inEntry:
			desc := line
			if current.Description != nil {
				desc = *current.Description + " " + line
			}
			current.Description = types.StringPtr(desc)
		}
	}

	if state == inEntry {
		experiences = append(experiences, finishExperience(current))
	}

	return experiences
}

// looksLikeJobEntry matches patterns like "Job Title at Company",
// "Job Title - Company" or "Job Title | Company".
func looksLikeJobEntry(line string) bool {
	if len(line) <= 10 || len(line) >= 100 {
		return false
	}
	return strings.Contains(line, " at ") ||
		strings.Contains(line, " - ") ||
		strings.Contains(line, " | ")
}

// parseJobLine splits an entry line into job title and company.
func parseJobLine(line string) types.WorkExperience {
	parts := jobSeparatorRe.Split(line, 2)

	var exp types.WorkExperience
	if len(parts) > 0 && strings.TrimSpace(parts[0]) != "" {
		exp.JobTitle = types.StringPtr(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		exp.Company = types.StringPtr(strings.TrimSpace(parts[1]))
	}
	return exp
}

func finishExperience(exp types.WorkExperience) types.WorkExperience {
	if exp.Description != nil {
		exp.Description = types.StringPtr(strings.TrimSpace(*exp.Description))
	}
	return exp
}
