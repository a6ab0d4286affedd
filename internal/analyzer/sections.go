package analyzer

import (
	"regexp"
	"strings"
)

// Recognized resume section keywords. A short line whose lowercase form
// contains one of these bounds the text into logical regions.
var sectionKeywords = []string{
	"experience", "education", "skills", "projects",
	"awards", "publications", "certifications",
}

const maxHeaderLen = 50

var (
	dateLineRe = regexp.MustCompile(`(?i)\b\d{4}\b|\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*\s+\d{4}\b`)
	yearRe     = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	currentRe  = regexp.MustCompile(`(?i)present|current|now`)
)

// isSectionHeader reports whether a line delimits a new resume section.
func isSectionHeader(line string) bool {
	if len(line) >= maxHeaderLen {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// findSectionStart returns the index of the line after the first line
// containing any of the given keywords, or -1 if none matches.
func (a *Analyzer) findSectionStart(keywords []string) int {
	for i, line := range a.lines {
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return i + 1
			}
		}
	}
	return -1
}

// containsDate reports whether a line carries a year or month-year token.
func containsDate(line string) bool {
	return dateLineRe.MatchString(line)
}

// dateRange is the free-text date information pulled from a single line.
type dateRange struct {
	start     string
	end       string
	isCurrent bool
}

// extractDates pulls the first and second 4-digit years from a line.
// A "present"-style marker sets the current flag and stands in for a
// missing end year.
func extractDates(line string) dateRange {
	years := yearRe.FindAllString(line, -1)
	isCurrent := currentRe.MatchString(line)

	var d dateRange
	d.isCurrent = isCurrent
	if len(years) > 0 {
		d.start = years[0]
	}
	switch {
	case len(years) > 1:
		d.end = years[1]
	case isCurrent:
		d.end = "present"
	case len(years) > 0:
		d.end = years[0]
	}
	return d
}
