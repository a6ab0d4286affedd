package analyzer

import (
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

// The trailing resume sections get minimal, best-effort treatment:
// single-keyword line detection with title capture only.

var (
	certificationKeywords = []string{"certification", "certificate", "certified", "license"}
	awardKeywords         = []string{"award", "honor", "recognition", "achievement"}
	publicationKeywords   = []string{"publication", "paper", "article", "journal"}
	projectKeywords       = []string{"project", "portfolio"}
)

const minProjectLineLen = 10

func (a *Analyzer) extractCertifications() []types.Certification {
	var certs []types.Certification

	for _, line := range a.lines {
		lower := strings.ToLower(line)
		if !containsAny(lower, certificationKeywords) {
			continue
		}

		cert := types.Certification{Name: types.StringPtr(line)}
		if containsDate(line) {
			dates := extractDates(line)
			if dates.end != "" {
				cert.Date = types.StringPtr(dates.end)
			} else if dates.start != "" {
				cert.Date = types.StringPtr(dates.start)
			}
		}
		certs = append(certs, cert)
	}

	return certs
}

func (a *Analyzer) extractAwards() []types.Award {
	var awards []types.Award

	for _, line := range a.lines {
		if containsAny(strings.ToLower(line), awardKeywords) {
			awards = append(awards, types.Award{Title: types.StringPtr(line)})
		}
	}
	return awards
}

func (a *Analyzer) extractPublications() []types.Publication {
	var pubs []types.Publication

	for _, line := range a.lines {
		if containsAny(strings.ToLower(line), publicationKeywords) {
			pubs = append(pubs, types.Publication{Title: types.StringPtr(line)})
		}
	}
	return pubs
}

func (a *Analyzer) extractProjects() []types.Project {
	var projects []types.Project

	start := a.findSectionStart(projectKeywords)
	if start == -1 {
		return projects
	}

	for _, line := range a.lines[start:] {
		if isSectionHeader(line) {
			break
		}
		if len(line) > minProjectLineLen {
			projects = append(projects, types.Project{
				Name:        types.StringPtr(line),
				Description: types.StringPtr(line),
			})
		}
	}

	return projects
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
