// Package analyzer turns a raw CV text blob into structured data using
// section-header detection plus field-level regexes. It is purely
// heuristic text segmentation: no model calls, no external state.
package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

// Analyzer holds the working state for one parse: the full text and its
// trimmed, non-empty line list, which is the unit for all section logic.
type Analyzer struct {
	text  string
	lines []string
}

// New prepares an Analyzer for the given raw text.
func New(text string) *Analyzer {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return &Analyzer{text: text, lines: lines}
}

// Parse runs every extraction stage and assembles the result. It never
// fails: any panic inside the heuristics is recorded in the Errors list
// and a zero-confidence result is returned instead.
func (a *Analyzer) Parse() (data *types.ParsedCVData) {
	defer func() {
		if r := recover(); r != nil {
			data = types.NewParsedCVData()
			data.RawText = a.text
			data.Errors = append(data.Errors, fmt.Sprintf("analysis failed: %v", r))
		}
	}()

	data = types.NewParsedCVData()
	data.RawText = a.text

	data.Personal = a.extractPersonalInfo()
	data.WorkExperience = a.extractWorkExperience()
	data.Education = a.extractEducation()
	data.Skills = a.extractSkills()
	data.Certifications = a.extractCertifications()
	data.Projects = a.extractProjects()
	data.Awards = a.extractAwards()
	data.Publications = a.extractPublications()

	data.Confidence = a.calculateConfidence(data)

	return data
}

// calculateConfidence scores extraction quality on a fixed 10-point
// rubric, normalized to [0,1].
func (a *Analyzer) calculateConfidence(data *types.ParsedCVData) float64 {
	score := 0.0

	if data.Personal.Name != nil {
		score += 2
	}
	if data.Personal.Email != nil {
		score += 2
	}
	if data.Personal.Phone != nil {
		score += 1
	}

	if len(data.WorkExperience) > 0 {
		score += 2
	}
	for _, exp := range data.WorkExperience {
		if exp.JobTitle != nil && exp.Company != nil {
			score += 1
			break
		}
	}

	if len(data.Education) > 0 {
		score += 1
	}

	if len(data.Skills.AllSkills()) > 0 {
		score += 1
	}

	return math.Min(score/10, 1)
}
