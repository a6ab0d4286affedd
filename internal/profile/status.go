package profile

import (
	"math"

	"github.com/hubhub/cvparser/internal/types"
)

// CompletionStatus computes the per-group point breakdown behind the
// weighted percentage. Points here count field PRESENCE, not format
// validity: an ill-formed email still counts toward progress, the binary
// gate in ValidateProfileCompletion is what rejects it.
func CompletionStatus(data *types.ParsedCVData, mvp *types.MVPData) *types.CompletionStatus {
	coreFields := map[string]bool{
		"name":                   hasText(data.Personal.Name),
		"email":                  hasText(data.Personal.Email),
		"phone":                  hasText(data.Personal.Phone),
		"title":                  mvp != nil && mvp.Title != "",
		"availability":           mvp != nil && mvp.Availability != "",
		"portfolio_url":          hasText(data.Personal.Portfolio) || hasText(data.Personal.LinkedIn),
		"professional_summary":   hasText(data.Personal.Summary),
		"total_experience_years": effectiveExperienceYears(data, mvp) != 0,
	}
	coreCompleted := 0
	for _, present := range coreFields {
		if present {
			coreCompleted++
		}
	}

	hasExperience := len(data.WorkExperience) > 0
	hasIndustries := hasExperience
	for _, exp := range data.WorkExperience {
		if !hasText(exp.Industry) {
			hasIndustries = false
			break
		}
	}

	allSkills := data.Skills.AllSkills()
	hasSkills := len(allSkills) > 0
	hasSkillProficiency := hasSkills &&
		countValidProficiencies(proficiencyMap(mvp, false)) >= len(allSkills)

	allLanguages := data.Skills.LanguageNames()
	hasLanguages := len(allLanguages) > 0
	hasLanguageProficiency := hasLanguages &&
		countValidProficiencies(proficiencyMap(mvp, true)) >= len(allLanguages)

	status := &types.CompletionStatus{
		CoreProfile:    types.GroupStatus{Completed: coreCompleted, Total: len(coreFields)},
		WorkExperience: types.GroupStatus{Completed: boolPoint(hasExperience) + boolPoint(hasIndustries), Total: 2},
		Skills:         types.GroupStatus{Completed: boolPoint(hasSkills) + boolPoint(hasSkillProficiency), Total: 2},
		Languages:      types.GroupStatus{Completed: boolPoint(hasLanguages) + boolPoint(hasLanguageProficiency), Total: 2},
		CoreFields:     coreFields,
	}

	completed := status.CoreProfile.Completed + status.WorkExperience.Completed +
		status.Skills.Completed + status.Languages.Completed
	total := status.CoreProfile.Total + status.WorkExperience.Total +
		status.Skills.Total + status.Languages.Total
	status.Overall = types.OverallStatus{
		CompletedFields: completed,
		TotalFields:     total,
		Percentage:      int(math.Round(float64(completed) / float64(total) * 100)),
	}
	return status
}

// weightedCompletion folds per-group percentages into one number.
func weightedCompletion(status *types.CompletionStatus, weights Weights) int {
	weighted := groupPercent(status.CoreProfile)*weights.CoreProfile +
		groupPercent(status.WorkExperience)*weights.WorkExperience +
		groupPercent(status.Skills)*weights.Skills +
		groupPercent(status.Languages)*weights.Languages
	return int(math.Round(weighted))
}

func groupPercent(group types.GroupStatus) float64 {
	if group.Total == 0 {
		return 0
	}
	return float64(group.Completed) / float64(group.Total) * 100
}

// effectiveExperienceYears prefers the user-declared value, falling back
// to the computed one when the declaration is absent or zero.
func effectiveExperienceYears(data *types.ParsedCVData, mvp *types.MVPData) float64 {
	if mvp != nil && mvp.TotalExperienceYears != 0 {
		return mvp.TotalExperienceYears
	}
	return TotalExperienceYears(data.WorkExperience)
}

func proficiencyMap(mvp *types.MVPData, languages bool) map[string]int {
	if mvp == nil {
		return nil
	}
	if languages {
		return mvp.LanguagesProficiency
	}
	return mvp.SkillsProficiency
}

// countValidProficiencies counts ratings inside the 1..5 scale; out of
// range entries are treated as unset.
func countValidProficiencies(ratings map[string]int) int {
	count := 0
	for _, level := range ratings {
		if IsValidProficiency(level) {
			count++
		}
	}
	return count
}

func boolPoint(b bool) int {
	if b {
		return 1
	}
	return 0
}

func hasText(s *string) bool {
	return s != nil && *s != ""
}
