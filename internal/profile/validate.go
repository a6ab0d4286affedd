package profile

import "github.com/hubhub/cvparser/internal/types"

// ValidateProfileCompletion runs the full MVP rubric with the default
// group weights.
func ValidateProfileCompletion(data *types.ParsedCVData, mvp *types.MVPData) *types.ValidationResult {
	return ValidateProfileCompletionWeighted(data, mvp, DefaultWeights)
}

// ValidateProfileCompletionWeighted runs the full MVP rubric. IsValid
// requires every point across every group, regardless of how little that
// point moves the weighted percentage; the percentage exists for progress
// display, the boolean for submittability.
func ValidateProfileCompletionWeighted(data *types.ParsedCVData, mvp *types.MVPData, weights Weights) *types.ValidationResult {
	missingFields := []string{}
	suggestions := []string{}
	fieldValidation := map[string]types.FieldStatus{}

	collect := func(part groupValidation) {
		missingFields = append(missingFields, part.missingFields...)
		suggestions = append(suggestions, part.suggestions...)
		for name, status := range part.fieldValidation {
			fieldValidation[name] = status
		}
	}

	collect(validateCoreProfile(data, mvp))
	collect(validateWorkExperienceGroup(data))
	collect(validateSkillsGroup(data, mvp))
	collect(validateLanguagesGroup(data, mvp))

	completionPercentage := weightedCompletion(CompletionStatus(data, mvp), weights)

	isValid := len(missingFields) == 0
	severity := types.SeverityError
	switch {
	case isValid:
		severity = types.SeverityComplete
	case completionPercentage > 70:
		severity = types.SeverityWarning
	}

	return &types.ValidationResult{
		IsValid:              isValid,
		MissingFields:        missingFields,
		Suggestions:          suggestions,
		CompletionPercentage: completionPercentage,
		FieldValidation:      fieldValidation,
		Severity:             severity,
	}
}

type groupValidation struct {
	missingFields   []string
	suggestions     []string
	fieldValidation map[string]types.FieldStatus
}

func newGroupValidation() groupValidation {
	return groupValidation{fieldValidation: map[string]types.FieldStatus{}}
}

func (g *groupValidation) record(field string, status types.FieldStatus) {
	g.fieldValidation[field] = status
	if !status.IsValid {
		g.missingFields = append(g.missingFields, field)
		g.suggestions = append(g.suggestions, status.Message)
	}
}

func validateCoreProfile(data *types.ParsedCVData, mvp *types.MVPData) groupValidation {
	g := newGroupValidation()

	g.record("name", validateCoreField("name", deref(data.Personal.Name)))
	g.record("email", validateCoreField("email", deref(data.Personal.Email)))
	g.record("phone", validateCoreField("phone", deref(data.Personal.Phone)))

	title, availability := "", ""
	if mvp != nil {
		title, availability = mvp.Title, mvp.Availability
	}
	g.record("title", validateCoreField("title", title))
	g.record("availability", validateCoreField("availability", availability))

	portfolioURL := deref(data.Personal.Portfolio)
	if portfolioURL == "" {
		portfolioURL = deref(data.Personal.LinkedIn)
	}
	g.record("portfolio_url", validateCoreField("portfolio_url", portfolioURL))
	g.record("professional_summary", validateCoreField("professional_summary", deref(data.Personal.Summary)))

	// Zero years counts as missing even though it sits inside the valid
	// range: a profile must declare some experience.
	years := effectiveExperienceYears(data, mvp)
	yearsStatus := validateExperienceYearsField(years)
	g.fieldValidation["total_experience_years"] = yearsStatus
	if !yearsStatus.IsValid || years == 0 {
		g.missingFields = append(g.missingFields, "total_experience_years")
		if yearsStatus.Message != "" {
			g.suggestions = append(g.suggestions, yearsStatus.Message)
		} else {
			g.suggestions = append(g.suggestions, MsgExperienceYearsRequired)
		}
	}

	return g
}

func validateWorkExperienceGroup(data *types.ParsedCVData) groupValidation {
	g := newGroupValidation()

	if len(data.WorkExperience) == 0 {
		g.record("work_experience", fieldInvalid(MsgWorkExperienceRequired, "error", true))
		return g
	}

	missingCompanies, missingIndustries := false, false
	for _, exp := range data.WorkExperience {
		if !hasText(exp.Company) {
			missingCompanies = true
		}
		if !hasText(exp.Industry) {
			missingIndustries = true
		}
	}

	if missingCompanies {
		g.missingFields = append(g.missingFields, "work_experience_companies")
		g.suggestions = append(g.suggestions, MsgWorkExperienceCompanyRequired)
	}
	if missingIndustries {
		g.missingFields = append(g.missingFields, "work_experience_industries")
		g.suggestions = append(g.suggestions, MsgWorkExperienceIndustryRequired)
	}

	status := fieldValid(true)
	if missingCompanies || missingIndustries {
		status = fieldInvalid(MsgWorkExperienceIncomplete, "error", true)
	}
	g.fieldValidation["work_experience"] = status
	return g
}

func validateSkillsGroup(data *types.ParsedCVData, mvp *types.MVPData) groupValidation {
	g := newGroupValidation()

	allSkills := data.Skills.AllSkills()
	if len(allSkills) == 0 {
		g.record("skills", fieldInvalid(MsgSkillsRequired, "error", true))
		return g
	}

	// Every extracted skill needs a rating; extra ratings are harmless.
	rated := countValidProficiencies(proficiencyMap(mvp, false))
	if rated < len(allSkills) {
		g.missingFields = append(g.missingFields, "skills_proficiency")
		g.suggestions = append(g.suggestions, MsgSkillsProficiencyRequired)
		g.fieldValidation["skills"] = fieldInvalid(MsgSkillsProficiencyRequired, "error", true)
		return g
	}

	g.fieldValidation["skills"] = fieldValid(true)
	return g
}

func validateLanguagesGroup(data *types.ParsedCVData, mvp *types.MVPData) groupValidation {
	g := newGroupValidation()

	allLanguages := data.Skills.LanguageNames()
	if len(allLanguages) == 0 {
		g.record("languages", fieldInvalid(MsgLanguagesRequired, "error", true))
		return g
	}

	rated := countValidProficiencies(proficiencyMap(mvp, true))
	if rated < len(allLanguages) {
		g.missingFields = append(g.missingFields, "languages_proficiency")
		g.suggestions = append(g.suggestions, MsgLanguagesProficiencyRequired)
		g.fieldValidation["languages"] = fieldInvalid(MsgLanguagesProficiencyRequired, "error", true)
		return g
	}

	g.fieldValidation["languages"] = fieldValid(true)
	return g
}
