package profile

import (
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hubhub/cvparser/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRe = regexp.MustCompile(`\D`)
	// urlRe is deliberately permissive: profile URLs arrive without
	// protocol more often than not.
	urlRe      = regexp.MustCompile(`^(?i)(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
	linkedinRe = regexp.MustCompile(`^(?i)(https?://)?(www\.)?linkedin\.com/in/[\w-]+/?$`)
)

// IsValidEmail checks basic email shape: something@something.something.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhone accepts any phone number with 7 to 15 digits, ignoring
// separators and country-code punctuation.
func IsValidPhone(phone string) bool {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	return len(digits) >= 7 && len(digits) <= 15
}

// IsValidURL accepts URLs with or without a protocol. LinkedIn profile
// URLs get their own pattern; everything else must survive url.Parse
// once an https prefix is assumed, with a regex shape check as fallback.
func IsValidURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}

	if linkedinRe.MatchString(trimmed) {
		return true
	}

	test := trimmed
	if !strings.HasPrefix(test, "http") {
		test = "https://" + test
	}
	if u, err := url.Parse(test); err == nil && u.Host != "" {
		return true
	}

	return urlRe.MatchString(trimmed)
}

// IsValidProficiency checks the 1..5 rating scale.
func IsValidProficiency(level int) bool {
	return level >= ProficiencyMin && level <= ProficiencyMax
}

// IsValidExperienceYears checks the accepted experience range.
func IsValidExperienceYears(years float64) bool {
	return years >= ExperienceYearsMin && years <= ExperienceYearsMax
}

func fieldValid(required bool) types.FieldStatus {
	return types.FieldStatus{IsValid: true, Message: "", Severity: "info", Required: required}
}

func fieldInvalid(message, severity string, required bool) types.FieldStatus {
	return types.FieldStatus{IsValid: false, Message: message, Severity: severity, Required: required}
}

// validateCoreField applies the field-specific predicate for one core
// profile field. Empty values fail with the field's required message;
// present values fail only their format check.
func validateCoreField(fieldName, value string) types.FieldStatus {
	if strings.TrimSpace(value) == "" {
		message, ok := requiredMessages[fieldName]
		if !ok {
			message = "Please provide " + strings.ReplaceAll(fieldName, "_", " ")
		}
		return fieldInvalid(message, "error", true)
	}

	switch fieldName {
	case "email":
		if !IsValidEmail(value) {
			return fieldInvalid(MsgEmailInvalid, "error", true)
		}
	case "phone":
		if !IsValidPhone(value) {
			return fieldInvalid(MsgPhoneInvalid, "error", true)
		}
	case "portfolio_url":
		if !IsValidURL(value) {
			return fieldInvalid(MsgPortfolioInvalid, "error", true)
		}
	case "professional_summary":
		if len(value) < SummaryMinimumChars {
			return fieldInvalid(MsgSummaryTooShort, "warning", true)
		}
	}

	return fieldValid(true)
}

func validateExperienceYearsField(years float64) types.FieldStatus {
	if !IsValidExperienceYears(years) {
		return fieldInvalid(MsgExperienceYearsInvalid, "error", true)
	}
	return fieldValid(true)
}

// experienceDateLayouts covers the free-text dates the parser emits.
var experienceDateLayouts = []string{"Jan 2006", "January 2006", "2006"}

func parseExperienceDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range experienceDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TotalExperienceYears sums dated experience durations in years, rounded
// to one decimal. Current positions count up to now; entries whose end
// does not follow their start contribute nothing.
func TotalExperienceYears(experience []types.WorkExperience) float64 {
	if len(experience) == 0 {
		return 0
	}

	now := time.Now()
	totalMonths := 0
	for _, exp := range experience {
		start, ok := parseExperienceDate(deref(exp.StartDate))
		if !ok {
			continue
		}
		end := now
		if !exp.IsCurrent {
			if raw := deref(exp.EndDate); raw != "" && !strings.EqualFold(raw, "present") {
				if parsed, ok := parseExperienceDate(raw); ok {
					end = parsed
				}
			}
		}
		if end.After(start) {
			totalMonths += (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
