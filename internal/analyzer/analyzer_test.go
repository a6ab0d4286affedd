package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const designerCV = `Jane Doe
jane.doe@example.com
(555) 123-4567
linkedin.com/in/janedoe
Website: https://janedoe.design

PROFESSIONAL SUMMARY
Product designer with eight years of experience shipping consumer apps.
Focused on design systems.

WORK EXPERIENCE
Senior Product Designer at Acme Corp
Jan 2020 - Present
Led redesign of the checkout flow.
Product Designer - Beta Labs
2016 - 2019
Shipped the mobile app.

EDUCATION
State University bachelor of design
2012 - 2016

LANGUAGES
English: Native
Spanish: Intermediate

SKILLS
Technical: Figma, Sketch, HTML, CSS
Soft: Communication, Leadership

CERTIFICATIONS
Certified UX Professional - 2021
`

func TestParseFullDocument(t *testing.T) {
	data := New(designerCV).Parse()
	require.NotNil(t, data)

	assert.Equal(t, designerCV, data.RawText)

	// Personal details are scanned over the whole document.
	require.NotNil(t, data.Personal.Name)
	assert.Equal(t, "Jane Doe", *data.Personal.Name)
	require.NotNil(t, data.Personal.Email)
	assert.Equal(t, "jane.doe@example.com", *data.Personal.Email)
	require.NotNil(t, data.Personal.Phone)
	assert.Equal(t, "(555) 123-4567", *data.Personal.Phone)
	require.NotNil(t, data.Personal.LinkedIn)
	assert.Equal(t, "linkedin.com/in/janedoe", *data.Personal.LinkedIn)
	require.NotNil(t, data.Personal.Portfolio)
	assert.Equal(t, "https://janedoe.design", *data.Personal.Portfolio)
	require.NotNil(t, data.Personal.Summary)
	assert.Equal(t,
		"Product designer with eight years of experience shipping consumer apps. Focused on design systems.",
		*data.Personal.Summary)

	require.Len(t, data.WorkExperience, 2)

	first := data.WorkExperience[0]
	require.NotNil(t, first.JobTitle)
	assert.Equal(t, "Senior Product Designer", *first.JobTitle)
	require.NotNil(t, first.Company)
	assert.Equal(t, "Acme Corp", *first.Company)
	require.NotNil(t, first.StartDate)
	assert.Equal(t, "2020", *first.StartDate)
	require.NotNil(t, first.EndDate)
	assert.Equal(t, "present", *first.EndDate)
	assert.True(t, first.IsCurrent)
	require.NotNil(t, first.Description)
	assert.Equal(t, "Led redesign of the checkout flow.", *first.Description)

	second := data.WorkExperience[1]
	require.NotNil(t, second.JobTitle)
	assert.Equal(t, "Product Designer", *second.JobTitle)
	require.NotNil(t, second.Company)
	assert.Equal(t, "Beta Labs", *second.Company)
	require.NotNil(t, second.StartDate)
	assert.Equal(t, "2016", *second.StartDate)
	require.NotNil(t, second.EndDate)
	assert.Equal(t, "2019", *second.EndDate)
	assert.False(t, second.IsCurrent)

	require.Len(t, data.Education, 1)
	edu := data.Education[0]
	require.NotNil(t, edu.Institution)
	assert.Equal(t, "State University bachelor of design", *edu.Institution)
	require.NotNil(t, edu.Degree)
	assert.Equal(t, "State University bachelor of design", *edu.Degree)
	require.NotNil(t, edu.StartDate)
	assert.Equal(t, "2012", *edu.StartDate)
	require.NotNil(t, edu.EndDate)
	assert.Equal(t, "2016", *edu.EndDate)

	// Classification follows the token, not the label it sat under, so
	// Figma and Sketch land in design despite the "Technical:" heading.
	assert.Equal(t, []string{"Figma", "Sketch"}, data.Skills.Design)
	assert.Equal(t, []string{"HTML", "CSS"}, data.Skills.Technical)
	assert.Equal(t, []string{"Communication", "Leadership"}, data.Skills.Soft)
	assert.Empty(t, data.Skills.Tools)

	require.Len(t, data.Skills.Languages, 2)
	assert.Equal(t, "English", data.Skills.Languages[0].Name)
	require.NotNil(t, data.Skills.Languages[0].Proficiency)
	assert.Equal(t, "Native", *data.Skills.Languages[0].Proficiency)
	assert.Equal(t, "Spanish", data.Skills.Languages[1].Name)
	require.NotNil(t, data.Skills.Languages[1].Proficiency)
	assert.Equal(t, "Intermediate", *data.Skills.Languages[1].Proficiency)

	// The CERTIFICATIONS header line itself matches the keyword scan.
	require.Len(t, data.Certifications, 2)
	cert := data.Certifications[1]
	require.NotNil(t, cert.Name)
	assert.Equal(t, "Certified UX Professional - 2021", *cert.Name)
	require.NotNil(t, cert.Date)
	assert.Equal(t, "2021", *cert.Date)

	assert.Empty(t, data.Projects)
	assert.Empty(t, data.Awards)
	assert.Empty(t, data.Publications)
	assert.Empty(t, data.Errors)

	assert.InDelta(t, 1.0, data.Confidence, 1e-9)
}

func TestParseEmptyText(t *testing.T) {
	data := New("").Parse()
	require.NotNil(t, data)

	assert.Nil(t, data.Personal.Name)
	assert.Nil(t, data.Personal.Email)
	assert.Empty(t, data.WorkExperience)
	assert.Empty(t, data.Education)
	assert.Empty(t, data.Skills.AllSkills())
	assert.Zero(t, data.Confidence)
}

func TestParseUnstructuredText(t *testing.T) {
	data := New("lorem ipsum dolor sit amet\nconsectetur adipiscing elit\n").Parse()
	require.NotNil(t, data)

	assert.Empty(t, data.WorkExperience)
	assert.Empty(t, data.Skills.AllSkills())
	assert.Less(t, data.Confidence, 0.5)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "first line",
			text: "Jane Doe\njane@example.com",
			want: "Jane Doe",
		},
		{
			name: "skips contact lines",
			text: "jane@example.com\n555-123-4567\nJane Doe",
			want: "Jane Doe",
		},
		{
			name: "single word rejected",
			text: "Jane\njane@example.com",
			want: "",
		},
		{
			name: "too many words rejected",
			text: "Jane Marie Anne Doe Smith\njane@example.com",
			want: "",
		},
		{
			name: "beyond first five lines ignored",
			text: "a\nb\nc\nd\ne\nJane Doe",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.text).extractName())
		})
	}
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name string
		line string
		want dateRange
	}{
		{
			name: "month year range with present",
			line: "Jan 2020 - Present",
			want: dateRange{start: "2020", end: "present", isCurrent: true},
		},
		{
			name: "year range",
			line: "2016 - 2019",
			want: dateRange{start: "2016", end: "2019"},
		},
		{
			name: "single year doubles as end",
			line: "Summer 2021",
			want: dateRange{start: "2021", end: "2021"},
		},
		{
			name: "current marker without years",
			line: "current position",
			want: dateRange{end: "present", isCurrent: true},
		},
		{
			name: "no dates",
			line: "Led a team of four designers",
			want: dateRange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDates(tt.line))
		})
	}
}

func TestIsSectionHeader(t *testing.T) {
	assert.True(t, isSectionHeader("SKILLS"))
	assert.True(t, isSectionHeader("Work Experience"))
	assert.True(t, isSectionHeader("EDUCATION"))
	assert.False(t, isSectionHeader("Jane Doe"))
	// Long prose lines never count even when they mention a keyword.
	assert.False(t, isSectionHeader("Product designer with eight years of experience shipping consumer apps."))
}

func TestParseJobLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		title   string
		company string
	}{
		{name: "at separator", line: "Senior Designer at Acme Corp", title: "Senior Designer", company: "Acme Corp"},
		{name: "dash separator", line: "Product Designer - Beta Labs", title: "Product Designer", company: "Beta Labs"},
		{name: "pipe separator", line: "UX Researcher | Gamma Inc", title: "UX Researcher", company: "Gamma Inc"},
		{name: "no separator keeps title only", line: "Freelance Illustrator", title: "Freelance Illustrator", company: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := parseJobLine(tt.line)
			require.NotNil(t, exp.JobTitle)
			assert.Equal(t, tt.title, *exp.JobTitle)
			if tt.company == "" {
				assert.Nil(t, exp.Company)
			} else {
				require.NotNil(t, exp.Company)
				assert.Equal(t, tt.company, *exp.Company)
			}
		})
	}
}

func TestTokenizeSkillLine(t *testing.T) {
	assert.Equal(t,
		[]string{"Figma", "Sketch", "Adobe XD"},
		tokenizeSkillLine("Design: Figma, Sketch; Adobe XD"))
	assert.Equal(t,
		[]string{"Git", "Docker"},
		tokenizeSkillLine("Git • Docker • x"))
	assert.Nil(t, tokenizeSkillLine(""))
}

func TestClassifySkill(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{token: "Figma", want: "design"},
		{token: "Adobe Photoshop", want: "design"},
		{token: "JavaScript", want: "technical"},
		{token: "React Native", want: "technical"},
		{token: "Docker", want: "tools"},
		{token: "AWS", want: "tools"},
		{token: "Communication", want: "soft"},
		{token: "Leadership", want: "soft"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, classifySkill(tt.token))
		})
	}
}

func TestExtractEducationDegreeIsCaseSensitive(t *testing.T) {
	data := New("EDUCATION\nBachelor of Arts, City College\n2010 - 2014\n").Parse()

	require.Len(t, data.Education, 1)
	assert.NotNil(t, data.Education[0].Institution)
	// "Bachelor" capitalized does not trip the lowercase keyword match.
	assert.Nil(t, data.Education[0].Degree)
}

func TestExtractProjects(t *testing.T) {
	data := New("PROJECTS\nRedesigned the onboarding funnel for mobile\nSKILLS\nFigma\n").Parse()

	require.Len(t, data.Projects, 1)
	require.NotNil(t, data.Projects[0].Name)
	assert.Equal(t, "Redesigned the onboarding funnel for mobile", *data.Projects[0].Name)
}
