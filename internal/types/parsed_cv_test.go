package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsedCVDataInitializesCollections(t *testing.T) {
	data := NewParsedCVData()

	assert.NotNil(t, data.WorkExperience)
	assert.NotNil(t, data.Education)
	assert.NotNil(t, data.Skills.Technical)
	assert.NotNil(t, data.Skills.Design)
	assert.NotNil(t, data.Skills.Tools)
	assert.NotNil(t, data.Skills.Soft)
	assert.NotNil(t, data.Skills.Languages)
	assert.NotNil(t, data.Errors)

	// Empty collections must serialize as arrays, not null.
	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"workExperience":[]`)
	assert.Contains(t, string(out), `"errors":[]`)
	assert.NotContains(t, string(out), "null")
}

func TestAllSkillsOrder(t *testing.T) {
	s := Skills{
		Technical: []string{"HTML", "CSS"},
		Design:    []string{"Figma"},
		Tools:     []string{"Git"},
		Soft:      []string{"Communication"},
	}

	assert.Equal(t, []string{"HTML", "CSS", "Figma", "Git", "Communication"}, s.AllSkills())
	assert.Empty(t, (&Skills{}).AllSkills())
}

func TestLanguageNames(t *testing.T) {
	s := Skills{Languages: []Language{
		{Name: "English", Proficiency: StringPtr("Native")},
		{Name: ""},
		{Name: "Spanish"},
	}}

	assert.Equal(t, []string{"English", "Spanish"}, s.LanguageNames())
}

func TestStringPtr(t *testing.T) {
	p := StringPtr("x")
	require.NotNil(t, p)
	assert.Equal(t, "x", *p)
}
