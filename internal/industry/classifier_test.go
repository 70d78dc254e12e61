package industry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/profile"
)

func profileWith(skills []string, titles ...string) profile.Profile {
	p := profile.Templated("", "")
	p.Templated = false
	p.Summary = ""
	p.Skills = skills
	p.Experience = nil
	for _, title := range titles {
		p.Experience = append(p.Experience, profile.Experience{Position: title, Company: "Acme"})
	}
	return p
}

func TestClassifyTechnologyStrictlyHighest(t *testing.T) {
	p := profileWith([]string{"javascript", "react", "aws", "docker"})
	got := Default().Classify(p)

	require.Equal(t, Technology, got.Primary)
	tech := got.PerIndustryScores[Technology]
	for tag, score := range got.PerIndustryScores {
		if tag != Technology {
			assert.Less(t, score, tech, "industry %s", tag)
		}
	}
	assert.Equal(t, 20, tech)
	assert.Equal(t, 25, got.Confidence)
	assert.Equal(t, []string{"javascript", "react", "aws", "docker"}, got.MatchedSkills)
}

func TestClassifyWeights(t *testing.T) {
	table := Table{
		ConfidenceScale: 10,
		Industries: []Signature{
			{Tag: "alpha", Keywords: []string{"widget"}, Skills: []string{"Lathe"}, Roles: []string{"machinist"}},
			{Tag: "beta", Keywords: []string{"gadget"}},
		},
	}
	c, err := NewClassifier(table)
	require.NoError(t, err)

	p := profileWith([]string{"Lathe"}, "Senior Machinist")
	p.Summary = "Built widget after widget."
	got := c.Classify(p)

	// two keyword hits, one skill, one role
	assert.Equal(t, 2*2+5+10, got.PerIndustryScores["alpha"])
	assert.Equal(t, 0, got.PerIndustryScores["beta"])
	assert.Equal(t, Tag("alpha"), got.Primary)
	assert.Equal(t, 100, got.Confidence)
}

func TestClassifyTieGoesToFirstDeclared(t *testing.T) {
	table := Table{Industries: []Signature{
		{Tag: "first", Skills: []string{"Shared"}},
		{Tag: "second", Skills: []string{"Shared"}},
	}}
	c, err := NewClassifier(table)
	require.NoError(t, err)

	got := c.Classify(profileWith([]string{"shared"}))
	assert.Equal(t, Tag("first"), got.Primary)
	assert.Equal(t, got.PerIndustryScores["first"], got.PerIndustryScores["second"])
}

func TestClassifyEmptyProfile(t *testing.T) {
	got := Default().Classify(profileWith(nil))
	assert.Equal(t, Technology, got.Primary)
	assert.Equal(t, 0, got.Confidence)
	assert.Len(t, got.PerIndustryScores, len(DefaultTable().Industries))
	assert.NotNil(t, got.MatchedSkills)
}

func TestClassifyIgnoresSynthesizedDescriptions(t *testing.T) {
	p := profileWith(nil)
	p.Experience = []profile.Experience{{
		Position:               "Clerk",
		Company:                "Acme",
		Description:            "software software software cloud api",
		DescriptionSynthesized: true,
	}}
	got := Default().Classify(p)
	assert.Equal(t, 0, got.PerIndustryScores[Technology])
}

func TestNewClassifierCopiesTable(t *testing.T) {
	table := DefaultTable()
	c, err := NewClassifier(table)
	require.NoError(t, err)

	table.Industries[0].Skills[0] = "mutated"
	assert.NotEqual(t, "mutated", c.Table().Industries[0].Skills[0])
}

func TestLoadTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "industries.yaml")
	data := []byte(`industries:
  - tag: robotics
    keywords: [robot, actuator]
    skills: [ROS]
    roles: [robotics engineer]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultConfidenceScale), table.ConfidenceScale)
	require.Len(t, table.Industries, 1)
	assert.Equal(t, Tag("robotics"), table.Industries[0].Tag)
	assert.Equal(t, []string{"ROS"}, table.Industries[0].Skills)
}

func TestLoadTableRejectsInvalid(t *testing.T) {
	_, err := ParseTable([]byte("industries:\n  - tag: a\n  - tag: a\n"))
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = ParseTable([]byte("industries: []\n"))
	assert.ErrorIs(t, err, ErrInvalidTable)

	_, err = LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTableYAMLRoundTrip(t *testing.T) {
	out, err := DefaultTable().YAML()
	require.NoError(t, err)

	parsed, err := ParseTable(out)
	require.NoError(t, err)
	assert.Equal(t, DefaultTable(), parsed)
}
