package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/industry"
	"resume-insights/internal/profile"
	"resume-insights/internal/quality"
)

func completeProfile() profile.Profile {
	return profile.Profile{
		PersonalInfo: profile.PersonalInfo{
			FullName:   "Jane Doe",
			NameSource: profile.NameFromDocument,
			Email:      "jane@janedoe.dev",
			Phone:      "(555) 123-4567",
		},
		Summary: strings.TrimSpace(strings.Repeat("Engineer building reliable payment systems at scale. ", 8)),
		Experience: []profile.Experience{
			{Position: "Senior Engineer", Company: "Acme", Description: "• Cut infrastructure costs by 30%"},
			{Position: "Engineer", Company: "Initech", Description: "• Reduced p99 latency by 45%"},
		},
		Education: []profile.Education{{Degree: "BSc", Institution: "MIT"}},
		Skills:    []string{"Go", "SQL", "Docker", "Kubernetes", "AWS"},
		Projects:  []profile.Project{{Name: "Ledger"}},
	}
}

func uniformAnalysis(score int) quality.Analysis {
	out := quality.Analysis{}
	for _, s := range quality.Order {
		out[s] = quality.Result{Score: score, Strengths: []string{}, Improvements: []quality.Improvement{}, Details: map[string]any{}}
	}
	return out
}

func TestStructuralScore(t *testing.T) {
	cases := []struct {
		name string
		edit func(p *profile.Profile)
		want int
	}{
		{name: "complete", edit: func(p *profile.Profile) {}, want: 100},
		{name: "short summary", edit: func(p *profile.Profile) { p.Summary = "Engineer." }, want: 95},
		{name: "single position", edit: func(p *profile.Profile) { p.Experience = p.Experience[:1] }, want: 95},
		{name: "placeholder education", edit: func(p *profile.Profile) {
			p.Education = []profile.Education{{Degree: "Degree", Placeholder: true}}
		}, want: 85},
		{name: "few skills", edit: func(p *profile.Profile) { p.Skills = []string{"Go"} }, want: 95},
		{name: "no optional sections", edit: func(p *profile.Profile) { p.Projects = nil }, want: 95},
		{name: "placeholder name", edit: func(p *profile.Profile) {
			p.PersonalInfo.FullName = profile.PlaceholderName
			p.PersonalInfo.NameSource = profile.NameFromPlaceholder
		}, want: 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := completeProfile()
			tc.edit(&p)
			assert.Equal(t, tc.want, structuralScore(p))
		})
	}

	assert.Equal(t, 0, structuralScore(profile.Profile{}))
}

func TestIndustryAdjustedScore(t *testing.T) {
	p := completeProfile()
	cls := industry.Classification{Primary: industry.Technology, Confidence: 80, MatchedSkills: []string{"Go", "SQL"}}

	// 0.35*80 + 25*1 + 25*(2/5) + 0.15*100
	assert.Equal(t, 78, industryAdjustedScore(p, cls, 100))

	p.Experience[1].Description = "• Improved 50% of things"
	p.Experience[1].DescriptionSynthesized = true
	assert.InDelta(t, 0.5, metricDensity(p.Experience), 1e-9)
	assert.Zero(t, metricDensity(nil))
}

func TestScoreCombinesComponents(t *testing.T) {
	p := completeProfile()
	cls := industry.Classification{
		Primary:       industry.Technology,
		Confidence:    80,
		MatchedSkills: []string{"Go", "SQL"},
		MissingSkills: []string{"Terraform", "Redis"},
	}
	sections := uniformAnalysis(70)
	sections[quality.Summary] = quality.Result{
		Score:        70,
		Strengths:    []string{"Summary is concise"},
		Improvements: []quality.Improvement{{Message: "Add a measurable result to your summary", Priority: quality.PriorityHigh}},
	}
	sections[quality.Experience] = quality.Result{
		Score:        70,
		Improvements: []quality.Improvement{{Message: "Add more bullet points", Priority: quality.PriorityMedium}},
	}
	sections[quality.Hobbies] = quality.Result{
		Score:        70,
		Improvements: []quality.Improvement{{Message: "Consider adding a hobbies section", Priority: quality.PriorityLow}},
	}

	report := Score(p, cls, sections)

	assert.Equal(t, 100, report.StructuralScore)
	assert.Equal(t, 78, report.IndustryScore)
	assert.Equal(t, 70, report.SectionScore)
	// round(0.2*100 + 0.4*78 + 0.4*70)
	assert.Equal(t, 79, report.OverallScore)
	assert.Equal(t, []string{"Summary is concise"}, report.Strengths)
	assert.Equal(t, []string{
		"Add a measurable result to your summary",
		"Add more bullet points",
		"Consider adding a hobbies section",
	}, report.Improvements)
	assert.Empty(t, report.CriticalIssues)
	assert.NotNil(t, report.CriticalIssues)

	recs := report.Recommendations
	require.Len(t, recs.Immediate, 1)
	require.Len(t, recs.ShortTerm, 1)
	require.Len(t, recs.LongTerm, 2)
	assert.Equal(t, "summary", recs.Immediate[0].Section)
	assert.Equal(t, "experience", recs.ShortTerm[0].Section)
	assert.Equal(t, "hobbies", recs.LongTerm[0].Section)
	assert.Equal(t, "industry-skill-gap", recs.LongTerm[1].ID)
	assert.Equal(t, 2, recs.LongTerm[1].Order)
}

func TestScoreLowConfidenceAddsIndustryImprovement(t *testing.T) {
	p := completeProfile()
	cls := industry.Classification{Primary: industry.Design, Confidence: 25, MissingSkills: []string{"Figma"}}

	report := Score(p, cls, uniformAnalysis(80))

	require.NotEmpty(t, report.Improvements)
	last := report.Improvements[len(report.Improvements)-1]
	assert.Contains(t, last, "design")
	require.Len(t, report.Recommendations.ShortTerm, 1)
	assert.Equal(t, "industry", report.Recommendations.ShortTerm[0].Section)
}

func TestCriticalIssues(t *testing.T) {
	report := Score(profile.Profile{}, industry.Classification{}, quality.Analysis{})
	assert.Equal(t, 0, report.OverallScore)
	assert.Equal(t, []string{
		"Your full name is missing",
		"No email, phone or LinkedIn profile was found",
	}, report.CriticalIssues)
	assert.Empty(t, report.Recommendations.Immediate)
	require.Len(t, report.Recommendations.ShortTerm, 1)

	templated := profile.Templated("jane-doe.txt", "")
	report = Score(templated, industry.Classification{}, quality.Analysis{})
	// template filler earns nothing; structural 10 is the filename name alone
	assert.Equal(t, 10, report.StructuralScore)
	assert.Equal(t, 2, report.IndustryScore)
	assert.Equal(t, 3, report.OverallScore)
	require.Len(t, report.CriticalIssues, 2)
	assert.Contains(t, report.CriticalIssues[1], "template")

	healthy := Score(completeProfile(), industry.Classification{Confidence: 90}, uniformAnalysis(20))
	assert.GreaterOrEqual(t, healthy.OverallScore, CriticalThreshold)
	assert.Empty(t, healthy.CriticalIssues)
}

func TestScoreIsDeterministicAndBounded(t *testing.T) {
	p := completeProfile()
	cls := industry.Classification{Primary: industry.Technology, Confidence: 100, MatchedSkills: []string{"a", "b", "c", "d", "e", "f"}}
	first := Score(p, cls, uniformAnalysis(100))
	second := Score(p, cls, uniformAnalysis(100))
	assert.Equal(t, first, second)
	assert.Equal(t, 100, first.OverallScore)
}
