package analyses

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insights/internal/document"
	"resume-insights/internal/industry"
	"resume-insights/internal/quality"
)

var fixedAsOf = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

func loadSample(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sample_resume.txt"))
	require.NoError(t, err)
	return string(data)
}

func TestAnalyzeSampleResume(t *testing.T) {
	res := NewPipeline(nil).Analyze(document.Input{Text: loadSample(t), FileName: "john_smith.pdf"}, fixedAsOf)

	assert.Equal(t, "John Smith", res.ResumeProfile.PersonalInfo.FullName)
	assert.False(t, res.ResumeProfile.Templated)
	assert.False(t, res.LowConfidence)
	assert.Equal(t, industry.Technology, res.Industry.Primary)
	assert.Greater(t, res.Industry.Confidence, 0)
	assert.Len(t, res.Sections, len(quality.Order))

	for _, v := range []int{res.Score.OverallScore, res.Score.StructuralScore, res.Score.IndustryScore, res.Score.SectionScore} {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
	require.NoError(t, ValidateResult(res))
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	p := NewPipeline(nil)
	in := document.Input{Text: loadSample(t), FileName: "john_smith.pdf"}

	first, err := json.Marshal(p.Analyze(in, fixedAsOf))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		next, err := json.Marshal(p.Analyze(in, fixedAsOf))
		require.NoError(t, err)
		require.Equal(t, string(first), string(next))
	}
}

func TestAnalyzeEmptyInputIsTemplated(t *testing.T) {
	res := NewPipeline(nil).Analyze(document.Input{FileName: "jane-doe.txt"}, time.Time{})

	assert.True(t, res.LowConfidence)
	assert.True(t, res.ResumeProfile.Templated)
	assert.Equal(t, "Jane Doe", res.ResumeProfile.PersonalInfo.FullName)
	assert.NotEmpty(t, res.Score.CriticalIssues)
	require.NoError(t, ValidateResult(res))
}

func TestAnalyzeUsesInjectedClassifier(t *testing.T) {
	table := industry.DefaultTable()
	c, err := industry.NewClassifier(table)
	require.NoError(t, err)

	p := NewPipeline(c)
	assert.Same(t, c, p.Classifier())
	res := p.Analyze(document.Input{Text: loadSample(t)}, fixedAsOf)
	assert.Equal(t, industry.Technology, res.Industry.Primary)
}

func TestValidateResultRejectsOutOfRangeScore(t *testing.T) {
	res := NewPipeline(nil).Analyze(document.Input{Text: loadSample(t)}, fixedAsOf)
	res.Score.OverallScore = 150

	err := ValidateResult(res)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "overallScore")
}

func TestResultSchemaIsCopied(t *testing.T) {
	a := ResultSchema()
	a[0] = 'x'
	assert.Equal(t, byte('{'), ResultSchema()[0])
}

func TestAnalyzeTemplatedProfileEarnsNoCredit(t *testing.T) {
	for _, fileName := range []string{"resume.pdf", "project-manager-resume.pdf", "jane_doe_designer.docx"} {
		t.Run(fileName, func(t *testing.T) {
			res := NewPipeline(nil).Analyze(document.Input{FileName: fileName}, fixedAsOf)
			require.True(t, res.ResumeProfile.Templated)
			require.NotEmpty(t, res.ResumeProfile.Summary)

			assert.Equal(t, industry.Technology, res.Industry.Primary)
			assert.Equal(t, 0, res.Industry.Confidence)
			assert.Empty(t, res.Industry.MatchedSkills)
			for tag, score := range res.Industry.PerIndustryScores {
				assert.Zero(t, score, tag)
			}

			for _, section := range []quality.Section{quality.Summary, quality.Skills, quality.Experience} {
				assert.Empty(t, res.Sections[section].Strengths, section)
				assert.NotEmpty(t, res.Sections[section].Improvements, section)
			}
			assert.Equal(t, quality.PriorityHigh, res.Sections[quality.Summary].Improvements[0].Priority)
			assert.NoError(t, ValidateResult(res))
		})
	}
}
