package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchHeader(t *testing.T) {
	cases := []struct {
		line   string
		want   Section
		ok     bool
		inline bool
	}{
		{line: "SKILLS", want: SectionSkills, ok: true},
		{line: "Technical Skills:", want: SectionSkills, ok: true},
		{line: "Skills & Tools", want: SectionSkills, ok: true},
		{line: "## Work Experience", want: SectionExperience, ok: true},
		{line: "Summary of Qualifications", want: SectionSummary, ok: true},
		{line: "Skills: Go, SQL", want: SectionSkills, ok: true, inline: true},
		{line: "Experienced engineer building APIs", ok: false},
		{line: "Profile picture taken in 2020, Berlin", ok: false},
		{line: "", ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, inline, ok := matchHeader(tc.line)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.inline, inline >= 0)
		})
	}
}

func TestAnchorSectionsFirstMatchWins(t *testing.T) {
	text := "Jane Doe\nSummary\nFirst summary text\nSkills\nGo, SQL\nSummary\nSecond summary\nEducation\nBSc"
	spans, order, first := anchorSections(text)

	assert.Equal(t, []Section{SectionSummary, SectionSkills, SectionEducation}, order)
	assert.Equal(t, strings.Index(text, "Summary"), first)
	assert.Equal(t, "First summary text", spanText(text, spans[SectionSummary]))
	assert.Equal(t, "Go, SQL", spanText(text, spans[SectionSkills]))
	assert.Equal(t, "BSc", spanText(text, spans[SectionEducation]))
}

func TestAnchorSectionsSpanRunsPastRepeatedHeader(t *testing.T) {
	text := "Skills\nGo\nSkills\nSQL\nHobbies\nChess"
	spans, _, _ := anchorSections(text)
	assert.Equal(t, "Go\nSkills\nSQL", spanText(text, spans[SectionSkills]))
}

func TestAnchorSectionsCapsWindow(t *testing.T) {
	text := "Summary\n" + strings.Repeat("é", MaxSectionWindow)
	spans, _, _ := anchorSections(text)
	sp := spans[SectionSummary]
	assert.LessOrEqual(t, sp.end-sp.start, MaxSectionWindow)
	assert.True(t, sp.end == len(text) || sp.end-sp.start <= MaxSectionWindow)
}

func TestCountTerm(t *testing.T) {
	assert.Equal(t, 2, CountTerm("Java and JAVA but not JavaScript", "java"))
	assert.Equal(t, 1, CountTerm("C++ and C", "C++"))
	assert.Equal(t, 1, CountTerm("built with Node.js.", "node.js"))
	assert.Equal(t, 0, CountTerm("scalable", "scala"))
	assert.Equal(t, 0, CountTerm("anything", " "))
}

func TestHasMetric(t *testing.T) {
	assert.True(t, HasMetric("improved performance by 40%"))
	assert.True(t, HasMetric("saved $1.2M annually"))
	assert.True(t, HasMetric("managed 12 engineers"))
	assert.False(t, HasMetric("joined in 2019"))
	assert.False(t, HasMetric("wrote documentation"))
}
