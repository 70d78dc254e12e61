package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShortTextIsLowConfidence(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace", text: "   \n\t  "},
		{name: "nine_runes", text: "  abcdefghi  "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, status := Normalize(Input{Text: tc.text, FileName: "cv.pdf"})
			assert.Equal(t, StatusLowConfidence, status)
			assert.False(t, doc.ExtractionSucceeded)
			assert.NotNil(t, doc.Lines)
			assert.Equal(t, "cv.pdf", doc.FileName)
		})
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	raw := "  Jane   Doe \r\n\r\n\r\n\r\nSoftware\tEngineer  \n\n\nSkills"
	doc, status := Normalize(Input{Text: raw})

	require.Equal(t, StatusOK, status)
	assert.True(t, doc.ExtractionSucceeded)
	assert.Equal(t, "Jane Doe\n\nSoftware Engineer\n\nSkills", doc.Text)
	assert.Equal(t, []string{"Jane Doe", "Software Engineer", "Skills"}, doc.Lines)
	assert.Equal(t, 1, doc.PageCount)
}

func TestNormalizePrefersPositionedLines(t *testing.T) {
	doc, status := Normalize(Input{
		Text:      "Jane Doe Software Engineer",
		Lines:     []string{" Jane Doe ", "", "Software  Engineer"},
		PageCount: 2,
		UsedOCR:   true,
	})

	require.Equal(t, StatusOK, status)
	assert.Equal(t, []string{"Jane Doe", "Software Engineer"}, doc.Lines)
	assert.Equal(t, 2, doc.PageCount)
	assert.True(t, doc.UsedOCR)
}

func TestNormalizeBoundsPathologicalInput(t *testing.T) {
	long := strings.Repeat("é", MaxTextBytes)
	doc, status := Normalize(Input{Text: long + "\xff\xfe"})

	require.Equal(t, StatusOK, status)
	assert.LessOrEqual(t, len(doc.Text), MaxTextBytes)
	assert.True(t, strings.HasPrefix(doc.Text, "éé"))
}
