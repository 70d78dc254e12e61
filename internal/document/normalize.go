package document

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MinViableLength is the shortest trimmed text the extractor will attempt to parse.
	MinViableLength = 10
	// MaxTextBytes bounds the work done by every later stage.
	MaxTextBytes = 200_000
)

// Status reports how much the rest of the pipeline can trust a RawDocument.
type Status string

const (
	StatusOK            Status = "ok"
	StatusLowConfidence Status = "low-confidence"
)

// Input is what the upstream decoding collaborator hands over.
type Input struct {
	Text      string   `json:"text"`
	Lines     []string `json:"lines,omitempty"`
	PageCount int      `json:"pageCount,omitempty"`
	UsedOCR   bool     `json:"usedOCR,omitempty"`
	FileName  string   `json:"fileName,omitempty"`
}

// RawDocument is the canonical normalized text handed to the field extractor.
type RawDocument struct {
	Text                string   `json:"text"`
	Lines               []string `json:"lines"`
	PageCount           int      `json:"pageCount"`
	ExtractionSucceeded bool     `json:"extractionSucceeded"`
	UsedOCR             bool     `json:"usedOCR"`
	FileName            string   `json:"fileName"`
}

// Normalize cleans the raw text and line hints. It never fails; a document that is
// empty or shorter than MinViableLength comes back with StatusLowConfidence and
// ExtractionSucceeded=false so the caller can take the templated path.
func Normalize(in Input) (RawDocument, Status) {
	doc := RawDocument{
		Lines:     []string{},
		PageCount: in.PageCount,
		UsedOCR:   in.UsedOCR,
		FileName:  strings.TrimSpace(in.FileName),
	}
	if doc.PageCount < 0 {
		doc.PageCount = 0
	}

	text := normalizeText(in.Text)
	if utf8.RuneCountInString(text) < MinViableLength {
		doc.Text = text
		return doc, StatusLowConfidence
	}

	doc.Text = text
	doc.ExtractionSucceeded = true
	if lines := normalizeLines(in.Lines); len(lines) > 0 {
		doc.Lines = lines
	} else {
		doc.Lines = normalizeLines(strings.Split(text, "\n"))
	}
	if doc.PageCount == 0 {
		doc.PageCount = 1
	}
	return doc, StatusOK
}

func normalizeText(raw string) string {
	raw = strings.ToValidUTF8(raw, "�")
	if len(raw) > MaxTextBytes {
		raw = truncateBytes(raw, MaxTextBytes)
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var b strings.Builder
	b.Grow(len(raw))
	blank := 0
	for _, line := range strings.Split(raw, "\n") {
		line = collapseSpaces(line)
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimSpace(b.String())
}

func normalizeLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	total := 0
	for _, line := range lines {
		clean := collapseSpaces(strings.ToValidUTF8(line, "�"))
		if clean == "" {
			continue
		}
		total += len(clean)
		if total > MaxTextBytes {
			break
		}
		out = append(out, clean)
	}
	return out
}

// collapseSpaces folds horizontal whitespace and control characters into single spaces.
func collapseSpaces(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	space := false
	for _, r := range line {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == ' ' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

func truncateBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
