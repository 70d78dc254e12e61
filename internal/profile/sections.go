package profile

import (
	"strings"
	"unicode/utf8"
)

// Section names a canonical profile section.
type Section string

const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
	SectionHobbies        Section = "hobbies"
)

// MaxSectionWindow caps a section span when no later header closes it.
const MaxSectionWindow = 4000

const maxHeaderLineLen = 48

var sectionHeaders = []struct {
	section  Section
	synonyms []string
}{
	{SectionContact, []string{"contact information", "contact info", "contact details", "personal information", "personal details", "contact"}},
	{SectionSummary, []string{"professional summary", "career summary", "executive summary", "summary", "career objective", "objective", "professional profile", "profile", "about me"}},
	{SectionExperience, []string{"professional experience", "work experience", "employment history", "work history", "career history", "relevant experience", "experience", "employment"}},
	{SectionEducation, []string{"academic background", "education", "academics"}},
	{SectionSkills, []string{"technical skills", "core competencies", "key skills", "competencies", "skills", "technical proficiencies"}},
	{SectionProjects, []string{"personal projects", "key projects", "side projects", "projects", "portfolio"}},
	{SectionCertifications, []string{"licenses and certifications", "licenses & certifications", "certifications", "certificates", "certification", "licenses", "credentials"}},
	{SectionLanguages, []string{"language skills", "languages spoken", "languages"}},
	{SectionHobbies, []string{"hobbies and interests", "hobbies & interests", "personal interests", "interests", "hobbies", "activities"}},
}

// remainders that may follow a synonym on a header-only line, e.g. "Skills & Tools".
var headerJoiners = []string{"&", "and ", "/", "|", "of ", "-", "–", "("}

type headerHit struct {
	section      Section
	start        int
	contentStart int
}

type span struct {
	start int
	end   int
}

// anchorSections locates the first header of each section and the text span it owns.
// A span runs until the next header of any other section, or MaxSectionWindow bytes.
func anchorSections(text string) (map[Section]span, []Section, int) {
	hits := findHeaders(text)
	spans := make(map[Section]span, len(sectionHeaders))
	order := make([]Section, 0, len(sectionHeaders))
	firstHeader := len(text)
	if len(hits) > 0 {
		firstHeader = hits[0].start
	}

	for i, hit := range hits {
		if _, seen := spans[hit.section]; seen {
			continue
		}
		end := len(text)
		for _, next := range hits[i+1:] {
			if next.section != hit.section {
				end = next.start
				break
			}
		}
		if limit := hit.contentStart + MaxSectionWindow; end > limit {
			end = runeBoundary(text, limit)
		}
		if end < hit.contentStart {
			end = hit.contentStart
		}
		spans[hit.section] = span{start: hit.contentStart, end: end}
		order = append(order, hit.section)
	}
	return spans, order, firstHeader
}

func findHeaders(text string) []headerHit {
	var hits []headerHit
	offset := 0
	for offset <= len(text) {
		end := strings.IndexByte(text[offset:], '\n')
		lineEnd := len(text)
		if end >= 0 {
			lineEnd = offset + end
		}
		line := text[offset:lineEnd]
		if section, inline, ok := matchHeader(line); ok {
			contentStart := lineEnd
			if inline >= 0 {
				contentStart = offset + inline
			}
			hits = append(hits, headerHit{section: section, start: offset, contentStart: contentStart})
		}
		if end < 0 {
			break
		}
		offset = lineEnd + 1
	}
	return hits
}

// matchHeader reports whether line is a section header. inline is the byte offset
// (within line) of content that follows a "Header:" prefix, or -1.
func matchHeader(line string) (Section, int, bool) {
	trimmed := strings.TrimLeft(line, " \t#*•-–>")
	lower := strings.ToLower(strings.TrimSpace(trimmed))
	if lower == "" {
		return "", -1, false
	}

	bestLen := 0
	var best Section
	inline := -1
	for _, group := range sectionHeaders {
		for _, syn := range group.synonyms {
			if len(syn) <= bestLen || !strings.HasPrefix(lower, syn) {
				continue
			}
			rest := strings.TrimSpace(lower[len(syn):])
			switch {
			case rest == "" || rest == ":":
				best, bestLen, inline = group.section, len(syn), -1
			case strings.HasPrefix(rest, ":"):
				colon := strings.IndexByte(line, ':')
				best, bestLen, inline = group.section, len(syn), colon+1
			case len(lower) <= maxHeaderLineLen && headerRemainder(rest):
				best, bestLen, inline = group.section, len(syn), -1
			}
		}
	}
	if bestLen == 0 {
		return "", -1, false
	}
	return best, inline, true
}

func headerRemainder(rest string) bool {
	if strings.ContainsAny(rest, ".,0123456789@") {
		return false
	}
	for _, j := range headerJoiners {
		if strings.HasPrefix(rest, j) {
			return len(strings.Fields(rest)) <= 4
		}
	}
	return false
}

// isHeaderWord reports whether token is itself one of the header synonyms.
func isHeaderWord(token string) bool {
	lower := strings.ToLower(strings.Trim(strings.TrimSpace(token), ":"))
	for _, group := range sectionHeaders {
		for _, syn := range group.synonyms {
			if lower == syn {
				return true
			}
		}
	}
	return false
}

// containsHeaderWord reports whether any single-word header synonym appears as a word in s.
func containsHeaderWord(s string) bool {
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ":,.;|-")
		if w == "" {
			continue
		}
		for _, group := range sectionHeaders {
			for _, syn := range group.synonyms {
				if !strings.Contains(syn, " ") && w == syn {
					return true
				}
			}
		}
	}
	return false
}

func runeBoundary(s string, n int) int {
	if n >= len(s) {
		return len(s)
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}

func spanText(text string, sp span) string {
	if sp.start >= sp.end || sp.start >= len(text) {
		return ""
	}
	return strings.TrimSpace(text[sp.start:sp.end])
}
