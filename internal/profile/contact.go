package profile

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

const (
	nameScanLines  = 5
	maxNameLen     = 50
	minNameWords   = 2
	maxNameWords   = 4
	maxWebsiteLen  = 120
	maxLocationLen = 60
)

var filenameSplitRe = regexp.MustCompile(`[-_.\s]+`)

// extractPersonalInfo fills contact fields. head is the text before the first section
// header plus the contact span; location is searched there first.
func extractPersonalInfo(text string, lines []string, head, fileName string) PersonalInfo {
	info := PersonalInfo{FullName: PlaceholderName, NameSource: NameFromPlaceholder}

	if name := nameFromLines(lines); name != "" {
		info.FullName, info.NameSource = name, NameFromDocument
	} else if name := ProvisionalName(fileName); name != "" {
		info.FullName, info.NameSource = name, NameFromFilename
	}

	info.Email = findEmail(text)
	info.Phone = findPhone(text)
	info.LinkedIn = strings.TrimSuffix(linkedInRe.FindString(text), "/")
	info.Website = findWebsite(text)
	if info.Location = findLocation(head); info.Location == "" {
		info.Location = findLocation(text)
	}
	return info
}

func nameFromLines(lines []string) string {
	for i, line := range lines {
		if i >= nameScanLines || isContactLine(line) {
			return ""
		}
		if looksLikeName(line) {
			return strings.Join(strings.Fields(line), " ")
		}
	}
	return ""
}

func isContactLine(line string) bool {
	return emailRe.MatchString(line) || phoneRe.MatchString(line) ||
		urlRe.MatchString(line) || linkedInRe.MatchString(line)
}

func looksLikeName(line string) bool {
	if runeLen(line) >= maxNameLen {
		return false
	}
	if _, _, ok := matchHeader(line); ok {
		return false
	}
	words := strings.Fields(line)
	if len(words) < minNameWords || len(words) > maxNameWords {
		return false
	}
	if containsAny(strings.ToLower(line), titleHints) {
		return false
	}
	for _, w := range words {
		if filenameNoise[strings.ToLower(w)] {
			return false
		}
		first := []rune(w)[0]
		if !unicode.IsUpper(first) {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '\'' && r != '-' && r != '.' {
				return false
			}
		}
	}
	return true
}

// ProvisionalName derives a provisional name from an upload's file name, e.g.
// "john_smith-resume-2024.pdf" becomes "John Smith". It returns "" when the name
// does not look like 2-4 words.
func ProvisionalName(fileName string) string {
	base := filepath.Base(strings.TrimSpace(fileName))
	if base == "." || base == "/" || base == "" {
		return ""
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))

	words := make([]string, 0, 4)
	for _, tok := range filenameSplitRe.Split(base, -1) {
		if tok == "" || filenameNoise[strings.ToLower(tok)] || isTitleHint(tok) {
			continue
		}
		alpha := true
		for _, r := range tok {
			if !unicode.IsLetter(r) {
				alpha = false
				break
			}
		}
		if !alpha {
			continue
		}
		words = append(words, titleCase(tok))
	}
	if len(words) < minNameWords || len(words) > maxNameWords {
		return ""
	}
	return strings.Join(words, " ")
}

func findEmail(text string) string {
	for _, m := range emailRe.FindAllString(text, -1) {
		lower := strings.ToLower(m)
		at := strings.LastIndexByte(lower, '@')
		domain := lower[at+1:]
		local := lower[:at]
		if placeholderEmailDomains[domain] || strings.Contains(local, "noreply") || strings.Contains(local, "no-reply") {
			continue
		}
		return strings.Trim(m, ".")
	}
	return ""
}

func findPhone(text string) string {
	m := phoneRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func findWebsite(text string) string {
	for _, m := range urlRe.FindAllString(text, -1) {
		if strings.Contains(strings.ToLower(m), "linkedin.com") {
			continue
		}
		m = strings.TrimRight(m, ".,;:!?)/")
		if m == "" || runeLen(m) > maxWebsiteLen {
			continue
		}
		return m
	}
	return ""
}

func findLocation(text string) string {
	if text == "" {
		return ""
	}
	for _, m := range cityStateRe.FindAllStringSubmatch(text, -1) {
		if usStates[m[2]] && !isHeaderWord(m[1]) {
			return strings.TrimSpace(m[0])
		}
	}
	if m := countryRe.FindString(text); m != "" && runeLen(m) <= maxLocationLen {
		return strings.TrimSpace(m)
	}
	return ""
}

func isTitleHint(word string) bool {
	lower := strings.ToLower(word)
	for _, h := range titleHints {
		if lower == h {
			return true
		}
	}
	return false
}
