package profile

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?`

var (
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe      = regexp.MustCompile(`(?:^|[^\d])((?:\+?\d{1,3}[\s.\-]?)?(?:\(\d{3}\)|\d{3})[\s.\-]?\d{3}[\s.\-]?\d{4})(?:$|[^\d])`)
	linkedInRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/(?:in|pub)/[A-Za-z0-9_\-%]+/?`)
	urlRe        = regexp.MustCompile(`(?i)\b(?:https?://[^\s|,;()<>]+|www\.[^\s|,;()<>]+|(?:github\.com|gitlab\.com|behance\.net|dribbble\.com|bitbucket\.org)/[^\s|,;()<>]+)`)
	cityStateRe  = regexp.MustCompile(`\b([A-Z][A-Za-z.'\-]+(?: [A-Z][A-Za-z.'\-]+){0,2}), *([A-Z]{2})(?: +(\d{5}(?:-\d{4})?))?\b`)
	dateRangeRe  = regexp.MustCompile(`(?i)((?:` + monthPattern + `\s+)?(?:\d{1,2}/)?(?:19|20)\d{2})\s*(?:-|–|—|to|until)\s*((?:` + monthPattern + `\s+)?(?:\d{1,2}/)?(?:19|20)\d{2}|present|current|now|today|ongoing)`)
	singleDateRe = regexp.MustCompile(`(?i)\b((?:` + monthPattern + `\s+)?(?:19|20)\d{2})\b`)
	yearRe       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	metricRe     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s?%|[$€£]\s?\d[\d,.]*\s?(?:k|m|b|million|billion)?|\b\d+(?:[.,]\d+)*\s?(?:k|m|x|\+)?\b)`)
	gpaRe        = regexp.MustCompile(`(?i)(?:\bgpa\b|\bgrade point average\b)[\s:]*([0-4](?:\.\d{1,2})?)|\b([0-4]\.\d{1,2})\s*/\s*4(?:\.0{1,2})?\b`)
	expiryRe     = regexp.MustCompile(`(?i)(?:expires?|expiry|expiration|valid (?:until|through|thru))[\s:]*((?:` + monthPattern + `\s+)?(?:\d{1,2}/)?(?:19|20)\d{2})`)
	bulletRe     = regexp.MustCompile(`^\s*(?:[•●▪◦‣·∙*\-–—>]|\d{1,2}[.)])\s*`)
)

var countryRe *regexp.Regexp

func init() {
	names := make([]string, 0, len(countries))
	for _, c := range countries {
		names = append(names, regexp.QuoteMeta(c))
	}
	countryRe = regexp.MustCompile(`\b([A-Z][A-Za-z.'\-]+(?: [A-Z][A-Za-z.'\-]+){0,2}), *(` + strings.Join(names, "|") + `)\b`)
}

// ContainsTerm reports whether term occurs in text as a whole word, case-insensitively.
func ContainsTerm(text, term string) bool {
	return CountTerm(text, term) > 0
}

// CountTerm counts whole-word, case-insensitive occurrences of term in text. Word
// boundaries are letters and digits, so terms like "C++" and "Node.js" work too.
func CountTerm(text, term string) int {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return 0
	}
	lower := strings.ToLower(text)
	count := 0
	for offset := 0; offset < len(lower); {
		idx := strings.Index(lower[offset:], term)
		if idx < 0 {
			break
		}
		start := offset + idx
		end := start + len(term)
		if boundaryBefore(lower, start) && boundaryAfter(lower, end) {
			count++
		}
		offset = start + 1
	}
	return count
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
}

// HasMetric reports whether s contains a quantified result: a percentage, a currency
// amount, or a number that is not a calendar year.
func HasMetric(s string) bool {
	for _, m := range metricRe.FindAllString(s, -1) {
		m = strings.TrimSpace(m)
		if yearRe.MatchString(m) && len(strings.Trim(m, "+")) == 4 {
			continue
		}
		if strings.ContainsAny(m, "%$€£") {
			return true
		}
		digits := 0
		for _, r := range m {
			if unicode.IsDigit(r) {
				digits++
			}
		}
		if digits >= 1 && !(digits == 1 && m == "1") {
			return true
		}
	}
	return false
}

func isBullet(line string) bool {
	return bulletRe.MatchString(line)
}

func stripBullet(line string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
}

func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitTokens breaks list-like text on bullets, commas, pipes, semicolons and line
// breaks. A "Label: a, b" prefix is dropped.
func splitTokens(s string) []string {
	var out []string
	for _, line := range splitLines(s) {
		line = stripBullet(line)
		if idx := strings.IndexByte(line, ':'); idx >= 0 && idx < 40 {
			line = line[idx+1:]
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			switch r {
			case ',', '|', ';', '•', '●', '▪', '◦', '‣', '·', '∙':
				return true
			}
			return false
		})
		for _, f := range fields {
			f = strings.Trim(strings.TrimSpace(f), ".-–*")
			f = strings.TrimSpace(f)
			if f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

func collapseProse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isNumeric(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsSpace(r) || strings.ContainsRune(".,-+/%", r):
		default:
			return false
		}
	}
	return hasDigit
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func titleCase(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if CountTerm(lower, n) > 0 {
			return true
		}
	}
	return false
}

// dedupeFold keeps the first spelling of each case-insensitive value.
type dedupeFold struct {
	seen map[string]bool
	out  []string
}

func newDedupeFold() *dedupeFold {
	return &dedupeFold{seen: map[string]bool{}, out: []string{}}
}

func (d *dedupeFold) add(v string) bool {
	key := strings.ToLower(strings.TrimSpace(v))
	if key == "" || d.seen[key] {
		return false
	}
	d.seen[key] = true
	d.out = append(d.out, strings.TrimSpace(v))
	return true
}
