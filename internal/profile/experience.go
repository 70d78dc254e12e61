package profile

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxExperienceEntries = 5
	maxHeaderLines       = 2
	maxEntryHeaderLen    = 90
	minPlausibleLen      = 4
	bulletPrefix         = "• "
)

var (
	headerSplitRe = regexp.MustCompile(`\s+(?:\||at|@|-|–|—)\s+|\s*[|,;]\s*|\s+[–—]\s*`)
	remoteRe      = regexp.MustCompile(`(?i)\b(?:remote|hybrid)\b`)
	ongoingWords  = []string{"present", "current", "now", "today", "ongoing"}
)

type entryAnchor struct {
	line  int
	first int
	start string
	end   string
}

func extractExperience(span string) []Experience {
	lines := splitLines(span)
	anchors := findDateAnchors(lines)
	out := make([]Experience, 0, len(anchors))

	for i, a := range anchors {
		if len(out) == maxExperienceEntries {
			break
		}
		stop := len(lines)
		if i+1 < len(anchors) {
			stop = anchors[i+1].first
		}
		exp, ok := buildExperience(lines, a, stop)
		if ok {
			out = append(out, exp)
		}
	}
	return out
}

// findDateAnchors picks the lines that open an entry: a date range, or failing that
// a lone year on a non-bullet line. Each anchor claims up to two header lines above it.
func findDateAnchors(lines []string) []entryAnchor {
	var anchors []entryAnchor
	for i, line := range lines {
		if m := dateRangeRe.FindStringSubmatch(line); m != nil {
			anchors = append(anchors, entryAnchor{line: i, start: m[1], end: m[2]})
		}
	}
	if len(anchors) == 0 {
		for i, line := range lines {
			if isBullet(line) || runeLen(line) > maxEntryHeaderLen {
				continue
			}
			if m := singleDateRe.FindStringSubmatch(line); m != nil {
				anchors = append(anchors, entryAnchor{line: i, start: m[1]})
			}
		}
	}

	floor := 0
	for i := range anchors {
		first := anchors[i].line
		for j := anchors[i].line - 1; j >= floor && anchors[i].line-j <= maxHeaderLines; j-- {
			if !isHeaderLine(lines[j]) {
				break
			}
			first = j
		}
		anchors[i].first = first
		floor = anchors[i].line + 1
	}
	return anchors
}

func isHeaderLine(line string) bool {
	return !isBullet(line) && runeLen(line) <= maxEntryHeaderLen &&
		!strings.HasSuffix(line, ".") && !dateRangeRe.MatchString(line)
}

func buildExperience(lines []string, a entryAnchor, stop int) (Experience, bool) {
	exp := Experience{StartDate: strings.TrimSpace(a.start), EndDate: strings.TrimSpace(a.end)}
	for _, w := range ongoingWords {
		if strings.EqualFold(exp.EndDate, w) {
			exp.Current = true
			exp.EndDate = "Present"
			break
		}
	}

	header := make([]string, 0, maxHeaderLines+1)
	header = append(header, lines[a.first:a.line]...)
	anchorRest := lines[a.line]
	if a.end != "" {
		anchorRest = dateRangeRe.ReplaceAllString(anchorRest, " ")
	} else {
		anchorRest = singleDateRe.ReplaceAllString(anchorRest, " ")
	}
	anchorRest = strings.Trim(anchorRest, " ()|,-–—")
	if anchorRest != "" {
		header = append(header, anchorRest)
	}

	exp.Position, exp.Company, exp.Location = splitEntryHeader(header)
	if !plausible(exp.Position) {
		return Experience{}, false
	}

	if a.line+1 < stop {
		exp.Description = joinDescription(lines[a.line+1 : stop])
	}
	if exp.Description == "" && plausible(exp.Company) {
		exp.Description = synthesizeDescription(exp.Position, exp.Company)
		exp.DescriptionSynthesized = true
	}
	return exp, true
}

// splitEntryHeader pulls the location out of the header lines, then treats the first
// two remaining parts as title and company, swapping them when the hints say so.
func splitEntryHeader(header []string) (position, company, location string) {
	var parts []string
	for _, line := range header {
		if location == "" {
			if loc := findLocation(line); loc != "" {
				location, line = loc, strings.Replace(line, loc, " ", 1)
			} else if loc := remoteRe.FindString(line); loc != "" {
				location, line = loc, strings.Replace(line, loc, " ", 1)
			}
		}
		for _, p := range headerSplitRe.Split(line, -1) {
			p = strings.Trim(strings.TrimSpace(p), "()")
			if p != "" {
				parts = append(parts, p)
			}
		}
	}
	if len(parts) > 0 {
		position = parts[0]
	}
	if len(parts) > 1 {
		company = parts[1]
	}

	posLower, compLower := strings.ToLower(position), strings.ToLower(company)
	titleInCompany := containsAny(compLower, titleHints) && !containsAny(posLower, titleHints)
	companyInTitle := containsAny(posLower, companyHints) && !containsAny(compLower, companyHints)
	if company != "" && (titleInCompany || companyInTitle) {
		position, company = company, position
	}
	return position, company, location
}

func plausible(s string) bool {
	return runeLen(strings.TrimSpace(s)) >= minPlausibleLen && !containsHeaderWord(s)
}

// joinDescription renders bullet lines as "• text" and folds wrapped continuation
// lines into the bullet above them.
func joinDescription(lines []string) string {
	var out []string
	for _, line := range lines {
		if isBullet(line) {
			if text := stripBullet(line); text != "" {
				out = append(out, bulletPrefix+text)
			}
			continue
		}
		if n := len(out); n > 0 && strings.HasPrefix(out[n-1], bulletPrefix) {
			out[n-1] += " " + line
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func synthesizeDescription(position, company string) string {
	lower := strings.ToLower(position)
	arch := roleArchetypes[len(roleArchetypes)-1]
	for _, a := range roleArchetypes {
		if len(a.keywords) > 0 && containsAny(lower, a.keywords) {
			arch = a
			break
		}
	}
	lines := make([]string, 0, len(arch.bullets))
	for _, b := range arch.bullets {
		if strings.Contains(b, "%s") {
			b = fmt.Sprintf(b, company)
		}
		lines = append(lines, bulletPrefix+b)
	}
	return strings.Join(lines, "\n")
}

// DescriptionBullets splits a description into its bullet or paragraph lines.
func DescriptionBullets(description string) []string {
	out := make([]string, 0, 4)
	for _, line := range splitLines(description) {
		if text := stripBullet(line); text != "" {
			out = append(out, text)
		}
	}
	return out
}
