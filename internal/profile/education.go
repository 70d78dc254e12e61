package profile

import (
	"regexp"
	"strings"
)

const maxEducationEntries = 5

var degreeRe = regexp.MustCompile(`(?i)\b(ph\.?d|doctorate|doctor of [a-z]+|` +
	`(?:master|bachelor)(?:'s)?(?: degree)?(?: of (?:arts|science|engineering|business administration|fine arts|education|laws|technology|commerce))?|` +
	`associate(?:'s)? (?:degree|of (?:arts|science|applied science))|high school diploma|diploma|` +
	`m\.?b\.?a|b\.?sc|m\.?sc|b\.?eng|m\.?eng|b\.?tech|m\.?tech|b\.?s|m\.?s|b\.?a|m\.?a|ged)\b\.?`)

var fieldLeadRe = regexp.MustCompile(`(?i)^\s*(?:(?:in|of)\s+|[,:\-–—|]\s*)`)

func extractEducation(span string) []Education {
	out := make([]Education, 0, 2)
	var cur *Education
	flush := func() {
		if cur != nil && (cur.Degree != "" || cur.Institution != "") {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range splitLines(span) {
		text := stripBullet(line)
		location := findLocation(text)
		masked := text
		if location != "" {
			masked = strings.Replace(text, location, " ", 1)
		}
		degree, field := parseDegree(masked)
		institution := parseInstitution(text)

		startsEntry := degree != "" || institution != ""
		if startsEntry && (cur == nil || (degree != "" && cur.Degree != "") || (institution != "" && cur.Institution != "")) {
			flush()
			if len(out) == maxEducationEntries {
				break
			}
			cur = &Education{}
		}
		if cur == nil {
			continue
		}

		if degree != "" {
			cur.Degree = degree
			if cur.Field == "" {
				cur.Field = field
			}
		}
		if institution != "" {
			cur.Institution = institution
		}
		if cur.Location == "" {
			cur.Location = location
		}
		if date := graduationDate(text); date != "" {
			cur.GraduationDate = date
		}
		if cur.GPA == "" {
			cur.GPA = parseGPA(text)
		}
	}
	flush()
	if len(out) > maxEducationEntries {
		out = out[:maxEducationEntries]
	}
	return out
}

func parseDegree(text string) (degree, field string) {
	loc := degreeRe.FindStringIndex(text)
	if loc == nil {
		return "", ""
	}
	degree = strings.TrimSpace(text[loc[0]:loc[1]])
	// "B.S." keeps its dot; "Bachelor." loses the sentence period.
	if trimmed := strings.TrimSuffix(degree, "."); !strings.Contains(trimmed, ".") {
		degree = trimmed
	}

	rest := fieldLeadRe.ReplaceAllString(text[loc[1]:], "")
	rest = dateRangeRe.ReplaceAllString(rest, " ")
	for _, part := range headerSplitRe.Split(rest, -1) {
		part = strings.Trim(strings.TrimSpace(part), "()")
		if part == "" || yearRe.MatchString(part) || gpaRe.MatchString(part) {
			continue
		}
		if !containsAny(strings.ToLower(part), institutionHints) && runeLen(part) <= 60 {
			field = part
		}
		break
	}
	return degree, field
}

func parseInstitution(text string) string {
	for _, part := range headerSplitRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if containsAny(strings.ToLower(part), institutionHints) {
			if loc := degreeRe.FindStringIndex(part); loc != nil && loc[0] == 0 {
				continue
			}
			return strings.Trim(part, "()")
		}
	}
	return ""
}

func graduationDate(text string) string {
	if m := dateRangeRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2])
	}
	matches := singleDateRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	return strings.TrimSpace(matches[len(matches)-1][1])
}

func parseGPA(text string) string {
	m := gpaRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}
