package quality

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-insights/internal/profile"
)

const (
	missingOptionalScore     = 50
	placeholderOptionalScore = 40
	expiredPenalty           = 15
)

type countRange struct {
	low, high, max int
}

var (
	projectRange       = countRange{low: 2, high: 5, max: 8}
	certificationRange = countRange{low: 1, high: 5, max: 8}
	languageRange      = countRange{low: 2, high: 4, max: 6}
	hobbyRange         = countRange{low: 2, high: 5, max: 8}
)

// optionalBase scores the entry count of an optional section. It returns false when
// the section is missing or holds only a placeholder; the caller then stops.
func optionalBase(r *rubric, label string, total, parsed int, rng countRange) bool {
	r.details["count"] = parsed
	switch {
	case total == 0:
		r.score = missingOptionalScore
		r.improve(PriorityLow, fmt.Sprintf("Consider adding a %s section", label))
		return false
	case parsed == 0:
		r.score = placeholderOptionalScore
		r.improve(PriorityMedium, fmt.Sprintf("The %s section could not be read; list one entry per line", label))
		return false
	case parsed > rng.max:
		r.add(60, "")
		r.improve(PriorityLow, fmt.Sprintf("Limit %s to the %d most relevant entries", label, rng.high))
	case parsed > rng.high:
		r.add(80, fmt.Sprintf("%d %s listed", parsed, label))
	case parsed >= rng.low:
		r.add(90, fmt.Sprintf("%d %s listed", parsed, label))
	default:
		r.add(70, fmt.Sprintf("%d %s listed", parsed, label))
		r.improve(PriorityLow, fmt.Sprintf("Add more %s (%d-%d is a good range)", label, rng.low, rng.high))
	}
	return true
}

func analyzeProjects(p profile.Profile) Result {
	r := newRubric()
	parsed := p.RealProjects()
	if !optionalBase(r, "projects", len(p.Projects), len(parsed), projectRange) {
		return r.result()
	}
	detailed := 0
	for _, proj := range parsed {
		if len(proj.Technologies) > 0 || proj.Link != "" {
			detailed++
		}
	}
	r.check(detailed == len(parsed), 10, "Projects name their technologies or links", PriorityLow, "Add technologies used or a link for each project")
	r.details["detailed"] = detailed
	return r.result()
}

func analyzeCertifications(p profile.Profile, asOf time.Time) Result {
	r := newRubric()
	parsed := p.RealCertifications()
	if !optionalBase(r, "certifications", len(p.Certifications), len(parsed), certificationRange) {
		r.details["expired"] = 0
		return r.result()
	}
	withIssuer := 0
	var expired []string
	for _, c := range parsed {
		if c.Issuer != "" {
			withIssuer++
		}
		if !asOf.IsZero() && c.ExpiryDate != "" {
			if end, ok := expiryEnd(c.ExpiryDate); ok && end.Before(asOf) {
				expired = append(expired, c.Name)
			}
		}
	}
	r.check(withIssuer == len(parsed), 10, "Certifications name their issuer", PriorityLow, "Add the issuing organization for each certification")
	for _, name := range expired {
		r.score -= expiredPenalty
		r.improve(PriorityMedium, fmt.Sprintf("Renew or remove the expired certification %q", name))
	}
	r.details["expired"] = len(expired)
	return r.result()
}

func analyzeLanguages(p profile.Profile) Result {
	r := newRubric()
	parsed := p.RealLanguages()
	if !optionalBase(r, "languages", len(p.Languages), len(parsed), languageRange) {
		return r.result()
	}
	rated := 0
	for _, l := range parsed {
		if l.Proficiency != "" {
			rated++
		}
	}
	r.check(rated == len(parsed), 10, "Language proficiency levels stated", PriorityLow, "State a proficiency level for each language")
	return r.result()
}

func analyzeHobbies(p profile.Profile) Result {
	r := newRubric()
	parsed := p.RealHobbies()
	if !optionalBase(r, "hobbies", len(p.Hobbies), len(parsed), hobbyRange) {
		return r.result()
	}
	if len(parsed) >= hobbyRange.low && len(parsed) <= hobbyRange.high {
		r.add(10, "")
	}
	return r.result()
}

func analyzeStructure(p profile.Profile) Result {
	r := newRubric()
	core := []struct {
		label   string
		present bool
	}{
		{"contact", p.PersonalInfo.HasContactChannel()},
		{"summary", p.Summary != ""},
		{"experience", len(p.Experience) > 0},
		{"education", len(p.Education) > 0},
		{"skills", len(p.Skills) > 0},
	}
	present := 0
	for _, c := range core {
		if c.present {
			present++
			r.add(15, "")
		} else {
			r.improve(PriorityHigh, fmt.Sprintf("Add a %s section", c.label))
		}
	}
	if present == len(core) {
		r.strengths = append(r.strengths, "All core sections are present")
	}

	optional := 0
	for _, n := range []int{len(p.RealProjects()), len(p.RealCertifications()), len(p.RealLanguages()), len(p.RealHobbies())} {
		if n > 0 {
			optional++
		}
	}
	switch {
	case optional >= 2:
		r.add(25, fmt.Sprintf("%d optional sections add depth", optional))
	case optional == 1:
		r.add(15, "An optional section adds depth")
	default:
		r.improve(PriorityLow, "Add an optional section such as projects or certifications")
	}
	r.details["coreSections"] = present
	r.details["optionalSections"] = optional
	r.details["templated"] = p.Templated
	return r.result()
}

var (
	expiryYearRe  = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
	expiryMonthRe = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?|\b(\d{1,2})/`)
)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// expiryEnd returns the first instant after the period named by s: the end of the
// month when a month is given, else the end of the year.
func expiryEnd(s string) (time.Time, bool) {
	ym := expiryYearRe.FindStringSubmatch(s)
	if ym == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(ym[1])
	month := time.Month(0)
	if mm := expiryMonthRe.FindStringSubmatch(s); mm != nil {
		if mm[1] != "" {
			month = monthIndex[strings.ToLower(mm[1])]
		} else if n, err := strconv.Atoi(mm[2]); err == nil && n >= 1 && n <= 12 {
			month = time.Month(n)
		}
	}
	if month == 0 {
		return time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC), true
}
