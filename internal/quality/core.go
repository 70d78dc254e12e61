package quality

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"resume-insights/internal/profile"
)

const (
	summaryMinWords   = 20
	summaryMaxWords   = 60
	minBullets        = 3
	skillsOptimalLow  = 8
	skillsOptimalHigh = 15
	skillsFew         = 5
	minPhoneDigits    = 10
)

var sentenceEndRe = regexp.MustCompile(`[.!?]+(?:\s|$)`)

func analyzePersonalInfo(info profile.PersonalInfo) Result {
	r := newRubric()

	switch info.NameSource {
	case profile.NameFromDocument:
		r.add(20, "Name is clearly shown at the top")
		r.check(len(strings.Fields(info.FullName)) >= 2, 5, "Full first and last name provided", PriorityLow, "Use your full first and last name")
	case profile.NameFromFilename:
		r.add(10, "")
		r.improve(PriorityMedium, "Put your full name as the first line of the résumé")
	default:
		r.improve(PriorityHigh, "Add your full name at the top of the résumé")
	}

	r.check(info.Email != "", 20, "Email address provided", PriorityHigh, "Add a professional email address")
	if info.Email != "" {
		domain := strings.ToLower(info.Email[strings.LastIndexByte(info.Email, '@')+1:])
		r.check(!genericEmailDomains[domain], 5, "Uses a custom email domain", "", "")
	}

	digits := countDigits(info.Phone)
	r.check(info.Phone != "", 15, "Phone number provided", PriorityHigh, "Add a phone number")
	if info.Phone != "" {
		r.check(digits >= minPhoneDigits, 5, "", PriorityLow, "Include the full phone number with area code")
	}
	r.check(info.Location != "", 15, "Location provided", PriorityMedium, "Add your city and state or country")
	r.check(info.LinkedIn != "", 10, "LinkedIn profile included", PriorityMedium, "Add your LinkedIn profile URL")
	r.check(info.Website != "", 5, "Portfolio or website included", PriorityLow, "Add a portfolio or personal website")

	r.details["nameSource"] = string(info.NameSource)
	r.details["hasEmail"] = info.Email != ""
	r.details["hasPhone"] = info.Phone != ""
	r.details["phoneDigits"] = digits
	r.details["hasLocation"] = info.Location != ""
	r.details["hasLinkedIn"] = info.LinkedIn != ""
	r.details["hasWebsite"] = info.Website != ""
	return r.result()
}

func analyzeSummary(summary string) Result {
	r := newRubric()
	words := len(strings.Fields(summary))
	sentences := len(sentenceEndRe.FindAllString(summary, -1))
	if sentences == 0 && words > 0 {
		sentences = 1
	}
	r.details["wordCount"] = words
	r.details["sentenceCount"] = sentences

	if summary == "" {
		r.improve(PriorityHigh, "Add a professional summary of 2-4 sentences")
		return r.result()
	}
	r.add(20, "Professional summary present")

	switch {
	case words >= summaryMinWords && words <= summaryMaxWords:
		r.add(25, fmt.Sprintf("Summary length is in the %d-%d word range", summaryMinWords, summaryMaxWords))
	case words < summaryMinWords:
		r.add(10, "")
		r.improve(PriorityMedium, fmt.Sprintf("Expand the summary to at least %d words", summaryMinWords))
	default:
		r.add(10, "")
		r.improve(PriorityMedium, fmt.Sprintf("Tighten the summary to at most %d words", summaryMaxWords))
	}
	r.check(sentences >= 2 && sentences <= 4, 15, "Summary has a readable 2-4 sentence structure", PriorityLow, "Write the summary as 2-4 complete sentences")
	r.check(containsAnyTerm(summary, professionalKeywords), 15, "Summary highlights professional background", PriorityLow, "Mention your area of expertise and years of experience")
	r.check(containsVerb(summary), 10, "Summary uses action verbs", PriorityLow, "Use action verbs such as led, built or improved")
	r.check(profile.HasMetric(summary), 15, "Summary includes a quantified result", PriorityMedium, "Add a quantified result to the summary")
	return r.result()
}

func analyzeExperience(entries []profile.Experience) Result {
	r := newRubric()
	r.details["entries"] = len(entries)
	if len(entries) == 0 {
		r.details["positionsWithMetrics"] = 0
		r.details["entryScores"] = []int{}
		r.improve(PriorityHigh, "Add your work experience with titles, companies and dates")
		return r.result()
	}

	var total, withMetrics, complete, withVerbs, thin, synthesized, bullets int
	scores := make([]int, 0, len(entries))
	for _, e := range entries {
		score := 0
		fields := 0
		for _, ok := range []bool{e.Position != "", e.Company != "", e.StartDate != ""} {
			if ok {
				score += 10
				fields++
			}
		}
		if e.EndDate != "" || e.Current {
			score += 5
			fields++
		}
		if fields == 4 {
			complete++
		}

		var lines []string
		if e.DescriptionSynthesized {
			synthesized++
			r.improve(PriorityHigh, fmt.Sprintf("Replace the generated description for %s with your own achievements", entryLabel(e)))
		} else {
			lines = profile.DescriptionBullets(e.Description)
		}
		bullets += len(lines)
		switch {
		case len(lines) >= minBullets:
			score += 25
		case len(lines) > 0:
			score += 12
			thin++
		default:
			thin++
		}

		verbs, metric := 0, false
		for _, line := range lines {
			if startsWithVerb(line) {
				verbs++
			}
			if profile.HasMetric(line) {
				metric = true
			}
		}
		switch {
		case len(lines) > 0 && verbs == len(lines):
			score += 20
			withVerbs++
		case verbs > 0:
			score += 10
			withVerbs++
		}
		if metric {
			score += 20
			withMetrics++
		}
		scores = append(scores, clamp(score))
		total += clamp(score)
	}

	r.score = int(math.Round(float64(total) / float64(len(entries))))
	n := len(entries)
	r.check(complete == n, 0, "All positions include title, company and dates", PriorityHigh, "Add the title, company and dates for every position")
	r.check(withMetrics > 0, 0, fmt.Sprintf("Quantified achievements in %d of %d positions", withMetrics, n), PriorityMedium, "Quantify achievements with numbers, percentages or amounts")
	if withMetrics > 0 && withMetrics < n {
		r.improve(PriorityMedium, "Add measurable results to the positions that have none")
	}
	r.check(withVerbs == n, 0, "Bullet points start with strong action verbs", PriorityMedium, "Start each bullet point with an action verb")
	r.check(thin == 0, 0, fmt.Sprintf("Every position has at least %d bullet points", minBullets), PriorityMedium, fmt.Sprintf("Use at least %d bullet points per position", minBullets))

	r.details["positionsWithMetrics"] = withMetrics
	r.details["completePositions"] = complete
	r.details["synthesizedDescriptions"] = synthesized
	r.details["totalBullets"] = bullets
	r.details["entryScores"] = scores
	return r.result()
}

func entryLabel(e profile.Experience) string {
	if e.Company == "" {
		return e.Position
	}
	return e.Position + " at " + e.Company
}

func analyzeEducation(all []profile.Education) Result {
	r := newRubric()
	entries := make([]profile.Education, 0, len(all))
	for _, e := range all {
		if !e.Placeholder {
			entries = append(entries, e)
		}
	}
	r.details["entries"] = len(entries)
	switch {
	case len(all) == 0:
		r.improve(PriorityHigh, "Add an education section with degree, institution and graduation date")
		return r.result()
	case len(entries) == 0:
		r.score = 20
		r.improve(PriorityHigh, "List your degree, institution and graduation date on separate, clear lines")
		return r.result()
	}

	total, complete := 0, 0
	lowGPA := false
	for _, e := range entries {
		score := 0
		if e.Degree != "" {
			score += 30
		}
		if e.Institution != "" {
			score += 30
		}
		if e.Field != "" {
			score += 15
		}
		if e.GraduationDate != "" {
			score += 15
		}
		if score == 90 {
			complete++
		}
		if gpa, err := strconv.ParseFloat(e.GPA, 64); err == nil {
			switch {
			case gpa >= 3.5:
				score += 10
			case gpa >= 3.0:
				score += 5
			default:
				lowGPA = true
			}
		}
		total += clamp(score)
	}
	r.score = int(math.Round(float64(total) / float64(len(entries))))
	r.check(complete == len(entries), 0, "Education entries are complete", PriorityMedium, "Include degree, field of study, institution and date for each entry")
	if lowGPA {
		r.improve(PriorityLow, "Consider leaving out a GPA below 3.0")
	}
	r.details["completeEntries"] = complete
	return r.result()
}

func analyzeSkills(skills []string) Result {
	r := newRubric()
	n := len(skills)
	r.details["count"] = n
	if n == 0 {
		r.details["technical"], r.details["soft"], r.details["tools"] = 0, 0, 0
		r.improve(PriorityHigh, "Add a skills section listing your key technical and interpersonal skills")
		return r.result()
	}

	switch {
	case n >= skillsOptimalLow && n <= skillsOptimalHigh:
		r.add(40, fmt.Sprintf("Skills list has an effective length (%d skills)", n))
	case n > skillsOptimalHigh:
		r.add(30, "")
		r.improve(PriorityLow, fmt.Sprintf("Trim the skills list to the %d most relevant", skillsOptimalHigh))
	case n >= skillsFew:
		r.add(25, "")
		r.improve(PriorityMedium, fmt.Sprintf("List %d-%d skills", skillsOptimalLow, skillsOptimalHigh))
	default:
		r.add(10, "")
		r.improve(PriorityHigh, fmt.Sprintf("List at least %d relevant skills", skillsOptimalLow))
	}

	technical, soft, tools := 0, 0, 0
	for _, s := range skills {
		if isTechnical(s) {
			technical++
		}
		if containsAnyTerm(s, softSkills) {
			soft++
		}
		if containsAnyTerm(s, toolSkills) {
			tools++
		}
	}
	r.check(technical > 0, 20, "Technical skills listed", PriorityMedium, "Add technical or role-specific hard skills")
	r.check(soft > 0, 15, "Interpersonal skills listed", PriorityLow, "Add interpersonal skills such as communication or leadership")
	r.check(technical > 0 && soft > 0, 15, "Good balance of technical and interpersonal skills", "", "")
	r.check(tools > 0, 10, "Tool proficiency shown", PriorityLow, "Mention the tools and software you are proficient with")

	r.details["technical"] = technical
	r.details["soft"] = soft
	r.details["tools"] = tools
	return r.result()
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
