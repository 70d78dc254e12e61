package profile

import (
	"regexp"
	"strings"
)

const (
	minSkillLen         = 2
	maxSkillLen         = 30
	maxProjects         = 10
	maxCertifications   = 10
	maxHobbies          = 10
	maxHobbyLen         = 40
	maxProjectTitleLen  = 80
	maxCertificationLen = 150
)

var (
	techLineRe   = regexp.MustCompile(`(?i)^(?:technologies|tech stack|tech|stack|tools|built with)\s*[:\-]\s*`)
	issuerLeadRe = regexp.MustCompile(`(?i)^(?:issued by|by|from)\s+`)
)

func extractSkills(span, text string) []string {
	d := newDedupeFold()
	for _, tok := range splitTokens(span) {
		n := runeLen(tok)
		if n < minSkillLen || n > maxSkillLen || isNumeric(tok) || isHeaderWord(tok) {
			continue
		}
		d.add(tok)
	}
	text = withoutLinks(text)
	for _, term := range knownTechTerms {
		if ContainsTerm(text, term) {
			d.add(term)
		}
	}
	return d.out
}

// withoutLinks blanks out URLs and email addresses so host names are not read as skills.
func withoutLinks(s string) string {
	s = linkedInRe.ReplaceAllString(s, " ")
	s = urlRe.ReplaceAllString(s, " ")
	return emailRe.ReplaceAllString(s, " ")
}

func extractProjects(span string) []Project {
	out := make([]Project, 0, 2)
	var cur *Project
	var body []string
	flush := func() {
		if cur == nil {
			return
		}
		if cur.Description == "" {
			cur.Description = collapseProse(strings.Join(body, " "))
		} else if len(body) > 0 {
			cur.Description = collapseProse(cur.Description + " " + strings.Join(body, " "))
		}
		techs := newDedupeFold()
		for _, t := range cur.Technologies {
			techs.add(t)
		}
		for _, term := range knownTechTerms {
			if ContainsTerm(withoutLinks(cur.Name+" "+cur.Description), term) {
				techs.add(term)
			}
		}
		cur.Technologies = techs.out
		out = append(out, *cur)
		cur, body = nil, nil
	}

	for _, line := range splitLines(span) {
		text := stripBullet(line)
		if loc := techLineRe.FindStringIndex(text); loc != nil {
			if cur != nil {
				cur.Technologies = append(cur.Technologies, splitTokens(text[loc[1]:])...)
			}
			continue
		}
		if link := urlRe.FindString(text); link != "" && cur != nil && cur.Link == "" {
			cur.Link = strings.TrimRight(link, ".,;:)")
			if strings.TrimSpace(urlRe.ReplaceAllString(text, "")) == "" {
				continue
			}
		}
		if !isBullet(line) && runeLen(text) <= maxProjectTitleLen && !strings.HasSuffix(text, ".") {
			flush()
			if len(out) == maxProjects {
				break
			}
			name, rest := splitTitle(text)
			if runeLen(name) < minSkillLen || isHeaderWord(name) {
				continue
			}
			cur = &Project{Name: name, Description: rest, Technologies: []string{}}
			continue
		}
		if cur != nil {
			body = append(body, text)
		}
	}
	flush()
	if len(out) > maxProjects {
		out = out[:maxProjects]
	}
	return out
}

// splitTitle separates "Name - blurb", "Name | blurb" and "Name: blurb".
func splitTitle(text string) (string, string) {
	for _, sep := range []string{" - ", " – ", " — ", " | ", ": "} {
		if idx := strings.Index(text, sep); idx > 0 {
			return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(sep):])
		}
	}
	return text, ""
}

func extractCertifications(span string) []Certification {
	out := make([]Certification, 0, 2)
	for _, line := range splitLines(span) {
		if len(out) == maxCertifications {
			break
		}
		text := stripBullet(line)
		if runeLen(text) < 3 || runeLen(text) > maxCertificationLen || isHeaderWord(text) {
			continue
		}
		cert := Certification{}
		if m := expiryRe.FindStringSubmatchIndex(text); m != nil {
			cert.ExpiryDate = strings.TrimSpace(text[m[2]:m[3]])
			text = text[:m[0]] + text[m[1]:]
		}
		if m := singleDateRe.FindStringSubmatchIndex(text); m != nil {
			cert.Date = strings.TrimSpace(text[m[2]:m[3]])
			text = text[:m[0]] + text[m[1]:]
		}

		var parts []string
		for _, p := range headerSplitRe.Split(text, -1) {
			p = strings.Trim(strings.TrimSpace(p), "()")
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			continue
		}
		cert.Name = parts[0]
		if len(parts) > 1 {
			cert.Issuer = issuerLeadRe.ReplaceAllString(parts[1], "")
		}
		if runeLen(cert.Name) < 3 {
			continue
		}
		out = append(out, cert)
	}
	return out
}

func extractLanguages(span string) []Language {
	out := make([]Language, 0, 2)
	seen := map[string]bool{}
	for _, tok := range splitTokens(span) {
		for _, name := range knownLanguages {
			if seen[name] || !ContainsTerm(tok, name) {
				continue
			}
			seen[name] = true
			out = append(out, Language{Name: name, Proficiency: proficiencyIn(tok)})
		}
	}
	return out
}

func proficiencyIn(tok string) string {
	for _, level := range proficiencyLevels {
		if !ContainsTerm(tok, level) {
			continue
		}
		if len(level) == 2 {
			return strings.ToUpper(level)
		}
		words := strings.Fields(level)
		for i, w := range words {
			words[i] = titleCase(w)
		}
		return strings.Join(words, " ")
	}
	return ""
}

func extractHobbies(span string) []Hobby {
	out := make([]Hobby, 0, 4)
	d := newDedupeFold()
	for _, tok := range splitTokens(span) {
		if len(out) == maxHobbies {
			break
		}
		n := runeLen(tok)
		if n < minSkillLen || n > maxHobbyLen || isNumeric(tok) || isHeaderWord(tok) {
			continue
		}
		if d.add(tok) {
			out = append(out, Hobby{Name: strings.TrimSpace(tok)})
		}
	}
	return out
}
