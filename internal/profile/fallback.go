package profile

import (
	"path/filepath"
	"strings"
)

const templateCompany = "Company Name"

type templateFamily struct {
	name     string
	keywords []string
	summary  string
	position string
	skills   []string
}

// Matched against filename tokens only; the document text is never consulted.
var templateFamilies = []templateFamily{
	{
		name:     "technology",
		keywords: []string{"developer", "engineer", "software", "dev", "programmer", "frontend", "backend", "fullstack", "data", "devops", "it", "tech"},
		summary:  "Technology professional with experience building and maintaining software systems. Add a short overview of your strongest technical results here.",
		position: "Software Engineer",
		skills:   []string{"Problem Solving", "Software Development", "Version Control", "Testing", "Communication"},
	},
	{
		name:     "design",
		keywords: []string{"designer", "design", "ux", "ui", "creative", "graphic", "art"},
		summary:  "Design professional focused on user-centered visual and interaction design. Add a short overview of your strongest design work here.",
		position: "Designer",
		skills:   []string{"Visual Design", "Prototyping", "User Research", "Typography", "Communication"},
	},
	{
		name:     "management",
		keywords: []string{"manager", "management", "director", "lead", "pm", "product", "project", "executive"},
		summary:  "Management professional experienced in leading teams and delivering projects. Add a short overview of your strongest leadership results here.",
		position: "Project Manager",
		skills:   []string{"Leadership", "Planning", "Stakeholder Management", "Budgeting", "Communication"},
	},
	{
		name:     "marketing",
		keywords: []string{"marketing", "marketer", "seo", "content", "brand", "social", "growth"},
		summary:  "Marketing professional experienced in planning campaigns and growing audiences. Add a short overview of your strongest campaign results here.",
		position: "Marketing Specialist",
		skills:   []string{"Campaign Planning", "Content Creation", "Analytics", "Social Media", "Communication"},
	},
	{
		name:     "generic",
		summary:  "Motivated professional with a record of reliable work and collaboration. Add a short overview of your experience and strongest results here.",
		position: "Professional",
		skills:   []string{"Communication", "Teamwork", "Problem Solving", "Time Management", "Organization"},
	},
}

// Templated builds the placeholder profile used when the document text could not be
// read. Nothing in it is derived from rawText; rawText is only retained for audit.
func Templated(fileName, rawText string) Profile {
	p := newProfile(rawText)
	p.Templated = true

	if name := ProvisionalName(fileName); name != "" {
		p.PersonalInfo.FullName, p.PersonalInfo.NameSource = name, NameFromFilename
	}

	family := matchTemplateFamily(fileName)
	p.TemplateFamily = family.name
	p.Summary = family.summary
	p.Skills = append(p.Skills, family.skills...)
	p.Experience = append(p.Experience, Experience{
		Position:               family.position,
		Company:                templateCompany,
		Description:            synthesizeDescription(family.position, templateCompany),
		DescriptionSynthesized: true,
	})
	return p
}

// WithoutTemplate returns p with the filler added by Templated removed, keeping the
// name and raw text. A profile extracted from the document comes back unchanged.
func (p Profile) WithoutTemplate() Profile {
	if !p.Templated {
		return p
	}
	p.Summary = ""
	p.Skills = []string{}
	p.Experience = []Experience{}
	return p
}

func matchTemplateFamily(fileName string) templateFamily {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(fileName)))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	tokens := filenameSplitRe.Split(base, -1)
	for _, family := range templateFamilies {
		for _, kw := range family.keywords {
			for _, tok := range tokens {
				if tok == kw || (len(kw) >= 4 && strings.HasPrefix(tok, kw)) {
					return family
				}
			}
		}
	}
	return templateFamilies[len(templateFamilies)-1]
}
