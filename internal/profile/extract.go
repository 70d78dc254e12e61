package profile

import (
	"resume-insights/internal/document"
)

const (
	minSummaryLen = 30
	maxSummaryLen = 600
)

// Extract turns a normalized document into a Profile. Documents that failed
// normalization get the templated profile instead.
//
// Collections whose header appeared in the source but yielded nothing usable get a
// single entry flagged Placeholder; collections with no header stay empty.
func Extract(doc document.RawDocument) Profile {
	if !doc.ExtractionSucceeded {
		return Templated(doc.FileName, doc.Text)
	}

	text := doc.Text
	p := newProfile(text)
	spans, order, firstHeader := anchorSections(text)
	p.DetectedSections = append(p.DetectedSections, order...)
	section := func(s Section) string {
		sp, ok := spans[s]
		if !ok {
			return ""
		}
		return spanText(text, sp)
	}

	lines := doc.Lines
	if len(lines) == 0 {
		lines = splitLines(text)
	}
	head := text[:firstHeader] + "\n" + section(SectionContact)
	p.PersonalInfo = extractPersonalInfo(text, lines, head, doc.FileName)

	if summary := collapseProse(section(SectionSummary)); runeLen(summary) >= minSummaryLen && runeLen(summary) <= maxSummaryLen {
		p.Summary = summary
	}
	p.Skills = extractSkills(section(SectionSkills), text)
	p.Experience = append(p.Experience, extractExperience(section(SectionExperience))...)

	p.Education = append(p.Education, extractEducation(section(SectionEducation))...)
	if len(p.Education) == 0 && p.HasSection(SectionEducation) {
		p.Education = append(p.Education, Education{Degree: "Degree", Field: "Field of Study", Institution: "Institution", Placeholder: true})
	}
	p.Projects = append(p.Projects, extractProjects(section(SectionProjects))...)
	if len(p.Projects) == 0 && p.HasSection(SectionProjects) {
		p.Projects = append(p.Projects, Project{Name: "Project Name", Technologies: []string{}, Placeholder: true})
	}
	p.Certifications = append(p.Certifications, extractCertifications(section(SectionCertifications))...)
	if len(p.Certifications) == 0 && p.HasSection(SectionCertifications) {
		p.Certifications = append(p.Certifications, Certification{Name: "Certification Name", Issuer: "Issuing Organization", Placeholder: true})
	}
	p.Languages = append(p.Languages, extractLanguages(section(SectionLanguages))...)
	if len(p.Languages) == 0 && p.HasSection(SectionLanguages) {
		p.Languages = append(p.Languages, Language{Name: "English", Proficiency: "Native", Placeholder: true})
	}
	p.Hobbies = append(p.Hobbies, extractHobbies(section(SectionHobbies))...)
	if len(p.Hobbies) == 0 && p.HasSection(SectionHobbies) {
		p.Hobbies = append(p.Hobbies, Hobby{Name: "Reading", Placeholder: true})
	}
	return p
}
