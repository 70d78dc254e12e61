package recommendations

import (
	"fmt"
	"strings"
)

const maxIndustrySkillsListed = 5

func fromItems(items []Item) []Recommendation {
	out := make([]Recommendation, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Message)
		if title == "" {
			continue
		}
		section := strings.TrimSpace(item.Section)
		out = append(out, Recommendation{
			ID:       slugify(title),
			Section:  section,
			Category: inferCategory(section, title),
			Priority: normalizePriority(item.Priority),
			Title:    title,
			Why:      whyFor(section),
		})
	}
	return out
}

func fromIndustryGap(industry string, missing []string) []Recommendation {
	skills := uniqueSortedStrings(missing)
	if len(skills) == 0 || strings.TrimSpace(industry) == "" {
		return nil
	}
	if len(skills) > maxIndustrySkillsListed {
		skills = skills[:maxIndustrySkillsListed]
	}
	return []Recommendation{
		{
			ID:       "industry-skill-gap",
			Section:  "industry",
			Category: "SKILLS",
			Priority: "low",
			Title:    fmt.Sprintf("Consider adding %s skills you have used: %s", industry, strings.Join(skills, ", ")),
			Why:      "Skills common in your industry help reviewers place your profile quickly.",
		},
	}
}

func normalizePriority(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "high", "critical":
		return "high"
	case "medium":
		return "medium"
	default:
		return "low"
	}
}

func whyFor(section string) string {
	switch section {
	case "personalInfo":
		return "Reviewers need a name and a way to reach you before anything else."
	case "summary":
		return "The summary is the first thing most reviewers read."
	case "experience":
		return "Experience is where reviewers look for evidence of impact."
	case "education":
		return "Complete education details avoid follow-up questions."
	case "skills":
		return "A focused skills list makes your fit easy to confirm."
	case "structure":
		return "Expected sections make the document easy to scan."
	case "industry":
		return "Industry-specific language shows domain familiarity."
	default:
		return "Optional sections add depth to your profile."
	}
}
