package quality

import (
	"strings"

	"resume-insights/internal/profile"
)

var actionVerbs = map[string]bool{
	"achieved": true, "analyzed": true, "architected": true, "automated": true, "built": true,
	"coached": true, "coordinated": true, "created": true, "cut": true, "delivered": true,
	"designed": true, "developed": true, "drove": true, "established": true, "executed": true,
	"generated": true, "grew": true, "implemented": true, "improved": true, "increased": true,
	"launched": true, "led": true, "managed": true, "mentored": true, "migrated": true,
	"negotiated": true, "optimized": true, "organized": true, "owned": true, "planned": true,
	"redesigned": true, "reduced": true, "resolved": true, "saved": true, "shipped": true,
	"spearheaded": true, "streamlined": true, "trained": true, "wrote": true, "boosted": true,
}

var professionalKeywords = []string{
	"experience", "experienced", "expertise", "skilled", "specialist", "specializing", "professional",
	"background", "proven", "track record", "years", "passionate", "results-driven",
}

var technicalIndicators = []string{
	"programming", "development", "engineering", "sql", "data analysis", "machine learning", "cloud",
	"api", "database", "networking", "security", "statistics", "modeling", "cad", "seo",
}

var softSkills = []string{
	"communication", "leadership", "teamwork", "collaboration", "problem solving", "problem-solving",
	"time management", "adaptability", "critical thinking", "organization", "creativity",
	"negotiation", "mentoring", "presentation", "public speaking", "empathy", "attention to detail",
}

var toolSkills = []string{
	"figma", "sketch", "jira", "confluence", "excel", "git", "github", "photoshop", "illustrator",
	"salesforce", "hubspot", "tableau", "power bi", "docker", "kubernetes", "jenkins", "slack",
	"notion", "trello", "microsoft office", "google analytics", "vs code", "postman", "terraform",
}

var genericEmailDomains = map[string]bool{
	"gmail.com": true, "yahoo.com": true, "hotmail.com": true, "outlook.com": true, "icloud.com": true,
	"aol.com": true, "live.com": true, "msn.com": true, "protonmail.com": true, "proton.me": true,
	"mail.com": true, "email.com": true, "gmx.com": true, "yandex.com": true, "zoho.com": true,
}

func startsWithVerb(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	return actionVerbs[strings.ToLower(strings.Trim(fields[0], ".,;:!"))]
}

func containsVerb(s string) bool {
	for _, w := range strings.Fields(s) {
		if actionVerbs[strings.ToLower(strings.Trim(w, ".,;:!()"))] {
			return true
		}
	}
	return false
}

func containsAnyTerm(s string, terms []string) bool {
	for _, t := range terms {
		if profile.ContainsTerm(s, t) {
			return true
		}
	}
	return false
}

func isTechnical(skill string) bool {
	return profile.IsTechTerm(skill) || containsAnyTerm(skill, technicalIndicators)
}
