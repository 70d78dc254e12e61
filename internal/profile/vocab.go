package profile

import "strings"

// knownTechTerms are matched against the whole document, not just the skills span.
// Ambiguous short words ("Go", "R", "C") are left out on purpose.
var knownTechTerms = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Golang", "Rust", "Ruby", "PHP", "C++", "C#",
	"Kotlin", "Swift", "Scala", "SQL", "HTML", "CSS", "React", "Angular", "Vue.js", "Node.js",
	"Next.js", "Django", "Flask", "Spring Boot", "Ruby on Rails", ".NET", "GraphQL", "RESTful",
	"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
	"Git", "GitHub", "GitLab", "CI/CD", "Linux", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Kafka",
	"Elasticsearch", "Spark", "Hadoop", "Airflow", "TensorFlow", "PyTorch", "Pandas", "NumPy",
	"Machine Learning", "Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator", "InDesign",
	"Jira", "Confluence", "Tableau", "Power BI", "Excel", "Salesforce", "HubSpot", "Google Analytics",
	"SEO", "Agile", "Scrum",
}

var knownLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese", "Dutch", "Swedish", "Norwegian",
	"Danish", "Finnish", "Polish", "Czech", "Romanian", "Hungarian", "Greek", "Turkish", "Russian",
	"Ukrainian", "Arabic", "Hebrew", "Persian", "Hindi", "Urdu", "Bengali", "Punjabi", "Tamil",
	"Telugu", "Mandarin", "Cantonese", "Chinese", "Japanese", "Korean", "Vietnamese", "Thai",
	"Indonesian", "Malay", "Tagalog", "Swahili", "Yoruba", "Igbo", "Hausa", "Amharic",
}

var proficiencyLevels = []string{
	"native", "bilingual", "fluent", "full professional", "professional working", "professional",
	"proficient", "advanced", "upper intermediate", "intermediate", "conversational", "limited working",
	"elementary", "basic", "beginner", "c2", "c1", "b2", "b1", "a2", "a1",
}

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true, "DE": true,
	"FL": true, "GA": true, "HI": true, "ID": true, "IL": true, "IN": true, "IA": true, "KS": true,
	"KY": true, "LA": true, "ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true, "NM": true, "NY": true,
	"NC": true, "ND": true, "OH": true, "OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

var countries = []string{
	"United States", "USA", "United Kingdom", "UK", "Canada", "Australia", "New Zealand", "Ireland",
	"Germany", "France", "Spain", "Portugal", "Italy", "Netherlands", "Belgium", "Switzerland",
	"Austria", "Sweden", "Norway", "Denmark", "Finland", "Poland", "India", "Pakistan", "China",
	"Japan", "Singapore", "Brazil", "Mexico", "Argentina", "Nigeria", "Kenya", "Ghana", "South Africa",
	"Egypt", "UAE", "Israel", "Turkey",
}

var placeholderEmailDomains = map[string]bool{
	"example.com": true, "example.org": true, "example.net": true, "domain.com": true,
}

// Title keywords per role archetype; also used to tell a title from a company name.
var roleArchetypes = []struct {
	name     string
	keywords []string
	bullets  []string
}{
	{
		name:     "engineer",
		keywords: []string{"engineer", "developer", "programmer", "architect", "devops", "sre", "software", "data scientist", "analyst"},
		bullets: []string{
			"Designed, built and maintained software components at %s",
			"Collaborated with cross-functional teams to deliver product features",
			"Improved code quality through reviews, testing and documentation",
		},
	},
	{
		name:     "designer",
		keywords: []string{"designer", "ux", "ui", "creative", "illustrator", "art director"},
		bullets: []string{
			"Created user-centered designs and visual assets at %s",
			"Partnered with product and engineering to ship design changes",
			"Maintained design systems and style guidelines",
		},
	},
	{
		name:     "manager",
		keywords: []string{"manager", "director", "head of", "lead", "supervisor", "coordinator", "chief", "vp"},
		bullets: []string{
			"Led team planning and delivery at %s",
			"Managed stakeholders, priorities and budgets",
			"Coached team members and improved team processes",
		},
	},
	{
		name:     "marketer",
		keywords: []string{"marketing", "marketer", "seo", "content", "brand", "growth", "social media", "communications"},
		bullets: []string{
			"Planned and executed marketing campaigns at %s",
			"Analyzed campaign performance and reported on results",
			"Produced content for digital and social channels",
		},
	},
	{
		name:     "generic",
		keywords: nil,
		bullets: []string{
			"Carried out core responsibilities of the role at %s",
			"Worked with colleagues to meet team objectives",
			"Contributed to process improvements",
		},
	},
}

var titleHints = []string{
	"engineer", "developer", "programmer", "architect", "designer", "manager", "director", "lead",
	"analyst", "consultant", "specialist", "intern", "assistant", "associate", "coordinator",
	"administrator", "officer", "scientist", "head", "vp", "president", "founder", "owner",
	"accountant", "nurse", "teacher", "technician", "representative", "executive", "marketer",
	"writer", "editor", "researcher", "supervisor", "strategist", "trainee", "chief",
}

var companyHints = []string{
	"inc", "llc", "ltd", "corp", "corporation", "company", "co.", "group", "gmbh", "technologies",
	"solutions", "labs", "systems", "university", "agency", "studio", "partners", "bank", "plc",
}

var institutionHints = []string{
	"university", "college", "institute", "school", "academy", "polytechnic", "conservatory", "bootcamp",
}

var filenameNoise = map[string]bool{
	"resume": true, "cv": true, "curriculum": true, "vitae": true, "final": true, "draft": true,
	"updated": true, "new": true, "copy": true, "latest": true, "version": true, "my": true,
	"pdf": true, "docx": true, "doc": true, "txt": true,
}

// IsTechTerm reports whether s is one of the well-known technical or tool terms.
func IsTechTerm(s string) bool {
	s = strings.TrimSpace(s)
	for _, term := range knownTechTerms {
		if strings.EqualFold(s, term) {
			return true
		}
	}
	return false
}
