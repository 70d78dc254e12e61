package industry

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tag identifies an industry.
type Tag string

const (
	Technology Tag = "technology"
	Design     Tag = "design"
	Marketing  Tag = "marketing"
	Management Tag = "management"
	Finance    Tag = "finance"
	Healthcare Tag = "healthcare"
	Education  Tag = "education"
	Sales      Tag = "sales"
)

// DefaultConfidenceScale is the score that maps to 100% confidence.
const DefaultConfidenceScale = 80

// ErrInvalidTable is returned when a signature table fails validation.
var ErrInvalidTable = errors.New("invalid industry table")

// Signature is the rule set used to score a profile against one industry.
type Signature struct {
	Tag      Tag      `yaml:"tag" json:"tag"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Skills   []string `yaml:"skills" json:"skills"`
	Roles    []string `yaml:"roles" json:"roles"`
}

// Table is the ordered list of signatures. Declaration order breaks ties.
type Table struct {
	ConfidenceScale float64     `yaml:"confidenceScale" json:"confidenceScale"`
	Industries      []Signature `yaml:"industries" json:"industries"`
}

// DefaultTable returns a fresh copy of the built-in signature table.
func DefaultTable() Table {
	return defaultTable.clone()
}

// LoadTable reads a YAML signature table from path.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read industry table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates a YAML signature table.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("decode industry table: %w", err)
	}
	if t.ConfidenceScale == 0 {
		t.ConfidenceScale = DefaultConfidenceScale
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	return t, nil
}

// Validate checks that tags are present and unique and the scale is positive.
func (t Table) Validate() error {
	if len(t.Industries) == 0 {
		return fmt.Errorf("%w: no industries", ErrInvalidTable)
	}
	if t.ConfidenceScale <= 0 {
		return fmt.Errorf("%w: confidenceScale must be positive", ErrInvalidTable)
	}
	seen := make(map[Tag]bool, len(t.Industries))
	for i, sig := range t.Industries {
		tag := Tag(strings.TrimSpace(string(sig.Tag)))
		if tag == "" {
			return fmt.Errorf("%w: industry %d has no tag", ErrInvalidTable, i)
		}
		if seen[tag] {
			return fmt.Errorf("%w: duplicate tag %q", ErrInvalidTable, tag)
		}
		seen[tag] = true
	}
	return nil
}

// YAML renders the table in the same shape LoadTable reads.
func (t Table) YAML() ([]byte, error) {
	return yaml.Marshal(t)
}

func (t Table) clone() Table {
	out := Table{ConfidenceScale: t.ConfidenceScale, Industries: make([]Signature, len(t.Industries))}
	for i, sig := range t.Industries {
		out.Industries[i] = Signature{
			Tag:      sig.Tag,
			Keywords: append([]string(nil), sig.Keywords...),
			Skills:   append([]string(nil), sig.Skills...),
			Roles:    append([]string(nil), sig.Roles...),
		}
	}
	return out
}

var defaultTable = Table{
	ConfidenceScale: DefaultConfidenceScale,
	Industries: []Signature{
		{
			Tag:      Technology,
			Keywords: []string{"software", "developer", "engineering", "programming", "cloud", "api", "apis", "backend", "frontend", "full stack", "devops", "microservices", "database", "infrastructure", "scalable", "deployment"},
			Skills:   []string{"JavaScript", "TypeScript", "Python", "Java", "Golang", "Go", "Rust", "C++", "C#", "React", "Angular", "Vue.js", "Node.js", "Django", "Spring Boot", "AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "SQL", "PostgreSQL", "MongoDB", "Redis", "Kafka", "Git", "Linux", "GraphQL", "CI/CD"},
			Roles:    []string{"software engineer", "developer", "programmer", "devops", "site reliability", "data engineer", "data scientist", "architect", "qa engineer", "backend", "frontend", "full stack"},
		},
		{
			Tag:      Design,
			Keywords: []string{"design", "designs", "user experience", "user interface", "wireframes", "prototypes", "visual", "typography", "branding", "usability", "accessibility", "design system"},
			Skills:   []string{"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator", "InDesign", "After Effects", "Prototyping", "Wireframing", "User Research", "Typography", "Visual Design"},
			Roles:    []string{"designer", "ux/ui", "ui/ux", "user experience", "art director", "creative director", "illustrator"},
		},
		{
			Tag:      Marketing,
			Keywords: []string{"marketing", "campaign", "campaigns", "brand", "audience", "engagement", "seo", "content", "social media", "conversion", "leads", "growth"},
			Skills:   []string{"SEO", "SEM", "Google Analytics", "HubSpot", "Mailchimp", "Content Marketing", "Social Media", "Copywriting", "Google Ads", "Email Marketing", "Marketing Automation"},
			Roles:    []string{"marketing", "marketer", "seo specialist", "content strategist", "brand manager", "growth", "social media", "communications"},
		},
		{
			Tag:      Management,
			Keywords: []string{"management", "leadership", "stakeholders", "strategy", "roadmap", "budget", "operations", "cross-functional", "delivery", "planning", "team of"},
			Skills:   []string{"Leadership", "Project Management", "Agile", "Scrum", "Stakeholder Management", "Budgeting", "Strategic Planning", "Jira", "Risk Management", "People Management"},
			Roles:    []string{"manager", "director", "head of", "vp", "chief", "team lead", "program manager", "product owner", "project manager"},
		},
		{
			Tag:      Finance,
			Keywords: []string{"finance", "financial", "accounting", "audit", "investment", "portfolio", "forecasting", "budgeting", "tax", "revenue", "banking", "compliance"},
			Skills:   []string{"Excel", "Financial Modeling", "Accounting", "QuickBooks", "SAP", "Bloomberg", "Valuation", "GAAP", "Forecasting", "Risk Analysis"},
			Roles:    []string{"accountant", "financial analyst", "auditor", "controller", "investment", "banker", "cfo", "treasurer", "bookkeeper"},
		},
		{
			Tag:      Healthcare,
			Keywords: []string{"patient", "patients", "clinical", "healthcare", "medical", "hospital", "care", "treatment", "nursing", "health"},
			Skills:   []string{"Patient Care", "EMR", "EHR", "HIPAA", "CPR", "Clinical Research", "Phlebotomy", "Medical Terminology", "Triage"},
			Roles:    []string{"nurse", "physician", "doctor", "therapist", "pharmacist", "medical assistant", "clinician", "caregiver", "dentist"},
		},
		{
			Tag:      Education,
			Keywords: []string{"teaching", "students", "curriculum", "classroom", "lesson", "education", "learning", "instruction", "tutoring"},
			Skills:   []string{"Curriculum Development", "Lesson Planning", "Classroom Management", "Tutoring", "Instructional Design", "E-Learning"},
			Roles:    []string{"teacher", "tutor", "professor", "lecturer", "instructor", "educator", "teaching assistant", "principal"},
		},
		{
			Tag:      Sales,
			Keywords: []string{"sales", "quota", "pipeline", "clients", "customers", "accounts", "negotiation", "prospecting", "deals", "territory"},
			Skills:   []string{"Salesforce", "CRM", "Negotiation", "Lead Generation", "Cold Calling", "Account Management", "Business Development", "Closing"},
			Roles:    []string{"sales", "account executive", "account manager", "business development", "sales representative", "sdr", "bdr"},
		},
	},
}
