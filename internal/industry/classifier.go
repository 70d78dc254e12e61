package industry

import (
	"math"
	"strings"

	"resume-insights/internal/profile"
)

const (
	keywordWeight = 2
	skillWeight   = 5
	roleWeight    = 10
)

// Classification is the classifier output. MatchedSkills lists the profile skills
// found in the primary industry's skill list; MissingSkills the rest of that list.
type Classification struct {
	Primary           Tag         `json:"primary"`
	Confidence        int         `json:"confidence"`
	PerIndustryScores map[Tag]int `json:"perIndustryScores"`
	MatchedSkills     []string    `json:"matchedSkills"`
	MissingSkills     []string    `json:"missingSkills"`
}

// Classifier scores profiles against an immutable signature table. It is safe for
// concurrent use.
type Classifier struct {
	table Table
}

// NewClassifier copies t so later changes by the caller do not leak in.
func NewClassifier(t Table) (*Classifier, error) {
	t = t.clone()
	if t.ConfidenceScale == 0 {
		t.ConfidenceScale = DefaultConfidenceScale
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{table: t}, nil
}

// Default returns a classifier over DefaultTable.
func Default() *Classifier {
	return &Classifier{table: DefaultTable()}
}

// Table returns a copy of the active signature table.
func (c *Classifier) Table() Table {
	return c.table.clone()
}

// Classify picks the highest-scoring industry; the first declared industry wins ties.
func (c *Classifier) Classify(p profile.Profile) Classification {
	p = p.WithoutTemplate()
	corpus := buildCorpus(p)
	titles := make([]string, 0, len(p.Experience))
	for _, exp := range p.Experience {
		titles = append(titles, strings.ToLower(exp.Position))
	}

	out := Classification{
		PerIndustryScores: make(map[Tag]int, len(c.table.Industries)),
		MatchedSkills:     []string{},
		MissingSkills:     []string{},
	}
	best := -1
	var bestSkills, bestWant []string
	for _, sig := range c.table.Industries {
		keywords := 0
		for _, kw := range sig.Keywords {
			keywords += profile.CountTerm(corpus, kw)
		}
		skills := matchSkills(p.Skills, sig.Skills)
		roles := 0
		for _, title := range titles {
			for _, role := range sig.Roles {
				if role = strings.ToLower(strings.TrimSpace(role)); role != "" && strings.Contains(title, role) {
					roles++
				}
			}
		}

		score := keywordWeight*keywords + skillWeight*len(skills) + roleWeight*roles
		out.PerIndustryScores[sig.Tag] = score
		if score > best {
			best = score
			out.Primary = sig.Tag
			bestSkills = skills
			bestWant = sig.Skills
		}
	}
	out.MatchedSkills = append(out.MatchedSkills, bestSkills...)
	out.MissingSkills = append(out.MissingSkills, missingSkills(p.Skills, bestWant)...)
	out.Confidence = confidence(best, c.table.ConfidenceScale)
	return out
}

func confidence(score int, scale float64) int {
	if score <= 0 || scale <= 0 {
		return 0
	}
	v := math.Round(float64(score) / scale * 100)
	if v > 100 {
		return 100
	}
	return int(v)
}

// matchSkills returns the profile skills that appear, case-insensitively, in want.
func matchSkills(have, want []string) []string {
	index := make(map[string]bool, len(want))
	for _, w := range want {
		index[strings.ToLower(strings.TrimSpace(w))] = true
	}
	var out []string
	for _, h := range have {
		if index[strings.ToLower(strings.TrimSpace(h))] {
			out = append(out, h)
		}
	}
	return out
}

// missingSkills returns the entries of want not present in have, in table order.
func missingSkills(have, want []string) []string {
	index := make(map[string]bool, len(have))
	for _, h := range have {
		index[strings.ToLower(strings.TrimSpace(h))] = true
	}
	var out []string
	for _, w := range want {
		if !index[strings.ToLower(strings.TrimSpace(w))] {
			out = append(out, w)
		}
	}
	return out
}

// buildCorpus joins the profile fields that carry signal. Synthesized descriptions and
// placeholder records are left out so filler text cannot sway the result.
func buildCorpus(p profile.Profile) string {
	parts := make([]string, 0, 16)
	parts = append(parts, p.Summary)
	for _, exp := range p.Experience {
		parts = append(parts, exp.Position, exp.Company)
		if !exp.DescriptionSynthesized {
			parts = append(parts, exp.Description)
		}
	}
	parts = append(parts, strings.Join(p.Skills, ", "))
	for _, edu := range p.RealEducation() {
		parts = append(parts, edu.Degree, edu.Field)
	}
	for _, proj := range p.RealProjects() {
		parts = append(parts, proj.Name, proj.Description, strings.Join(proj.Technologies, ", "))
	}
	for _, cert := range p.RealCertifications() {
		parts = append(parts, cert.Name)
	}
	return strings.Join(parts, "\n")
}
