// Package scoring combines the structural, industry and section scores into one
// report and turns every improvement into bucketed recommendations.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"resume-insights/internal/industry"
	"resume-insights/internal/profile"
	"resume-insights/internal/quality"
	"resume-insights/internal/scoring/recommendations"
)

const (
	structuralWeight = 0.2
	industryWeight   = 0.4
	sectionWeight    = 0.4

	// CriticalThreshold is the overall score below which missing mandatory fields
	// are reported as critical issues.
	CriticalThreshold = 50
	// LowConfidence is the classifier confidence below which the industry fit is
	// called out as an improvement.
	LowConfidence = 40

	summaryMinWords   = 50
	summaryMaxWords   = 150
	skillsTarget      = 5
	industrySkillsCap = 5
)

// Report is the aggregate score of one analysis.
type Report struct {
	OverallScore    int                     `json:"overallScore"`
	StructuralScore int                     `json:"structuralScore"`
	IndustryScore   int                     `json:"industryScore"`
	SectionScore    int                     `json:"sectionScore"`
	Strengths       []string                `json:"strengths"`
	Improvements    []string                `json:"improvements"`
	CriticalIssues  []string                `json:"criticalIssues"`
	Recommendations recommendations.Buckets `json:"recommendations"`
}

// Score builds the report. It reads its inputs and never modifies them.
func Score(p profile.Profile, cls industry.Classification, sections quality.Analysis) Report {
	authored := p.WithoutTemplate()
	structural := clamp(structuralScore(authored))
	industryScore := clamp(industryAdjustedScore(authored, cls, structural))
	sectionScore := clamp(int(math.Round(sections.Mean())))

	overall := clamp(int(math.Round(
		structuralWeight*float64(structural) +
			industryWeight*float64(industryScore) +
			sectionWeight*float64(sectionScore),
	)))

	report := Report{
		OverallScore:    overall,
		StructuralScore: structural,
		IndustryScore:   industryScore,
		SectionScore:    sectionScore,
		Strengths:       []string{},
		Improvements:    []string{},
		CriticalIssues:  criticalIssues(p, overall),
	}

	items := make([]recommendations.Item, 0, 16)
	for _, section := range quality.Order {
		res := sections[section]
		report.Strengths = append(report.Strengths, res.Strengths...)
		for _, imp := range res.Improvements {
			report.Improvements = append(report.Improvements, imp.Message)
			items = append(items, recommendations.Item{
				Section:  string(section),
				Priority: string(imp.Priority),
				Message:  imp.Message,
			})
		}
	}
	if msg, ok := industryImprovement(cls); ok {
		report.Improvements = append(report.Improvements, msg)
		items = append(items, recommendations.Item{Section: "industry", Priority: string(quality.PriorityMedium), Message: msg})
	}

	input := recommendations.Input{Items: items}
	if cls.Confidence > 0 {
		input.Industry = string(cls.Primary)
		input.MissingIndustrySkills = cls.MissingSkills
	}
	report.Recommendations = recommendations.Bucket(input)
	return report
}

// structuralScore rewards the presence of the core sections. The summary window here
// is 50-150 words, wider than the section rubric's.
func structuralScore(p profile.Profile) int {
	score := 0
	info := p.PersonalInfo
	if info.HasName() {
		score += 10
	}
	if info.Email != "" {
		score += 10
	}
	if info.Phone != "" {
		score += 10
	}
	if p.Summary != "" {
		score += 10
		if words := len(strings.Fields(p.Summary)); words >= summaryMinWords && words <= summaryMaxWords {
			score += 5
		}
	}
	if len(p.Experience) > 0 {
		score += 15
		if len(p.Experience) >= 2 {
			score += 5
		}
	}
	if len(p.RealEducation()) > 0 {
		score += 15
	}
	if len(p.Skills) > 0 {
		score += 10
		if len(p.Skills) >= skillsTarget {
			score += 5
		}
	}
	if len(p.RealProjects())+len(p.RealCertifications())+len(p.RealLanguages())+len(p.RealHobbies()) > 0 {
		score += 5
	}
	return score
}

// industryAdjustedScore blends classifier confidence (35), quantified-achievement
// density (25), skill relevance to the primary industry (25) and structure (15).
func industryAdjustedScore(p profile.Profile, cls industry.Classification, structural int) int {
	matched := float64(len(cls.MatchedSkills)) / industrySkillsCap
	if matched > 1 {
		matched = 1
	}
	v := 0.35*float64(cls.Confidence) +
		25*metricDensity(p.Experience) +
		25*matched +
		0.15*float64(structural)
	return int(math.Round(v))
}

// metricDensity is the share of positions whose own description carries a metric.
func metricDensity(entries []profile.Experience) float64 {
	if len(entries) == 0 {
		return 0
	}
	hits := 0
	for _, exp := range entries {
		if !exp.DescriptionSynthesized && profile.HasMetric(exp.Description) {
			hits++
		}
	}
	return float64(hits) / float64(len(entries))
}

func industryImprovement(cls industry.Classification) (string, bool) {
	if cls.Confidence >= LowConfidence {
		return "", false
	}
	if cls.Confidence == 0 {
		return "Add industry-specific skills and job titles so your field is clear", true
	}
	return fmt.Sprintf("Strengthen %s-specific skills and terminology to make your field clear", cls.Primary), true
}

func criticalIssues(p profile.Profile, overall int) []string {
	issues := []string{}
	if overall >= CriticalThreshold {
		return issues
	}
	if !p.PersonalInfo.HasName() {
		issues = append(issues, "Your full name is missing")
	}
	if !p.PersonalInfo.HasContactChannel() {
		issues = append(issues, "No email, phone or LinkedIn profile was found")
	}
	if p.Templated && len(issues) > 0 {
		issues = append(issues, "The document text could not be read, so this profile is a template")
	}
	return issues
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
