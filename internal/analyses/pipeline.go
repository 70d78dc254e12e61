package analyses

import (
	"time"

	"resume-insights/internal/document"
	"resume-insights/internal/industry"
	"resume-insights/internal/profile"
	"resume-insights/internal/quality"
	"resume-insights/internal/scoring"
)

// Pipeline runs normalize, extract, classify, analyze and score in order. It holds
// only the immutable classifier and is safe for concurrent use.
type Pipeline struct {
	classifier *industry.Classifier
}

// NewPipeline builds a pipeline around c; a nil c uses the default signature table.
func NewPipeline(c *industry.Classifier) *Pipeline {
	if c == nil {
		c = industry.Default()
	}
	return &Pipeline{classifier: c}
}

// Classifier returns the classifier the pipeline scores industries with.
func (p *Pipeline) Classifier() *industry.Classifier {
	if p == nil {
		return industry.Default()
	}
	return p.classifier
}

// Analyze is a pure function of in and asOf. asOf is only used to flag expired
// certifications; the zero time disables that check.
func (p *Pipeline) Analyze(in document.Input, asOf time.Time) Result {
	doc, status := document.Normalize(in)
	prof := profile.Extract(doc)
	cls := p.classifier.Classify(prof)
	sections := quality.Analyze(prof, asOf)
	report := scoring.Score(prof, cls, sections)
	return Result{
		ResumeProfile: prof,
		Industry:      cls,
		Sections:      sections,
		Score:         report,
		LowConfidence: status == document.StatusLowConfidence || prof.Templated,
	}
}
