package analyses

import (
	"time"

	"resume-insights/internal/industry"
	"resume-insights/internal/profile"
	"resume-insights/internal/quality"
	"resume-insights/internal/scoring"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Result is the output contract of one pipeline run. It holds no behavior and is
// safe to persist, render or transmit as-is.
type Result struct {
	ResumeProfile profile.Profile         `json:"resumeProfile"`
	Industry      industry.Classification `json:"industry"`
	Sections      quality.Analysis        `json:"sections"`
	Score         scoring.Report          `json:"score"`
	LowConfidence bool                    `json:"lowConfidence"`
}

// Analysis wraps a Result with the bookkeeping of the request that produced it.
type Analysis struct {
	ID         string    `json:"analysisId"`
	Status     string    `json:"status"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
	AsOf       string    `json:"asOf"`
	DurationMs float64   `json:"durationMs"`
	Result
}
