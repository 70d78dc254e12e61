package quality

// Section names a scored part of the profile.
type Section string

const (
	PersonalInfo   Section = "personalInfo"
	Summary        Section = "summary"
	Experience     Section = "experience"
	Education      Section = "education"
	Skills         Section = "skills"
	Projects       Section = "projects"
	Certifications Section = "certifications"
	Languages      Section = "languages"
	Hobbies        Section = "hobbies"
	Structure      Section = "structure"
)

// Order is the fixed order sections are reported and aggregated in.
var Order = []Section{
	PersonalInfo, Summary, Experience, Education, Skills,
	Projects, Certifications, Languages, Hobbies, Structure,
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Improvement struct {
	Message  string   `json:"message"`
	Priority Priority `json:"priority"`
}

// Result is the score of one section. Strengths and Improvements keep rubric order.
type Result struct {
	Score        int            `json:"score"`
	Strengths    []string       `json:"strengths"`
	Improvements []Improvement  `json:"improvements"`
	Details      map[string]any `json:"details"`
}

// Analysis maps every section in Order to its result.
type Analysis map[Section]Result

// Mean is the average score across every section in Order.
func (a Analysis) Mean() float64 {
	if len(Order) == 0 {
		return 0
	}
	total := 0
	for _, s := range Order {
		total += a[s].Score
	}
	return float64(total) / float64(len(Order))
}

// rubric accumulates points and messages for one section.
type rubric struct {
	score        int
	strengths    []string
	improvements []Improvement
	details      map[string]any
}

func newRubric() *rubric {
	return &rubric{strengths: []string{}, improvements: []Improvement{}, details: map[string]any{}}
}

func (r *rubric) add(points int, strength string) {
	r.score += points
	if strength != "" {
		r.strengths = append(r.strengths, strength)
	}
}

func (r *rubric) improve(priority Priority, message string) {
	r.improvements = append(r.improvements, Improvement{Message: message, Priority: priority})
}

// check awards points when ok holds, and records the improvement otherwise.
func (r *rubric) check(ok bool, points int, strength string, priority Priority, miss string) {
	if ok {
		r.add(points, strength)
		return
	}
	if miss != "" {
		r.improve(priority, miss)
	}
}

func (r *rubric) result() Result {
	return Result{Score: clamp(r.score), Strengths: r.strengths, Improvements: r.improvements, Details: r.details}
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
