package recommendations

// Recommendation is one prioritized, human-readable suggestion.
type Recommendation struct {
	ID       string `json:"id"`
	Section  string `json:"section"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Title    string `json:"title"`
	Why      string `json:"why"`
	Order    int    `json:"order"`
}

// Item is an improvement raised by a section rubric, in rubric order.
type Item struct {
	Section  string
	Priority string
	Message  string
}

// Input is everything the engine turns into recommendations.
type Input struct {
	Items                 []Item
	Industry              string
	MissingIndustrySkills []string
}

// Buckets partitions recommendations by urgency. Order is 1-based within a bucket.
type Buckets struct {
	Immediate []Recommendation `json:"immediate"`
	ShortTerm []Recommendation `json:"shortTerm"`
	LongTerm  []Recommendation `json:"longTerm"`
}
