package health

import "resume-insights/internal/industry"

// Status is the health payload.
type Status struct {
	OK          bool           `json:"ok"`
	Industries  []industry.Tag `json:"industries"`
	ObjectStore string         `json:"objectStore"`
}

// Service reports what the running pipeline is configured with.
type Service struct {
	industries  []industry.Tag
	objectStore string
}

// NewService constructs a new health service.
func NewService(c *industry.Classifier, objectStore string) *Service {
	if c == nil {
		c = industry.Default()
	}
	table := c.Table()
	tags := make([]industry.Tag, 0, len(table.Industries))
	for _, sig := range table.Industries {
		tags = append(tags, sig.Tag)
	}
	return &Service{industries: tags, objectStore: objectStore}
}

// Status returns the health payload.
func (s *Service) Status() Status {
	return Status{
		OK:          true,
		Industries:  append([]industry.Tag(nil), s.industries...),
		ObjectStore: s.objectStore,
	}
}
