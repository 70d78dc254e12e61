package recommendations

import (
	"sort"
	"strings"
	"unicode"
)

// Generate builds the deterministic recommendation list: map, dedupe, then a stable
// sort by priority so equal priorities keep rubric order.
func Generate(input Input) []Recommendation {
	candidates := make([]Recommendation, 0, len(input.Items)+1)
	mappers := []func(Input) []Recommendation{
		func(in Input) []Recommendation {
			return fromItems(in.Items)
		},
		func(in Input) []Recommendation {
			return fromIndustryGap(in.Industry, in.MissingIndustrySkills)
		},
	}
	for _, mapper := range mappers {
		candidates = append(candidates, mapper(input)...)
	}

	deduped := dedupe(candidates)
	sortRecommendations(deduped)
	return deduped
}

// Bucket partitions the generated recommendations into immediate (high), short-term
// (medium) and long-term (low).
func Bucket(input Input) Buckets {
	out := Buckets{
		Immediate: []Recommendation{},
		ShortTerm: []Recommendation{},
		LongTerm:  []Recommendation{},
	}
	for _, rec := range Generate(input) {
		switch rec.Priority {
		case "high":
			rec.Order = len(out.Immediate) + 1
			out.Immediate = append(out.Immediate, rec)
		case "medium":
			rec.Order = len(out.ShortTerm) + 1
			out.ShortTerm = append(out.ShortTerm, rec)
		default:
			rec.Order = len(out.LongTerm) + 1
			out.LongTerm = append(out.LongTerm, rec)
		}
	}
	return out
}

func priorityRank(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

func inferCategory(section string, title string) string {
	combined := strings.ToLower(strings.TrimSpace(section + " " + title))
	switch {
	case section == "personalInfo" || strings.Contains(combined, "email") || strings.Contains(combined, "phone"):
		return "CONTACT"
	case strings.Contains(combined, "skill"):
		return "SKILLS"
	case strings.Contains(combined, "experience") || strings.Contains(combined, "position") || strings.Contains(combined, "bullet"):
		return "EXPERIENCE"
	case strings.Contains(combined, "structure") || strings.Contains(combined, "section"):
		return "STRUCTURE"
	default:
		return "CONTENT"
	}
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}

// dedupe keeps the first occurrence of each ID. A later duplicate can only raise
// the priority and fill empty fields.
func dedupe(items []Recommendation) []Recommendation {
	seen := make(map[string]Recommendation, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		if existing, ok := seen[id]; ok {
			seen[id] = mergeRecommendation(existing, item)
			continue
		}
		seen[id] = item
		order = append(order, id)
	}
	out := make([]Recommendation, 0, len(order))
	for _, id := range order {
		out = append(out, seen[id])
	}
	return out
}

func mergeRecommendation(a, b Recommendation) Recommendation {
	if priorityRank(b.Priority) > priorityRank(a.Priority) {
		a.Priority = b.Priority
	}
	if strings.TrimSpace(a.Section) == "" {
		a.Section = b.Section
	}
	if strings.TrimSpace(a.Category) == "" {
		a.Category = b.Category
	}
	if strings.TrimSpace(a.Why) == "" {
		a.Why = b.Why
	}
	return a
}

func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		return priorityRank(items[i].Priority) > priorityRank(items[j].Priority)
	})
}

func uniqueSortedStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
