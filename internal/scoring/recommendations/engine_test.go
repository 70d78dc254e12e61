package recommendations

import (
	"reflect"
	"testing"
)

func TestGenerateDeterminism(t *testing.T) {
	input := Input{
		Items: []Item{
			{Section: "experience", Priority: "medium", Message: "Quantify achievements"},
			{Section: "summary", Priority: "high", Message: "Add a professional summary"},
			{Section: "hobbies", Priority: "low", Message: "Consider adding a hobbies section"},
		},
		Industry:              "technology",
		MissingIndustrySkills: []string{"Kubernetes", "Go"},
	}

	first := Bucket(input)
	second := Bucket(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic buckets")
	}
}

func TestBucketPartitionsByPriority(t *testing.T) {
	buckets := Bucket(Input{Items: []Item{
		{Section: "skills", Priority: "low", Message: "L1"},
		{Section: "summary", Priority: "high", Message: "H1"},
		{Section: "skills", Priority: "medium", Message: "M1"},
		{Section: "experience", Priority: "high", Message: "H2"},
		{Section: "projects", Priority: "", Message: "L2"},
	}})

	assertTitles(t, "immediate", buckets.Immediate, "H1", "H2")
	assertTitles(t, "shortTerm", buckets.ShortTerm, "M1")
	assertTitles(t, "longTerm", buckets.LongTerm, "L1", "L2")
	for i, rec := range buckets.Immediate {
		if rec.Order != i+1 {
			t.Fatalf("expected order %d, got %d", i+1, rec.Order)
		}
	}
}

func TestGenerateStableWithinPriority(t *testing.T) {
	items := make([]Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, Item{Section: "experience", Priority: "medium", Message: "Issue " + string(rune('T'-i))})
	}
	recs := Generate(Input{Items: items})
	if len(recs) != 20 {
		t.Fatalf("expected 20 recommendations, got %d", len(recs))
	}
	for i, rec := range recs {
		want := "Issue " + string(rune('T'-i))
		if rec.Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, rec.Title)
		}
	}
}

func TestGenerateDedupKeepsHighestPriority(t *testing.T) {
	recs := Generate(Input{Items: []Item{
		{Section: "summary", Priority: "low", Message: "Add a summary"},
		{Section: "structure", Priority: "high", Message: "Add a  summary!"},
	}})
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation after dedupe, got %d", len(recs))
	}
	if recs[0].Priority != "high" || recs[0].Section != "summary" {
		t.Fatalf("unexpected merge result: %+v", recs[0])
	}
}

func TestIndustryGap(t *testing.T) {
	recs := Generate(Input{
		Industry:              "technology",
		MissingIndustrySkills: []string{"k7", "k1", "k3", "k2", "k6", "k5", "k4", "K1"},
	})
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	want := "Consider adding technology skills you have used: k1, k2, k3, k4, k5"
	if recs[0].Title != want {
		t.Fatalf("expected title %q, got %q", want, recs[0].Title)
	}
	if recs[0].Priority != "low" {
		t.Fatalf("expected low priority, got %q", recs[0].Priority)
	}
}

func TestBucketEmpty(t *testing.T) {
	buckets := Bucket(Input{})
	if buckets.Immediate == nil || buckets.ShortTerm == nil || buckets.LongTerm == nil {
		t.Fatalf("expected non-nil buckets")
	}
}

func assertTitles(t *testing.T, name string, recs []Recommendation, want ...string) {
	t.Helper()
	if len(recs) != len(want) {
		t.Fatalf("%s: expected %d items, got %d", name, len(want), len(recs))
	}
	for i := range want {
		if recs[i].Title != want[i] {
			t.Fatalf("%s[%d]: expected %q, got %q", name, i, want[i], recs[i].Title)
		}
	}
}
