package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 50, 100})
	for _, v := range []float64{5, 40, 60, 500} {
		h.Observe(v)
	}
	snap := h.Snapshot()
	if snap.count != 4 || snap.sum != 605 {
		t.Fatalf("unexpected snapshot: count=%d sum=%v", snap.count, snap.sum)
	}

	for i, want := range []uint64{1, 1, 1} {
		if snap.counts[i] != want {
			t.Fatalf("bucket %v holds %d observations, want %d", snap.buckets[i], snap.counts[i], want)
		}
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "x", "help", snap)
	for _, want := range []string{
		`x_bucket{le="10"} 1`,
		`x_bucket{le="50"} 2`,
		`x_bucket{le="100"} 3`,
		`x_bucket{le="+Inf"} 4`,
		`x_sum 605`,
		`x_count 4`,
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, buf.String())
		}
	}
}

func TestRenderIncludesAnalysisSeries(t *testing.T) {
	IncAnalysisStarted()
	IncAnalysisCompleted()
	IncAnalysisLowConfidence()
	ObserveAnalysisDurationMs(-3)
	ObserveOverallScore(72)

	out := Render()
	for _, name := range []string{
		"analysis_started_total",
		"analysis_completed_total",
		"analysis_low_confidence_total",
		"analysis_failed_total",
		"analysis_duration_ms_bucket",
		`analysis_overall_score_bucket{le="80"}`,
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output:\n%s", name, out)
		}
	}
}
