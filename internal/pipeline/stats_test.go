package pipeline

import (
	"testing"
	"time"
)

func TestConvertStats_Snapshot(t *testing.T) {
	stats := NewConvertStats(time.Hour)
	for _, ms := range []int64{10, 20, 30, 40, 50} {
		stats.Record(time.Duration(ms) * time.Millisecond)
	}
	stats.RecordFailure()

	snap := stats.Snapshot()
	if snap.Count != 5 {
		t.Errorf("expected count 5, got %d", snap.Count)
	}
	if snap.Failures != 1 {
		t.Errorf("expected 1 failure, got %d", snap.Failures)
	}
	if snap.MinMs != 10 || snap.MaxMs != 50 {
		t.Errorf("expected min/max 10/50, got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 30 {
		t.Errorf("expected avg 30, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 30 {
		t.Errorf("expected p50 30, got %d", snap.P50Ms)
	}
	if snap.P99Ms != 50 {
		t.Errorf("expected p99 50, got %d", snap.P99Ms)
	}
}

func TestConvertStats_EmptySnapshot(t *testing.T) {
	snap := NewConvertStats(time.Hour).Snapshot()
	if snap.Count != 0 || snap.MinMs != 0 || snap.P95Ms != 0 {
		t.Errorf("expected zero snapshot, got %+v", snap)
	}
}

func TestConvertStats_WindowPrunesOldSamples(t *testing.T) {
	stats := NewConvertStats(20 * time.Millisecond)
	stats.Record(10 * time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	stats.Record(40 * time.Millisecond)

	snap := stats.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected 1 sample after pruning, got %d", snap.Count)
	}
	if snap.MinMs != 40 {
		t.Errorf("expected surviving sample 40ms, got %d", snap.MinMs)
	}
}

func TestConvertStats_NegativeDurationClamped(t *testing.T) {
	stats := NewConvertStats(time.Hour)
	stats.Record(-5 * time.Millisecond)
	if snap := stats.Snapshot(); snap.MinMs != 0 {
		t.Errorf("expected clamped 0, got %d", snap.MinMs)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	cases := []struct {
		pct  int
		want int64
	}{
		{50, 5},
		{95, 10},
		{99, 10},
		{100, 10},
	}
	for _, tc := range cases {
		if got := percentile(sorted, tc.pct); got != tc.want {
			t.Errorf("percentile(%d): expected %d, got %d", tc.pct, tc.want, got)
		}
	}
	if got := percentile(nil, 50); got != 0 {
		t.Errorf("expected 0 for empty input, got %d", got)
	}
}
