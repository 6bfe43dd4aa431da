package events

import (
	"testing"
	"time"

	"github.com/misodaily/newsdesk/internal/pipeline"
)

func fixtureSet(ref time.Time) *Set {
	return NewSet([]pipeline.Event{
		{
			ID:        "kr-005930-2026-02-04-hbm",
			Market:    "kr",
			Ticker:    "005930",
			StartedAt: ref.Add(-2 * time.Hour),
			UpdatedAt: ref.Add(-1 * time.Hour),
			Type:      pipeline.LabelGuidance,
		},
		{
			ID:        "kr-005930-2026-02-03-earnings",
			Market:    "kr",
			Ticker:    "005930",
			StartedAt: ref.Add(-26 * time.Hour),
			UpdatedAt: ref.Add(-24 * time.Hour),
			Type:      pipeline.LabelEarnings,
		},
		{
			ID:        "us-TSLA-2026-02-04-recall",
			Market:    "us",
			Ticker:    "TSLA",
			StartedAt: ref.Add(-6 * time.Hour),
			UpdatedAt: ref.Add(-3 * time.Hour),
			Type:      pipeline.LabelRecall,
		},
		{
			// Missing publish timestamp upstream.
			ID:     "us-TSLA-0001-01-01-event",
			Market: "us",
			Ticker: "TSLA",
			Type:   pipeline.LabelOther,
		},
	})
}

func TestSet_ByTicker(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	got := fixtureSet(ref).ByTicker("kr", "005930")
	if len(got) != 2 {
		t.Fatalf("expected 2 events for ticker, got %d", len(got))
	}
	if !got[0].StartedAt.After(got[1].StartedAt) {
		t.Fatalf("expected startedAt descending order")
	}
}

func TestSet_ByTickerEmpty(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	if got := fixtureSet(ref).ByTicker("kr", "000000"); len(got) != 0 {
		t.Fatalf("expected empty result for unknown ticker, got %d", len(got))
	}
}

func TestSet_InWindow(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	set := fixtureSet(ref)

	got := set.InWindow(ref, 24)
	if len(got) != 2 {
		t.Fatalf("expected 2 events in 24h window, got %d", len(got))
	}
	if !got[0].UpdatedAt.After(got[1].UpdatedAt) {
		t.Fatalf("expected updatedAt descending order")
	}

	// A wider window picks up the earnings event but never the
	// zero-timestamp one.
	if got := set.InWindow(ref, 72); len(got) != 3 {
		t.Fatalf("expected 3 events in 72h window, got %d", len(got))
	}
}

func TestSet_TopInWindow(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	set := fixtureSet(ref)

	got := set.TopInWindow(ref, 72, 1)
	if len(got) != 1 {
		t.Fatalf("expected truncation to 1 event, got %d", len(got))
	}
	if got[0].ID != "kr-005930-2026-02-04-hbm" {
		t.Fatalf("expected most recently updated event first, got %q", got[0].ID)
	}
	if got := set.TopInWindow(ref, 72, 0); got != nil {
		t.Fatalf("expected nil for non-positive n")
	}
}

func TestSet_ByID(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	set := fixtureSet(ref)

	if _, ok := set.ByID("kr-005930-2026-02-04-hbm"); !ok {
		t.Fatalf("expected id lookup hit")
	}
	if _, ok := set.ByID("does-not-exist"); ok {
		t.Fatalf("expected id lookup miss to report absence")
	}
}

func TestLabelCounts_ZeroFilled(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)
	counts := LabelCounts(fixtureSet(ref).All())

	if len(counts) != len(pipeline.Labels()) {
		t.Fatalf("expected every taxonomy label in tally, got %d", len(counts))
	}
	if counts[pipeline.LabelEarnings] != 1 || counts[pipeline.LabelRecall] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if n, ok := counts[pipeline.LabelLawsuit]; !ok || n != 0 {
		t.Fatalf("expected zero-count label present, got ok=%t n=%d", ok, n)
	}
}

func TestLabelDisplayName(t *testing.T) {
	t.Parallel()

	if got := LabelDisplayName(pipeline.LabelEarnings); got != "실적" {
		t.Fatalf("unexpected display name: %q", got)
	}
	if got := LabelDisplayName(pipeline.Label("bogus")); got != "bogus" {
		t.Fatalf("expected passthrough for unknown label, got %q", got)
	}
}
