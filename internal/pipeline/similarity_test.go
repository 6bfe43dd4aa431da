package pipeline

import (
	"math"
	"testing"
	"time"
)

func TestJaccardSimilarity_Symmetry(t *testing.T) {
	t.Parallel()

	a := []string{"samsung", "hbm", "supply", "deal"}
	b := []string{"samsung", "hbm", "capacity"}
	if got, rev := JaccardSimilarity(a, b), JaccardSimilarity(b, a); got != rev {
		t.Fatalf("similarity is not symmetric: %f vs %f", got, rev)
	}
}

func TestJaccardSimilarity_EmptyInput(t *testing.T) {
	t.Parallel()

	if got := JaccardSimilarity(nil, []string{"x"}); got != 0 {
		t.Fatalf("expected 0 for empty left set, got %f", got)
	}
	if got := JaccardSimilarity([]string{"x"}, nil); got != 0 {
		t.Fatalf("expected 0 for empty right set, got %f", got)
	}
	if got := JaccardSimilarity(nil, nil); got != 0 {
		t.Fatalf("expected 0 for two empty sets, got %f", got)
	}
}

func TestJaccardSimilarity_Bounds(t *testing.T) {
	t.Parallel()

	a := []string{"one", "two", "three"}
	b := []string{"three", "four"}
	got := JaccardSimilarity(a, b)
	if got < 0 || got > 1 {
		t.Fatalf("similarity out of [0,1]: %f", got)
	}

	// Identical non-empty sets, duplicates collapsed.
	if got := JaccardSimilarity([]string{"x", "y", "x"}, []string{"y", "x"}); got != 1 {
		t.Fatalf("expected 1 for identical sets, got %f", got)
	}
}

func TestArticleSimilarity_UsesTitleAndSnippet(t *testing.T) {
	t.Parallel()

	a := Article{Title: "Samsung expands HBM capacity", Snippet: "memory chips for AI servers"}
	b := Article{Title: "Samsung boosts HBM output", Snippet: "memory chips for AI demand"}
	got := ArticleSimilarity(a, b)
	if got <= 0 || got >= 1 {
		t.Fatalf("expected partial overlap in (0,1), got %f", got)
	}

	disjoint := Article{Title: "완전히 다른 기사"}
	if got := ArticleSimilarity(a, disjoint); got != 0 {
		t.Fatalf("expected 0 for disjoint vocabularies, got %f", got)
	}
}

func TestHoursDiff(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	if got := HoursDiff(base, base.Add(90*time.Minute)); got != 1.5 {
		t.Fatalf("expected 1.5 hours, got %f", got)
	}
	if got := HoursDiff(base.Add(90*time.Minute), base); got != 1.5 {
		t.Fatalf("expected absolute difference, got %f", got)
	}
}

func TestHoursDiff_ZeroTimeIsMaximal(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	if got := HoursDiff(time.Time{}, base); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for missing timestamp, got %f", got)
	}
	if got := HoursDiff(time.Time{}, time.Time{}); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for two missing timestamps, got %f", got)
	}
}
