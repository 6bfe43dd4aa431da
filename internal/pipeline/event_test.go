package pipeline

import (
	"reflect"
	"testing"
	"time"
)

func eventFixture(base time.Time) []Article {
	return []Article{
		{
			Title:       "삼성전자 4분기 영업이익 12조 돌파",
			Snippet:     "메모리 업황 회복",
			URL:         "https://example.com/earnings-1",
			Source:      "연합뉴스",
			PublishedAt: base,
		},
		{
			Title:       "삼성전자 4분기 영업이익 컨센서스 상회",
			Snippet:     "메모리 업황 회복 기대",
			URL:         "https://example.com/earnings-2",
			Source:      "매일경제",
			PublishedAt: base.Add(time.Hour),
		},
		{
			// Same URL as the first article, different casing.
			Title:       "삼성전자 4분기 영업이익 12조 돌파",
			Snippet:     "메모리 업황 회복",
			URL:         "https://EXAMPLE.com/earnings-1/",
			Source:      "연합뉴스",
			PublishedAt: base.Add(2 * time.Hour),
		},
	}
}

func TestClusterToEvent_EmptyCluster(t *testing.T) {
	t.Parallel()

	if _, ok := ClusterToEvent(nil, "kr", "005930", Options{}); ok {
		t.Fatalf("expected no event for empty cluster")
	}
}

func TestClusterToEvent_Synthesis(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	ev, ok := ClusterToEvent(eventFixture(base), "kr", "005930", Options{})
	if !ok {
		t.Fatalf("expected an event")
	}

	if ev.Market != "kr" || ev.Ticker != "005930" {
		t.Fatalf("unexpected identity: %s/%s", ev.Market, ev.Ticker)
	}
	if !ev.StartedAt.Equal(base) {
		t.Fatalf("startedAt should be the oldest publish time, got %v", ev.StartedAt)
	}
	if !ev.UpdatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("updatedAt should be the newest publish time, got %v", ev.UpdatedAt)
	}
	if ev.Type != LabelEarnings {
		t.Fatalf("expected earnings label from cluster text, got %q", ev.Type)
	}
	if len(ev.Summary2) == 0 || len(ev.Summary2) > 2 {
		t.Fatalf("summary2 must hold 1-2 lines, got %d", len(ev.Summary2))
	}
	if ev.Why == "" {
		t.Fatalf("expected a rationale sentence")
	}

	// The duplicated URL collapses; the two remaining articles are
	// distinct enough to both stay primary and all survivors are
	// projected into links.
	if len(ev.Links) != 2 {
		t.Fatalf("expected 2 links after dedupe, got %d", len(ev.Links))
	}
	for _, l := range ev.Links {
		if l.Source == "" || l.URL == "" || l.Title == "" {
			t.Fatalf("link projection incomplete: %+v", l)
		}
	}
}

func TestClusterToEvent_DeterministicID(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	first, _ := ClusterToEvent(eventFixture(base), "kr", "005930", Options{})
	second, _ := ClusterToEvent(eventFixture(base), "kr", "005930", Options{})

	if first.ID != second.ID {
		t.Fatalf("ids diverge across identical runs: %q vs %q", first.ID, second.ID)
	}
	want := "kr-005930-2026-02-04-삼성전자-4분기-영업이익"
	if first.ID != want {
		t.Fatalf("unexpected id: got %q want %q", first.ID, want)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("events diverge across identical runs")
	}
}

func TestClusterToEvent_SlugFallback(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	cluster := []Article{{Title: "!!!", URL: "https://example.com/x", Source: "와이어", PublishedAt: base}}

	ev, ok := ClusterToEvent(cluster, "us", "TSLA", Options{})
	if !ok {
		t.Fatalf("expected an event")
	}
	if ev.ID != "us-TSLA-2026-02-04-event" {
		t.Fatalf("expected placeholder slug, got %q", ev.ID)
	}
}

func TestClusterToEvent_ConfidenceGrades(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)

	single := []Article{{Title: "단독 보도", URL: "https://example.com/solo", Source: "뉴스1", PublishedAt: base}}
	if ev, _ := ClusterToEvent(single, "kr", "068270", Options{}); ev.Confidence != ConfidenceSpeculative {
		t.Fatalf("expected speculative for singleton, got %q", ev.Confidence)
	}

	multi, _ := ClusterToEvent(eventFixture(base), "kr", "005930", Options{})
	if multi.Confidence != ConfidenceConfirmed {
		t.Fatalf("expected confirmed for two corroborating sources, got %q", multi.Confidence)
	}

	sameSource := []Article{
		{Title: "테슬라 리콜 발표", URL: "https://example.com/r1", Source: "Reuters", PublishedAt: base},
		{Title: "리콜 규모는 12만대로 확인", URL: "https://example.com/r2", Source: "Reuters", PublishedAt: base.Add(time.Hour)},
	}
	if ev, _ := ClusterToEvent(sameSource, "us", "TSLA", Options{}); ev.Confidence != ConfidenceReported {
		t.Fatalf("expected reported for single-source cluster, got %q", ev.Confidence)
	}
}

func TestArticlesToEvents_SortedByUpdatedAtDesc(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	articles := append(eventFixture(base),
		Article{
			Title:       "현대차 조지아 공장 증설 확정",
			URL:         "https://example.com/hyundai",
			Source:      "한국경제",
			PublishedAt: base.Add(30 * time.Hour),
		},
	)

	events := ArticlesToEvents(articles, "kr", "005930", Options{})
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].UpdatedAt.After(events[1].UpdatedAt) {
		t.Fatalf("events not sorted by updatedAt descending")
	}
}

func TestArticlesToEvents_EmptyInput(t *testing.T) {
	t.Parallel()

	if events := ArticlesToEvents(nil, "kr", "005930", Options{}); len(events) != 0 {
		t.Fatalf("expected no events for empty input, got %d", len(events))
	}
}
