package db

import (
	"testing"
	"time"

	"github.com/misodaily/newsdesk/internal/pipeline"
)

func TestEventRecordConversion(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 2, 4, 1, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	ev := pipeline.Event{
		ID:         "kr-005930-2026-02-04-삼성전자-4분기-영업이익",
		Market:     "kr",
		Ticker:     "005930",
		StartedAt:  started,
		UpdatedAt:  updated,
		Type:       pipeline.LabelEarnings,
		Summary2:   []string{"삼성전자 4분기 영업이익 발표", "컨센서스 상회"},
		Why:        "관련 기사 3건 발생. 시장 관심도 높음.",
		Confidence: pipeline.ConfidenceConfirmed,
		Links: []pipeline.Link{
			{Title: "삼성전자 4분기 영업이익 발표", URL: "https://example.com/a1", Source: "연합뉴스"},
		},
	}

	record, err := recordFromEvent(ev)
	if err != nil {
		t.Fatalf("recordFromEvent: %v", err)
	}
	if record.EventID != ev.ID || record.EventType != "earnings" || record.Confidence != "confirmed" {
		t.Fatalf("unexpected record %+v", record)
	}

	got, err := record.toEvent()
	if err != nil {
		t.Fatalf("toEvent: %v", err)
	}
	if got.ID != ev.ID || got.Type != ev.Type || got.Confidence != ev.Confidence {
		t.Fatalf("round trip lost identity fields: %+v", got)
	}
	if len(got.Summary2) != 2 || got.Summary2[0] != ev.Summary2[0] {
		t.Fatalf("round trip lost summary: %v", got.Summary2)
	}
	if len(got.Links) != 1 || got.Links[0].URL != ev.Links[0].URL {
		t.Fatalf("round trip lost links: %v", got.Links)
	}
	if !got.StartedAt.Equal(started) || !got.UpdatedAt.Equal(updated) {
		t.Fatalf("round trip lost timestamps: %v %v", got.StartedAt, got.UpdatedAt)
	}
}
