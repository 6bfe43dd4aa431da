package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/misodaily/newsdesk/internal/events"
	"github.com/misodaily/newsdesk/internal/globaltime"
	"github.com/misodaily/newsdesk/internal/pipeline"
)

func newTestServer(evs []pipeline.Event) *Server {
	return NewServer(events.NewSet(evs), nil, zerolog.Nop(), Options{})
}

func fixtureEvents() []pipeline.Event {
	base := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	return []pipeline.Event{
		{
			ID:         "kr-005930-2026-02-04-삼성전자-실적-발표",
			Market:     "kr",
			Ticker:     "005930",
			StartedAt:  base.Add(-2 * time.Hour),
			UpdatedAt:  base,
			Type:       pipeline.LabelEarnings,
			Summary2:   []string{"삼성전자 실적 발표"},
			Confidence: pipeline.ConfidenceReported,
			Links:      []pipeline.Link{{Title: "삼성전자 실적 발표", URL: "https://example.com/1", Source: "연합뉴스"}},
		},
		{
			ID:         "us-TSLA-2026-02-03-tesla-recall-expands",
			Market:     "us",
			Ticker:     "TSLA",
			StartedAt:  base.Add(-30 * time.Hour),
			UpdatedAt:  base.Add(-28 * time.Hour),
			Type:       pipeline.LabelRecall,
			Summary2:   []string{"Tesla recall expands"},
			Confidence: pipeline.ConfidenceSpeculative,
		},
	}
}

func doRequest(t *testing.T, s *Server, path string) (int, jsendResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.buildEcho().ServeHTTP(rec, req)

	var body jsendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response for %s: %v\nbody: %s", path, err, rec.Body.String())
	}
	return rec.Code, body
}

func dataMap(t *testing.T, body jsendResponse) map[string]any {
	t.Helper()
	data, ok := body.Data.(map[string]any)
	if !ok {
		t.Fatalf("data is %T, want object", body.Data)
	}
	return data
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(nil)

	code, body := doRequest(t, s, "/healthz")
	if code != http.StatusOK || body.Status != "success" {
		t.Fatalf("got %d %q", code, body.Status)
	}
	if dataMap(t, body)["service"] != "newsdesk" {
		t.Fatalf("unexpected service field: %v", body.Data)
	}
}

func TestHandleStocks(t *testing.T) {
	s := newTestServer(nil)

	code, body := doRequest(t, s, "/api/stocks?market=kr")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if total := dataMap(t, body)["total"].(float64); total != 25 {
		t.Fatalf("kr total = %v, want 25", total)
	}

	code, _ = doRequest(t, s, "/api/stocks?market=jp")
	if code != http.StatusBadRequest {
		t.Fatalf("bad market status %d, want 400", code)
	}
}

func TestHandleTickerEvents(t *testing.T) {
	s := newTestServer(fixtureEvents())

	code, body := doRequest(t, s, "/api/stocks/kr/005930/events")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if total := dataMap(t, body)["total"].(float64); total != 1 {
		t.Fatalf("total = %v, want 1", total)
	}

	// Ticker casing is forgiven for US symbols.
	code, body = doRequest(t, s, "/api/stocks/us/tsla/events")
	if code != http.StatusOK {
		t.Fatalf("lowercase ticker status %d", code)
	}
	if total := dataMap(t, body)["total"].(float64); total != 1 {
		t.Fatalf("tsla total = %v, want 1", total)
	}

	code, _ = doRequest(t, s, "/api/stocks/kr/999999/events")
	if code != http.StatusNotFound {
		t.Fatalf("unknown ticker status %d, want 404", code)
	}
}

func TestHandleEventsWindow(t *testing.T) {
	globaltime.SetMockTime(time.Date(2026, 2, 4, 10, 0, 0, 0, time.UTC))
	defer globaltime.ResetTime()

	s := newTestServer(fixtureEvents())

	// Default 24h window excludes the 30h-old recall event.
	code, body := doRequest(t, s, "/api/events")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if total := dataMap(t, body)["total"].(float64); total != 1 {
		t.Fatalf("24h total = %v, want 1", total)
	}

	code, body = doRequest(t, s, "/api/events?hours=72&limit=10")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if total := dataMap(t, body)["total"].(float64); total != 2 {
		t.Fatalf("72h total = %v, want 2", total)
	}

	code, _ = doRequest(t, s, "/api/events?hours=-1")
	if code != http.StatusBadRequest {
		t.Fatalf("negative hours status %d, want 400", code)
	}
	code, _ = doRequest(t, s, "/api/events?limit=0")
	if code != http.StatusBadRequest {
		t.Fatalf("zero limit status %d, want 400", code)
	}
}

func TestHandleEventDetail(t *testing.T) {
	s := newTestServer(fixtureEvents())

	code, body := doRequest(t, s, "/api/events/kr-005930-2026-02-04-삼성전자-실적-발표")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if dataMap(t, body)["id"] != "kr-005930-2026-02-04-삼성전자-실적-발표" {
		t.Fatalf("unexpected event payload: %v", body.Data)
	}

	code, body = doRequest(t, s, "/api/events/no-such-event")
	if code != http.StatusNotFound || body.Status != "fail" {
		t.Fatalf("missing event gave %d %q", code, body.Status)
	}
}

func TestHandleLabelCounts(t *testing.T) {
	s := newTestServer(fixtureEvents())

	code, body := doRequest(t, s, "/api/labels/counts")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	data := dataMap(t, body)
	items, ok := data["items"].([]any)
	if !ok {
		t.Fatalf("items is %T", data["items"])
	}
	if len(items) != len(pipeline.Labels()) {
		t.Fatalf("got %d labels, want %d", len(items), len(pipeline.Labels()))
	}
	counts := map[string]float64{}
	for _, raw := range items {
		item := raw.(map[string]any)
		counts[item["label"].(string)] = item["count"].(float64)
	}
	if counts["earnings"] != 1 || counts["recall"] != 1 || counts["macro"] != 0 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestSwapSetReplacesSnapshot(t *testing.T) {
	s := newTestServer(nil)

	code, body := doRequest(t, s, "/api/stocks/kr/005930/events")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if total := dataMap(t, body)["total"].(float64); total != 0 {
		t.Fatalf("empty snapshot total = %v", total)
	}

	s.SwapSet(events.NewSet(fixtureEvents()))

	_, body = doRequest(t, s, "/api/stocks/kr/005930/events")
	if total := dataMap(t, body)["total"].(float64); total != 1 {
		t.Fatalf("swapped snapshot total = %v, want 1", total)
	}
}
