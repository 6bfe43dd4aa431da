package app

import (
	"testing"
	"time"

	"github.com/misodaily/newsdesk/internal/market"
	"github.com/misodaily/newsdesk/internal/pipeline"
)

func TestMatchArticles(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)
	articles := []pipeline.Article{
		{Title: "삼성전자 4분기 실적 발표", PublishedAt: when},
		{Title: "Tesla expands recall", Snippet: "NHTSA filing", PublishedAt: when},
		{Title: "코스피 장중 혼조", PublishedAt: when},
	}

	samsung, ok := market.Find("kr", "005930")
	if !ok {
		t.Fatal("samsung not in security master")
	}
	matched := matchArticles(articles, samsung)
	if len(matched) != 1 || matched[0].Title != "삼성전자 4분기 실적 발표" {
		t.Fatalf("samsung matches = %v", matched)
	}

	tesla, ok := market.Find("us", "TSLA")
	if !ok {
		t.Fatal("tesla not in security master")
	}
	matched = matchArticles(articles, tesla)
	if len(matched) != 1 || matched[0].Title != "Tesla expands recall" {
		t.Fatalf("tesla matches = %v", matched)
	}
}
