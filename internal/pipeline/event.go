package pipeline

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

const fallbackSlug = "event"

// Confidence grades how well-corroborated an event is.
type Confidence string

const (
	ConfidenceConfirmed   Confidence = "confirmed"
	ConfidenceReported    Confidence = "reported"
	ConfidenceSpeculative Confidence = "speculative"
)

// Link is the display projection of one article attached to an event.
type Link struct {
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"publishedAt"`
	Snippet     string    `json:"snippet,omitempty"`
}

// Event is the synthesized, externally visible record for one cluster.
// Events are immutable value objects; the next ingestion pass rebuilds
// them wholesale rather than mutating previously emitted ones.
type Event struct {
	ID         string     `json:"id"`
	Market     string     `json:"market"`
	Ticker     string     `json:"ticker"`
	StartedAt  time.Time  `json:"startedAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	Type       Label      `json:"type"`
	Summary2   []string   `json:"summary2"`
	Why        string     `json:"why"`
	Confidence Confidence `json:"confidence"`
	Links      []Link     `json:"links"`
}

// ClusterToEvent synthesizes the canonical Event for one cluster.
// Returns false for an empty cluster.
func ClusterToEvent(cluster []Article, market, ticker string, opts Options) (Event, bool) {
	if len(cluster) == 0 {
		return Event{}, false
	}
	opts = opts.withDefaults()

	sorted := sortByPublishedDesc(cluster)
	latest := sorted[0]
	oldest := sorted[len(sorted)-1]

	primary, additional := DedupeByTitle(DedupeByURL(sorted), opts.TitleDedupeThreshold)

	// The label reflects the whole cluster's text, not just the
	// representative article.
	var allText strings.Builder
	for _, a := range cluster {
		allText.WriteString(a.comparisonText())
		allText.WriteByte(' ')
	}
	label := InferEventLabel(allText.String())

	slugTokens := Tokenize(latest.Title)
	if len(slugTokens) > 3 {
		slugTokens = slugTokens[:3]
	}
	slug := strings.Join(slugTokens, "-")
	if slug == "" {
		slug = fallbackSlug
	}
	id := fmt.Sprintf("%s-%s-%s-%s", market, ticker, latest.PublishedAt.UTC().Format("2006-01-02"), slug)

	summary := make([]string, 0, 2)
	if primary[0].Title != "" {
		summary = append(summary, primary[0].Title)
	}
	second := ""
	if len(primary) > 1 {
		second = primary[1].Title
	}
	if second == "" {
		second = primary[0].Snippet
	}
	if second != "" {
		summary = append(summary, second)
	}

	extra := additional
	if len(extra) > 2 {
		extra = extra[:2]
	}
	links := make([]Link, 0, len(primary)+len(extra))
	for _, a := range primary {
		links = append(links, linkFromArticle(a))
	}
	for _, a := range extra {
		links = append(links, linkFromArticle(a))
	}

	return Event{
		ID:         id,
		Market:     market,
		Ticker:     ticker,
		StartedAt:  oldest.PublishedAt,
		UpdatedAt:  latest.PublishedAt,
		Type:       label,
		Summary2:   summary,
		Why:        fmt.Sprintf("관련 기사 %d건 발생. 시장 관심도 높음.", len(cluster)),
		Confidence: gradeConfidence(cluster, primary),
		Links:      links,
	}, true
}

// ArticlesToEvents is the top-level pipeline contract: cluster, then
// synthesize one event per cluster, sorted by updatedAt descending.
// Deterministic given identical input and options.
func ArticlesToEvents(articles []Article, market, ticker string, opts Options) []Event {
	clusters := ClusterArticles(articles, opts)
	events := make([]Event, 0, len(clusters))
	for _, cluster := range clusters {
		if ev, ok := ClusterToEvent(cluster, market, ticker, opts); ok {
			events = append(events, ev)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].UpdatedAt.After(events[j].UpdatedAt)
	})
	return events
}

func linkFromArticle(a Article) Link {
	return Link{
		Source:      a.Source,
		URL:         a.URL,
		Title:       a.Title,
		PublishedAt: a.PublishedAt,
		Snippet:     a.Snippet,
	}
}

// gradeConfidence: two independent sources corroborating the primary
// coverage make an event confirmed, multiple articles from fewer
// sources make it reported, a singleton stays speculative.
func gradeConfidence(cluster, primary []Article) Confidence {
	sources := make(map[string]struct{}, len(primary))
	for _, a := range primary {
		if a.Source == "" {
			continue
		}
		sources[a.Source] = struct{}{}
	}
	switch {
	case len(sources) >= 2:
		return ConfidenceConfirmed
	case len(cluster) >= 2:
		return ConfidenceReported
	default:
		return ConfidenceSpeculative
	}
}
