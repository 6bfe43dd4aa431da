package pipeline

import (
	"sort"
	"time"
)

// Article is a single fetched news item. Articles are read-only inputs
// owned by the ingestion side; the pipeline never mutates them.
type Article struct {
	Title       string    `json:"title"`
	Snippet     string    `json:"snippet,omitempty"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Language    string    `json:"language,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// comparisonText is the text both similarity and labeling operate on.
func (a Article) comparisonText() string {
	return a.Title + " " + a.Snippet
}

// sortByPublishedAsc returns a new slice ordered oldest first. The
// caller's slice is never reordered in place; ties keep input order so
// repeated runs stay deterministic.
func sortByPublishedAsc(articles []Article) []Article {
	out := make([]Article, len(articles))
	copy(out, articles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.Before(out[j].PublishedAt)
	})
	return out
}

func sortByPublishedDesc(articles []Article) []Article {
	out := make([]Article, len(articles))
	copy(out, articles)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt.After(out[j].PublishedAt)
	})
	return out
}
