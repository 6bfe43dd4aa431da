package feed

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/misodaily/newsdesk/internal/langdetect"
	"github.com/misodaily/newsdesk/internal/pipeline"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultCategoryCap  = 5

	userAgent = "newsdesk/1.0 (+https://github.com/misodaily/newsdesk)"
)

// Options tunes one Fetcher.
type Options struct {
	Timeout     time.Duration
	CategoryCap int
	HTTPClient  *http.Client
}

// Fetcher pulls every catalog source and produces pipeline articles.
type Fetcher struct {
	catalog *Catalog
	parser  *gofeed.Parser
	logger  zerolog.Logger
	timeout time.Duration
	cap     int
}

func NewFetcher(catalog *Catalog, logger zerolog.Logger, opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	categoryCap := opts.CategoryCap
	if categoryCap <= 0 {
		categoryCap = defaultCategoryCap
	}

	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = opts.HTTPClient
	if parser.Client == nil {
		parser.Client = &http.Client{Timeout: timeout}
	}

	return &Fetcher{
		catalog: catalog,
		parser:  parser,
		logger:  logger,
		timeout: timeout,
		cap:     categoryCap,
	}
}

// FetchAll walks the catalog and returns the keyword-matched articles
// from every reachable source, newest first. A source that times out,
// 404s, or serves broken XML is logged and skipped; the rest of the
// run continues.
func (f *Fetcher) FetchAll(ctx context.Context) []pipeline.Article {
	if f == nil || f.catalog == nil {
		return nil
	}

	var articles []pipeline.Article
	for _, category := range f.catalog.Categories {
		for _, source := range category.Sources {
			fetched, err := f.fetchSource(ctx, category, source)
			if err != nil {
				f.logger.Warn().
					Err(err).
					Str("category", category.Tag).
					Str("source", source.Name).
					Str("url", source.URL).
					Msg("feed fetch failed, skipping source")
				continue
			}
			f.logger.Debug().
				Str("category", category.Tag).
				Str("source", source.Name).
				Int("articles", len(fetched)).
				Msg("feed fetched")
			articles = append(articles, fetched...)
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}

func (f *Fetcher) fetchSource(ctx context.Context, category Category, source Source) ([]pipeline.Article, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(source.URL, fetchCtx)
	if err != nil {
		return nil, err
	}

	out := make([]pipeline.Article, 0, f.cap)
	for _, item := range parsed.Items {
		if len(out) >= f.cap {
			break
		}
		if item == nil {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		snippet := CleanSnippet(item.Description)
		if !category.matches(title + " " + snippet) {
			continue
		}

		out = append(out, pipeline.Article{
			Title:       title,
			Snippet:     snippet,
			URL:         strings.TrimSpace(item.Link),
			Source:      source.Name,
			Language:    langdetect.DetectISO6391(title + " " + snippet),
			PublishedAt: publishTime(item),
		})
	}
	return out, nil
}

// publishTime prefers the parsed publish date, falls back to the
// update date, and leaves the zero time when neither parses. The
// pipeline quarantines zero-time articles instead of crashing on them.
func publishTime(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Time{}
}
