package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/misodaily/newsdesk/internal/cli"
	"github.com/misodaily/newsdesk/internal/config"
	"github.com/misodaily/newsdesk/internal/db"
	"github.com/misodaily/newsdesk/internal/feed"
	"github.com/misodaily/newsdesk/internal/logging"
	"github.com/misodaily/newsdesk/internal/market"
	"github.com/misodaily/newsdesk/internal/metrics"
	"github.com/misodaily/newsdesk/internal/pipeline"
)

type passResult struct {
	ArticlesFetched int
	TickersMatched  int
	EventsWritten   int
}

func runProcess(args []string) int {
	fs := flag.NewFlagSet("process", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 5*time.Minute, "Command timeout")
	catalogPath := fs.String("catalog", "", "Feed catalog YAML (empty means the embedded default)")
	dryRun := fs.Bool("dry-run", false, "Synthesize events without writing to the database")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "process does not accept positional arguments")
		return 2
	}

	cfg, err := loadConfig(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	var pool *db.Pool
	if !*dryRun {
		if err := cfg.RequireDatabase(); err != nil {
			fmt.Fprintf(os.Stderr, "%v (use --dry-run to process without a database)\n", err)
			return 2
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if !*dryRun {
		pool, err = db.NewPool(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
			return 1
		}
		defer pool.Close()
	}

	result, err := runPipelinePass(ctx, cfg, *catalogPath, logger, pool)
	if err != nil {
		logger.Error().Err(err).Msg("pipeline pass failed")
		fmt.Fprintf(os.Stderr, "Processing failed: %v\n", err)
		return 1
	}

	fmt.Printf(
		"process articles=%d tickers=%d events=%d dry_run=%t\n",
		result.ArticlesFetched,
		result.TickersMatched,
		result.EventsWritten,
		*dryRun,
	)
	return 0
}

// runPipelinePass does one full collect-cluster-synthesize cycle. With
// a nil pool the pass is in-memory only; otherwise every matched
// ticker's events are replaced in storage and the run is recorded.
func runPipelinePass(ctx context.Context, cfg *config.Config, catalogPath string, logger zerolog.Logger, pool *db.Pool) (passResult, error) {
	started := time.Now()
	defer func() {
		metrics.PipelineDuration.Observe(time.Since(started).Seconds())
	}()

	path := catalogPath
	if path == "" {
		path = cfg.FeedCatalogPath
	}
	catalog, err := feed.LoadCatalog(path)
	if err != nil {
		return passResult{}, fmt.Errorf("load feed catalog: %w", err)
	}

	var runID int64
	if pool != nil {
		runID, err = pool.StartRun(ctx, "process")
		if err != nil {
			return passResult{}, err
		}
	}

	result, passErr := executePass(ctx, cfg, catalog, logger, pool)

	if pool != nil {
		if finishErr := pool.FinishRun(ctx, runID, result.ArticlesFetched, result.EventsWritten, passErr); finishErr != nil {
			logger.Error().Err(finishErr).Int64("run_id", runID).Msg("failed to close pipeline run row")
		}
	}
	return result, passErr
}

func executePass(ctx context.Context, cfg *config.Config, catalog *feed.Catalog, logger zerolog.Logger, pool *db.Pool) (passResult, error) {
	fetcher := feed.NewFetcher(catalog, logger, feed.Options{
		Timeout:     time.Duration(cfg.FeedTimeoutSeconds) * time.Second,
		CategoryCap: cfg.FeedCategoryCap,
	})
	articles := fetcher.FetchAll(ctx)
	metrics.ArticlesFetched.WithLabelValues("fetched").Add(float64(len(articles)))

	result := passResult{ArticlesFetched: len(articles)}
	opts := cfg.PipelineOptions()

	for _, stock := range market.All() {
		matched := matchArticles(articles, stock)
		if len(matched) == 0 {
			continue
		}
		result.TickersMatched++

		urlDeduped := pipeline.DedupeByURL(matched)
		if dropped := len(matched) - len(urlDeduped); dropped > 0 {
			metrics.DuplicatesDropped.WithLabelValues("url").Add(float64(dropped))
		}

		evs := pipeline.ArticlesToEvents(urlDeduped, stock.Market, stock.Ticker, opts)
		if len(evs) == 0 {
			continue
		}
		metrics.ClustersFormed.Add(float64(len(evs)))
		metrics.EventsSynthesized.WithLabelValues(stock.Market).Add(float64(len(evs)))

		if pool != nil {
			if err := pool.ReplaceTickerEvents(ctx, stock.Market, stock.Ticker, evs); err != nil {
				return result, fmt.Errorf("persist events for %s/%s: %w", stock.Market, stock.Ticker, err)
			}
		}

		result.EventsWritten += len(evs)

		logger.Debug().
			Str("market", stock.Market).
			Str("ticker", stock.Ticker).
			Int("articles", len(matched)).
			Int("events", len(evs)).
			Msg("ticker processed")
	}

	logger.Info().
		Int("articles", result.ArticlesFetched).
		Int("tickers", result.TickersMatched).
		Int("events", result.EventsWritten).
		Msg("pipeline pass complete")
	return result, nil
}

// matchArticles routes feed articles to one tracked equity by keyword.
// An article naming two companies lands on both tickers; their events
// stay independent.
func matchArticles(articles []pipeline.Article, stock market.Stock) []pipeline.Article {
	var out []pipeline.Article
	for _, a := range articles {
		if stock.Matches(a.Title + " " + a.Snippet) {
			out = append(out, a)
		}
	}
	return out
}
