package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/misodaily/newsdesk/internal/cli"
	"github.com/misodaily/newsdesk/internal/feed"
	"github.com/misodaily/newsdesk/internal/logging"
	"github.com/misodaily/newsdesk/internal/metrics"
	"github.com/misodaily/newsdesk/internal/pipeline"
)

func runCollect(args []string) int {
	fs := flag.NewFlagSet("collect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 2*time.Minute, "Command timeout")
	format := fs.String("format", outputFormatTable, "Output format: table or json")
	catalogPath := fs.String("catalog", "", "Feed catalog YAML (empty means the embedded default)")
	outDir := fs.String("out", "", "Write each article as a JSON file into this directory")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "collect does not accept positional arguments")
		return 2
	}

	outputFormat, err := parseOutputFormat(*format, outputFormatTable)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid format: %v\n", err)
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

	path := *catalogPath
	if path == "" {
		path = cfg.FeedCatalogPath
	}
	catalog, err := feed.LoadCatalog(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load feed catalog: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fetcher := feed.NewFetcher(catalog, logger, feed.Options{
		Timeout:     time.Duration(cfg.FeedTimeoutSeconds) * time.Second,
		CategoryCap: cfg.FeedCategoryCap,
	})
	articles := fetcher.FetchAll(ctx)
	metrics.ArticlesFetched.WithLabelValues("fetched").Add(float64(len(articles)))

	if *outDir != "" {
		written, err := writeArticleFiles(*outDir, articles)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write articles: %v\n", err)
			return 1
		}
		fmt.Printf("collect articles=%d written=%d dir=%s\n", len(articles), written, *outDir)
		return 0
	}

	if outputFormat == outputFormatJSON {
		if err := printJSON(articles); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			return 1
		}
		return 0
	}

	rows := make([][]string, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, []string{
			formatUTCTimestamp(a.PublishedAt),
			a.Source,
			truncateForTable(a.Title, 60),
			a.Language,
		})
	}
	if err := writeTable([]string{"published_at", "source", "title", "lang"}, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render table: %v\n", err)
		return 1
	}

	fmt.Printf("collect articles=%d categories=%d\n", len(articles), len(catalog.Categories))
	return 0
}

// writeArticleFiles dumps one payload-shaped JSON file per article so
// the validate command can rescan a collection run.
func writeArticleFiles(dir string, articles []pipeline.Article) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", dir, err)
	}

	written := 0
	for i, a := range articles {
		raw, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return written, fmt.Errorf("encode article %d: %w", i, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("article_%04d.json", i+1))
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}
	return written, nil
}
