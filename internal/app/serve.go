package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/misodaily/newsdesk/internal/cli"
	"github.com/misodaily/newsdesk/internal/config"
	"github.com/misodaily/newsdesk/internal/db"
	"github.com/misodaily/newsdesk/internal/events"
	"github.com/misodaily/newsdesk/internal/httpapi"
	"github.com/misodaily/newsdesk/internal/logging"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	host := fs.String("host", "0.0.0.0", "Host interface to bind")
	port := fs.Int("port", 8090, "HTTP port")
	readTimeout := fs.Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	writeTimeout := fs.Duration("write-timeout", 30*time.Second, "HTTP write timeout")
	shutdownTimeout := fs.Duration("shutdown-timeout", 10*time.Second, "Graceful shutdown timeout")
	refresh := fs.Duration("refresh", 0, "Re-run the pipeline on this interval (0 disables)")
	catalogPath := fs.String("catalog", "", "Feed catalog YAML for --refresh passes")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *port <= 0 || *port > 65535 {
		fmt.Fprintln(os.Stderr, "--port must be between 1 and 65535")
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

	dbCtx, dbCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer dbCancel()

	pool, err := db.NewPool(dbCtx, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("serve failed to connect to database")
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		return 1
	}
	defer pool.Close()

	stored, err := pool.LoadEvents(dbCtx)
	if err != nil {
		logger.Error().Err(err).Msg("serve failed to load stored events")
		fmt.Fprintf(os.Stderr, "Failed to load events: %v\n", err)
		return 1
	}
	logger.Info().Int("events", len(stored)).Msg("event snapshot loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		<-sigCh
		cancel()
	}()

	srv := httpapi.NewServer(events.NewSet(stored), pool, logger, httpapi.Options{
		Host:            *host,
		Port:            *port,
		ReadTimeout:     *readTimeout,
		WriteTimeout:    *writeTimeout,
		ShutdownTimeout: *shutdownTimeout,
	})

	if *refresh > 0 {
		go refreshLoop(ctx, cfg, *catalogPath, logger, pool, srv, *refresh)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error().Err(err).Str("host", *host).Int("port", *port).Msg("server failed")
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return 1
	}

	return 0
}

// refreshLoop re-runs the pipeline on a fixed interval and swaps the
// fresh snapshot into the running server. A failed pass keeps the
// previous snapshot serving.
func refreshLoop(ctx context.Context, cfg *config.Config, catalogPath string, logger zerolog.Logger, pool *db.Pool, srv *httpapi.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		passCtx, cancel := context.WithTimeout(ctx, interval)
		result, err := runPipelinePass(passCtx, cfg, catalogPath, logger, pool)
		if err != nil {
			cancel()
			logger.Error().Err(err).Msg("background refresh failed")
			continue
		}

		// Reload the whole store so tickers untouched by this pass keep
		// their previously synthesized events in the snapshot.
		stored, err := pool.LoadEvents(passCtx)
		cancel()
		if err != nil {
			logger.Error().Err(err).Msg("refresh reload failed, keeping previous snapshot")
			continue
		}

		srv.SwapSet(events.NewSet(stored))
		logger.Info().
			Int("articles", result.ArticlesFetched).
			Int("events", len(stored)).
			Msg("event snapshot refreshed")
	}
}
