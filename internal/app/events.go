package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/misodaily/newsdesk/internal/cli"
	"github.com/misodaily/newsdesk/internal/events"
	"github.com/misodaily/newsdesk/internal/globaltime"
	"github.com/misodaily/newsdesk/internal/market"
	"github.com/misodaily/newsdesk/internal/pipeline"
)

func runEvents(args []string) int {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	timeout := fs.Duration("timeout", 30*time.Second, "Command timeout")
	format := fs.String("format", outputFormatTable, "Output format: table or json")
	marketFlag := fs.String("market", "", "Market filter for --ticker (kr or us)")
	ticker := fs.String("ticker", "", "List events for one ticker")
	id := fs.String("id", "", "Show one event by id")
	hours := fs.Float64("hours", 0, "Restrict to events started in the last N hours")
	top := fs.Int("top", 0, "Limit to the N most recently updated events")
	counts := fs.Bool("counts", false, "Print per-label event counts instead of events")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "events does not accept positional arguments")
		return 2
	}

	outputFormat, err := parseOutputFormat(*format, outputFormatTable)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid format: %v\n", err)
		return 2
	}
	if *ticker != "" && strings.TrimSpace(*marketFlag) == "" {
		fmt.Fprintln(os.Stderr, "--ticker requires --market")
		return 2
	}

	ctx, cancel, pool, _, err := connectPool(*timeout, envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer cancel()
	defer pool.Close()

	stored, err := pool.LoadEvents(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load events: %v\n", err)
		return 1
	}
	set := events.NewSet(stored)

	if *id != "" {
		ev, ok := set.ByID(strings.TrimSpace(*id))
		if !ok {
			fmt.Fprintf(os.Stderr, "Event not found: %s\n", *id)
			return 1
		}
		if outputFormat == outputFormatJSON {
			if err := printJSON(ev); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
				return 1
			}
			return 0
		}
		printEventDetail(ev)
		return 0
	}

	if *counts {
		return printLabelCounts(set, outputFormat)
	}

	selected := set.All()
	switch {
	case *ticker != "":
		marketCode := strings.TrimSpace(strings.ToLower(*marketFlag))
		tickerCode := strings.TrimSpace(*ticker)
		if marketCode == "us" {
			tickerCode = strings.ToUpper(tickerCode)
		}
		stock, ok := market.Find(marketCode, tickerCode)
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown stock: %s/%s\n", marketCode, tickerCode)
			return 1
		}
		selected = set.ByTicker(stock.Market, stock.Ticker)
	case *hours > 0:
		if *top > 0 {
			selected = set.TopInWindow(globaltime.UTC(), *hours, *top)
		} else {
			selected = set.InWindow(globaltime.UTC(), *hours)
		}
	case *top > 0:
		if len(selected) > *top {
			selected = selected[:*top]
		}
	}

	if outputFormat == outputFormatJSON {
		if err := printJSON(selected); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			return 1
		}
		return 0
	}

	rows := make([][]string, 0, len(selected))
	for _, ev := range selected {
		rows = append(rows, []string{
			ev.ID,
			string(ev.Type),
			string(ev.Confidence),
			formatUTCTimestamp(ev.UpdatedAt),
			fmt.Sprintf("%d", len(ev.Links)),
		})
	}
	if err := writeTable([]string{"id", "type", "confidence", "updated_at", "links"}, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render table: %v\n", err)
		return 1
	}
	fmt.Printf("events total=%d shown=%d\n", set.Len(), len(selected))
	return 0
}

func printEventDetail(ev pipeline.Event) {
	fmt.Printf("id:         %s\n", ev.ID)
	fmt.Printf("market:     %s\n", ev.Market)
	fmt.Printf("ticker:     %s\n", ev.Ticker)
	fmt.Printf("type:       %s (%s)\n", ev.Type, events.LabelDisplayName(ev.Type))
	fmt.Printf("confidence: %s\n", ev.Confidence)
	fmt.Printf("started:    %s\n", formatUTCTimestamp(ev.StartedAt))
	fmt.Printf("updated:    %s\n", formatUTCTimestamp(ev.UpdatedAt))
	for _, line := range ev.Summary2 {
		fmt.Printf("summary:    %s\n", line)
	}
	if ev.Why != "" {
		fmt.Printf("why:        %s\n", ev.Why)
	}
	for _, link := range ev.Links {
		fmt.Printf("link:       [%s] %s %s\n", link.Source, truncateForTable(link.Title, 60), link.URL)
	}
}

func printLabelCounts(set *events.Set, outputFormat string) int {
	counts := events.LabelCounts(set.All())

	if outputFormat == outputFormatJSON {
		out := make(map[string]int, len(counts))
		for label, count := range counts {
			out[string(label)] = count
		}
		if err := printJSON(out); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			return 1
		}
		return 0
	}

	rows := make([][]string, 0, len(counts))
	for _, label := range pipeline.Labels() {
		rows = append(rows, []string{
			string(label),
			events.LabelDisplayName(label),
			fmt.Sprintf("%d", counts[label]),
		})
	}
	if err := writeTable([]string{"label", "name", "count"}, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render table: %v\n", err)
		return 1
	}
	return 0
}
