package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"recstudy/internal/config"
	"recstudy/internal/events"
	"recstudy/internal/exporter"
	"recstudy/internal/infrastructure"
	"recstudy/internal/recommendations"
	"recstudy/pkg/contracts"
	"recstudy/pkg/contracts/domain"
)

// tickerResult holds the outcome for one ticker so output can be printed in
// the order tickers were requested, not the order goroutines finish.
type tickerResult struct {
	Ticker string
	Events []domain.Event
}

func main() {
	tickers := flag.String("tickers", "", "comma-separated ticker symbols to process (required)")
	dataDir := flag.String("data", "", "data directory (defaults to configured paths.data_dir)")
	recFile := flag.String("file", "", "explicit recommendations file (single ticker only)")
	export := flag.Bool("export", false, "write per-ticker event CSVs under the reports directory")
	logLevel := flag.String("log-level", "", "override configured log level")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	if err := run(*tickers, *dataDir, *recFile, *export, *logLevel); err != nil {
		slog.Error("Event build failed", "error", err)
		os.Exit(1)
	}
}

func run(tickerList, dataDir, recFile string, export bool, logLevel string) error {
	symbols := parseTickers(tickerList)
	if len(symbols) == 0 {
		return fmt.Errorf("no tickers given; use -tickers TSLA or -tickers TSLA,AAPL")
	}
	if recFile != "" && len(symbols) > 1 {
		return fmt.Errorf("-file applies to a single ticker, got %d", len(symbols))
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Paths.DataDir = dataDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	paths := config.GetPaths(cfg)
	if export {
		if err := paths.EnsureDirectories(); err != nil {
			return err
		}
	}

	// One trace id for the whole run so parallel ticker logs correlate.
	ctx := infrastructure.ContextWithTraceID(context.Background())
	logger.InfoContext(ctx, "Starting event build",
		slog.String("tickers", strings.Join(symbols, ",")),
		slog.String("data_dir", paths.DataDir),
		slog.Bool("export", export))

	// Each ticker reads its own file and allocates its own output, so the
	// builds run concurrently without coordination.
	results := make([]tickerResult, len(symbols))
	g, ctx := errgroup.WithContext(ctx)
	for i, ticker := range symbols {
		i, ticker := i, ticker
		g.Go(func() error {
			path := paths.RecommendationsCSV(ticker)
			if recFile != "" {
				path = recFile
			}

			recs, err := recommendations.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", ticker, err)
			}

			evts, err := events.Build(recs)
			if err != nil {
				var classErr *events.ClassificationError
				if errors.As(err, &classErr) {
					logger.ErrorContext(ctx, "Unclassifiable action text",
						slog.String("ticker", ticker),
						slog.String("action", classErr.Action))
				}
				return fmt.Errorf("%s: %w", ticker, err)
			}

			logger.InfoContext(ctx, "Built event table",
				slog.String("ticker", ticker),
				slog.Int("recommendations", len(recs)),
				slog.Int("events", len(evts)))

			results[i] = tickerResult{Ticker: ticker, Events: evts}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	eventExporter := exporter.NewEventExporter(paths)
	for _, result := range results {
		printEvents(os.Stdout, result.Ticker, result.Events)

		if export {
			path, err := eventExporter.ExportEvents(result.Ticker, result.Events)
			if err != nil {
				return err
			}
			logger.InfoContext(ctx, "Exported event table",
				slog.String("ticker", result.Ticker),
				slog.String("path", path))
		}
	}
	return nil
}

// parseTickers splits the comma-separated flag value into uppercased
// symbols, dropping empties.
func parseTickers(value string) []string {
	var symbols []string
	for _, part := range strings.Split(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			symbols = append(symbols, part)
		}
	}
	return symbols
}

// printEvents writes a human-readable event table for one ticker.
func printEvents(w io.Writer, ticker string, evts []domain.Event) {
	fmt.Fprintf(w, "\n%s: %d event(s)\n", ticker, len(evts))
	if len(evts) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "event_id\tfirm\tevent_date\tevent_type")
	for _, evt := range evts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", evt.ID, evt.Firm, evt.EventDate, evt.Type)
	}
	tw.Flush()
}
