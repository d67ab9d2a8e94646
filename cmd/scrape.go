package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rbeggs/dcmap-crawler/internal/api"
	"github.com/rbeggs/dcmap-crawler/internal/crawler"
	"github.com/rbeggs/dcmap-crawler/internal/logging"
	"github.com/rbeggs/dcmap-crawler/internal/sink"
)

// newScrapeCmd creates and configures the 'scrape' subcommand, which runs a
// full crawl and writes the resulting dataset.
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Crawls the directory and exports facility records",
		Long: `Crawls location pages breadth-first starting from the directory
root, extracts facility records from structured data (falling back to
heuristic link scanning), deduplicates them, and writes the dataset.`,

		RunE: runScrapeCommand,
	}

	cmd.Flags().String("url", "", "start URL (default is the USA directory root)")
	cmd.Flags().String("output", "", "path of the CSV output file")
	cmd.Flags().String("dump-html", "", "optional path to write the seed page's raw HTML")

	mustBindFlag("crawler.start_url", cmd, "url")
	mustBindFlag("output.path", cmd, "output")
	mustBindFlag("output.dump_html", cmd, "dump-html")

	return cmd
}

func mustBindFlag(key string, cmd *cobra.Command, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func runScrapeCommand(cmd *cobra.Command, _ []string) error {
	logger := logging.L

	cfg, err := crawler.LoadCrawlerConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load crawler config: %w", err)
	}

	engine, err := buildEngine(cfg, logger)
	if err != nil {
		return err
	}

	if addr := viper.GetString("server.addr"); addr != "" {
		debug := api.NewServer(addr, logger)
		debug.Start()
		defer func() {
			if serr := debug.Shutdown(context.Background()); serr != nil {
				logger.Warn("Failed to shut down debug server", zap.Error(serr))
			}
		}()
	}

	crawlCtx := cmd.Context()
	if cfg.CrawlBudget > 0 {
		var cancel context.CancelFunc
		crawlCtx, cancel = context.WithTimeout(crawlCtx, cfg.CrawlBudget)
		defer cancel()
	}

	result, err := engine.Run(crawlCtx)
	if err != nil {
		return fmt.Errorf("run crawl: %w", err)
	}

	if len(result.Facilities) == 0 {
		return fmt.Errorf("%w; use --dump-html to inspect the fetched page", crawler.ErrNoRecords)
	}

	// Sinks get the command context, not the (possibly expired) crawl budget.
	if err := writeRecords(cmd.Context(), result.Facilities); err != nil {
		return err
	}

	logger.Info("Wrote facility records",
		zap.Int("count", len(result.Facilities)),
		zap.String("output", viper.GetString("output.path")),
		zap.Int("pages_fetched", result.Report.PagesFetched),
		zap.Int("pages_failed", result.Report.PagesFailed),
		zap.String("run_id", result.Report.RunID),
	)
	return nil
}

func buildEngine(cfg crawler.Config, logger *zap.Logger) (*crawler.Engine, error) {
	fetcher, err := crawler.NewCollyFetcher(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init fetcher: %w", err)
	}

	var dump *crawler.HTMLDump
	if path := viper.GetString("output.dump_html"); path != "" {
		dump = crawler.NewHTMLDump(path, logger)
	}

	return crawler.NewEngine(cfg, fetcher, dump, logger), nil
}

func writeRecords(ctx context.Context, records []crawler.Facility) error {
	sinks := []crawler.Sink{sink.NewCSVSink(viper.GetString("output.path"))}

	if dsn := viper.GetString("database.dsn"); dsn != "" {
		pg, err := sink.NewPostgresSink(ctx, sink.PostgresConfig{
			DSN:   dsn,
			Table: viper.GetString("database.table"),
		})
		if err != nil {
			return fmt.Errorf("init postgres sink: %w", err)
		}
		defer pg.Close()
		sinks = append(sinks, pg)
	}

	for _, s := range sinks {
		if err := s.Write(ctx, records); err != nil {
			return fmt.Errorf("write records: %w", err)
		}
	}
	return nil
}
