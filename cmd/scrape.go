package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eliaath/triviahoard/internal/export"
	"github.com/eliaath/triviahoard/internal/opentdb"
	"github.com/eliaath/triviahoard/internal/scraper"
	"github.com/eliaath/triviahoard/internal/store"
	"github.com/eliaath/triviahoard/internal/ui"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Poll the API and accumulate questions until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScrape(cmd)
	},
}

func runScrape(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.Load(cfg.DBPath, slog.Default())
	client := opentdb.New(cfg.BaseURL, cfg.BatchSize)

	s := scraper.New(client, st, scraper.Options{
		Interval: cfg.Interval,
		Exporter: export.NewCSV(cfg.CSVPath),
		OnProgress: func(p scraper.Progress) {
			fmt.Fprintln(cmd.OutOrStdout(), ui.ProgressLine(p.Fetched, p.New, p.Total))
		},
	})

	err = s.Run(ctx)

	// An API-reported stop (rate limit, exhausted token, ...) is an
	// operational condition: the store was drained, report and exit
	// clean. Anything else propagates to a non-zero exit.
	var apiErr *opentdb.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), apiErr.Message)
		return nil
	}
	return err
}
