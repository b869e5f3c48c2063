package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"cineload/internal/enrich"
	"cineload/internal/lookupcache"
	"cineload/internal/omdb"
	"cineload/internal/pipeline"
	"cineload/internal/store"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one enrichment pass over the input feeds",
		Long: `Run one enrichment pass over the input feeds.

Reads the movies and ratings CSV feeds, resolves metadata for each movie
through the durable lookup cache (falling back to the OMDb API), merges
the results into the catalog database, links genres, and bulk-loads the
ratings. Re-running is safe: cached lookups and idempotent writes make a
second pass a cheap no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			lockPath := filepath.Join(cfg.Paths.LogDir, "cineload.lock")
			lock := flock.New(lockPath)
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !ok {
				return errors.New("another cineload run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			st, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			cache := lookupcache.New(cfg.Paths.CacheFile, logger)
			client, err := omdb.New(
				cfg.OMDB.APIKey,
				cfg.OMDB.BaseURL,
				time.Duration(cfg.OMDB.RequestIntervalMS)*time.Millisecond,
				omdb.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.OMDB.TimeoutSeconds) * time.Second}),
			)
			if err != nil {
				return err
			}
			enricher := enrich.New(cache, client, logger)

			opts := []pipeline.Option{}
			if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
				opts = append(opts, pipeline.WithProgress(newProgressReporter()))
			}

			runner := pipeline.New(cfg, st, enricher, logger, opts...)
			summary, err := runner.Run(runCtx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(summary))
			fmt.Fprintf(out, "Catalog updated: %s\n", st.Path())
			return nil
		},
	}
}

// newProgressReporter adapts the pipeline's progress callback to a terminal
// progress bar. The bar is created on the first callback, once the total is
// known.
func newProgressReporter() pipeline.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(done, total int, title string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Enriching"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(done)
	}
}

func renderSummary(summary pipeline.Summary) string {
	rows := [][]string{
		{"Movies processed", strconv.Itoa(summary.Movies)},
		{"Cache hits", strconv.Itoa(summary.CacheHits)},
		{"Fetched", strconv.Itoa(summary.Fetched)},
		{"Not found", strconv.Itoa(summary.NotFound)},
		{"Transient failures", strconv.Itoa(summary.Transient)},
		{"Genre links", strconv.Itoa(summary.GenresLinked)},
		{"Ratings loaded", strconv.Itoa(summary.Ratings)},
	}
	return renderTable([]string{"Metric", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}
