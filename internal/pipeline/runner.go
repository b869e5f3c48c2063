package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"cineload/internal/config"
	"cineload/internal/enrich"
	"cineload/internal/ingest"
	"cineload/internal/logging"
	"cineload/internal/store"
	"cineload/internal/titles"
)

// Summary reports what one pipeline pass did.
type Summary struct {
	Movies       int
	CacheHits    int
	Fetched      int
	NotFound     int
	Transient    int
	GenresLinked int
	Ratings      int
}

// ProgressFunc observes per-record progress. It is presentation only; the
// pipeline never depends on it.
type ProgressFunc func(done, total int, title string)

// Option configures a Runner.
type Option func(*Runner)

// WithProgress installs a progress observer.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

// Runner sequences one full pass: ingest both feeds, then per movie record
// normalize, cache-or-fetch, merge-upsert, and link genres; finally
// bulk-load the ratings facts.
type Runner struct {
	cfg      *config.Config
	store    *store.Store
	enricher *enrich.Enricher
	logger   *slog.Logger
	progress ProgressFunc
}

// New constructs a Runner. The logger may be nil.
func New(cfg *config.Config, st *store.Store, enricher *enrich.Enricher, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		store:    st,
		enricher: enricher,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one pass. Records are processed strictly one at a time in
// input order; the external rate ceiling caps throughput regardless, so
// parallel fetches would only complicate cache-write ordering. A persistence
// failure on any record aborts the run; already-committed records stay
// durably correct and a re-run resumes them as cheap no-ops. Transient
// metadata failures only skip enrichment for that record this run.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	movies, err := ingest.ReadMovies(r.cfg.Ingest.MoviesCSV)
	if err != nil {
		return summary, err
	}
	ratings, err := ingest.ReadRatings(r.cfg.Ingest.RatingsCSV)
	if err != nil {
		return summary, err
	}

	r.logger.Info("feeds loaded",
		logging.Int("movies", len(movies)),
		logging.Int("ratings", len(ratings)))

	for i, movie := range movies {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := r.processMovie(ctx, movie, &summary); err != nil {
			return summary, fmt.Errorf("movie %d (%s): %w", movie.ID, movie.Title, err)
		}
		summary.Movies++
		if r.progress != nil {
			r.progress(i+1, len(movies), movie.Title)
		}
	}

	inserted, err := r.store.InsertRatings(ctx, ratings)
	if err != nil {
		return summary, fmt.Errorf("load ratings: %w", err)
	}
	summary.Ratings = inserted

	r.logger.Info("pipeline completed",
		logging.Int("movies", summary.Movies),
		logging.Int("cache_hits", summary.CacheHits),
		logging.Int("fetched", summary.Fetched),
		logging.Int("not_found", summary.NotFound),
		logging.Int("transient", summary.Transient),
		logging.Int("ratings", summary.Ratings))

	return summary, nil
}

func (r *Runner) processMovie(ctx context.Context, movie ingest.Movie, summary *Summary) error {
	key := titles.Parse(movie.Title)

	payload, outcome, err := r.enricher.Lookup(ctx, key)
	if err != nil {
		return err
	}
	switch outcome {
	case enrich.OutcomeCacheHit:
		summary.CacheHits++
	case enrich.OutcomeFetched:
		summary.Fetched++
	case enrich.OutcomeNotFound:
		summary.NotFound++
	case enrich.OutcomeTransient:
		summary.Transient++
	}

	if err := r.store.UpsertMovie(ctx, mergeMovie(movie, key, payload)); err != nil {
		return err
	}

	for _, genre := range titles.SplitGenres(movie.Genres) {
		genreID, err := r.store.EnsureGenre(ctx, genre)
		if err != nil {
			return err
		}
		if err := r.store.LinkGenre(ctx, movie.ID, genreID); err != nil {
			return err
		}
		summary.GenresLinked++
	}

	return nil
}
