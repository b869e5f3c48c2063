package enrich

import (
	"context"
	"errors"
	"log/slog"

	"cineload/internal/logging"
	"cineload/internal/lookupcache"
	"cineload/internal/omdb"
	"cineload/internal/services"
	"cineload/internal/titles"
)

// Outcome describes how a lookup was resolved.
type Outcome int

const (
	// OutcomeCacheHit means the key was answered from the durable cache,
	// including cached not-found markers. No network call was made.
	OutcomeCacheHit Outcome = iota
	// OutcomeFetched means the service returned a payload, now cached.
	OutcomeFetched
	// OutcomeNotFound means the service definitively does not know the
	// title; the marker is cached so future runs stop asking.
	OutcomeNotFound
	// OutcomeTransient means the service was unavailable. Nothing was
	// cached; a future run will retry.
	OutcomeTransient
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCacheHit:
		return "cache-hit"
	case OutcomeFetched:
		return "fetched"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Enricher resolves lookup keys through the durable cache, reaching the
// metadata service only for keys never seen before. It guarantees at most
// one network call per distinct key per run.
type Enricher struct {
	cache  *lookupcache.Cache
	client omdb.Fetcher
	logger *slog.Logger
}

// New constructs an Enricher. The logger may be nil.
func New(cache *lookupcache.Cache, client omdb.Fetcher, logger *slog.Logger) *Enricher {
	return &Enricher{
		cache:  cache,
		client: client,
		logger: logging.NewComponentLogger(logger, "enrich"),
	}
}

// Lookup resolves the key to a payload, a cached or fresh not-found marker,
// or a transient miss. Transient failures are logged and reported through
// the Outcome, not the error: the pipeline continues without enrichment and
// a future run retries. The error return is reserved for cache persistence
// failures, which would break the at-most-one-fetch guarantee if ignored.
func (e *Enricher) Lookup(ctx context.Context, key titles.Key) (*omdb.Payload, Outcome, error) {
	cacheKey := key.CacheKey()

	if payload, cached := e.cache.Lookup(cacheKey); cached {
		return payload, OutcomeCacheHit, nil
	}

	payload, err := e.client.Fetch(ctx, key.Title, key.Year)
	switch {
	case err == nil:
		if storeErr := e.cache.Store(cacheKey, payload); storeErr != nil {
			return nil, OutcomeFetched, storeErr
		}
		return payload, OutcomeFetched, nil
	case errors.Is(err, services.ErrNotFound):
		if storeErr := e.cache.Store(cacheKey, nil); storeErr != nil {
			return nil, OutcomeNotFound, storeErr
		}
		return nil, OutcomeNotFound, nil
	default:
		e.logger.Warn("metadata lookup failed; will retry on a future run",
			logging.String("key", cacheKey),
			logging.Error(err))
		return nil, OutcomeTransient, nil
	}
}
