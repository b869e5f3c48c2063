package testsupport

import (
	"path/filepath"
	"testing"

	"cineload/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.OMDB.APIKey = "test"
	cfg.OMDB.RequestIntervalMS = 0
	cfg.Paths.CacheFile = filepath.Join(base, "cache", "omdb_cache.json")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Database.Path = filepath.Join(base, "db", "catalog.db")
	cfg.Ingest.MoviesCSV = filepath.Join(base, "movies.csv")
	cfg.Ingest.RatingsCSV = filepath.Join(base, "ratings.csv")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithOMDBKey sets the OMDb API key on the test config.
func WithOMDBKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.OMDB.APIKey = key
	}
}

// WithOMDBBaseURL points the client at a test server.
func WithOMDBBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.OMDB.BaseURL = url
	}
}
