package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func (c *Config) normalize() error {
	// Best-effort: a missing .env is the normal case.
	_ = godotenv.Load()

	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeOMDB(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.CacheFile) == "" {
		c.Paths.CacheFile = defaultCacheFile
	}
	if c.Paths.CacheFile, err = ExpandPath(c.Paths.CacheFile); err != nil {
		return fmt.Errorf("paths.cache_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = defaultDatabasePath
	}
	if c.Database.Path, err = ExpandPath(c.Database.Path); err != nil {
		return fmt.Errorf("database.path: %w", err)
	}
	if c.Ingest.MoviesCSV, err = ExpandPath(strings.TrimSpace(c.Ingest.MoviesCSV)); err != nil {
		return fmt.Errorf("ingest.movies_csv: %w", err)
	}
	if c.Ingest.RatingsCSV, err = ExpandPath(strings.TrimSpace(c.Ingest.RatingsCSV)); err != nil {
		return fmt.Errorf("ingest.ratings_csv: %w", err)
	}
	return nil
}

func (c *Config) normalizeOMDB() error {
	if c.OMDB.APIKey == "" {
		if value, ok := os.LookupEnv("OMDB_API_KEY"); ok {
			c.OMDB.APIKey = strings.TrimSpace(value)
		}
	}
	c.OMDB.BaseURL = strings.TrimSpace(c.OMDB.BaseURL)
	if c.OMDB.BaseURL == "" {
		c.OMDB.BaseURL = defaultOMDBBaseURL
	}
	if c.OMDB.RequestIntervalMS == 0 {
		c.OMDB.RequestIntervalMS = defaultRequestIntervalMS
	}
	if c.OMDB.TimeoutSeconds == 0 {
		c.OMDB.TimeoutSeconds = defaultTimeoutSeconds
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
