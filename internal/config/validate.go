package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOMDB(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateIngest(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOMDB() error {
	if c.OMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/cineload/config.toml"
		}
		return fmt.Errorf("omdb.api_key is required. Set OMDB_API_KEY env var or edit %s (create with 'cineload config init')", defaultPath)
	}
	if c.OMDB.RequestIntervalMS < 0 {
		return errors.New("omdb.request_interval_ms must not be negative")
	}
	if c.OMDB.TimeoutSeconds <= 0 {
		return errors.New("omdb.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return errors.New("database.path must be set")
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.MoviesCSV == "" {
		return errors.New("ingest.movies_csv must be set")
	}
	if c.Ingest.RatingsCSV == "" {
		return errors.New("ingest.ratings_csv must be set")
	}
	return nil
}
