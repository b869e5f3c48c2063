package config

const (
	defaultCacheFile         = "~/.cache/cineload/omdb_cache.json"
	defaultLogDir            = "~/.local/share/cineload/logs"
	defaultDatabasePath      = "~/.local/share/cineload/catalog.db"
	defaultOMDBBaseURL       = "https://www.omdbapi.com/"
	defaultRequestIntervalMS = 200
	defaultTimeoutSeconds    = 10
	defaultMoviesCSV         = "movies.csv"
	defaultRatingsCSV        = "ratings.csv"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheFile: defaultCacheFile,
			LogDir:    defaultLogDir,
		},
		OMDB: OMDB{
			BaseURL:           defaultOMDBBaseURL,
			RequestIntervalMS: defaultRequestIntervalMS,
			TimeoutSeconds:    defaultTimeoutSeconds,
		},
		Database: Database{
			Path: defaultDatabasePath,
		},
		Ingest: Ingest{
			MoviesCSV:  defaultMoviesCSV,
			RatingsCSV: defaultRatingsCSV,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
