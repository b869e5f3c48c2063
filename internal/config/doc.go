// Package config loads and validates the TOML configuration for cineload.
//
// Resolution order: an explicit --config path, then
// ~/.config/cineload/config.toml, then a project-local cineload.toml.
// Defaults fill anything the file omits, and the OMDb API key falls back to
// the OMDB_API_KEY environment variable (a working-directory .env file is
// loaded first). All path values are expanded to absolute form before use.
package config
