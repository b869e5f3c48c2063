package pipeline

import (
	"strings"

	"cineload/internal/ingest"
	"cineload/internal/omdb"
	"cineload/internal/store"
	"cineload/internal/titles"
)

// mergeMovie maps one feed record plus an optional enrichment payload onto
// the persisted shape. The feed supplies identity, title, and year; every
// enrichment field degrades to null when the payload is absent or the value
// is OMDb's "N/A" placeholder, so the store's coalesce rule treats unknowns
// as unknowns instead of overwriting good data with filler.
func mergeMovie(movie ingest.Movie, key titles.Key, payload *omdb.Payload) store.Movie {
	m := store.Movie{
		ID:    movie.ID,
		Title: movie.Title,
	}
	if key.Year > 0 {
		year := key.Year
		m.Year = &year
	}
	if payload == nil {
		return m
	}

	m.ImdbID = optionalField(payload.ImdbID)
	m.Director = optionalField(payload.Director)
	m.Plot = optionalField(payload.Plot)
	m.BoxOffice = optionalField(payload.BoxOffice)
	m.Language = optionalField(payload.Language)
	m.Country = optionalField(payload.Country)

	if minutes, ok := titles.ParseRuntime(payload.Runtime); ok {
		m.RuntimeMinutes = &minutes
	}

	return m
}

func optionalField(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" || value == "N/A" {
		return nil
	}
	return &value
}
