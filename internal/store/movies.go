package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const movieColumns = "movie_id, title, year, imdb_id, director, plot, box_office, runtime_minutes, language, country, last_updated"

// UpsertMovie reconciles a movie record with whatever is already persisted.
// Title and year are overwritten unconditionally (they come from the
// authoritative input feed), while every enrichment-derived column keeps its
// existing value unless the incoming one is non-null. The whole merge is one
// statement, so a record is never observable half-updated, and re-running
// with an absent enrichment can never erase previously stored fields.
func (s *Store) UpsertMovie(ctx context.Context, m Movie) error {
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO movies (`+movieColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(movie_id) DO UPDATE SET
             title = excluded.title,
             year = excluded.year,
             imdb_id = COALESCE(excluded.imdb_id, movies.imdb_id),
             director = COALESCE(excluded.director, movies.director),
             plot = COALESCE(excluded.plot, movies.plot),
             box_office = COALESCE(excluded.box_office, movies.box_office),
             runtime_minutes = COALESCE(excluded.runtime_minutes, movies.runtime_minutes),
             language = COALESCE(excluded.language, movies.language),
             country = COALESCE(excluded.country, movies.country),
             last_updated = excluded.last_updated`,
		m.ID,
		m.Title,
		nullableInt(m.Year),
		nullableString(m.ImdbID),
		nullableString(m.Director),
		nullableString(m.Plot),
		nullableString(m.BoxOffice),
		nullableInt(m.RuntimeMinutes),
		nullableString(m.Language),
		nullableString(m.Country),
		timestamp,
	)
	if err != nil {
		return fmt.Errorf("upsert movie %d: %w", m.ID, err)
	}
	return nil
}

// GetMovie fetches a movie by identifier. A missing record returns (nil, nil).
func (s *Store) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE movie_id = ?`, id)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

// CountMovies returns the number of persisted movie records.
func (s *Store) CountMovies(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

func scanMovie(scanner interface{ Scan(dest ...any) error }) (*Movie, error) {
	var (
		id          int64
		title       string
		year        sql.NullInt64
		imdbID      sql.NullString
		director    sql.NullString
		plot        sql.NullString
		boxOffice   sql.NullString
		runtime     sql.NullInt64
		language    sql.NullString
		country     sql.NullString
		lastUpdated sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&title,
		&year,
		&imdbID,
		&director,
		&plot,
		&boxOffice,
		&runtime,
		&language,
		&country,
		&lastUpdated,
	); err != nil {
		return nil, err
	}

	movie := &Movie{
		ID:             id,
		Title:          title,
		Year:           intPtr(year),
		ImdbID:         stringPtr(imdbID),
		Director:       stringPtr(director),
		Plot:           stringPtr(plot),
		BoxOffice:      stringPtr(boxOffice),
		RuntimeMinutes: intPtr(runtime),
		Language:       stringPtr(language),
		Country:        stringPtr(country),
	}
	if updated, err := parseTimeString(lastUpdated.String); err == nil {
		movie.LastUpdated = updated
	}
	return movie, nil
}
