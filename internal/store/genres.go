package store

import (
	"context"
	"fmt"
	"sort"
)

// EnsureGenre returns the identifier for the named genre, creating it if
// absent. The insert is conflict-tolerant and the identifier is re-queried
// afterwards, so a concurrent creator is harmless.
func (s *Store) EnsureGenre(ctx context.Context, name string) (int64, error) {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO genres (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
		return 0, fmt.Errorf("ensure genre %q: %w", name, err)
	}

	var id int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT genre_id FROM genres WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("resolve genre %q: %w", name, err)
	}
	return id, nil
}

// LinkGenre associates a movie with a genre. Re-linking an existing pair is
// a no-op: the association table's primary key absorbs the duplicate.
func (s *Store) LinkGenre(ctx context.Context, movieID, genreID int64) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO movie_genres (movie_id, genre_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		movieID, genreID); err != nil {
		return fmt.Errorf("link movie %d to genre %d: %w", movieID, genreID, err)
	}
	return nil
}

// GenresForMovie returns the genre names linked to a movie, sorted.
func (s *Store) GenresForMovie(ctx context.Context, movieID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.name FROM genres g
         JOIN movie_genres mg ON mg.genre_id = g.genre_id
         WHERE mg.movie_id = ?`, movieID)
	if err != nil {
		return nil, fmt.Errorf("genres for movie %d: %w", movieID, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}
	sort.Strings(names)
	return names, nil
}
