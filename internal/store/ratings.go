package store

import (
	"context"
	"fmt"

	"cineload/internal/ingest"
)

// InsertRatings bulk-appends the ratings feed inside a single transaction.
// Ratings are facts, not merged records: there is no uniqueness check and no
// per-row isolation. The batch commits or rolls back as a whole.
func (s *Store) InsertRatings(ctx context.Context, rows []ingest.Rating) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin ratings tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ratings (user_id, movie_id, rating, timestamp) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare ratings insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.UserID, row.MovieID, row.Rating, row.Timestamp); err != nil {
			return 0, fmt.Errorf("insert rating (user=%d movie=%d): %w", row.UserID, row.MovieID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit ratings: %w", err)
	}
	return len(rows), nil
}

// CountRatings returns the number of persisted rating rows.
func (s *Store) CountRatings(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM ratings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return count, nil
}
