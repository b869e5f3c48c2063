package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Movie is one row of the movies feed, untouched beyond field typing. The
// title may still embed a trailing "(YYYY)" and the genres field is the raw
// pipe-delimited list.
type Movie struct {
	ID     int64
	Title  string
	Genres string
}

// Rating is one row of the ratings feed.
type Rating struct {
	UserID    int64
	MovieID   int64
	Rating    float64
	Timestamp int64
}

// ReadMovies materializes the full movies feed. Columns are resolved by
// header name (movieId, title, genres) so column order does not matter.
func ReadMovies(path string) ([]Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open movies feed: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	columns, err := headerIndex(reader, "movieId", "title", "genres")
	if err != nil {
		return nil, fmt.Errorf("movies feed %s: %w", path, err)
	}

	var movies []Movie
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("movies feed %s line %d: %w", path, line, err)
		}

		id, err := strconv.ParseInt(record[columns["movieId"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("movies feed %s line %d: movieId: %w", path, line, err)
		}

		movies = append(movies, Movie{
			ID:     id,
			Title:  record[columns["title"]],
			Genres: record[columns["genres"]],
		})
	}
	return movies, nil
}

// ReadRatings materializes the full ratings feed (userId, movieId, rating,
// timestamp).
func ReadRatings(path string) ([]Rating, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ratings feed: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	columns, err := headerIndex(reader, "userId", "movieId", "rating", "timestamp")
	if err != nil {
		return nil, fmt.Errorf("ratings feed %s: %w", path, err)
	}

	var ratings []Rating
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("ratings feed %s line %d: %w", path, line, err)
		}

		row := Rating{}
		if row.UserID, err = strconv.ParseInt(record[columns["userId"]], 10, 64); err != nil {
			return nil, fmt.Errorf("ratings feed %s line %d: userId: %w", path, line, err)
		}
		if row.MovieID, err = strconv.ParseInt(record[columns["movieId"]], 10, 64); err != nil {
			return nil, fmt.Errorf("ratings feed %s line %d: movieId: %w", path, line, err)
		}
		if row.Rating, err = strconv.ParseFloat(record[columns["rating"]], 64); err != nil {
			return nil, fmt.Errorf("ratings feed %s line %d: rating: %w", path, line, err)
		}
		if row.Timestamp, err = strconv.ParseInt(record[columns["timestamp"]], 10, 64); err != nil {
			return nil, fmt.Errorf("ratings feed %s line %d: timestamp: %w", path, line, err)
		}
		ratings = append(ratings, row)
	}
	return ratings, nil
}

func headerIndex(reader *csv.Reader, required ...string) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return columns, nil
}
