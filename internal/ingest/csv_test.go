package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFeed(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write feed: %v", err)
	}
	return path
}

func TestReadMovies(t *testing.T) {
	path := writeFeed(t, "movies.csv", `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,"American President, The (1995)",Comedy|Drama|Romance
3,Amélie,(no genres listed)
`)

	movies, err := ReadMovies(path)
	if err != nil {
		t.Fatalf("ReadMovies returned error: %v", err)
	}
	if len(movies) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(movies))
	}
	if movies[0].ID != 1 || movies[0].Title != "Toy Story (1995)" {
		t.Fatalf("unexpected first movie: %+v", movies[0])
	}
	if movies[1].Title != "American President, The (1995)" {
		t.Fatalf("quoted title mishandled: %+v", movies[1])
	}
	if movies[2].Genres != "(no genres listed)" {
		t.Fatalf("unexpected genres: %+v", movies[2])
	}
}

func TestReadMoviesHeaderOrderIrrelevant(t *testing.T) {
	path := writeFeed(t, "movies.csv", `title,genres,movieId
Heat (1995),Action|Crime|Thriller,6
`)

	movies, err := ReadMovies(path)
	if err != nil {
		t.Fatalf("ReadMovies returned error: %v", err)
	}
	if movies[0].ID != 6 || movies[0].Title != "Heat (1995)" {
		t.Fatalf("unexpected movie: %+v", movies[0])
	}
}

func TestReadMoviesMissingColumn(t *testing.T) {
	path := writeFeed(t, "movies.csv", "movieId,name\n1,Toy Story\n")
	if _, err := ReadMovies(path); err == nil {
		t.Fatal("expected error for missing title column")
	}
}

func TestReadMoviesBadID(t *testing.T) {
	path := writeFeed(t, "movies.csv", "movieId,title,genres\nabc,Toy Story,Comedy\n")
	if _, err := ReadMovies(path); err == nil {
		t.Fatal("expected error for non-numeric movieId")
	}
}

func TestReadRatings(t *testing.T) {
	path := writeFeed(t, "ratings.csv", `userId,movieId,rating,timestamp
1,1,4.0,964982703
1,3,4.5,964981247
`)

	ratings, err := ReadRatings(path)
	if err != nil {
		t.Fatalf("ReadRatings returned error: %v", err)
	}
	if len(ratings) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(ratings))
	}
	want := Rating{UserID: 1, MovieID: 3, Rating: 4.5, Timestamp: 964981247}
	if ratings[1] != want {
		t.Fatalf("unexpected rating: %+v", ratings[1])
	}
}

func TestReadRatingsMissingFile(t *testing.T) {
	if _, err := ReadRatings(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing feed")
	}
}
