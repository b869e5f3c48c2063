package store_test

import (
	"context"
	"testing"
	"time"

	"cineload/internal/ingest"
	"cineload/internal/store"
	"cineload/internal/testsupport"
)

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func TestUpsertMovieInsertsNewRecord(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	movie := store.Movie{
		ID:             1,
		Title:          "Toy Story (1995)",
		Year:           intPtr(1995),
		Director:       strPtr("John Lasseter"),
		RuntimeMinutes: intPtr(81),
	}
	if err := st.UpsertMovie(ctx, movie); err != nil {
		t.Fatalf("UpsertMovie returned error: %v", err)
	}

	got, err := st.GetMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovie returned error: %v", err)
	}
	if got == nil {
		t.Fatal("expected persisted movie")
	}
	if got.Title != "Toy Story (1995)" || got.Year == nil || *got.Year != 1995 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Director == nil || *got.Director != "John Lasseter" {
		t.Fatalf("director not persisted: %+v", got)
	}
	if got.RuntimeMinutes == nil || *got.RuntimeMinutes != 81 {
		t.Fatalf("runtime not persisted: %+v", got)
	}
	if got.Plot != nil {
		t.Fatalf("absent enrichment should persist as null: %+v", got)
	}
	if got.LastUpdated.IsZero() {
		t.Fatal("last_updated not set")
	}
}

func TestUpsertMovieKeepsExistingOnNull(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := st.UpsertMovie(ctx, store.Movie{
		ID:       1,
		Title:    "Toy Story (1995)",
		Year:     intPtr(1995),
		Director: strPtr("John Lasseter"),
		Plot:     strPtr("A cowboy doll is profoundly threatened."),
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Second run: enrichment unavailable, only feed fields supplied.
	if err := st.UpsertMovie(ctx, store.Movie{
		ID:    1,
		Title: "Toy Story (1995)",
		Year:  intPtr(1995),
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := st.GetMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovie returned error: %v", err)
	}
	if got.Director == nil || *got.Director != "John Lasseter" {
		t.Fatalf("null enrichment erased director: %+v", got)
	}
	if got.Plot == nil {
		t.Fatalf("null enrichment erased plot: %+v", got)
	}
}

func TestUpsertMovieFillsNullWithNewValue(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := st.UpsertMovie(ctx, store.Movie{ID: 1, Title: "Heat (1995)", Year: intPtr(1995)}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := st.UpsertMovie(ctx, store.Movie{
		ID:       1,
		Title:    "Heat (1995)",
		Year:     intPtr(1995),
		Director: strPtr("Michael Mann"),
	}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := st.GetMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovie returned error: %v", err)
	}
	if got.Director == nil || *got.Director != "Michael Mann" {
		t.Fatalf("new enrichment not applied over null: %+v", got)
	}
}

func TestUpsertMovieOverwritesFeedFields(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := st.UpsertMovie(ctx, store.Movie{ID: 1, Title: "Old Title", Year: intPtr(1990)}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := st.UpsertMovie(ctx, store.Movie{ID: 1, Title: "Corrected Title (1995)", Year: intPtr(1995)}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := st.GetMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovie returned error: %v", err)
	}
	if got.Title != "Corrected Title (1995)" || got.Year == nil || *got.Year != 1995 {
		t.Fatalf("feed fields not overwritten: %+v", got)
	}
}

func TestUpsertMovieBumpsLastUpdated(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := st.UpsertMovie(ctx, store.Movie{ID: 1, Title: "Heat (1995)"}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	first, err := st.GetMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovie returned error: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if err := st.UpsertMovie(ctx, store.Movie{ID: 1, Title: "Heat (1995)"}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	second, err := st.GetMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GetMovie returned error: %v", err)
	}

	if !second.LastUpdated.After(first.LastUpdated) {
		t.Fatalf("last_updated not bumped: first=%v second=%v", first.LastUpdated, second.LastUpdated)
	}
}

func TestGetMovieMissingReturnsNil(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	got, err := st.GetMovie(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetMovie returned error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing record, got %+v", got)
	}
}

func TestEnsureGenreIdempotent(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	first, err := st.EnsureGenre(ctx, "Animation")
	if err != nil {
		t.Fatalf("EnsureGenre returned error: %v", err)
	}
	second, err := st.EnsureGenre(ctx, "Animation")
	if err != nil {
		t.Fatalf("second EnsureGenre returned error: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable genre id, got %d then %d", first, second)
	}

	other, err := st.EnsureGenre(ctx, "Comedy")
	if err != nil {
		t.Fatalf("EnsureGenre returned error: %v", err)
	}
	if other == first {
		t.Fatal("distinct genres must get distinct ids")
	}
}

func TestLinkGenreIdempotent(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	if err := st.UpsertMovie(ctx, store.Movie{ID: 1, Title: "Toy Story (1995)"}); err != nil {
		t.Fatalf("upsert movie: %v", err)
	}
	genreID, err := st.EnsureGenre(ctx, "Animation")
	if err != nil {
		t.Fatalf("EnsureGenre returned error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := st.LinkGenre(ctx, 1, genreID); err != nil {
			t.Fatalf("LinkGenre returned error: %v", err)
		}
	}

	genres, err := st.GenresForMovie(ctx, 1)
	if err != nil {
		t.Fatalf("GenresForMovie returned error: %v", err)
	}
	if len(genres) != 1 || genres[0] != "Animation" {
		t.Fatalf("unexpected associations: %v", genres)
	}
}

func TestInsertRatingsBulk(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	rows := []ingest.Rating{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: 964982703},
		{UserID: 2, MovieID: 1, Rating: 3.5, Timestamp: 964982931},
		{UserID: 1, MovieID: 3, Rating: 5.0, Timestamp: 964983000},
	}
	inserted, err := st.InsertRatings(ctx, rows)
	if err != nil {
		t.Fatalf("InsertRatings returned error: %v", err)
	}
	if inserted != 3 {
		t.Fatalf("expected 3 inserted rows, got %d", inserted)
	}

	count, err := st.CountRatings(ctx)
	if err != nil {
		t.Fatalf("CountRatings returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 persisted rows, got %d", count)
	}
}

func TestInsertRatingsEmpty(t *testing.T) {
	st := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	inserted, err := st.InsertRatings(context.Background(), nil)
	if err != nil {
		t.Fatalf("InsertRatings returned error: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected 0 inserted rows, got %d", inserted)
	}
}

func TestStoreReopenSameSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	if err := st.UpsertMovie(context.Background(), store.Movie{ID: 1, Title: "Heat (1995)"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	got, err := reopened.GetMovie(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetMovie after reopen: %v", err)
	}
	if got == nil {
		t.Fatal("record lost across reopen")
	}
}
