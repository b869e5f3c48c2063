package store

import "time"

// Movie is one persisted catalog record. Title and Year come from the
// authoritative input feed; every pointer field is enrichment-derived and
// nullable, with nil meaning "not known yet".
type Movie struct {
	ID             int64
	Title          string
	Year           *int
	ImdbID         *string
	Director       *string
	Plot           *string
	BoxOffice      *string
	RuntimeMinutes *int
	Language       *string
	Country        *string
	LastUpdated    time.Time
}

// Genre is a normalized lookup-table value referenced by many movies.
type Genre struct {
	ID   int64
	Name string
}
