// Package store manages the SQLite catalog: movies, genres, their
// associations, and the ratings fact table.
//
// The movie upsert is the heart of the merge protocol: a single
// INSERT ... ON CONFLICT statement that coalesces new enrichment values over
// existing ones, so known-good data is never clobbered by an absent or
// partial fetch. Genre creation and linking are idempotent by construction,
// which is what makes re-running the pipeline safe.
package store
