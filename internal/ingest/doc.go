// Package ingest reads the two CSV input feeds.
//
// Both feeds are materialized fully before processing begins: the dataset is
// bounded (one MovieLens-style export) and the pipeline wants a stable total
// for progress reporting. Malformed rows are errors: the feed is the
// authoritative source of record identity, and silently skipping rows would
// corrupt the catalog.
package ingest
