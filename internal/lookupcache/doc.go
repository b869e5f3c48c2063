// Package lookupcache provides the durable cache that deduplicates OMDb
// lookups across runs.
//
// Once a key maps to a value, including the explicit null marker for titles
// OMDb does not know, it is never fetched again. The file is rewritten in
// full (atomically, temp file + rename) on every store; the cache is small
// enough that durability per fetch beats batching.
//
// # Storage
//
// A single human-readable JSON object at a configurable path (default:
// ~/.cache/cineload/omdb_cache.json), keyed "title" or "title::year".
//
// CLI commands for inspection and management:
//
//	cineload cache list           # List cached lookups
//	cineload cache remove <key>   # Drop one entry
//	cineload cache clear          # Drop all entries
package lookupcache
