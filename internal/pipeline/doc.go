// Package pipeline drives one enrichment-and-merge pass over the input
// feeds.
//
// The flow per record is normalize → cache-or-fetch → merge-upsert → link
// genres, followed by one independent bulk load of the ratings facts. The
// durable cache and the catalog database are the only state that outlives
// the process, which is what makes an interrupted run safe to restart from
// the top.
package pipeline
