// Package titles derives canonical lookup keys from the raw catalog feed.
//
// The feed embeds release years in the title column ("Toy Story (1995)") and
// packs genres into a single pipe-delimited field with a reserved sentinel
// for empty tag lists. This package isolates that parsing so the enrichment
// client, cache, and store all see the same normalized values.
package titles
