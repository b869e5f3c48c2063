// Package omdb implements the metadata lookup client for the OMDb API.
//
// The client classifies responses into three outcomes the pipeline treats
// differently: a payload (cacheable), a definitive not-found (cacheable as an
// explicit marker), and transient transport failures (never cached, retried
// on a future run). A rate limiter spaces network requests; cache hits are
// resolved upstream and never pay the delay.
package omdb
