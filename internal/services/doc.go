// Package services defines shared error markers consumed by the enrichment
// client and the pipeline driver.
//
// The sentinels distinguish failures that should be cached (a definitive
// not-found from the metadata service) from failures that must stay
// retryable (transport problems), so the caller never has to parse error
// strings to decide persistence behaviour.
package services
