// Package enrich combines the durable lookup cache with the OMDb client.
//
// The cache is consulted first; only keys never stored before reach the
// network, which is what makes repeated runs cheap and keeps the external
// request count bounded by the number of distinct new titles.
package enrich
