// Package engine dispatches search requests to the algorithm packages by
// name and caches HPA* abstract graphs between requests.
//
// Every algorithm is registered under a short name (see Descriptors). Run
// validates a Request, fills in defaults, opens a tracing span and returns
// a Response carrying the common search.Result plus algorithm-specific
// detail.
//
// HPA* graphs are keyed by grid fingerprint, cluster size and cost table.
// Concurrent builds of one key run once (singleflight); queries on a cached
// graph are serialized because inserting query endpoints mutates it.
package engine
