// Package server exposes the search engine over HTTP.
//
// Routes (JSON unless noted):
//
//	POST /v1/search      run one search, return the engine response
//	POST /v1/overlay     run one search, return a GeoJSON FeatureCollection
//	GET  /v1/algorithms  list registered algorithms
//	GET  /v1/terrain     list terrain kinds with their default costs
//	GET  /healthz        liveness check
//	GET  /metrics        Prometheus exposition (text)
//
// Overlay geometry lives in grid space: x is the column, y is the row, and
// cell (r, c) is the unit square with its centre at (c+0.5, r+0.5).
package server
