package server

import (
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
)

// ImplResponse is a status code plus a body to encode.
type ImplResponse struct {
	Code int
	Body interface{}
}

// Response builds an ImplResponse.
func Response(code int, body interface{}) ImplResponse {
	return ImplResponse{Code: code, Body: body}
}

// Cell addresses a grid cell.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SearchRequest is the body of POST /v1/search and POST /v1/overlay.
type SearchRequest struct {
	// Algorithm defaults to the engine default when empty.
	Algorithm string          `json:"algorithm,omitempty"`
	Grid      config.GridFile `json:"grid"`
	// Terrain overrides individual costs by terrain name.
	Terrain     map[string]float64 `json:"terrain,omitempty"`
	Src         *Cell              `json:"src"`
	Dst         *Cell              `json:"dst"`
	ClusterSize int                `json:"clusterSize,omitempty"`
	MaxDepth    int                `json:"maxDepth,omitempty"`
}

// AssertSearchRequestRequired checks the fields that have no default.
func AssertSearchRequestRequired(req SearchRequest) error {
	if req.Src == nil {
		return &RequiredError{Field: "src"}
	}
	if req.Dst == nil {
		return &RequiredError{Field: "dst"}
	}
	if len(req.Grid.Rows) == 0 && len(req.Grid.Cells) == 0 {
		return &RequiredError{Field: "grid"}
	}

	return nil
}

// SearchResult is the body of a successful POST /v1/search.
type SearchResult struct {
	*engine.Response
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Found     bool   `json:"found"`
	Hops      int    `json:"hops"`
	PathCells []Cell `json:"pathCells"`
	// Diagnosis is set only when no path was found.
	Diagnosis *Diagnosis `json:"diagnosis,omitempty"`
}

// Diagnosis describes why a query has no path.
type Diagnosis struct {
	// Regions is the number of 4-connected passable regions in the grid.
	Regions int `json:"regions"`
	// SrcRegion is the size of the region containing src (0 when src is blocked).
	SrcRegion int `json:"srcRegion"`
	// Walls is the fewest blocked cells a src→dst route must cross.
	Walls int `json:"walls"`
	// BreachPath lists those blocked cells along one such route.
	BreachPath []Cell `json:"breachPath"`
}

// AlgorithmInfo describes one registered algorithm.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weighted    bool   `json:"weighted"`
	Optimal     bool   `json:"optimal"`
	Default     bool   `json:"default"`
}

// TerrainInfo describes one terrain kind. Cost is omitted for blocked cells.
type TerrainInfo struct {
	Code     int      `json:"code"`
	Name     string   `json:"name"`
	Passable bool     `json:"passable"`
	Cost     *float64 `json:"cost,omitempty"`
}

// Health is the body of GET /healthz.
type Health struct {
	Status       string `json:"status"`
	CachedGraphs int    `json:"cachedGraphs"`
}
