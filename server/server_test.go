package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/server"
)

var courtyard = []string{
	"....",
	".##.",
	"....",
}

type searchBody struct {
	Algorithm  string        `json:"algorithm"`
	Path       []int         `json:"path"`
	Visited    []int         `json:"visited"`
	Ops        int           `json:"ops"`
	PathWeight float64       `json:"pathWeight"`
	Found      bool          `json:"found"`
	Hops       int           `json:"hops"`
	PathCells  []server.Cell `json:"pathCells"`
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	HPA        *struct {
		CacheHit bool `json:"cacheHit"`
	} `json:"hpa"`
	Diagnosis *server.Diagnosis `json:"diagnosis"`
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	e, err := engine.New(engine.WithClusterSize(2))
	require.NoError(t, err)

	return server.New(config.Default().Server, e, nil).Handler()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		if s, ok := body.(string); ok {
			r = bytes.NewBufferString(s)
		} else {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			r = bytes.NewReader(data)
		}
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func searchReq(alg string, rows []string, src, dst server.Cell) server.SearchRequest {
	return server.SearchRequest{
		Algorithm: alg,
		Grid:      config.GridFile{Rows: rows},
		Src:       &src,
		Dst:       &dst,
	}
}

func TestSearch(t *testing.T) {
	h := newHandler(t)
	rec := do(t, h, http.MethodPost, "/v1/search", searchReq("", courtyard, server.Cell{}, server.Cell{Row: 2, Col: 3}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var got searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, engine.AStar, got.Algorithm)
	assert.True(t, got.Found)
	assert.Equal(t, 5, got.Hops)
	assert.Equal(t, 5.0, got.PathWeight)
	assert.Equal(t, 3, got.Rows)
	assert.Equal(t, 4, got.Cols)
	require.Len(t, got.PathCells, 6)
	assert.Equal(t, server.Cell{Row: 0, Col: 0}, got.PathCells[0])
	assert.Equal(t, server.Cell{Row: 2, Col: 3}, got.PathCells[5])
	assert.Equal(t, 0, got.Path[0])
	assert.Equal(t, 11, got.Path[5])
	assert.Nil(t, got.Diagnosis)
}

func TestSearch_TerrainOverride(t *testing.T) {
	h := newHandler(t)
	req := searchReq(engine.UCS, []string{".~."}, server.Cell{}, server.Cell{Col: 2})

	rec := do(t, h, http.MethodPost, "/v1/search", req)
	require.Equal(t, http.StatusOK, rec.Code)
	var got searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 26.0, got.PathWeight)

	req.Terrain = map[string]float64{"water": 2}
	rec = do(t, h, http.MethodPost, "/v1/search", req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3.0, got.PathWeight)
}

func TestSearch_Unreachable(t *testing.T) {
	h := newHandler(t)
	rec := do(t, h, http.MethodPost, "/v1/search", searchReq(engine.BFS, []string{".#."}, server.Cell{}, server.Cell{Col: 2}))
	require.Equal(t, http.StatusOK, rec.Code)

	var got searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Found)
	assert.Equal(t, -1, got.Hops)
	assert.Empty(t, got.Path)
	assert.Equal(t, []int{0}, got.Visited)
	require.NotNil(t, got.Diagnosis)
	assert.Equal(t, server.Diagnosis{
		Regions:    2,
		SrcRegion:  1,
		Walls:      1,
		BreachPath: []server.Cell{{Row: 0, Col: 1}},
	}, *got.Diagnosis)
}

func TestSearch_UnreachableBehindDoubleWall(t *testing.T) {
	h := newHandler(t)
	rows := []string{
		"..##.",
		"..#..",
		"..##.",
	}
	rec := do(t, h, http.MethodPost, "/v1/search", searchReq(engine.AStar, rows, server.Cell{}, server.Cell{Row: 0, Col: 4}))
	require.Equal(t, http.StatusOK, rec.Code)

	var got searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Found)
	require.NotNil(t, got.Diagnosis)
	assert.Equal(t, 2, got.Diagnosis.Regions)
	assert.Equal(t, 6, got.Diagnosis.SrcRegion)
	assert.Equal(t, 1, got.Diagnosis.Walls)
	assert.Equal(t, []server.Cell{{Row: 1, Col: 2}}, got.Diagnosis.BreachPath)
}

func TestSearch_BadRequests(t *testing.T) {
	h := newHandler(t)
	origin := server.Cell{}
	tests := []struct {
		name string
		body interface{}
	}{
		{"malformed json", `{"grid":`},
		{"unknown field", `{"grid":{"rows":[".."]},"src":{"row":0,"col":0},"dst":{"row":0,"col":1},"speed":3}`},
		{"missing src", `{"grid":{"rows":[".."]},"dst":{"row":0,"col":1}}`},
		{"missing grid", `{"src":{"row":0,"col":0},"dst":{"row":0,"col":1}}`},
		{"rows and cells", `{"grid":{"rows":[".."],"cells":[[1,1]]},"src":{"row":0,"col":0},"dst":{"row":0,"col":1}}`},
		{"bad glyph", searchReq("", []string{".?"}, origin, server.Cell{Col: 1})},
		{"out of range", searchReq("", courtyard, origin, server.Cell{Row: 3})},
		{"unknown algorithm", searchReq("teleport", courtyard, origin, server.Cell{Col: 1})},
		{"weighted jps", searchReq(engine.JPS, []string{".~."}, origin, server.Cell{Col: 2})},
		{"bad terrain", server.SearchRequest{
			Grid: config.GridFile{Rows: courtyard}, Src: &origin, Dst: &origin,
			Terrain: map[string]float64{"lava": 1},
		}},
		{"negative depth", server.SearchRequest{
			Algorithm: engine.IDDFS, Grid: config.GridFile{Rows: courtyard}, Src: &origin, Dst: &origin,
			MaxDepth: -1,
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/v1/search", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSearch_BodyLimit(t *testing.T) {
	e, err := engine.New()
	require.NoError(t, err)
	cfg := config.Default().Server
	cfg.MaxBodyBytes = 256
	h := server.New(cfg, e, nil).Handler()

	small := searchReq("", []string{"...."}, server.Cell{}, server.Cell{Col: 3})
	rec := do(t, h, http.MethodPost, "/v1/search", small)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rows := make([]string, 64)
	for i := range rows {
		rows[i] = strings.Repeat(".", 64)
	}
	big := searchReq("", rows, server.Cell{}, server.Cell{Row: 63, Col: 63})
	for _, path := range []string{"/v1/search", "/v1/overlay"} {
		rec = do(t, h, http.MethodPost, path, big)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, path)
	}
}

func TestSearch_MethodNotAllowed(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/v1/search", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func layers(fc *geojson.FeatureCollection) map[string]int {
	out := make(map[string]int)
	for _, f := range fc.Features {
		out[f.Properties.MustString("layer")]++
	}

	return out
}

func TestOverlay(t *testing.T) {
	h := newHandler(t)
	rec := do(t, h, http.MethodPost, "/v1/overlay", searchReq(engine.AStar, courtyard, server.Cell{}, server.Cell{Row: 2, Col: 3}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{server.LayerPath: 1, server.LayerVisited: 1}, layers(fc))

	for _, f := range fc.Features {
		if f.Properties.MustString("layer") != server.LayerPath {
			continue
		}
		assert.Equal(t, "LineString", f.Geometry.GeoJSONType())
		assert.Equal(t, 5.0, f.Properties.MustFloat64("weight"))
	}
}

func TestOverlay_Unreachable(t *testing.T) {
	h := newHandler(t)
	rec := do(t, h, http.MethodPost, "/v1/overlay", searchReq(engine.BFS, []string{".#."}, server.Cell{}, server.Cell{Col: 2}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{server.LayerVisited: 1, server.LayerBreach: 1}, layers(fc))
	for _, f := range fc.Features {
		if f.Properties.MustString("layer") == server.LayerBreach {
			assert.Equal(t, 1.0, f.Properties.MustFloat64("walls"))
		}
	}
}

func TestOverlay_HPA(t *testing.T) {
	h := newHandler(t)
	rec := do(t, h, http.MethodPost, "/v1/overlay", searchReq(engine.HPA, courtyard, server.Cell{}, server.Cell{Row: 2, Col: 3}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	got := layers(fc)
	assert.Equal(t, 1, got[server.LayerPath])
	assert.Equal(t, 1, got[server.LayerVisited])
	assert.Equal(t, 1, got[server.LayerAbstractPath])
	assert.Equal(t, 4, got[server.LayerCluster])
	assert.Positive(t, got[server.LayerNode])

	for _, f := range fc.Features {
		if f.Properties.MustString("layer") == server.LayerCluster {
			assert.Equal(t, "Polygon", f.Geometry.GeoJSONType())
		}
	}
}

func TestAlgorithms(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/v1/algorithms", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []server.AlgorithmInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, len(engine.Descriptors()))
	defaults := 0
	for _, a := range got {
		if a.Default {
			defaults++
			assert.Equal(t, engine.AStar, a.Name)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestTerrain(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/v1/terrain", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []server.TerrainInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 9)
	byName := make(map[string]server.TerrainInfo)
	for _, ti := range got {
		byName[ti.Name] = ti
	}
	require.NotNil(t, byName["water"].Cost)
	assert.Equal(t, 25.0, *byName["water"].Cost)
	assert.False(t, byName["blocked"].Passable)
	assert.Nil(t, byName["blocked"].Cost)
	assert.Equal(t, 9, byName["blocked"].Code)
}

func TestHealth(t *testing.T) {
	rec := do(t, newHandler(t), http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","cachedGraphs":0}`, rec.Body.String())
}

func TestMetrics(t *testing.T) {
	h := newHandler(t)
	req := searchReq(engine.HPA, courtyard, server.Cell{}, server.Cell{Row: 2, Col: 3})
	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodPost, "/v1/search", req)
		require.Equal(t, http.StatusOK, rec.Code)
		var got searchBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotNil(t, got.HPA)
		assert.Equal(t, i == 1, got.HPA.CacheHit)
	}
	do(t, h, http.MethodPost, "/v1/search", `{}`)

	rec := do(t, h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `gridpath_hpa_graph_cache_total{result="hit"} 1`)
	assert.Contains(t, body, `gridpath_hpa_graph_cache_total{result="miss"} 1`)
	assert.Contains(t, body, `gridpath_http_requests_total{code="200",route="Search"} 2`)
	assert.Contains(t, body, `gridpath_http_requests_total{code="400",route="Search"} 1`)
	assert.Contains(t, body, `gridpath_search_duration_seconds_count{algorithm="hpa"} 2`)
}
