package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var tracer = otel.Tracer("gridpath/server")

// Service implements the API on top of an engine.
type Service struct {
	engine  *engine.Engine
	metrics *Metrics
	logger  *slog.Logger
}

// NewService creates a Service. A nil logger discards.
func NewService(e *engine.Engine, metrics *Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Service{engine: e, metrics: metrics, logger: logger}
}

// query is a decoded and validated SearchRequest.
type query struct {
	grid     *gridgraph.Grid
	costs    gridgraph.CostTable
	src, dst int
}

func (s *Service) decode(req SearchRequest) (*query, error) {
	g, err := req.Grid.Grid()
	if err != nil {
		return nil, err
	}
	costs := s.engine.Costs()
	if len(req.Terrain) > 0 {
		if costs, err = config.OverrideCosts(costs, req.Terrain); err != nil {
			return nil, err
		}
	}
	q := &query{grid: g, costs: costs}
	if q.src, err = cellIndex(g, *req.Src); err != nil {
		return nil, fmt.Errorf("src: %w", err)
	}
	if q.dst, err = cellIndex(g, *req.Dst); err != nil {
		return nil, fmt.Errorf("dst: %w", err)
	}

	return q, nil
}

func cellIndex(g *gridgraph.Grid, c Cell) (int, error) {
	if !g.InBounds(c.Row, c.Col) {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w", c.Row, c.Col, g.Rows, g.Cols, gridgraph.ErrOutOfRange)
	}

	return g.Index(c.Row, c.Col), nil
}

// run executes req and records metrics.
func (s *Service) run(ctx context.Context, req SearchRequest) (*query, *engine.Response, error) {
	ctx, span := tracer.Start(ctx, "server.Search",
		trace.WithAttributes(attribute.String("algorithm", req.Algorithm)),
	)
	defer span.End()

	q, err := s.decode(req)
	if err == nil {
		var resp *engine.Response
		resp, err = s.engine.Run(ctx, engine.Request{
			Algorithm:   req.Algorithm,
			Grid:        q.grid,
			Costs:       q.costs,
			Src:         q.src,
			Dst:         q.dst,
			ClusterSize: req.ClusterSize,
			MaxDepth:    req.MaxDepth,
		})
		if err == nil {
			s.observe(resp)
			span.SetAttributes(attribute.Bool("found", resp.Found()))
			return q, resp, nil
		}
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.searchErrors.WithLabelValues(errorType(err)).Inc()
	s.logger.Warn("search rejected", "component", "server", "algorithm", req.Algorithm, "err", err)

	return nil, nil, err
}

func (s *Service) observe(resp *engine.Response) {
	s.metrics.searchDuration.WithLabelValues(resp.Algorithm).Observe(resp.Elapsed.Seconds())
	s.metrics.searchOps.WithLabelValues(resp.Algorithm).Observe(float64(resp.Ops))
	if resp.HPA != nil {
		result := "miss"
		if resp.HPA.CacheHit {
			result = "hit"
		}
		s.metrics.graphCache.WithLabelValues(result).Inc()
	}
}

// Search runs one query.
func (s *Service) Search(ctx context.Context, req SearchRequest) (ImplResponse, error) {
	q, resp, err := s.run(ctx, req)
	if err != nil {
		return Response(statusFor(err), nil), err
	}

	out := SearchResult{
		Response:  resp,
		Rows:      q.grid.Rows,
		Cols:      q.grid.Cols,
		Found:     resp.Found(),
		Hops:      resp.Hops(),
		PathCells: make([]Cell, len(resp.Path)),
	}
	for i, v := range resp.Path {
		out.PathCells[i] = cellOf(q.grid, v)
	}
	if !out.Found {
		if out.Diagnosis, err = diagnose(q); err != nil {
			return Response(statusFor(err), nil), err
		}
	}

	return Response(http.StatusOK, out), nil
}

func cellOf(g *gridgraph.Grid, v int) Cell {
	r, c := g.Coordinate(v)
	return Cell{Row: r, Col: c}
}

// diagnose explains an unreachable query: how the grid splits into regions
// and the fewest walls that would have to open.
func diagnose(q *query) (*Diagnosis, error) {
	breach, walls, err := q.grid.Breach(q.src, q.dst)
	if err != nil {
		return nil, err
	}
	d := &Diagnosis{
		Regions:    len(q.grid.ConnectedComponents()),
		SrcRegion:  len(q.grid.Region(q.src)),
		Walls:      walls,
		BreachPath: make([]Cell, 0, walls),
	}
	for _, v := range breach {
		if q.grid.IsBlocked(v) {
			d.BreachPath = append(d.BreachPath, cellOf(q.grid, v))
		}
	}

	return d, nil
}

// Overlay runs one query and renders it as GeoJSON. HPA queries also carry
// the cluster and abstract-node layers.
func (s *Service) Overlay(ctx context.Context, req SearchRequest) (ImplResponse, error) {
	q, resp, err := s.run(ctx, req)
	if err != nil {
		return Response(statusFor(err), nil), err
	}

	o := newOverlay(q.grid)
	o.addSearch(resp)
	if !resp.Found() {
		breach, walls, err := q.grid.Breach(q.src, q.dst)
		if err != nil {
			return Response(statusFor(err), nil), err
		}
		o.addBreach(breach, walls)
	}
	if resp.HPA != nil {
		err = s.engine.InspectGraph(ctx, q.grid, q.costs, resp.HPA.ClusterSize, o.addAbstractGraph)
		if err != nil {
			return Response(statusFor(err), nil), err
		}
	}

	return Response(http.StatusOK, o.fc), nil
}

// Algorithms lists the registry.
func (s *Service) Algorithms(context.Context) (ImplResponse, error) {
	descs := engine.Descriptors()
	out := make([]AlgorithmInfo, 0, len(descs))
	for _, d := range descs {
		out = append(out, AlgorithmInfo{
			Name:        d.Name,
			Description: d.Description,
			Weighted:    d.Weighted,
			Optimal:     d.Optimal,
			Default:     d.Name == s.engine.DefaultAlgorithm(),
		})
	}

	return Response(http.StatusOK, out), nil
}

// Terrain lists every terrain kind with the engine's default cost.
func (s *Service) Terrain(context.Context) (ImplResponse, error) {
	costs := s.engine.Costs()
	kinds := append(gridgraph.Kinds(), gridgraph.Blocked)
	out := make([]TerrainInfo, 0, len(kinds))
	for _, k := range kinds {
		info := TerrainInfo{Code: int(k), Name: k.String(), Passable: k.Passable()}
		if w, ok := costs[k]; ok && k.Passable() {
			info.Cost = &w
		}
		out = append(out, info)
	}

	return Response(http.StatusOK, out), nil
}

// Health reports liveness.
func (s *Service) Health(context.Context) (ImplResponse, error) {
	return Response(http.StatusOK, Health{Status: "ok", CachedGraphs: s.engine.CachedGraphs()}), nil
}
