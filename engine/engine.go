package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/hpa"
	"github.com/katalvlaran/gridpath/search"
)

var tracer = otel.Tracer("gridpath/engine")

// ErrUnknownAlgorithm is returned for a name missing from the registry.
// Cluster size validation reports hpa.ErrBadClusterSize.
var ErrUnknownAlgorithm = fmt.Errorf("engine: unknown algorithm: %w", search.ErrInvalidArgument)

// Request is one search query.
type Request struct {
	// Algorithm is a registered name; empty selects the engine default.
	Algorithm string
	Grid      *gridgraph.Grid
	// Costs overrides the engine cost table when non-nil.
	Costs    gridgraph.CostTable
	Src, Dst int
	// ClusterSize is used by hpa; 0 selects the engine default.
	ClusterSize int
	// MaxDepth bounds iddfs; 0 means the grid size.
	MaxDepth int
	// Options are appended to the engine's own (hooks, logger).
	Options []search.Option
}

// Response is the outcome of Run. Exactly one of the detail pointers is set
// for the algorithms that produce extra data.
type Response struct {
	Algorithm string `json:"algorithm"`
	search.Result
	Bidirectional *BidirectionalDetail `json:"bidirectional,omitempty"`
	Deepening     *DeepeningDetail     `json:"deepening,omitempty"`
	HPA           *HPADetail           `json:"hpa,omitempty"`
	Elapsed       time.Duration        `json:"elapsedNs"`
}

// BidirectionalDetail is the per-side output of bidirectional BFS.
type BidirectionalDetail struct {
	Forward  []int `json:"forward"`
	Backward []int `json:"backward"`
	Meeting  int   `json:"meeting"`
}

// DeepeningDetail is the per-iteration output of iterative deepening.
type DeepeningDetail struct {
	Iterations [][]int `json:"iterations"`
	Depth      int     `json:"depth"`
}

// HPADetail is the abstract-level output of HPA*.
type HPADetail struct {
	AbstractPath []int `json:"abstractPath"`
	AbstractOps  int   `json:"abstractOps"`
	RefineOps    int   `json:"refineOps"`
	ClusterSize  int   `json:"clusterSize"`
	CacheHit     bool  `json:"cacheHit"`
}

// Engine runs requests. It is safe for concurrent use.
type Engine struct {
	costs       gridgraph.CostTable
	clusterSize int
	defaultAlg  string
	logger      *slog.Logger
	cache       *graphCache
}

// Option configures an Engine.
type Option func(*Engine)

// WithCosts sets the default cost table.
func WithCosts(t gridgraph.CostTable) Option {
	return func(e *Engine) {
		if t != nil {
			e.costs = t.Clone()
		}
	}
}

// WithClusterSize sets the default HPA* cluster size.
func WithClusterSize(n int) Option { return func(e *Engine) { e.clusterSize = n } }

// WithDefaultAlgorithm sets the algorithm used when a request names none.
func WithDefaultAlgorithm(name string) Option { return func(e *Engine) { e.defaultAlg = name } }

// WithLogger sets the engine logger; searches log through it at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithCacheEntries bounds the HPA* graph cache; 0 disables it.
func WithCacheEntries(n int) Option { return func(e *Engine) { e.cache = newGraphCache(n) } }

// New returns an Engine with the default cost table, cluster size 10,
// astar as default algorithm and a 16-entry graph cache.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		costs:       gridgraph.DefaultCostTable(),
		clusterSize: 10,
		defaultAlg:  AStar,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache:       newGraphCache(16),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if _, ok := registry[e.defaultAlg]; !ok {
		return nil, fmt.Errorf("default %q: %w", e.defaultAlg, ErrUnknownAlgorithm)
	}
	if e.clusterSize <= 0 {
		return nil, fmt.Errorf("default cluster size %d: %w", e.clusterSize, hpa.ErrBadClusterSize)
	}
	if e.cache.limit < 0 {
		return nil, fmt.Errorf("engine: cache entries %d is negative: %w", e.cache.limit, search.ErrInvalidArgument)
	}

	return e, nil
}

// FromConfig builds an Engine from the search and terrain sections of cfg.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	return New(
		WithCosts(cfg.CostTable()),
		WithClusterSize(cfg.Search.ClusterSize),
		WithDefaultAlgorithm(cfg.Search.DefaultAlgorithm),
		WithCacheEntries(cfg.Search.CacheEntries),
		WithLogger(logger),
	)
}

// Costs returns a copy of the default cost table.
func (e *Engine) Costs() gridgraph.CostTable { return e.costs.Clone() }

// DefaultAlgorithm returns the algorithm used when a request names none.
func (e *Engine) DefaultAlgorithm() string { return e.defaultAlg }

// Run validates req and executes it.
func (e *Engine) Run(ctx context.Context, req Request) (resp *Response, err error) {
	name := req.Algorithm
	if name == "" {
		name = e.defaultAlg
	}
	run, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
	}
	if req.Grid == nil {
		return nil, search.ErrNilGrid
	}
	if req.Costs == nil {
		req.Costs = e.costs
	}
	if req.ClusterSize < 0 {
		return nil, fmt.Errorf("cluster size %d: %w", req.ClusterSize, hpa.ErrBadClusterSize)
	}
	if req.ClusterSize == 0 {
		req.ClusterSize = e.clusterSize
	}

	ctx, span := tracer.Start(ctx, "engine.Run",
		trace.WithAttributes(
			attribute.String("algorithm", name),
			attribute.Int("rows", req.Grid.Rows),
			attribute.Int("cols", req.Grid.Cols),
			attribute.Int("src", req.Src),
			attribute.Int("dst", req.Dst),
		),
	)
	defer span.End()

	opts := make([]search.Option, 0, len(req.Options)+3)
	opts = append(opts,
		search.WithContext(ctx),
		search.WithLogger(e.logger),
		search.WithMaxDepth(req.MaxDepth),
	)
	opts = append(opts, req.Options...)

	start := time.Now()
	resp, err = run(ctx, e, req, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Debug("search failed", "component", "engine", "algorithm", name, "err", err)
		return nil, err
	}
	resp.Algorithm = name
	resp.Elapsed = time.Since(start)

	span.SetAttributes(
		attribute.Bool("found", resp.Found()),
		attribute.Int("ops", resp.Ops),
		attribute.Int("visited", len(resp.Visited)),
		attribute.Float64("path_weight", resp.PathWeight),
	)
	e.logger.Debug("search finished",
		"component", "engine",
		"algorithm", name,
		"found", resp.Found(),
		"ops", resp.Ops,
		"elapsed", resp.Elapsed,
	)

	return resp, nil
}
