package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/hpa"
	"github.com/katalvlaran/gridpath/search"
)

// graphCache holds built HPA* graphs, evicting the oldest entry first.
type graphCache struct {
	limit int
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]*graphEntry
	order   []string
}

// graphEntry serializes access to one abstract graph.
type graphEntry struct {
	mu sync.Mutex
	ag *hpa.AbstractGraph
}

func newGraphCache(limit int) *graphCache {
	return &graphCache{limit: limit, entries: make(map[string]*graphEntry)}
}

// cacheKey identifies a graph by grid fingerprint, cluster size and costs.
func cacheKey(g *gridgraph.Grid, costs gridgraph.CostTable, clusterSize int) string {
	kinds := make([]gridgraph.TerrainKind, 0, len(costs))
	for k := range costs {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	var b strings.Builder
	fmt.Fprintf(&b, "%016x/%dx%d/%d", g.Fingerprint(), g.Rows, g.Cols, clusterSize)
	for _, k := range kinds {
		fmt.Fprintf(&b, "/%d=%g", k, costs[k])
	}

	return b.String()
}

func (c *graphCache) lookup(key string, g *gridgraph.Grid) (*graphEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ent, ok := c.entries[key]
	if !ok || !ent.ag.Grid().Equal(g) {
		return nil, false
	}

	return ent, true
}

func (c *graphCache) store(key string, ent *graphEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = ent
	for len(c.order) > c.limit {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
}

// Len returns the number of cached graphs.
func (c *graphCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// withGraph calls fn with the abstract graph for (g, costs, clusterSize),
// building it on a miss, and reports whether it came from the cache. fn runs
// under the entry lock.
func (e *Engine) withGraph(ctx context.Context, g *gridgraph.Grid, costs gridgraph.CostTable, clusterSize int, fn func(*hpa.AbstractGraph) error) (bool, error) {
	ent, hit, err := e.graph(ctx, g, costs, clusterSize)
	if err != nil {
		return false, err
	}
	ent.mu.Lock()
	defer ent.mu.Unlock()

	return hit, fn(ent.ag)
}

func (e *Engine) graph(ctx context.Context, g *gridgraph.Grid, costs gridgraph.CostTable, clusterSize int) (*graphEntry, bool, error) {
	build := func() (*graphEntry, error) {
		ctx, span := tracer.Start(ctx, "engine.BuildAbstractGraph",
			trace.WithAttributes(
				attribute.Int("rows", g.Rows),
				attribute.Int("cols", g.Cols),
				attribute.Int("cluster_size", clusterSize),
			),
		)
		defer span.End()

		ag, err := hpa.NewAbstractGraph(g, costs, clusterSize,
			search.WithContext(ctx), search.WithLogger(e.logger))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		span.SetAttributes(
			attribute.Int("clusters", len(ag.Clusters())),
			attribute.Int("nodes", len(ag.Nodes())),
		)

		return &graphEntry{ag: ag}, nil
	}

	if e.cache.limit == 0 {
		ent, err := build()
		return ent, false, err
	}

	key := cacheKey(g, costs, clusterSize)
	if ent, ok := e.cache.lookup(key, g); ok {
		return ent, true, nil
	}

	v, err, _ := e.cache.group.Do(key, func() (any, error) {
		if ent, ok := e.cache.lookup(key, g); ok {
			return ent, nil
		}
		ent, err := build()
		if err != nil {
			return nil, err
		}
		e.cache.store(key, ent)
		e.logger.Debug("hpa graph cached", "component", "engine", "key", key, "entries", e.cache.Len())

		return ent, nil
	})
	if err != nil {
		return nil, false, err
	}
	ent, ok := v.(*graphEntry)
	if !ok {
		return nil, false, fmt.Errorf("engine: unexpected type from graph build: %T", v)
	}
	// A caller that shared another caller's build still reports a miss.
	return ent, false, nil
}

// CachedGraphs returns the number of HPA* graphs currently cached.
func (e *Engine) CachedGraphs() int { return e.cache.Len() }

// InspectGraph calls fn with the HPA* abstract graph for g, building and
// caching it if needed. fn must not retain the graph.
func (e *Engine) InspectGraph(ctx context.Context, g *gridgraph.Grid, costs gridgraph.CostTable, clusterSize int, fn func(*hpa.AbstractGraph) error) error {
	if g == nil {
		return search.ErrNilGrid
	}
	if costs == nil {
		costs = e.costs
	}
	if clusterSize < 0 {
		return fmt.Errorf("cluster size %d: %w", clusterSize, hpa.ErrBadClusterSize)
	}
	if clusterSize == 0 {
		clusterSize = e.clusterSize
	}
	_, err := e.withGraph(ctx, g, costs, clusterSize, fn)

	return err
}
