// Command gridpath runs one grid search from the command line or serves the
// HTTP API.
//
//	gridpath -grid map.yaml -algo hpa -src 0,0 -dst 63,63
//	gridpath -world 128x128 -seed 7 -algo jps
//	gridpath -config gridpath.yaml -serve
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/server"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file (defaults are used when empty)")
	serve := flag.Bool("serve", false, "Serve the HTTP API instead of running one search")
	addr := flag.String("addr", "", "Listen address, overrides server.addr")
	list := flag.Bool("list", false, "List the registered algorithms and exit")
	gridFile := flag.String("grid", "", "YAML grid file with rows or cells")
	world := flag.String("world", "", "Generate a RxC noise terrain instead of reading -grid")
	seed := flag.Int64("seed", 1, "Seed for -world")
	algorithm := flag.String("algo", "", "Search algorithm (see -list)")
	src := flag.String("src", "0,0", "Source cell as row,col")
	dst := flag.String("dst", "", "Destination cell as row,col (defaults to the bottom-right cell)")
	clusterSize := flag.Int("cluster", 0, "HPA* cluster size, overrides search.cluster_size")
	maxDepth := flag.Int("max-depth", 0, "Depth bound for iddfs (0 means the grid size)")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fatal(err)
		}
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	logger := cfg.Logger(os.Stderr)

	e, err := engine.FromConfig(cfg, logger)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *list:
		listAlgorithms(e)
	case *serve:
		if err := server.New(cfg.Server, e, logger).Run(ctx); err != nil {
			fatal(err)
		}
	default:
		var g *gridgraph.Grid
		switch {
		case *world != "":
			g, err = generateWorld(*world, *seed)
		case *gridFile != "":
			g, err = config.LoadGrid(*gridFile)
		default:
			fmt.Fprintln(os.Stderr, "gridpath: one of -grid or -world is required unless -serve or -list is set")
			flag.Usage()
			os.Exit(2)
		}
		if err != nil {
			fatal(err)
		}
		if err := runOnce(ctx, e, logger, g, *algorithm, *src, *dst, *clusterSize, *maxDepth); err != nil {
			fatal(err)
		}
	}
}

func runOnce(ctx context.Context, e *engine.Engine, logger *slog.Logger, g *gridgraph.Grid, algorithm, src, dst string, clusterSize, maxDepth int) error {
	s, err := parseCell(g, src)
	if err != nil {
		return fmt.Errorf("-src: %w", err)
	}
	d := g.Size() - 1
	if dst != "" {
		if d, err = parseCell(g, dst); err != nil {
			return fmt.Errorf("-dst: %w", err)
		}
	}

	resp, err := e.Run(ctx, engine.Request{
		Algorithm:   algorithm,
		Grid:        g,
		Src:         s,
		Dst:         d,
		ClusterSize: clusterSize,
		MaxDepth:    maxDepth,
	})
	if err != nil {
		return err
	}
	logger.Info("search finished",
		"algorithm", resp.Algorithm,
		"found", resp.Found(),
		"hops", resp.Hops(),
		"weight", resp.PathWeight,
		"ops", resp.Ops,
		"elapsed", resp.Elapsed,
	)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(resp)
}

// generateWorld builds a "RxC" noise terrain with both corners kept open.
func generateWorld(dims string, seed int64) (*gridgraph.Grid, error) {
	rs, cs, ok := strings.Cut(dims, "x")
	if !ok {
		return nil, fmt.Errorf("-world %q: want RxC", dims)
	}
	rows, err := strconv.Atoi(rs)
	if err != nil {
		return nil, fmt.Errorf("-world %q: %w", dims, err)
	}
	cols, err := strconv.Atoi(cs)
	if err != nil {
		return nil, fmt.Errorf("-world %q: %w", dims, err)
	}
	scale := max(min(rows, cols)/8, 1)

	return builder.BuildGrid(rows, cols, []builder.BuilderOption{builder.WithSeed(seed)},
		builder.World(scale),
		builder.Clear(0, 0),
		builder.Clear(rows-1, cols-1),
	)
}

// parseCell reads "row,col" into a node index of g.
func parseCell(g *gridgraph.Grid, s string) (int, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("%q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, err)
	}
	if !g.InBounds(r, c) {
		return 0, fmt.Errorf("%q outside %dx%d grid: %w", s, g.Rows, g.Cols, gridgraph.ErrOutOfRange)
	}

	return g.Index(r, c), nil
}

func listAlgorithms(e *engine.Engine) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tWEIGHTED\tOPTIMAL\tDESCRIPTION")
	for _, d := range engine.Descriptors() {
		name := d.Name
		if name == e.DefaultAlgorithm() {
			name += "*"
		}
		fmt.Fprintf(tw, "%s\t%t\t%t\t%s\n", name, d.Weighted, d.Optimal, d.Description)
	}
	tw.Flush()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "gridpath:", err)
	os.Exit(1)
}
