package server

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/hpa"
)

// Overlay layer names, stored in each feature's "layer" property.
const (
	LayerPath         = "path"
	LayerVisited      = "visited"
	LayerAbstractPath = "abstract_path"
	LayerCluster      = "cluster"
	LayerNode         = "abstract_node"
	LayerBreach       = "breach"
)

type overlay struct {
	g  *gridgraph.Grid
	fc *geojson.FeatureCollection
}

func newOverlay(g *gridgraph.Grid) *overlay {
	return &overlay{g: g, fc: geojson.NewFeatureCollection()}
}

// center is the grid-space centre of cell v.
func (o *overlay) center(v int) orb.Point {
	r, c := o.g.Coordinate(v)
	return orb.Point{float64(c) + 0.5, float64(r) + 0.5}
}

func (o *overlay) line(cells []int) orb.Geometry {
	if len(cells) == 1 {
		return o.center(cells[0])
	}
	ls := make(orb.LineString, len(cells))
	for i, v := range cells {
		ls[i] = o.center(v)
	}

	return ls
}

func (o *overlay) add(layer string, geom orb.Geometry, props map[string]interface{}) {
	f := geojson.NewFeature(geom)
	f.Properties["layer"] = layer
	for k, v := range props {
		f.Properties[k] = v
	}
	o.fc.Append(f)
}

// addSearch adds the path and visited layers. An empty path adds no feature.
func (o *overlay) addSearch(resp *engine.Response) {
	if len(resp.Path) > 0 {
		o.add(LayerPath, o.line(resp.Path), map[string]interface{}{
			"algorithm": resp.Algorithm,
			"weight":    resp.PathWeight,
			"hops":      resp.Hops(),
		})
	}

	visited := make(orb.MultiPoint, len(resp.Visited))
	for i, v := range resp.Visited {
		visited[i] = o.center(v)
	}
	o.add(LayerVisited, visited, map[string]interface{}{
		"algorithm": resp.Algorithm,
		"ops":       resp.Ops,
		"count":     len(resp.Visited),
	})

	if resp.HPA != nil && len(resp.HPA.AbstractPath) > 0 {
		o.add(LayerAbstractPath, o.line(resp.HPA.AbstractPath), map[string]interface{}{
			"abstractOps": resp.HPA.AbstractOps,
			"refineOps":   resp.HPA.RefineOps,
		})
	}
}

// addBreach adds the fewest-walls route of an unreachable query.
func (o *overlay) addBreach(route []int, walls int) {
	o.add(LayerBreach, o.line(route), map[string]interface{}{
		"walls": walls,
	})
}

// addAbstractGraph adds one polygon per cluster and one point per node.
func (o *overlay) addAbstractGraph(ag *hpa.AbstractGraph) error {
	for id, c := range ag.Clusters() {
		b := orb.Bound{
			Min: orb.Point{float64(c.Left), float64(c.Top)},
			Max: orb.Point{float64(c.Right + 1), float64(c.Bottom + 1)},
		}
		o.add(LayerCluster, b.ToPolygon(), map[string]interface{}{
			"cluster": id,
			"row":     c.Row,
			"col":     c.Col,
			"nodes":   len(ag.Members(id)),
		})
	}
	for id, n := range ag.Nodes() {
		o.add(LayerNode, o.center(o.g.Index(n.Row, n.Col)), map[string]interface{}{
			"node":    id,
			"cluster": n.Cluster,
			"degree":  len(n.Edges),
		})
	}

	return nil
}
