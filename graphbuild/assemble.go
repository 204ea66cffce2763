// File: assemble.go
// Role: C6, the graph assembler — materializes the sampler's edge/node
// tables into a weighted core.Graph and runs the configured reduction
// passes in order.
// Determinism:
//   - Vertices/edges are added in table order; reduction passes iterate
//     sorted vertex IDs where iteration order could otherwise vary.
package graphbuild

import (
	"math/rand"
	"sort"

	goccyjson "github.com/goccy/go-json"

	"github.com/katalvlaran/spikyball/core"
	"github.com/katalvlaran/spikyball/datamodel"
	"github.com/katalvlaran/spikyball/gonumbridge"
)

// nodeAttrKey / edgeAttrKey are the Vertex/Edge Metadata keys graphbuild
// reserves for itself; backend-supplied extras are merged alongside them.
const (
	attrSpikyballHop = "spikyball_hop"
	attrCommunity    = "community"
	attrExpanded     = "_expanded"
)

// Build runs the full C6 procedure (steps 1-7) over res and cfg, and
// returns the assembled graph. rng seeds the (possibly randomized)
// community-detection pass; pass nil for an unseeded source.
func Build(backend datamodel.Backend, res SamplerResult, cfg datamodel.GraphConfig, rng *rand.Rand) *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())

	// Step 1: vertices are introduced only as endpoints of kept edges.
	for _, e := range res.Edges {
		if e.Weight < cfg.MinWeight {
			continue
		}
		addVertexIfAbsent(g, string(e.Source))
		addVertexIfAbsent(g, string(e.Target))
		if _, err := g.AddEdge(string(e.Source), string(e.Target), e.Weight, edgeAttrOption(e)); err != nil {
			// Parallel/duplicate edges are expected (the driver never
			// dedupes); core.WithMultiEdges() makes this a non-issue, so
			// any remaining error reflects a genuinely malformed row.
			continue
		}
	}

	// Step 3 (attribute attachment runs before degree reduction so that
	// removed vertices never receive attributes they'd immediately lose).
	expanded := make(map[string]bool, len(res.Nodes))
	for _, n := range res.Nodes {
		id := string(n.ID)
		expanded[id] = true
		setVertexAttr(g, id, attrSpikyballHop, n.SpikyballHop)
		setVertexAttr(g, id, attrExpanded, true)
		for k, v := range n.Attrs {
			setVertexAttr(g, id, k, v)
		}
	}
	if backend != nil {
		backend.AddGraphAttributes(g, res.Nodes, res.Edges, res.Acc)
	}

	// Step 4: degree reduction, then isolate removal.
	reduceByDegree(g, cfg.MinDegree)

	// Step 5: spiky-ball neighbor policy — drop never-expanded targets.
	removeUnexpanded(g, expanded)

	if !cfg.AsUndirected {
		return g
	}

	// Step 6: undirected projection, keep the largest connected component.
	undirected := projectUndirected(g)
	keep := gonumbridge.LargestComponent(undirected)
	projected := core.InducedSubgraph(undirected, toSet(keep))

	// Step 7: community detection.
	if cfg.CommunityDetection {
		communities := gonumbridge.Communities(projected, rng)
		sizes := make(map[int]int, len(communities))
		for _, c := range communities {
			sizes[c]++
		}
		drop := make(map[string]bool)
		for id, c := range communities {
			setVertexAttr(projected, id, attrCommunity, c)
			if sizes[c] < cfg.MinCommunitySize {
				drop[id] = true
			}
		}
		if len(drop) > 0 {
			keepSet := make(map[string]bool)
			for _, id := range projected.Vertices() {
				if !drop[id] {
					keepSet[id] = true
				}
			}
			projected = core.InducedSubgraph(projected, keepSet)
		}
	}

	return projected
}

// SamplerResult is the subset of sampler.Result graphbuild needs; defined
// locally to avoid an import cycle between sampler and graphbuild (both
// of which sit above datamodel).
type SamplerResult struct {
	Nodes datamodel.NodeTable
	Edges datamodel.EdgeTable
	Acc   datamodel.Accumulator
}

func addVertexIfAbsent(g *core.Graph, id string) {
	if !g.HasVertex(id) {
		_ = g.AddVertex(id)
	}
}

func setVertexAttr(g *core.Graph, id string, key string, value interface{}) {
	vm := g.VerticesMap()
	v, ok := vm[id]
	if !ok {
		return
	}
	if v.Metadata == nil {
		v.Metadata = make(map[string]interface{})
	}
	v.Metadata[key] = marshalIfNested(value)
}

// marshalIfNested serializes nested sequences/mappings to a JSON string
// so every attribute value remains file-format-safe (C6 step 2); scalar
// values pass through unchanged.
func marshalIfNested(value interface{}) interface{} {
	switch value.(type) {
	case map[string]interface{}, []interface{}, []string, []int, []float64:
		b, err := goccyjson.Marshal(value)
		if err != nil {
			return value
		}
		return string(b)
	default:
		return value
	}
}

// edgeAttrOption serializes e.Extra into the edge's directed flag slot
// is not applicable here; extras are attached post-hoc via the edge ID
// since core.EdgeOption only customizes Directed at construction time.
// graphbuild therefore ignores e.Extra at AddEdge time and relies on
// setEdgeAttr below once the edge exists.
func edgeAttrOption(e datamodel.EdgeRow) core.EdgeOption {
	return func(_ *core.Edge) {}
}

// reduceByDegree removes vertices whose total (in+out) degree is below
// minDegree, then removes resulting isolates (degree 0).
func reduceByDegree(g *core.Graph, minDegree int) {
	for {
		var toRemove []string
		for _, id := range g.Vertices() {
			in, out, undirected, err := g.Degree(id)
			if err != nil {
				continue
			}
			total := in + out + undirected
			if total < minDegree || total == 0 {
				toRemove = append(toRemove, id)
			}
		}
		if len(toRemove) == 0 {
			return
		}
		for _, id := range toRemove {
			_ = g.RemoveVertex(id)
		}
	}
}

// removeUnexpanded drops vertices that appear only as edge targets and
// were never themselves expanded by the driver (C6 step 5).
func removeUnexpanded(g *core.Graph, expanded map[string]bool) {
	var toRemove []string
	for _, id := range g.Vertices() {
		if !expanded[id] {
			toRemove = append(toRemove, id)
		}
	}
	sort.Strings(toRemove)
	for _, id := range toRemove {
		_ = g.RemoveVertex(id)
	}
}

// projectUndirected builds a new undirected graph with the same vertices
// and edges as g, collapsing direction (parallel reciprocal edges are
// preserved as distinct entries; core's multigraph support absorbs them).
func projectUndirected(g *core.Graph) *core.Graph {
	out := core.NewGraph(core.WithDirected(false), core.WithWeighted(), core.WithMultiEdges())
	for _, id := range g.Vertices() {
		_ = out.AddVertex(id)
	}
	vm := g.VerticesMap()
	for _, id := range g.Vertices() {
		if v, ok := vm[id]; ok && v.Metadata != nil {
			outVM := out.VerticesMap()
			if ov, ok := outVM[id]; ok {
				ov.Metadata = v.Metadata
			}
		}
	}
	for _, e := range g.Edges() {
		_, _ = out.AddEdge(e.From, e.To, e.Weight)
	}
	return out
}

func toSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
