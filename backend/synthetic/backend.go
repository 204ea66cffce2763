// File: backend.go
// Role: datamodel.Backend implementation over a fixed in-memory core.Graph.
package synthetic

import (
	"github.com/katalvlaran/spikyball/core"
	"github.com/katalvlaran/spikyball/datamodel"
)

// Config parameterizes the synthetic backend's filter pass.
type Config struct {
	// MinDegree is the minimum out-degree a node must have for its
	// neighbor edges to be kept; below it, Filter discards all of them.
	MinDegree int
}

// Backend wraps a fixed core.Graph and serves it as a datamodel.Backend,
// treating g's out-edges as the neighbor oracle.
type Backend struct {
	g   *core.Graph
	cfg Config
}

// New wraps g as a synthetic Backend. g is read-only from the backend's
// perspective; callers retain ownership.
func New(g *core.Graph, cfg Config) *Backend {
	return &Backend{g: g, cfg: cfg}
}

// nodeInfo is a trivial accumulator: it carries no state across hops and
// its Update is a no-op, mirroring the reference synthetic backend, whose
// only purpose is to exercise the driver's accumulator contract without
// adding real per-node metadata.
type nodeInfo struct{}

// Update satisfies datamodel.Accumulator; the synthetic backend has no
// metadata to fold, so it simply returns itself.
func (nodeInfo) Update(datamodel.Accumulator) datamodel.Accumulator { return nodeInfo{} }

// CreateNodeInfo returns the shared empty accumulator value.
func (b *Backend) CreateNodeInfo() datamodel.Accumulator { return nodeInfo{} }

// GetNeighbors returns node's out-edges from the wrapped graph, each
// carrying a constant weight of 1.0 (the reference backend does not
// model per-edge strength; presence is the only signal). A missing
// vertex or a lookup failure is treated as a transient, soft failure: an
// empty table, never an error.
func (b *Backend) GetNeighbors(node datamodel.NodeID) (datamodel.Accumulator, datamodel.EdgeTable, error) {
	id := string(node)
	if !b.g.HasVertex(id) {
		return nodeInfo{}, nil, nil
	}
	neighborIDs, err := b.g.NeighborIDs(id)
	if err != nil {
		// Fail soft: a transient lookup error never escapes the backend.
		return nodeInfo{}, nil, nil
	}
	edges := make(datamodel.EdgeTable, 0, len(neighborIDs))
	for _, nid := range neighborIDs {
		edges = append(edges, datamodel.EdgeRow{
			Source: node,
			Target: datamodel.NodeID(nid),
			Weight: 1.0,
		})
	}
	return nodeInfo{}, edges, nil
}

// Filter drops every edge for a node whose sampled out-degree falls below
// cfg.MinDegree, otherwise passes edges through unchanged. The in-memory
// fixture graph has no fatal-failure mode, so Filter never errors.
func (b *Backend) Filter(partial datamodel.Accumulator, edges datamodel.EdgeTable) (datamodel.Accumulator, datamodel.EdgeTable, error) {
	if len(edges) < b.cfg.MinDegree {
		return partial, nil, nil
	}
	return partial, edges, nil
}

// NeighborsWithWeights projects edges onto their unique targets with a
// constant weight equal to the total edge count, used only as a presence
// indicator by callers, never as a real strength signal.
func (b *Backend) NeighborsWithWeights(edges datamodel.EdgeTable) map[datamodel.NodeID]float64 {
	w := float64(len(edges))
	out := make(map[datamodel.NodeID]float64, len(edges))
	for _, e := range edges {
		out[e.Target] = w
	}
	return out
}

// AddGraphAttributes is a no-op for the synthetic backend: it has no
// extra node/edge metadata beyond what the driver already collected.
func (b *Backend) AddGraphAttributes(g interface{}, _ datamodel.NodeTable, _ datamodel.EdgeTable, _ datamodel.Accumulator) interface{} {
	return g
}
