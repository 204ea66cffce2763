// File: bridge.go
// Role: core.Graph <-> gonum graph.Graph adapter, scoped to the two
// read-only analyses C6 needs: largest connected component and
// modularity-based community partition.
// Determinism:
//   - Node IDs are assigned in the order g.Vertices() enumerates them, so
//     gonum's internal int64 IDs are stable for a fixed input graph.
package gonumbridge

import (
	"math/rand"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/spikyball/core"
)

// IDMap is a two-way mapping between core vertex IDs and gonum int64 node
// IDs, stable for the lifetime of the source graph.
type IDMap struct {
	toGonum map[string]int64
	toCore  map[int64]string
}

// Build constructs an undirected, weighted gonum graph mirroring g's
// topology (edge direction is dropped; this package is only ever used
// after the core graph has been converted to its undirected projection).
func Build(g *core.Graph) (*simple.WeightedUndirectedGraph, *IDMap) {
	ids := &IDMap{
		toGonum: make(map[string]int64),
		toCore:  make(map[int64]string),
	}
	wg := simple.NewWeightedUndirectedGraph(0, 0)

	for i, v := range g.Vertices() {
		gid := int64(i)
		ids.toGonum[v] = gid
		ids.toCore[gid] = v
		wg.AddNode(simple.Node(gid))
	}

	for _, e := range g.Edges() {
		from, okF := ids.toGonum[e.From]
		to, okT := ids.toGonum[e.To]
		if !okF || !okT || from == to {
			continue
		}
		w := e.Weight
		if w == 0 {
			w = 1
		}
		wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(from), T: simple.Node(to), W: w})
	}

	return wg, ids
}

// CoreIDs translates a slice of gonum nodes back to core vertex IDs.
func (m *IDMap) CoreIDs(nodes []graph.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if id, ok := m.toCore[n.ID()]; ok {
			out = append(out, id)
		}
	}
	return out
}

// LargestComponent returns the core vertex IDs of the largest connected
// component of g's undirected projection (C6 step 6).
func LargestComponent(g *core.Graph) []string {
	wg, ids := Build(g)
	components := topo.ConnectedComponents(wg)

	best := -1
	bestSize := -1
	for i, c := range components {
		if len(c) > bestSize {
			bestSize = len(c)
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	return ids.CoreIDs(components[best])
}

// Communities returns a mapping from core vertex ID to an integer
// community index, computed by Louvain-style modularity maximization over
// g's undirected projection (C6 step 7). rng controls the (randomized)
// optimization order; pass nil for a fresh, unseeded source.
func Communities(g *core.Graph, rng *rand.Rand) map[string]int {
	wg, ids := Build(g)
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	reduced := community.Modularize(wg, 1.0, rng)

	out := make(map[string]int)
	for idx, grp := range reduced.Structure() {
		for _, n := range grp {
			if id, ok := ids.toCore[n.ID()]; ok {
				out[id] = idx
			}
		}
	}
	return out
}
