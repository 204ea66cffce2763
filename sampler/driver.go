// File: driver.go
// Role: C5, the Spiky-Ball hop-loop state machine.
// Concurrency:
//   - Single-threaded cooperative, per §5: nodes of one hop are expanded
//     sequentially, accumulator folds happen in F_curr (post-clamp) order.
// Determinism:
//   - Edges are appended in (hop, node-within-hop, row-within-response)
//     order; F_curr is never re-sorted.
package sampler

import (
	"math/rand"

	"github.com/katalvlaran/spikyball/datamodel"
)

// Option configures a Run invocation.
type Option func(*runConfig)

type runConfig struct {
	rng      *rand.Rand
	progress datamodel.ProgressFunc
}

// WithRand supplies the random source used by the subset selector. If
// omitted, Run seeds its own source from the current time, which makes
// the run non-reproducible (the governing design makes no reproducibility
// guarantee unless the caller seeds explicitly).
func WithRand(rng *rand.Rand) Option {
	return func(c *runConfig) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithProgress registers a per-hop progress callback.
func WithProgress(fn datamodel.ProgressFunc) Option {
	return func(c *runConfig) {
		if fn != nil {
			c.progress = fn
		}
	}
}

// Result is the full output of a driver run: the visited set, the
// accumulated node metadata table, the accumulated edge table, and the
// final accumulator.
type Result struct {
	Visited []datamodel.NodeID
	Nodes   datamodel.NodeTable
	Edges   datamodel.EdgeTable
	Acc     datamodel.Accumulator
}

// Run executes the Spiky-Ball hop loop over backend, starting from seeds,
// per cfg. seeds must be non-empty and cfg.ExplorationDepth >= 2; both
// violations return a ConfigError.
func Run(backend datamodel.Backend, seeds []datamodel.NodeID, cfg datamodel.DataCollectionConfig, opts ...Option) (Result, error) {
	if len(seeds) == 0 {
		return Result{}, datamodel.NewConfigError("seeds must be non-empty")
	}
	if cfg.ExplorationDepth < 2 {
		return Result{}, datamodel.NewConfigError("exploration_depth must be >= 2, got %d", cfg.ExplorationDepth)
	}
	if cfg.MaxNodesPerHop <= 0 {
		return Result{}, datamodel.NewConfigError("max_nodes_per_hop must be > 0, got %d", cfg.MaxNodesPerHop)
	}

	rc := &runConfig{rng: rand.New(rand.NewSource(1)), progress: func(int, int) {}}
	for _, o := range opts {
		o(rc)
	}

	d := &driverState{
		backend: backend,
		cfg:     cfg,
		rc:      rc,
		visited: make(map[datamodel.NodeID]bool, len(seeds)),
		acc:     backend.CreateNodeInfo(),
	}

	// F_0 = seed list, deduplicated, order preserved.
	d.fCurr = dedupe(seeds)

	for depth := 0; ; depth++ {
		if len(d.fCurr) == 0 {
			break
		}
		if depth >= cfg.ExplorationDepth {
			break
		}

		if terminate := d.clampBudget(); terminate {
			break
		}

		hIn, hOut, err := d.expandHop(depth)
		if err != nil {
			return Result{}, err
		}
		d.edges = append(d.edges, hIn...)
		d.edges = append(d.edges, d.newEdgesBuffer...)
		d.newEdgesBuffer = nil

		for _, n := range d.fCurr {
			d.visited[n] = true
		}
		d.visitedOrder = append(d.visitedOrder, d.fCurr...)

		rc.progress(depth, cfg.ExplorationDepth)

		if depth+1 < cfg.ExplorationDepth {
			targets, buffer, err := Select(rc.rng, hOut, cfg.ExpansionType, cfg.Degree, cfg.RandomSubsetMode, cfg.RandomSubsetSize)
			if err != nil {
				return Result{}, err
			}
			d.fCurr = targets
			d.newEdgesBuffer = buffer
		} else {
			d.fCurr = nil
		}
	}

	return Result{
		Visited: d.visitedOrder,
		Nodes:   d.nodes,
		Edges:   d.edges,
		Acc:     d.acc,
	}, nil
}

// driverState holds all mutable state owned by a single Run invocation.
type driverState struct {
	backend datamodel.Backend
	cfg     datamodel.DataCollectionConfig
	rc      *runConfig

	fCurr          []datamodel.NodeID
	visited        map[datamodel.NodeID]bool
	visitedOrder   []datamodel.NodeID
	nodes          datamodel.NodeTable
	edges          datamodel.EdgeTable
	newEdgesBuffer datamodel.EdgeTable
	acc            datamodel.Accumulator
}

// clampBudget applies step 1 of the per-hop procedure: truncates fCurr to
// the node budget and drops buffered edges whose target fell out of the
// truncated frontier. Returns true if the hop (and thus the run) must
// terminate.
func (d *driverState) clampBudget() bool {
	if d.cfg.NumberOfNodes <= 0 {
		return false
	}
	budget := d.cfg.NumberOfNodes
	if len(d.visitedOrder)+len(d.fCurr) <= budget {
		return false
	}
	allowed := d.cfg.MaxNodesPerHop
	remaining := budget - len(d.visitedOrder)
	if remaining < allowed {
		allowed = remaining
	}
	if allowed <= 0 {
		d.fCurr = nil
		return true
	}
	if allowed > len(d.fCurr) {
		allowed = len(d.fCurr)
	}
	kept := make(map[datamodel.NodeID]bool, allowed)
	d.fCurr = d.fCurr[:allowed]
	for _, n := range d.fCurr {
		kept[n] = true
	}
	filtered := d.newEdgesBuffer[:0:0]
	for _, e := range d.newEdgesBuffer {
		if kept[e.Target] {
			filtered = append(filtered, e)
		}
	}
	d.newEdgesBuffer = filtered
	return false
}

// expandHop runs step 2-4: expand every node of fCurr sequentially, fold
// partials into the accumulator, collect Nodes rows tagged with this hop,
// and split the resulting edge table into in-edges (target already
// visited, including this hop's own frontier) and out-edges.
func (d *driverState) expandHop(depth int) (hIn, hOut datamodel.EdgeTable, err error) {
	var hop datamodel.EdgeTable
	hopVisited := make(map[datamodel.NodeID]bool, len(d.fCurr))
	for _, n := range d.fCurr {
		hopVisited[n] = true
	}

	for _, node := range d.fCurr {
		partial, edges, gerr := d.backend.GetNeighbors(node)
		if gerr != nil {
			return nil, nil, gerr
		}
		partial, edges, ferr := d.backend.Filter(partial, edges)
		if ferr != nil {
			return nil, nil, ferr
		}

		d.nodes = append(d.nodes, datamodel.NodeRow{
			ID:           node,
			SpikyballHop: uint32(depth),
			Attrs:        map[string]interface{}{},
		})
		d.acc = d.acc.Update(partial)
		hop = append(hop, edges...)
	}

	for _, e := range hop {
		if d.visited[e.Target] || hopVisited[e.Target] {
			hIn = append(hIn, e)
		} else {
			hOut = append(hOut, e)
		}
	}
	return hIn, hOut, nil
}

// dedupe removes repeated IDs from ids while preserving first occurrence.
func dedupe(ids []datamodel.NodeID) []datamodel.NodeID {
	seen := make(map[datamodel.NodeID]bool, len(ids))
	out := make([]datamodel.NodeID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
