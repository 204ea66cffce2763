// File: reachability.go
// Role: a connectivity diagnostic over an assembled graph, used by callers
// and tests to confirm a seed's component survived degree/community
// reduction intact. bfs.BFS rejects weighted graphs, so the check runs
// against an unweighted view of g.
package graphbuild

import (
	"sort"

	"github.com/katalvlaran/spikyball/bfs"
	"github.com/katalvlaran/spikyball/core"
)

// ReachableFrom returns the sorted set of vertex IDs reachable from seed in
// g, ignoring edge weights and direction-insensitively for undirected
// graphs. seed must be present in g.
func ReachableFrom(g *core.Graph, seed string) ([]string, error) {
	view := core.UnweightedView(g)
	result, err := bfs.BFS(view, seed)
	if err != nil {
		return nil, err
	}
	ids := append([]string(nil), result.Order...)
	sort.Strings(ids)
	return ids, nil
}
