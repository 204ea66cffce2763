// File: select.go
// Role: C4, the random subset selector — sizing modes plus weighted
// sampling without replacement via the Efraimidis-Spirakis key trick.
// Determinism:
//   - Given a fixed *rand.Rand stream and a fixed input order, the
//     selection is deterministic (keys are drawn in row order).
package sampler

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/spikyball/datamodel"
	"github.com/katalvlaran/spikyball/policy"
)

// resolveSize applies the §4.3 sizing rules to a candidate pool of size n.
func resolveSize(mode datamodel.SubsetMode, size, n int) (int, error) {
	switch mode {
	case datamodel.ModeConstant:
		if size < n {
			return size, nil
		}
		return n, nil
	case datamodel.ModePercent:
		if size <= 0 || size > 100 {
			return 0, datamodel.NewConfigError("random_subset_size=%d out of range (0,100] for percent mode", size)
		}
		want := int(math.Round(float64(n) * float64(size) / 100.0))
		if want < 2 {
			floor := n
			if floor > 10 {
				floor = 10
			}
			return floor, nil
		}
		return want, nil
	default:
		return 0, datamodel.NewConfigError("unknown random_subset_mode %q", mode)
	}
}

// Select draws a weighted subset without replacement from edges, under
// policy p with exponent k, sized per (mode, size). It returns the
// deduplicated target list in first-occurrence order among selected rows,
// and the selected edge rows themselves (in selection order). An empty
// input returns empty results without consulting rng.
func Select(rng *rand.Rand, edges datamodel.EdgeTable, p datamodel.ExpansionPolicy, k int, mode datamodel.SubsetMode, size int) ([]datamodel.NodeID, datamodel.EdgeTable, error) {
	if len(edges) == 0 {
		return nil, nil, nil
	}

	dist, err := policy.Distribution(edges, p, k)
	if err != nil {
		return nil, nil, err
	}

	// §4.2: if all scores are zero the table is treated as empty, never as
	// an unweighted uniform selection.
	var sum float64
	for _, w := range dist {
		sum += w
	}
	if sum == 0 {
		return nil, nil, nil
	}

	want, err := resolveSize(mode, size, len(edges))
	if err != nil {
		return nil, nil, err
	}
	if want <= 0 {
		return nil, nil, nil
	}
	if want > len(edges) {
		want = len(edges)
	}

	type keyed struct {
		idx int
		key float64
	}
	keys := make([]keyed, len(edges))
	for i, w := range dist {
		var key float64
		if w <= 0 {
			// Zero-probability rows must never be selected ahead of a
			// positive-probability row; push them to the bottom of the
			// ranking with -Inf while still consuming one rng draw to
			// keep draw order stable across equivalent inputs.
			rng.Float64()
			key = math.Inf(-1)
		} else {
			u := rng.Float64()
			if u <= 0 {
				u = math.SmallestNonzeroFloat64
			}
			key = math.Pow(u, 1.0/w)
		}
		keys[i] = keyed{idx: i, key: key}
	}

	sort.SliceStable(keys, func(a, b int) bool { return keys[a].key > keys[b].key })

	selected := make(datamodel.EdgeTable, 0, want)
	seen := make(map[datamodel.NodeID]bool, want)
	targets := make([]datamodel.NodeID, 0, want)
	for _, kk := range keys[:want] {
		row := edges[kk.idx]
		selected = append(selected, row)
		if !seen[row.Target] {
			seen[row.Target] = true
			targets = append(targets, row.Target)
		}
	}
	return targets, selected, nil
}
