// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_preferential.go - implementation of Preferential(n, m) constructor.
//
// Canonical model (Barabasi-Albert preferential attachment):
//   - Seed an m-vertex clique (0..m-1), fully connected.
//   - Grow one vertex at a time (m..n-1). Each new vertex draws m distinct
//     targets from the existing vertex set, weighted by current degree
//     (vertices of higher degree are more likely to be chosen again).
//   - Undirected only: attachment is symmetric by construction.
//
// Contract:
//   - n ≥ 1, m ≥ 1, m < n whenever growth occurs (n == m yields the seed
//     clique alone, which is valid).
//   - cfg.rng must be non-nil (else ErrNeedRandSource): this constructor is
//     inherently stochastic, unlike RandomSparse's p∈{0,1} escape hatch.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n*m) edges plus O(n*m) attachment draws.
//   - Space: O(n*m) for the repeated-vertex attachment pool.
//
// Determinism:
//   - Stable vertex order: i asc.
//   - Deterministic outcomes for fixed seed/options due to fixed draw order.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/spikyball/core"
)

const (
	methodPreferential = "Preferential"
)

// Preferential returns a Constructor that grows an n-vertex graph by
// Barabasi-Albert preferential attachment, attaching m edges per new vertex.
func Preferential(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < MinPreferentialNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodPreferential, n, MinPreferentialNodes, ErrTooFewVertices)
		}
		if m < 1 || m > n {
			return fmt.Errorf("%s: m=%d out of range [1,%d]: %w",
				methodPreferential, m, n, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodPreferential, ErrNeedRandSource)
		}

		// 2) Add all vertices deterministically via cfg.idFn (IDs 0..n-1).
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPreferential, id, err)
			}
		}

		useWeight := g.Weighted()
		rng := cfg.rng
		weightOf := func() float64 {
			if useWeight {
				return cfg.weightFn(rng)
			}
			return 0
		}

		// 3) Seed clique over the first m vertices.
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(u, v, weightOf()); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPreferential, u, v, err)
				}
			}
		}

		// 4) repeatedTargets holds one entry per edge endpoint seen so far;
		// sampling uniformly from it approximates degree-proportional draw.
		repeatedTargets := make([]int, 0, n*m)
		for i := 0; i < m; i++ {
			for j := i + 1; j < m; j++ {
				repeatedTargets = append(repeatedTargets, i, j)
			}
		}

		// 5) Grow one vertex at a time, attaching to m distinct existing targets.
		for newIdx := m; newIdx < n; newIdx++ {
			targets := make(map[int]struct{}, m)
			for len(targets) < m {
				pick := repeatedTargets[rng.Intn(len(repeatedTargets))]
				targets[pick] = struct{}{}
			}
			// Map iteration order is randomized per process; draw weights and
			// append edges in a fixed (sorted) order so a given rng stream
			// always pairs the same weight with the same target.
			ordered := make([]int, 0, len(targets))
			for t := range targets {
				ordered = append(ordered, t)
			}
			sort.Ints(ordered)

			u := cfg.idFn(newIdx)
			for _, t := range ordered {
				v := cfg.idFn(t)
				if _, err := g.AddEdge(u, v, weightOf()); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPreferential, u, v, err)
				}
				repeatedTargets = append(repeatedTargets, t, newIdx)
			}
		}

		return nil
	}
}
