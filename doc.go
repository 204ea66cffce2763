// Package spikyball performs inhomogeneous filtered diffusion sampling
// over an implicit, possibly very large directed graph whose neighborhood
// function is accessed lazily through a pluggable Backend.
//
// 🚀 What is spikyball?
//
//	A small, dependency-light sampler that brings together:
//
//	  • A biased breadth-first exploration engine (the Spiky-Ball driver)
//	  • Five parameterized edge-weighting policies for frontier selection
//	  • Weighted sampling without replacement at each hop
//	  • A graph-assembly pass with degree, component, and community reduction
//
// ✨ Why choose spikyball?
//
//   - Backend-agnostic    — bring your own neighbor oracle via datamodel.Backend
//   - Deterministic       — seed the RNG and get byte-identical runs
//   - Composable          — policy, sampler, and graphbuild are usable standalone
//   - Pure Go             — core.Graph storage, gonum for graph analysis
//
// Everything is organized under subpackages:
//
//	datamodel/  — shared vocabulary: NodeID, EdgeRow, Backend, Config
//	policy/     — the edge probability model (five expansion policies)
//	sampler/    — the random subset selector and hop-loop driver
//	graphbuild/ — the graph assembler (degree/component/community reduction)
//	gonumbridge/— bridge from core.Graph to gonum's component/community analyses
//	core/       — the underlying thread-safe Graph, Vertex, Edge primitives
//	bfs/        — breadth-first traversal, reused for connectivity checks
//	builder/    — deterministic fixture graphs for tests and examples
//	backend/synthetic/ — a Backend over a Barabasi-Albert test graph
//
// Quick example:
//
//	g, acc, err := spikyball.Explore(backend, seeds, cfg)
//
// See SPEC_FULL.md for the full design and DESIGN.md for the component
// grounding ledger.
package spikyball
