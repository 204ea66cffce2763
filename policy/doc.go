// Package policy implements the edge-weight probability model (C3):
// mapping an out-edge table under one of five expansion policies to a
// normalized selection distribution. Degree annotation and score
// computation are grounded in the per-edge weight distributions of
// lvlath/builder (WeightFn family) generalized from a fixed edge weight
// to a data-driven one.
package policy
