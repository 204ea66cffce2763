// Package graphbuild implements the graph assembler (C6): it takes the
// final Nodes/Edges tables and accumulator produced by sampler.Run and
// materializes a weighted core.Graph, then applies the configured
// attribute, degree-reduction, spiky-ball-neighbor, undirected-projection,
// and community-detection passes in order.
package graphbuild
