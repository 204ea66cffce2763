// Package synthetic implements datamodel.Backend over an in-memory
// core.Graph, typically produced by builder.Preferential, for use in
// tests and examples where no live data source is available. It mirrors
// the reference Python SyntheticNetwork backend: neighbors are the
// underlying graph's out-edges, weight is a constant presence indicator,
// and filter drops nodes whose sampled out-degree is below a configured
// minimum.
package synthetic
