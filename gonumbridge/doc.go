// Package gonumbridge adapts a core.Graph's undirected projection onto
// gonum's graph/simple and graph/community types, for two C6 graph-
// assembly passes the core package has no native support for: largest
// connected component extraction and modularity-based community
// detection. It is a two-way adapter in the sense that it only ever
// needs to go core.Graph -> gonum representation -> back to node-ID
// partitions, never the full round trip.
package gonumbridge
