// Package sampler implements the random subset selector (C4) and the
// Spiky-Ball hop-loop driver (C5): the state machine that alternates
// backend expansion, edge-probability scoring (policy), and weighted
// sampling without replacement to grow a frontier hop by hop.
package sampler
