// Package datamodel defines the shared vocabulary of the Spiky-Ball sampler:
// node identifiers, edge/node rows, the backend capability set, and the
// typed configuration consumed by the policy, sampler, and graphbuild
// packages. Keeping these types in their own package avoids an import
// cycle between sampler (which drives the hop loop) and graphbuild
// (which consumes its output).
package datamodel
