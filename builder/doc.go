// Package builder provides reusable “functional‐options”‐style building blocks
// for graph algorithms. It lives alongside core to centralize common
// configuration, ID schemes, weight distributions, and validation logic,
// keeping implementations DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function, etc.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Topology constructors:
//     – Preferential(n, m): Barabási-Albert preferential attachment, the
//       synthetic fixture generator used by backend/synthetic and
//       cmd/spikyball-demo.
//   - Shared constants:
//     – MinPreferentialNodes.
//     – DefaultEdgeWeight.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on g will not duplicate
//     vertices or edges.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping sentinel values (errors.go) for easy
//     errors.Is filtering.
//   - Fully testable: all IDFn, WeightFn, BuilderOption, and constructor
//     branches are covered by unit tests in builder/*_test.go.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
