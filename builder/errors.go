// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...), per lvlath 99-rules.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n, m) is
// smaller than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (e.g., WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph was handed a nil constructor,
// or a constructor exhausted permitted strategies without producing a valid
// topology.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with different seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an out-of-range size parameter (e.g., m out of
// [1,n] for Preferential).
// Usage: if errors.Is(err, ErrBadSize) { /* fix the size parameter */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return fmt.Errorf("%s: rng is required: %w", methodPreferential, ErrNeedRandSource)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix.
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices — size/domain checks first (n).
//    • ErrBadSize        — then the remaining size parameters (m).
//    • ErrNeedRandSource — then RNG presence for stochastic builders.
//    • ErrConstructFailed — only after all retries/strategies are exhausted.
//
// 3) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
