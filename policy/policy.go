// File: policy.go
// Role: per-edge score and L1-normalized distribution over an out-edge
// table, parameterized by expansion policy and exponent k.
// Determinism:
//   - DegreeSource/DegreeTarget are computed once per call, over exactly
//     the rows passed in (the current hop's out-edges table).
//   - Score order mirrors input row order; Normalize preserves it.
package policy

import (
	"math"

	"github.com/katalvlaran/spikyball/datamodel"
)

// coefficients holds the (alpha, beta, gamma) triple of score(e) =
// deg_src(e)^alpha * weight(e)^beta * deg_tgt(e)^gamma for a policy.
type coefficients struct {
	alpha, beta, gamma float64
}

// table mirrors the policy table of the governing design exactly.
var table = map[datamodel.ExpansionPolicy]coefficients{
	datamodel.PolicySpikyBall:    {alpha: 0, beta: 1, gamma: 0},
	datamodel.PolicyHubBall:      {alpha: 0 /* overridden by k */, beta: 1, gamma: 0},
	datamodel.PolicyCoreBall:     {alpha: 0, beta: 1, gamma: 0 /* overridden by k */},
	datamodel.PolicyFireBall:     {alpha: -1, beta: 1, gamma: 0},
	datamodel.PolicyFireCoreBall: {alpha: -1, beta: 1, gamma: 0 /* overridden by k */},
}

// resolve returns the coefficients for policy with exponent k substituted
// into the slot hubball/coreball/firecoreball parameterize on.
func resolve(p datamodel.ExpansionPolicy, k int) (coefficients, error) {
	c, ok := table[p]
	if !ok {
		return coefficients{}, ErrUnknownPolicy(p)
	}
	switch p {
	case datamodel.PolicyHubBall:
		c.alpha = float64(k)
	case datamodel.PolicyCoreBall:
		c.gamma = float64(k)
	case datamodel.PolicyFireCoreBall:
		c.gamma = float64(k)
	}
	return c, nil
}

// AnnotateDegrees computes DegreeSource/DegreeTarget in place over rows,
// as the sum of Weight over all rows sharing the same Source/Target
// respectively. Complexity: O(len(rows)).
func AnnotateDegrees(rows datamodel.EdgeTable) {
	srcDeg := make(map[datamodel.NodeID]float64, len(rows))
	tgtDeg := make(map[datamodel.NodeID]float64, len(rows))
	for _, r := range rows {
		srcDeg[r.Source] += r.Weight
		tgtDeg[r.Target] += r.Weight
	}
	for i := range rows {
		rows[i].DegreeSource = srcDeg[rows[i].Source]
		rows[i].DegreeTarget = tgtDeg[rows[i].Target]
	}
}

// pow treats 0^0 as 1 and 0^(negative) as 0, per the numeric semantics of
// the governing design (never select an edge with no incoming weight
// under a negative exponent).
func pow(base, exp float64) float64 {
	if base == 0 {
		if exp == 0 {
			return 1
		}
		if exp < 0 {
			return 0
		}
		return 0
	}
	return math.Pow(base, exp)
}

// Score computes the unnormalized score vector for rows under policy p
// with exponent k. rows must already carry degree annotations from
// AnnotateDegrees. Complexity: O(len(rows)).
func Score(rows datamodel.EdgeTable, p datamodel.ExpansionPolicy, k int) ([]float64, error) {
	c, err := resolve(p, k)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(rows))
	for i, r := range rows {
		scores[i] = pow(r.DegreeSource, c.alpha) * pow(r.Weight, c.beta) * pow(r.DegreeTarget, c.gamma)
	}
	return scores, nil
}

// Normalize L1-normalizes scores in place and returns it. If the sum is
// zero, the vector is returned unchanged (all-zero), signalling an
// effectively empty candidate table to the caller.
func Normalize(scores []float64) []float64 {
	var sum float64
	for _, s := range scores {
		sum += s
	}
	if sum == 0 {
		return scores
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores
}

// Distribution annotates degrees, scores, and L1-normalizes rows under
// policy p with exponent k in one call. Returns the probability vector
// aligned 1:1 with rows.
func Distribution(rows datamodel.EdgeTable, p datamodel.ExpansionPolicy, k int) ([]float64, error) {
	AnnotateDegrees(rows)
	scores, err := Score(rows, p, k)
	if err != nil {
		return nil, err
	}
	return Normalize(scores), nil
}
