package affinity

import (
	"math"
)

// Gaussian is the default affinity Model: a weighted blend of two
// Gaussian kernels, one over the divergence of the pair average from
// the object mean, one over the divergence of the pair difference from
// the typical neighbor difference.
//
// strength(a, b) = MaxStrength · [ w·exp(−½·(avg−Mean)²/Var)
//
//	+ (1−w)·exp(−½·(|a−b|−DiffMean)²/DiffVar) ]
//
// with avg = (a+b)/2 and w = Weight. Both terms use only |a−b| and the
// pair average, so the model is symmetric by construction. Each term is
// maximal when its divergence is zero and decays monotonically as the
// divergence grows.
type Gaussian struct {
	p Params
}

// NewGaussian builds a Gaussian model from validated parameters.
// Returns the Params validation error unchanged on invalid input.
func NewGaussian(p Params) (*Gaussian, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &Gaussian{p: p}, nil
}

// Params returns the parameters the model was built with.
func (g *Gaussian) Params() Params { return g.p }

// Affinity scores two neighboring sample values in [0, MaxStrength].
// With Weight == 1 the difference term is skipped entirely, so DiffMean
// and DiffVar are never consulted.
// Complexity: O(1).
func (g *Gaussian) Affinity(a, b float64) float64 {
	// Object term: how close the pair average sits to the object mean.
	obj := kernel(0.5*(a+b)-g.p.Mean, g.p.Var)
	if g.p.Weight == 1 {
		return MaxStrength * obj
	}

	// Difference term: how typical the pair difference is for the object.
	diff := kernel(math.Abs(a-b)-g.p.DiffMean, g.p.DiffVar)

	return MaxStrength * (g.p.Weight*obj + (1-g.p.Weight)*diff)
}

// kernel evaluates the unnormalized Gaussian exp(−½·dev²/variance).
// Zero variance is an exact-match requirement: the kernel degenerates
// to a step function instead of dividing by zero.
func kernel(dev, variance float64) float64 {
	if variance == 0 {
		if dev == 0 {
			return 1
		}

		return 0
	}

	return math.Exp(-0.5 * dev * dev / variance)
}
