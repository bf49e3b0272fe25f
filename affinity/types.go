// Package affinity defines core types and sentinel errors for the
// affinity subpackage of github.com/katalvlaran/fuzzyseg.
package affinity

import (
	"errors"
	"fmt"
	"math"
)

// MaxStrength is the upper bound of the affinity scale. It matches the
// quantized connectedness-scene range (16-bit unsigned), so a perfect
// affinity maps to the maximum representable scene strength.
const MaxStrength = 65535

// Sentinel errors for affinity parameters and estimation.
var (
	// ErrNonFinite indicates a parameter that is NaN or infinite.
	ErrNonFinite = errors.New("affinity: parameters must be finite")
	// ErrBadWeight indicates a blend weight outside [0, 1].
	ErrBadWeight = errors.New("affinity: weight must lie in [0, 1]")
	// ErrBadRadius indicates a negative sampling radius.
	ErrBadRadius = errors.New("affinity: sampling radius must be non-negative")
	// ErrTooFewSamples indicates an estimation sample set with fewer than two values.
	ErrTooFewSamples = errors.New("affinity: need at least two samples per set")
)

// Params holds the scalar statistics that parameterize the affinity
// model. Set once before propagation; read-only afterwards.
//
// Mean/Var describe the object's intensity distribution; DiffMean/DiffVar
// describe the distribution of absolute intensity differences between
// neighboring object cells; Weight blends the two Gaussian terms
// (1 = object term only, 0 = difference term only).
//
// A negative variance is a caller contract violation: Validate only
// checks finiteness, and the numeric result of a negative variance is
// undefined (it will not crash).
type Params struct {
	Mean     float64 // estimated object intensity mean
	Var      float64 // estimated object intensity variance
	DiffMean float64 // estimated mean of neighbor intensity differences
	DiffVar  float64 // estimated variance of neighbor intensity differences
	Weight   float64 // blend weight between object and difference terms
}

// Validate checks that every parameter is finite and that Weight lies
// in [0, 1]. Returns ErrNonFinite or ErrBadWeight with context.
func (p Params) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"Mean", p.Mean},
		{"Var", p.Var},
		{"DiffMean", p.DiffMean},
		{"DiffVar", p.DiffVar},
		{"Weight", p.Weight},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrNonFinite, f.name, f.v)
		}
	}
	if p.Weight < 0 || p.Weight > 1 {
		return fmt.Errorf("%w: got %v", ErrBadWeight, p.Weight)
	}

	return nil
}

// Model scores the similarity of two neighboring sample values.
//
// Implementations must be symmetric (Affinity(a,b) == Affinity(b,a)),
// return values in [0, MaxStrength], and be safe for concurrent use:
// the propagation engine calls Affinity once per edge relaxation with
// no synchronization.
type Model interface {
	// Affinity returns the similarity strength of two neighboring
	// samples, in [0, MaxStrength].
	Affinity(a, b float64) float64
}
