package affinity

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/fuzzyseg/grid"
)

// Estimate derives Params from two sample sets: intensities drawn from
// the object interior and absolute intensity differences between
// neighboring object cells. Mean and variance of each set are computed
// with gonum's unbiased estimators.
//
// Returns ErrTooFewSamples if either set has fewer than two values, or
// the Params validation error if the samples contain non-finite values
// or weight lies outside [0, 1].
// Complexity: O(len(objectSamples) + len(diffSamples)).
func Estimate(objectSamples, diffSamples []float64, weight float64) (Params, error) {
	if len(objectSamples) < 2 {
		return Params{}, fmt.Errorf("%w: %d object samples", ErrTooFewSamples, len(objectSamples))
	}
	if len(diffSamples) < 2 {
		return Params{}, fmt.Errorf("%w: %d difference samples", ErrTooFewSamples, len(diffSamples))
	}

	mean, variance := stat.MeanVariance(objectSamples, nil)
	diffMean, diffVar := stat.MeanVariance(diffSamples, nil)

	p := Params{
		Mean:     mean,
		Var:      variance,
		DiffMean: diffMean,
		DiffVar:  diffVar,
		Weight:   weight,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}

// EstimateRegion derives Params by sampling the grid around seed points:
// every cell of the axis-aligned box of the given radius around each
// seed contributes its intensity, and every in-box neighbor pair (under
// conn) contributes its absolute difference. Overlapping boxes are
// deduplicated, so repeated or clustered seeds do not bias the estimate.
//
// Radius 0 samples the seeds alone, which yields ErrTooFewSamples unless
// at least two distinct seeds are given and at least two of them adjoin.
//
// Preconditions (in order):
//  1. radius must be ≥ 0 (ErrBadRadius).
//  2. at least one seed (ErrTooFewSamples).
//  3. every seed must lie inside the grid (grid.ErrOutOfBounds).
//
// Complexity: O(seeds · (2·radius+1)^dims · d), d = neighbor count.
func EstimateRegion(g *grid.Grid, seeds []grid.Point, radius int, conn grid.Connectivity, weight float64) (Params, error) {
	// 1) Validate the sampling radius.
	if radius < 0 {
		return Params{}, fmt.Errorf("%w: got %d", ErrBadRadius, radius)
	}

	// 2) Validate the seed set.
	if len(seeds) == 0 {
		return Params{}, fmt.Errorf("%w: no seeds", ErrTooFewSamples)
	}

	// 3) Collect the union of all seed boxes, deduplicated by flat index.
	inBox := make(map[int]bool)
	for _, s := range seeds {
		if err := collectBox(g, s, radius, inBox); err != nil {
			return Params{}, err
		}
	}

	// 4) Gather intensities and in-box neighbor differences in ascending
	//    index order, so the estimate is deterministic for a given input.
	//    Each unordered pair is visited twice; duplicate |a−b| samples
	//    shift neither the mean nor the variance of the set.
	indices := make([]int, 0, len(inBox))
	for idx := range inBox {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	objectSamples := make([]float64, 0, len(indices))
	var diffSamples []float64
	nbuf := make([]int, 0, len(g.Offsets(conn)))
	var v float64
	for _, idx := range indices {
		v = g.AtIndex(idx)
		objectSamples = append(objectSamples, v)
		nbuf = g.Neighbors(idx, conn, nbuf)
		for _, n := range nbuf {
			if inBox[n] {
				diffSamples = append(diffSamples, math.Abs(v-g.AtIndex(n)))
			}
		}
	}

	// 5) Delegate to the plain estimator.
	return Estimate(objectSamples, diffSamples, weight)
}

// collectBox adds the flat indices of every in-bounds cell of the
// axis-aligned box of the given radius around center into dst.
// Returns grid.ErrOutOfBounds (wrapped) if the center itself is outside.
func collectBox(g *grid.Grid, center grid.Point, radius int, dst map[int]bool) error {
	if _, err := g.Index(center); err != nil {
		return fmt.Errorf("seed %v: %w", []int(center), err)
	}

	dims := g.Dims()
	side := 2*radius + 1
	total := 1
	for d := 0; d < dims; d++ {
		total *= side
	}

	// Odometer walk over the box: decode k into per-dimension deltas.
	p := make(grid.Point, dims)
	for k := 0; k < total; k++ {
		rest := k
		for d := dims - 1; d >= 0; d-- {
			p[d] = center[d] + rest%side - radius
			rest /= side
		}
		idx, err := g.Index(p)
		if err != nil {
			continue // box cell clipped by the grid boundary
		}
		dst[idx] = true
	}

	return nil
}
