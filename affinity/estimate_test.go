package affinity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/fuzzyseg/affinity"
	"github.com/katalvlaran/fuzzyseg/grid"
)

// TestEstimate_HandComputed verifies the estimator against hand-computed
// unbiased mean/variance values.
func TestEstimate_HandComputed(t *testing.T) {
	object := []float64{1, 2, 3} // mean 2, unbiased variance 1
	diffs := []float64{0.5, 1.5} // mean 1, unbiased variance 0.5

	p, err := affinity.Estimate(object, diffs, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.Mean, 1e-12)
	assert.InDelta(t, 1.0, p.Var, 1e-12)
	assert.InDelta(t, 1.0, p.DiffMean, 1e-12)
	assert.InDelta(t, 0.5, p.DiffVar, 1e-12)
	assert.Equal(t, 0.8, p.Weight)
}

// TestEstimate_MatchesGonum cross-checks against gonum on a larger fixture.
func TestEstimate_MatchesGonum(t *testing.T) {
	object := []float64{98, 101, 103, 99, 100, 97, 104, 102}
	diffs := []float64{1, 2, 0, 3, 1, 2}

	p, err := affinity.Estimate(object, diffs, 1)
	require.NoError(t, err)

	wantMean, wantVar := stat.MeanVariance(object, nil)
	assert.Equal(t, wantMean, p.Mean)
	assert.Equal(t, wantVar, p.Var)
}

// TestEstimate_Errors covers the sample-count and weight validation paths.
func TestEstimate_Errors(t *testing.T) {
	_, err := affinity.Estimate([]float64{1}, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, affinity.ErrTooFewSamples, "one object sample")

	_, err = affinity.Estimate([]float64{1, 2}, nil, 1)
	assert.ErrorIs(t, err, affinity.ErrTooFewSamples, "no difference samples")

	_, err = affinity.Estimate([]float64{1, 2}, []float64{1, 2}, 2)
	assert.ErrorIs(t, err, affinity.ErrBadWeight, "weight outside [0,1]")
}

// TestEstimateRegion_UniformBox verifies exact statistics on a uniform
// grid: mean equals the constant value, every variance and difference
// collapses to zero.
func TestEstimateRegion_UniformBox(t *testing.T) {
	g, err := grid.From2D([][]float64{
		{5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5},
		{5, 5, 5, 5, 5},
	})
	require.NoError(t, err)

	p, err := affinity.EstimateRegion(g, []grid.Point{grid.Pt(2, 2)}, 1, grid.Face, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, p.Mean)
	assert.Equal(t, 0.0, p.Var)
	assert.Equal(t, 0.0, p.DiffMean)
	assert.Equal(t, 0.0, p.DiffVar)
}

// TestEstimateRegion_BoundaryClipping verifies a corner seed's box is
// clipped to the grid instead of failing: radius 1 at the corner of a
// 3×3 grid samples the 2×2 in-bounds quadrant.
func TestEstimateRegion_BoundaryClipping(t *testing.T) {
	g, err := grid.From2D([][]float64{
		{1, 2, 9},
		{3, 4, 9},
		{9, 9, 9},
	})
	require.NoError(t, err)

	p, err := affinity.EstimateRegion(g, []grid.Point{grid.Pt(0, 0)}, 1, grid.Face, 1)
	require.NoError(t, err)

	// Box cells: {1, 2, 3, 4} → mean 2.5.
	assert.InDelta(t, 2.5, p.Mean, 1e-12)
}

// TestEstimateRegion_OverlappingSeeds verifies overlapping seed boxes are
// deduplicated: repeating the same seed changes nothing.
func TestEstimateRegion_OverlappingSeeds(t *testing.T) {
	g, err := grid.From2D([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	require.NoError(t, err)

	once, err := affinity.EstimateRegion(g, []grid.Point{grid.Pt(1, 1)}, 1, grid.Face, 1)
	require.NoError(t, err)
	twice, err := affinity.EstimateRegion(g, []grid.Point{grid.Pt(1, 1), grid.Pt(1, 1)}, 1, grid.Face, 1)
	require.NoError(t, err)

	assert.Equal(t, once, twice, "duplicate seeds must not bias the estimate")
}

// TestEstimateRegion_Errors covers radius, seed-set, and bounds validation
// in their documented order.
func TestEstimateRegion_Errors(t *testing.T) {
	g, err := grid.From2D([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = affinity.EstimateRegion(g, []grid.Point{grid.Pt(0, 0)}, -1, grid.Face, 1)
	assert.ErrorIs(t, err, affinity.ErrBadRadius)

	_, err = affinity.EstimateRegion(g, nil, 1, grid.Face, 1)
	assert.ErrorIs(t, err, affinity.ErrTooFewSamples)

	_, err = affinity.EstimateRegion(g, []grid.Point{grid.Pt(5, 5)}, 1, grid.Face, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
