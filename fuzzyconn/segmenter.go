package fuzzyconn

import (
	"fmt"

	"github.com/katalvlaran/fuzzyseg/affinity"
	"github.com/katalvlaran/fuzzyseg/grid"
)

// Segmenter orchestrates one fuzzy-connectedness segmentation over a
// read-only grid.
//
// Usage:
//
//  1. NewSegmenter with the input grid (and options).
//  2. SetParameters and SetSeeds (any order; both may be called again
//     to reconfigure before the next Run).
//  3. Run to compute the connectedness Scene and the initial Mask.
//  4. SetThreshold as often as needed: each call re-derives the Mask
//     from the cached Scene without re-propagating.
//  5. Scene and Output return the cached results of the last
//     successful Run.
//
// A Segmenter is not safe for concurrent mutation; after Run returns,
// Scene, Output, and ApplyThreshold are safe for concurrent readers.
type Segmenter struct {
	g    *grid.Grid
	opts Options

	params    affinity.Params
	hasParams bool
	seeds     []int // row-major seed indices, in the order given

	threshold uint16
	scene     *Scene
	mask      *Mask
	runs      int // completed propagation runs; test instrumentation
}

// NewSegmenter builds a Segmenter over g. The grid constructor already
// guarantees a non-empty domain, so the only precondition here is a
// non-nil grid (ErrNilGrid).
func NewSegmenter(g *grid.Grid, opts ...Option) (*Segmenter, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Segmenter{g: g, opts: cfg}, nil
}

// SetParameters sets the five affinity statistics: object intensity
// mean and variance, neighbor-difference mean and variance, and the
// blend weight in [0, 1]. Parameters are validated for finiteness
// (affinity.ErrNonFinite) and weight range (affinity.ErrBadWeight);
// they take effect at the next Run.
func (s *Segmenter) SetParameters(mean, variance, diffMean, diffVariance, weight float64) error {
	p := affinity.Params{
		Mean:     mean,
		Var:      variance,
		DiffMean: diffMean,
		DiffVar:  diffVariance,
		Weight:   weight,
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.params = p
	s.hasParams = true

	return nil
}

// SetSeeds replaces the seed set. Every seed must lie inside the grid
// (ErrSeedOutOfBounds names the offending coordinate); on error the
// previous seed set is kept unchanged. Seeds take effect at the next
// Run; the cached Scene of an earlier Run is not disturbed.
func (s *Segmenter) SetSeeds(pts ...grid.Point) error {
	idxs := make([]int, len(pts))
	for i, p := range pts {
		idx, err := s.g.Index(p)
		if err != nil {
			return fmt.Errorf("%w: seed %d at %v", ErrSeedOutOfBounds, i, []int(p))
		}
		idxs[i] = idx
	}
	s.seeds = idxs

	return nil
}

// Run computes a fresh connectedness Scene from the current grid,
// seeds, and parameters, then derives the Mask for the current
// threshold. On failure the Scene and Mask of the previous successful
// Run remain untouched.
//
// Preconditions (in order):
//  1. Affinity parameters set via SetParameters, unless a custom model
//     was supplied with WithModel (ErrNoParameters).
//  2. Non-empty seed set (ErrNoSeeds).
//
// Complexity: O(cells·d·log(cells·d)), see package doc.
func (s *Segmenter) Run() error {
	// 1) Resolve the affinity model: explicit override or Gaussian from
	//    the validated parameters.
	model := s.opts.Model
	if model == nil {
		if !s.hasParams {
			return ErrNoParameters
		}
		var err error
		model, err = affinity.NewGaussian(s.params)
		if err != nil {
			return err // unreachable for parameters accepted by SetParameters
		}
	}

	// 2) Validate the seed set.
	if len(s.seeds) == 0 {
		return ErrNoSeeds
	}

	// 3) Propagate into a fresh Scene owned by this run, then publish it
	//    together with the mask for the current threshold.
	scene := propagate(s.g, s.seeds, model, s.opts.Conn)
	s.scene = scene
	s.mask = ApplyThreshold(scene, s.threshold)
	s.runs++

	return nil
}

// SetThreshold changes the binary cutoff and re-derives the Mask from
// the cached Scene. Propagation is never re-run: thresholding reuses
// the Scene of the last successful Run by contract. Returns ErrNoScene
// before the first successful Run.
//
// Seed policy: seeds always settle at MaxStrength, so they are object
// under every representable threshold, including MaxStrength itself.
//
// Complexity: O(cells).
func (s *Segmenter) SetThreshold(t uint16) error {
	if s.scene == nil {
		return ErrNoScene
	}
	s.threshold = t
	s.mask = ApplyThreshold(s.scene, t)

	return nil
}

// Threshold returns the current binary cutoff.
func (s *Segmenter) Threshold() uint16 { return s.threshold }

// Scene returns the connectedness scene of the last successful Run,
// or nil before it.
func (s *Segmenter) Scene() *Scene { return s.scene }

// Output returns the binary mask derived from the cached Scene at the
// current threshold, or nil before the first successful Run.
func (s *Segmenter) Output() *Mask { return s.mask }
