// Package fuzzyconn defines core types, options, and sentinel errors
// for the fuzzyconn subpackage of github.com/katalvlaran/fuzzyseg.
package fuzzyconn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fuzzyseg/affinity"
	"github.com/katalvlaran/fuzzyseg/grid"
)

// MaxStrength is the maximum representable connectedness strength.
// Every seed cell settles at exactly this value.
const MaxStrength uint16 = affinity.MaxStrength

// Sentinel errors for segmentation operations.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to NewSegmenter.
	ErrNilGrid = errors.New("fuzzyconn: grid is nil")
	// ErrNoParameters indicates Run was called before SetParameters.
	ErrNoParameters = errors.New("fuzzyconn: affinity parameters not set")
	// ErrNoSeeds indicates Run was called with an empty seed set.
	ErrNoSeeds = errors.New("fuzzyconn: seed set is empty")
	// ErrSeedOutOfBounds indicates a seed coordinate outside the grid.
	ErrSeedOutOfBounds = errors.New("fuzzyconn: seed out of grid bounds")
	// ErrNoScene indicates no connectedness scene has been computed yet.
	ErrNoScene = errors.New("fuzzyconn: no scene computed; call Run first")
)

// Options configures a Segmenter.
//
// Conn  – neighbor connectivity used during propagation (default grid.Face).
// Model – optional affinity model override; when nil, Run builds the
// default Gaussian model from the parameters given to SetParameters.
type Options struct {
	Conn  grid.Connectivity // adjacency used for propagation
	Model affinity.Model    // optional override of the Gaussian default
}

// Option represents a functional option for configuring a Segmenter.
type Option func(*Options)

// WithConnectivity selects the adjacency used during propagation:
// grid.Face (orthogonal) or grid.Full (including diagonals).
func WithConnectivity(conn grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = conn
	}
}

// WithModel replaces the default Gaussian affinity model. A custom
// model makes SetParameters optional: Run propagates with the given
// model as-is. Panics on a nil model; omit the option instead.
func WithModel(m affinity.Model) Option {
	return func(o *Options) {
		if m == nil {
			panic("fuzzyconn: WithModel requires a non-nil model")
		}
		o.Model = m
	}
}

// DefaultOptions returns Options with default settings:
// Conn=grid.Face, Model=nil (Gaussian built from SetParameters).
func DefaultOptions() Options {
	return Options{
		Conn:  grid.Face,
		Model: nil,
	}
}

// Scene is the quantized connectedness scene: one strength per grid
// cell, same extents and row-major layout as the input grid. It is
// written exclusively by one propagation run, then read-only; all
// accessors are safe for concurrent readers afterwards.
type Scene struct {
	extents  []int
	strides  []int
	strength []uint16
}

// newScene allocates an all-zero Scene matching the grid layout.
func newScene(g *grid.Grid) *Scene {
	ext := g.Extents()
	strides := make([]int, len(ext))
	s := 1
	for d := len(ext) - 1; d >= 0; d-- {
		strides[d] = s
		s *= ext[d]
	}

	return &Scene{
		extents:  ext,
		strides:  strides,
		strength: make([]uint16, g.Len()),
	}
}

// Extents returns a copy of the per-dimension extents.
func (s *Scene) Extents() []int {
	ext := make([]int, len(s.extents))
	copy(ext, s.extents)

	return ext
}

// Len returns the total cell count.
func (s *Scene) Len() int { return len(s.strength) }

// AtIndex returns the strength at a row-major flat index.
// Complexity: O(1).
func (s *Scene) AtIndex(idx int) uint16 { return s.strength[idx] }

// At returns the strength at coordinate p.
// Returns grid.ErrOutOfBounds (wrapped) for coordinates outside the extents.
func (s *Scene) At(p grid.Point) (uint16, error) {
	idx, err := s.index(p)
	if err != nil {
		return 0, err
	}

	return s.strength[idx], nil
}

// Strengths returns a copy of the full strength buffer in row-major order.
func (s *Scene) Strengths() []uint16 {
	out := make([]uint16, len(s.strength))
	copy(out, s.strength)

	return out
}

// Histogram counts scene strengths into the given number of equal-width
// bins over [0, MaxStrength]. Useful for choosing a threshold without
// re-running propagation. Returns nil if bins < 1.
// Complexity: O(cells).
func (s *Scene) Histogram(bins int) []int {
	if bins < 1 {
		return nil
	}
	counts := make([]int, bins)
	width := (int(MaxStrength) + bins) / bins // ceil, so MaxStrength lands in the last bin
	for _, v := range s.strength {
		counts[int(v)/width]++
	}

	return counts
}

func (s *Scene) index(p grid.Point) (int, error) {
	if len(p) != len(s.extents) {
		return 0, fmt.Errorf("%w: %v for extents %v", grid.ErrOutOfBounds, []int(p), s.extents)
	}
	idx := 0
	for d, c := range p {
		if c < 0 || c >= s.extents[d] {
			return 0, fmt.Errorf("%w: %v for extents %v", grid.ErrOutOfBounds, []int(p), s.extents)
		}
		idx += c * s.strides[d]
	}

	return idx, nil
}

// Mask is the binary segmentation output: object/background per cell,
// same extents and row-major layout as the Scene it was derived from.
// A Mask is never mutated after construction.
type Mask struct {
	extents []int
	strides []int
	inside  []bool
}

// Extents returns a copy of the per-dimension extents.
func (m *Mask) Extents() []int {
	ext := make([]int, len(m.extents))
	copy(ext, m.extents)

	return ext
}

// Len returns the total cell count.
func (m *Mask) Len() int { return len(m.inside) }

// AtIndex reports whether the cell at a row-major flat index is object.
// Complexity: O(1).
func (m *Mask) AtIndex(idx int) bool { return m.inside[idx] }

// At reports whether the cell at coordinate p is object.
// Returns grid.ErrOutOfBounds (wrapped) for coordinates outside the extents.
func (m *Mask) At(p grid.Point) (bool, error) {
	if len(p) != len(m.extents) {
		return false, fmt.Errorf("%w: %v for extents %v", grid.ErrOutOfBounds, []int(p), m.extents)
	}
	idx := 0
	for d, c := range p {
		if c < 0 || c >= m.extents[d] {
			return false, fmt.Errorf("%w: %v for extents %v", grid.ErrOutOfBounds, []int(p), m.extents)
		}
		idx += c * m.strides[d]
	}

	return m.inside[idx], nil
}

// Count returns the number of object cells.
// Complexity: O(cells).
func (m *Mask) Count() int {
	n := 0
	for _, in := range m.inside {
		if in {
			n++
		}
	}

	return n
}

// Inside returns a copy of the full object/background buffer in
// row-major order.
func (m *Mask) Inside() []bool {
	out := make([]bool, len(m.inside))
	copy(out, m.inside)

	return out
}
