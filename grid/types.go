// Package grid defines core types and sentinel errors for the grid
// subpackage of github.com/katalvlaran/fuzzyseg.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the grid has no dimensions or a non-positive extent.
	ErrEmptyGrid = errors.New("grid: every dimension must have extent of at least one")
	// ErrSizeMismatch indicates the sample buffer length does not match the extents.
	ErrSizeMismatch = errors.New("grid: data length must equal the product of extents")
	// ErrNonRectangular indicates rows of differing lengths in a 2D input.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal-only (Face)
// or including all diagonal neighbors (Full).
//
// In two dimensions Face is the classic 4-connectivity (N, E, S, W)
// and Full is 8-connectivity; in d dimensions Face yields 2·d neighbors
// and Full yields 3^d−1.
type Connectivity int

const (
	// Face connects cells sharing a (d−1)-dimensional face: one coordinate
	// differs by ±1, all others are equal.
	Face Connectivity = iota
	// Full connects all cells of the surrounding unit hypercube: every
	// coordinate differs by at most 1, not all equal.
	Full
)

// Point is an integer coordinate tuple indexing one grid cell.
// Its length must equal the grid's dimension count.
type Point []int

// Pt builds a Point from the given coordinates.
func Pt(coords ...int) Point {
	p := make(Point, len(coords))
	copy(p, coords)

	return p
}

// Grid is an immutable n-dimensional scalar field. Samples are stored
// flat in row-major order (the last coordinate varies fastest); extents
// and strides are fixed at construction.
type Grid struct {
	extents []int     // extent per dimension, all ≥ 1
	strides []int     // row-major stride per dimension
	data    []float64 // flat sample buffer, len == product of extents

	faceOffsets [][]int // precomputed Face coordinate deltas (2·dims)
	fullOffsets [][]int // precomputed Full coordinate deltas (3^dims−1)
}
