// Package grid provides an immutable n-dimensional scalar field with
// row-major flat storage, coordinate/index conversion, bounded neighbor
// enumeration, and connected-component analysis.
//
// What:
//
//   - Grid wraps a flat []float64 sample buffer with per-dimension extents
//     and precomputed strides; the input is deep-copied on construction.
//   - Face or Full connectivity selects orthogonal-only (2·dims) or all
//     surrounding (3^dims−1) neighbors; offset tables are precomputed.
//   - Neighbors enumerates in-bounds neighbor indices without allocating
//     when the caller supplies a reusable buffer.
//   - Components and ComponentsWhere identify contiguous regions of the
//     domain (optionally restricted by a cell predicate) via BFS.
//
// Why:
//
//   - Segmentation engines need fast, allocation-free adjacency over large
//     in-memory sample grids (images, volumes, lattices).
//   - Component analysis explains unreachable regions: a cell with no
//     connectivity to any seed can never acquire propagation strength.
//
// Complexity:
//
//   - Index/Coordinate:     O(dims).
//   - Neighbors:            O(dims·d), d = neighbor count (2·dims or 3^dims−1).
//   - Components:           O(cells·dims·d), Memory: O(cells).
//
// Errors:
//
//   - ErrEmptyGrid:      no dimensions, or some extent is zero or negative.
//   - ErrSizeMismatch:   data length does not equal the product of extents.
//   - ErrNonRectangular: rows of a 2D input have differing lengths.
//   - ErrOutOfBounds:    a coordinate lies outside the grid extents.
//
// See: fuzzyconn for the propagation engine built on top of this package.
package grid
