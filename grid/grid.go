package grid

import (
	"fmt"
)

// New constructs a Grid from per-dimension extents and a flat row-major
// sample buffer. The buffer is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if extents is empty or any extent is < 1,
// ErrSizeMismatch if len(data) differs from the product of extents.
// Complexity: O(cells) time and memory.
func New(extents []int, data []float64) (*Grid, error) {
	// 1) Validate extents: at least one dimension, every extent ≥ 1.
	if len(extents) == 0 {
		return nil, ErrEmptyGrid
	}
	total := 1
	for d, e := range extents {
		if e < 1 {
			return nil, fmt.Errorf("%w: dimension %d has extent %d", ErrEmptyGrid, d, e)
		}
		total *= e
	}

	// 2) Validate the sample buffer length against the extents.
	if len(data) != total {
		return nil, fmt.Errorf("%w: have %d samples, extents require %d", ErrSizeMismatch, len(data), total)
	}

	// 3) Deep-copy extents and data to prevent external mutation.
	ext := make([]int, len(extents))
	copy(ext, extents)
	buf := make([]float64, total)
	copy(buf, data)

	// 4) Precompute row-major strides: stride[d] = product of extents after d.
	strides := make([]int, len(ext))
	s := 1
	for d := len(ext) - 1; d >= 0; d-- {
		strides[d] = s
		s *= ext[d]
	}

	g := &Grid{
		extents: ext,
		strides: strides,
		data:    buf,
	}

	// 5) Precompute neighbor offset tables for both connectivities.
	g.fullOffsets = enumerateOffsets(len(ext))
	g.faceOffsets = filterFaceOffsets(g.fullOffsets)

	return g, nil
}

// From2D constructs a 2D Grid from a non-empty rectangular row-major
// slice of rows: values[y][x] becomes the sample at Pt(y, x).
// Returns ErrEmptyGrid for an empty input, ErrNonRectangular if row
// lengths differ.
// Complexity: O(W×H) time and memory.
func From2D(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	flat := make([]float64, 0, h*w)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), w)
		}
		flat = append(flat, row...)
	}

	return New([]int{h, w}, flat)
}

// Dims returns the number of dimensions.
func (g *Grid) Dims() int { return len(g.extents) }

// Len returns the total cell count (product of extents).
func (g *Grid) Len() int { return len(g.data) }

// Extents returns a copy of the per-dimension extents.
func (g *Grid) Extents() []int {
	ext := make([]int, len(g.extents))
	copy(ext, g.extents)

	return ext
}

// InBounds reports whether p lies within the grid extents.
// A Point of the wrong dimensionality is never in bounds.
// Complexity: O(dims).
func (g *Grid) InBounds(p Point) bool {
	if len(p) != len(g.extents) {
		return false
	}
	for d, c := range p {
		if c < 0 || c >= g.extents[d] {
			return false
		}
	}

	return true
}

// Index maps a coordinate tuple to its row-major flat index.
// Returns ErrOutOfBounds if p lies outside the extents.
// Complexity: O(dims).
func (g *Grid) Index(p Point) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v for extents %v", ErrOutOfBounds, []int(p), g.extents)
	}
	idx := 0
	for d, c := range p {
		idx += c * g.strides[d]
	}

	return idx, nil
}

// Coordinate converts a row-major flat index back to a coordinate tuple.
// The index is assumed valid (0 ≤ idx < Len); Coordinate is the inverse
// of Index on that range.
// Complexity: O(dims).
func (g *Grid) Coordinate(idx int) Point {
	p := make(Point, len(g.extents))
	for d, s := range g.strides {
		p[d] = idx / s
		idx %= s
	}

	return p
}

// At returns the sample at coordinate p.
// Returns ErrOutOfBounds if p lies outside the extents.
func (g *Grid) At(p Point) (float64, error) {
	idx, err := g.Index(p)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// AtIndex returns the sample at a row-major flat index. The index must
// satisfy 0 ≤ idx < Len; out-of-range indices panic as a slice access.
// Complexity: O(1).
func (g *Grid) AtIndex(idx int) float64 { return g.data[idx] }

// Offsets returns the precomputed coordinate-delta table for the given
// connectivity. The returned slice is shared; callers must not mutate it.
// Complexity: O(1).
func (g *Grid) Offsets(conn Connectivity) [][]int {
	if conn == Full {
		return g.fullOffsets
	}

	return g.faceOffsets
}

// Neighbors appends the in-bounds neighbor indices of the cell at flat
// index idx to buf[:0] and returns the result. Passing a reused buffer
// avoids per-call allocation in traversal loops; pass nil to allocate.
// Complexity: O(dims·d), d = neighbor count for conn.
func (g *Grid) Neighbors(idx int, conn Connectivity, buf []int) []int {
	buf = buf[:0]
	offsets := g.Offsets(conn)

	// Decode idx into coordinates once, then test each offset per dimension.
	// Index deltas alone would wrap across grid edges, so the bound check
	// must be coordinate-wise.
	var c, nIdx int
	var ok bool
	p := g.Coordinate(idx)
	for _, off := range offsets {
		ok = true
		nIdx = 0
		for d, delta := range off {
			c = p[d] + delta
			if c < 0 || c >= g.extents[d] {
				ok = false

				break
			}
			nIdx += c * g.strides[d]
		}
		if ok {
			buf = append(buf, nIdx)
		}
	}

	return buf
}

// enumerateOffsets lists every coordinate delta in {−1,0,1}^dims except
// the zero vector, in lexicographic order: the Full connectivity table.
func enumerateOffsets(dims int) [][]int {
	total := 1
	for d := 0; d < dims; d++ {
		total *= 3
	}
	offsets := make([][]int, 0, total-1)
	for k := 0; k < total; k++ {
		off := make([]int, dims)
		zero := true
		rest := k
		for d := dims - 1; d >= 0; d-- {
			off[d] = rest%3 - 1
			rest /= 3
			if off[d] != 0 {
				zero = false
			}
		}
		if !zero {
			offsets = append(offsets, off)
		}
	}

	return offsets
}

// filterFaceOffsets keeps the deltas with exactly one nonzero component:
// the Face connectivity table (2·dims entries).
func filterFaceOffsets(full [][]int) [][]int {
	face := make([][]int, 0, 2*len(full[0]))
	for _, off := range full {
		nonzero := 0
		for _, delta := range off {
			if delta != 0 {
				nonzero++
			}
		}
		if nonzero == 1 {
			face = append(face, off)
		}
	}

	return face
}
