package grid

// Components finds all contiguous regions of the full grid domain under
// the given connectivity. Returns a slice of components; each component
// is a slice of row-major cell indices in BFS discovery order.
//
// A grid is a single component under Face or Full connectivity whenever
// every extent is at least one, so Components on an unrestricted domain
// always returns exactly one component; ComponentsWhere with a predicate
// is the useful variant for split domains.
//
// Time:   O(cells·dims·d), d = neighbor count.
// Memory: O(cells) for visited flags and output.
func (g *Grid) Components(conn Connectivity) [][]int {
	return g.ComponentsWhere(func(float64) bool { return true }, conn)
}

// ComponentsWhere finds contiguous regions among cells whose sample
// satisfies pred, under the given connectivity. Cells failing pred are
// excluded from every component and never traversed.
//
// To convert an index back to coordinates, use Coordinate(idx).
//
// Time:   O(cells·dims·d).
// Memory: O(cells).
func (g *Grid) ComponentsWhere(pred func(float64) bool, conn Connectivity) [][]int {
	total := len(g.data)
	seen := make([]bool, total)
	var comps [][]int
	nbuf := make([]int, 0, len(g.Offsets(conn)))

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !pred(g.data[i0]) {
			continue
		}
		// BFS to collect the component containing i0.
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			nbuf = g.Neighbors(u, conn, nbuf)
			for _, v := range nbuf {
				if seen[v] || !pred(g.data[v]) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
