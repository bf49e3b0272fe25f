package fuzzyconn

import (
	"container/heap"

	"github.com/katalvlaran/fuzzyseg/affinity"
	"github.com/katalvlaran/fuzzyseg/grid"
)

// propagate computes the connectedness scene for the given seed cells
// (flat indices) over g with the given model and connectivity. The
// returned Scene holds, for every cell, the maximin path strength from
// the seed set: the maximum over all paths of the minimum affinity along
// the path, quantized to [0, MaxStrength].
//
// This is a widest-path Dijkstra variant: instead of summing edge costs
// and extracting the minimum, it takes the min of edge affinities along
// a path and extracts the maximum. The standard optimality argument
// carries over because min(s, a) ≤ s: no pop can ever enable a stronger
// candidate than itself, so the first settle of a cell is its optimum.
//
// Complexity: O(cells·d·log(cells·d)) time, O(cells·d) queue memory
// worst case under lazy-decrease-key duplicates.
func propagate(g *grid.Grid, seeds []int, model affinity.Model, conn grid.Connectivity) *Scene {
	// 1) Allocate per-run state. Nothing is shared across runs.
	scene := newScene(g)
	r := &runner{
		g:       g,
		model:   model,
		conn:    conn,
		scene:   scene.strength,
		settled: make([]bool, g.Len()),
		pq:      make(cellPQ, 0, len(seeds)),
		nbuf:    make([]int, 0, len(g.Offsets(conn))),
	}

	// 2) Seeds start at full strength and seed the queue.
	r.init(seeds)

	// 3) Settle cells in decreasing strength order until the queue drains.
	r.process()

	return scene
}

// runner holds the mutable state for a single propagation run.
type runner struct {
	g       *grid.Grid        // input samples; read-only during the run
	model   affinity.Model    // pairwise affinity scoring
	conn    grid.Connectivity // adjacency used for relaxation
	scene   []uint16          // cell → best known strength (final once settled)
	settled []bool            // cell → strength is final
	pq      cellPQ            // max-heap of pending (cell, strength) candidates
	nbuf    []int             // reusable neighbor index buffer
}

// init sets every seed to MaxStrength and pushes it onto the heap.
// Duplicate seeds collapse naturally: the second pop is stale.
func (r *runner) init(seeds []int) {
	heap.Init(&r.pq)
	for _, s := range seeds {
		r.scene[s] = MaxStrength
		heap.Push(&r.pq, cellItem{idx: s, strength: MaxStrength})
	}
}

// process is the core loop: pop the globally strongest pending cell,
// discard stale entries, settle, relax neighbors. See package doc for
// the numbered algorithm.
func (r *runner) process() {
	var item cellItem
	for r.pq.Len() > 0 {
		// 1) Pop the strongest pending candidate.
		item = heap.Pop(&r.pq).(cellItem)

		// 2) Skip stale entries: a settled cell already carries a strength
		//    ≥ any candidate still queued for it.
		if r.settled[item.idx] {
			continue
		}

		// 3) Settle: scene[idx] was set to item.strength at push time and
		//    no stronger candidate can appear later.
		r.settled[item.idx] = true

		// 4) Relax all unsettled neighbors.
		r.relax(item.idx, item.strength)
	}
}

// relax offers each unsettled neighbor n of cell u the candidate
// strength min(s, affinity(u, n)) and records improvements.
//
// Assumes scene[u] == s is final before the call.
func (r *runner) relax(u int, s uint16) {
	vu := r.g.AtIndex(u)
	var cand uint16
	r.nbuf = r.g.Neighbors(u, r.conn, r.nbuf)
	for _, n := range r.nbuf {
		if r.settled[n] {
			continue
		}

		// A path through u is as strong as its weakest link.
		cand = minStrength(s, quantize(r.model.Affinity(vu, r.g.AtIndex(n))))

		// Only strict improvements are pushed; equal candidates would be
		// pure heap noise.
		if cand > r.scene[n] {
			r.scene[n] = cand
			// Lazy decrease-key: push a fresh entry and let the stale one
			// be discarded when popped.
			heap.Push(&r.pq, cellItem{idx: n, strength: cand})
		}
	}
}

// quantize clamps a model score to the scene range and truncates it to
// the 16-bit strength scale.
func quantize(a float64) uint16 {
	if a <= 0 {
		return 0
	}
	if a >= float64(MaxStrength) {
		return MaxStrength
	}

	return uint16(a)
}

// minStrength returns the smaller of two strengths.
func minStrength(a, b uint16) uint16 {
	if a < b {
		return a
	}

	return b
}

// cellItem represents a cell and a candidate connectedness strength.
type cellItem struct {
	idx      int    // row-major cell index
	strength uint16 // candidate maximin strength
}

// cellPQ is a max-heap of cellItem ordered by strength descending.
// Under lazy decrease-key, outdated entries for an already-settled cell
// remain in the heap and are discarded when popped.
type cellPQ []cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: larger strength → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].strength > pq[j].strength }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }

// Pop removes and returns the last element from the heap's backing
// slice. Called by heap.Pop after it moves the strongest item there.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
