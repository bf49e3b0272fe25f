// Package fuzzyconn segments an object out of a scalar grid by growing a
// region from seed cells under fuzzy connectedness: the strength of the
// best path between two cells, where a path is as strong as its weakest
// pairwise affinity link.
//
// What:
//
//   - Segmenter orchestrates one segmentation: parameters → seeds →
//     Run → connectedness Scene → threshold → binary Mask.
//   - The propagation engine is a maximin (widest-path) Dijkstra variant:
//     a max-priority queue settles cells in decreasing strength order,
//     relaxing neighbors with candidate = min(settled strength, affinity).
//   - ApplyThreshold derives a binary Mask from a Scene as a pure
//     function; SetThreshold reuses the cached Scene and never
//     re-propagates.
//
// Why:
//
//   - Fuzzy connectedness assumes connectedness between cells of one
//     object is significantly higher than across objects, so a single
//     threshold on the scene separates the seeded object from the rest.
//   - Propagation dominates cost while thresholding is linear, and the
//     working pattern is "segment once, threshold repeatedly" — hence the
//     hard split between Run and SetThreshold.
//
// Algorithm (per Run):
//
//  1. Scene ← 0 everywhere; Scene[seed] ← MaxStrength; push all seeds.
//  2. Pop the strongest pending (cell, strength); discard if the cell is
//     already settled (stale lazy-decrease-key entry).
//  3. Settle the cell: its Scene value is final.
//  4. For each unsettled in-bounds neighbor n:
//     candidate = min(strength, affinity(cell, n));
//     if candidate improves Scene[n], record it and push (n, candidate).
//  5. Stop when the queue empties; cells unreachable from every seed
//     keep strength 0.
//
// The final Scene equals the exhaustive max-min path optimum from the
// seed set, independent of tie-breaking among equal-priority entries.
//
// Complexity:
//
//   - Run:            O(cells·d·log(cells·d)), d = neighbor count; the
//     queue may hold O(cells·d) entries due to stale duplicate pushes.
//   - ApplyThreshold: O(cells).
//   - Memory:         O(cells·d) worst case for the queue, O(cells) for
//     scene and settled flags.
//
// Options:
//
//   - WithConnectivity: grid.Face (default) or grid.Full adjacency.
//   - WithModel: replace the default Gaussian affinity model.
//
// Errors:
//
//   - ErrNilGrid:          NewSegmenter received a nil grid.
//   - ErrNoParameters:     Run before SetParameters (and no custom model).
//   - ErrNoSeeds:          Run with an empty seed set.
//   - ErrSeedOutOfBounds:  a seed coordinate lies outside the grid.
//   - ErrNoScene:          SetThreshold or Output before a successful Run.
//
// Detailed information about the algorithm family can be found in:
// "Fuzzy Connectedness and Object Definition: Theory, Algorithms, and
// Applications in Image Segmentation", J. Udupa and S. Samarasekera,
// Graphical Models and Image Processing, Vol.58, No.3, pp 246-261, 1996.
package fuzzyconn
