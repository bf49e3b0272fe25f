// Package fuzzyseg segments objects out of in-memory scalar grids
// (images, volumes, lattices) by fuzzy connectedness — growing a region
// from seed cells where every path is as strong as its weakest
// affinity link.
//
// 🚀 What is fuzzyseg?
//
//	A pure-Go segmentation engine built from three small packages:
//		• grid/      — immutable n-dimensional scalar field: flat row-major
//		  storage, Face/Full connectivity, neighbor enumeration, components
//		• affinity/  — Gaussian pairwise similarity model + parameter
//		  estimation from seed regions (gonum/stat)
//		• fuzzyconn/ — the propagation engine: maximin (widest-path)
//		  Dijkstra over the grid, quantized connectedness scene, cheap
//		  re-thresholding into binary masks
//
// ✨ Why choose fuzzyseg?
//
//   - Segment once, threshold repeatedly — the expensive propagation is
//     decoupled from the linear thresholding pass
//   - Exact semantics — the scene equals the brute-force max-min path
//     optimum, independent of exploration order
//   - Dimension-agnostic — the same engine runs 1D signals, 2D images,
//     and 3D volumes
//   - Pluggable — the affinity model is a single-method interface with
//     a Gaussian default
//
// Quick ASCII example (5×5 image, seed ◉, dark pit ▓ excluded):
//
//	◉····        ■■■■■
//	·····        ■■■■■
//	··▓··   ⇒    ■■□■■
//	·····        ■■■■■
//	·····        ■■■■■
//
// Dive into the package docs of fuzzyconn for the algorithm, affinity
// for the model mathematics, and grid for the storage layout.
//
//	go get github.com/katalvlaran/fuzzyseg
package fuzzyseg
