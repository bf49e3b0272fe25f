package fuzzyconn_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fuzzyseg/fuzzyconn"
	"github.com/katalvlaran/fuzzyseg/grid"
)

// BenchmarkRun measures a full propagation over a randomly generated
// 1000×1000 grid with intensities around 128.
// Complexity: O(cells·d·log(cells·d))
func BenchmarkRun(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 100 + float64(rng.Intn(57)) // 100..156
	}
	g, err := grid.New([]int{n, n}, data)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	s, err := fuzzyconn.NewSegmenter(g)
	if err != nil {
		b.Fatalf("setup NewSegmenter failed: %v", err)
	}
	if err = s.SetParameters(128, 400, 0, 200, 0.5); err != nil {
		b.Fatalf("setup SetParameters failed: %v", err)
	}
	if err = s.SetSeeds(grid.Pt(n/2, n/2)); err != nil {
		b.Fatalf("setup SetSeeds failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = s.Run(); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkSetThreshold measures re-thresholding against the cached
// scene of a 1000×1000 run; this is the cheap path of the pipeline.
// Complexity: O(cells)
func BenchmarkSetThreshold(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(7))
	data := make([]float64, n*n)
	for i := range data {
		data[i] = 100 + float64(rng.Intn(57))
	}
	g, err := grid.New([]int{n, n}, data)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	s, err := fuzzyconn.NewSegmenter(g)
	if err != nil {
		b.Fatalf("setup NewSegmenter failed: %v", err)
	}
	if err = s.SetParameters(128, 400, 0, 200, 0.5); err != nil {
		b.Fatalf("setup SetParameters failed: %v", err)
	}
	if err = s.SetSeeds(grid.Pt(0, 0)); err != nil {
		b.Fatalf("setup SetSeeds failed: %v", err)
	}
	if err = s.Run(); err != nil {
		b.Fatalf("setup Run failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = s.SetThreshold(uint16(i % 65536)); err != nil {
			b.Fatalf("SetThreshold failed: %v", err)
		}
	}
}
