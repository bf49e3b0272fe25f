package fuzzyconn

// ApplyThreshold derives a binary mask from a connectedness scene: a
// cell is object iff its strength is at least t. Pure function of its
// inputs with no hidden state; safe for concurrent callers since the
// scene is only read.
//
// Every seed cell carries strength MaxStrength, so seeds are object
// under every representable threshold. Threshold 0 marks the whole grid
// as object; threshold MaxStrength keeps only seeds and cells reached
// through perfect-affinity paths.
//
// Complexity: O(cells) time and memory.
func ApplyThreshold(s *Scene, t uint16) *Mask {
	inside := make([]bool, len(s.strength))
	for i, v := range s.strength {
		inside[i] = v >= t
	}

	return &Mask{
		extents: s.Extents(),
		strides: append([]int(nil), s.strides...),
		inside:  inside,
	}
}
