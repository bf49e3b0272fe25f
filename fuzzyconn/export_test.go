package fuzzyconn

// Runs reports the number of completed propagation runs. Test-only
// bridge: it lets black-box tests prove that SetThreshold reuses the
// cached Scene instead of re-propagating.
func (s *Segmenter) Runs() int { return s.runs }
