// Package affinity defines the pairwise similarity model that drives
// fuzzy-connectedness propagation, plus estimators for its statistical
// parameters.
//
// What:
//
//   - Params bundles the five scalar statistics of the model: object
//     intensity mean/variance, neighbor-difference mean/variance, and a
//     blend weight between the two terms.
//   - Model is the pluggable scoring strategy: Affinity(a, b) maps two
//     neighboring sample values to a strength in [0, MaxStrength].
//   - Gaussian is the default Model: each divergence term is scored
//     against a Gaussian kernel and the two scores are blended by Weight.
//   - Estimate and EstimateRegion derive Params from sample sets or from
//     axis-aligned boxes around seed points, using gonum/stat.
//
// Why:
//
//   - Propagation strength between neighbors should be high when both
//     cells look like the object (average near the object mean) and when
//     they look like each other (difference near the typical difference).
//   - Separating the model behind an interface leaves room for alternate
//     affinity formulas without touching the propagation engine.
//
// Semantics:
//
//   - Symmetry: Affinity(a, b) == Affinity(b, a) for every model.
//   - Monotonicity: Gaussian strength never increases as either
//     divergence term grows in magnitude.
//   - Zero variance collapses the corresponding Gaussian term to a step
//     function: exact match scores 1, everything else 0. Never an error.
//   - Weight == 1 uses the object term alone; the difference term (and
//     DiffVar) is not evaluated at all.
//
// Errors:
//
//   - ErrNonFinite:     a parameter is NaN or ±Inf.
//   - ErrBadWeight:     Weight outside [0, 1].
//   - ErrBadRadius:     negative sampling radius.
//   - ErrTooFewSamples: fewer than two samples in an estimation set.
package affinity
