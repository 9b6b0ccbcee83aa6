// Package builder provides reusable “functional‐options”‐style constructors
// for deterministic weighted digraph fixtures on core.Graph. It serves tests,
// benchmarks and the `lvpath gen` command, keeping topology emission,
// weight distributions and randomness in one place.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(n, gopts, bopts, cons...): create an n-node graph and apply constructors in order.
//     – Build(n, c, opts...): single-constructor shorthand.
//   - Topologies (Constructor implementations):
//     – Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed, WithRand, WithWeightFn, WithBidirectional, WithSelfLoops.
//   - Arc-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:      constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:     fixed user-provided value.
//     – UniformWeightFn:      uniform ∼U[min,max).
//     – UniformIntWeightFn:   integer uniform ∼U{lo..hi}.
//     – ExponentialWeightFn:  rounded exponential ∼Exp(rate).
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical arc lists.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Runtime parameter errors are sentinels (ErrTooFewNodes, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
//   - Every emitted weight passes core.CheckWeight.
package builder
