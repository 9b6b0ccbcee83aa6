// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model:
//   • Erdős–Rényi style over ordered pairs: each (i,j), i≠j, is kept
//     independently with probability p. i→i is sampled only under WithSelfLoops.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p = 0 emits nothing; p = 1 emits every candidate without consuming the RNG.
//
// Complexity:
//   • Time: O(n²) trials.
//
// Determinism:
//   • Trials in row-major order (i asc, then j asc). The Bernoulli draw for a
//     pair precedes its weight draw; both come from the same cfg.rng.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparseN   = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor sampling a sparse random digraph on n nodes.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validation priority: size, probability, rng.
		if err := checkMin(methodRandomSparse, "n", n, minRandomSparseN); err != nil {
			return err
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%g not in [%g,%g]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if p > probMin && p < probMax && cfg.rng == nil {
			return fmt.Errorf("%s: p=%g requires WithSeed or WithRand: %w",
				methodRandomSparse, p, ErrNeedRandSource)
		}
		if p == probMin {
			return nil
		}

		// 2) Trials.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := emit(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
