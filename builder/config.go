// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng           = nil                      (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn          (constant DefaultEdgeWeight)
//   • bidirectional = false                    (forward arcs only)
//   • loops         = false                    (RandomSparse skips i→i)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for arcs.
	weightFn WeightFn
	// Emit v→u after every u→v.
	bidirectional bool
	// Allow RandomSparse to sample i→i.
	loops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:           nil,
		weightFn:      DefaultWeightFn,
		bidirectional: false,
		loops:         false,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
