// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "fmt"

// Per-strategy defaults. The contextual threshold is deliberately lower than
// the fuzzy one: the attached context lets a consumer judge borderline
// matches manually.
const (
	DefaultFuzzyThreshold      = 80.0
	DefaultContextualThreshold = 70.0
	DefaultContextWindow       = 3
)

// Config controls strategy behavior. A Config is fully resolved: callers
// that want per-strategy defaults obtain them from DefaultConfig before
// calling Match.
type Config struct {
	// Threshold is the minimum confidence a span must score to be kept,
	// in [0,100]. The exact strategy ignores it.
	Threshold float64

	// ContextWindow is the number of words of surrounding text to include
	// on each side of a match. Only the contextual strategy reads it.
	ContextWindow int
}

// Validate reports whether the configuration is usable. Bounds are checked
// explicitly because the [0,100] clamp policy is what the threshold
// comparisons rely on.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("%w: threshold %.2f outside [0,100]", ErrInvalidConfig, c.Threshold)
	}
	if c.ContextWindow < 0 {
		return fmt.Errorf("%w: context window %d is negative", ErrInvalidConfig, c.ContextWindow)
	}
	return nil
}

// DefaultConfig returns the default configuration for the named strategy.
// Unknown names get the exact strategy's configuration; New rejects them
// separately.
func DefaultConfig(strategyName string) Config {
	switch strategyName {
	case StrategyFuzzy:
		return Config{Threshold: DefaultFuzzyThreshold, ContextWindow: DefaultContextWindow}
	case StrategyContextual:
		return Config{Threshold: DefaultContextualThreshold, ContextWindow: DefaultContextWindow}
	default:
		return Config{Threshold: 100, ContextWindow: DefaultContextWindow}
	}
}
