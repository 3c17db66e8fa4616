// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "pdf-bounds-matching/internal/document"

// Match locates entity in corpus using the named strategy and returns the
// ordered results. It is deterministic for identical inputs and recomputes
// from the corpus on every call; callers wanting memoization layer it above
// the engine and invalidate whenever the corpus changes.
func Match(entity, strategyName string, corpus *document.Corpus, cfg Config) ([]Result, error) {
	if _, err := entityWords(entity); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	strategy, err := New(strategyName)
	if err != nil {
		return nil, err
	}
	return strategy.Match(entity, corpus, cfg)
}
