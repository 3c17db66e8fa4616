// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "pdf-bounds-matching/internal/document"

// FuzzyStrategy scores each candidate span with the normalized
// edit-distance ratio and keeps those at or above the threshold.
type FuzzyStrategy struct{}

func (FuzzyStrategy) Name() string { return StrategyFuzzy }

// Match returns spans scoring at least cfg.Threshold, sorted by descending
// confidence with reading order breaking ties. No context is attached.
func (FuzzyStrategy) Match(entity string, corpus *document.Corpus, cfg Config) ([]Result, error) {
	words, err := entityWords(entity)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var results []Result
	for _, span := range BuildSpans(corpus, len(words)) {
		confidence := SimilarityScore(span.Text, entity)
		if confidence >= cfg.Threshold {
			results = append(results, Result{Span: span, Confidence: confidence})
		}
	}

	sortResults(results, true)
	return results, nil
}
