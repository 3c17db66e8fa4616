// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "pdf-bounds-matching/internal/document"

// ExactStrategy keeps only spans whose normalized text equals the
// normalized entity. The configured threshold is ignored: an entity either
// matches verbatim, case-insensitively, or it does not.
type ExactStrategy struct{}

func (ExactStrategy) Name() string { return StrategyExact }

// Match returns every exact occurrence of entity in document reading order.
// All results carry confidence 100 and no context.
func (ExactStrategy) Match(entity string, corpus *document.Corpus, cfg Config) ([]Result, error) {
	words, err := entityWords(entity)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var results []Result
	for _, span := range BuildSpans(corpus, len(words)) {
		if ExactScore(span.Text, entity) == 100 {
			results = append(results, Result{Span: span, Confidence: 100})
		}
	}
	// BuildSpans already emits in reading order; no re-ranking since all
	// kept results share confidence 100.
	return results, nil
}
