// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"

	"pdf-bounds-matching/internal/document"
)

// ellipsis marks a context window cut off by its size limit while more
// words remain on the page. No marker appears at a page edge: the policy is
// to show what is available, never to fabricate truncation.
const ellipsis = "..."

// ContextualStrategy scores spans exactly like the fuzzy strategy but
// attaches the surrounding words to each result, so a downstream consumer
// can judge whether a candidate is the intended occurrence rather than an
// accidental lexical coincidence. Context is informational only: it never
// changes the confidence, which stays on the same scale as the fuzzy
// strategy so results from either remain comparable.
type ContextualStrategy struct{}

func (ContextualStrategy) Name() string { return StrategyContextual }

// Match returns spans scoring at least cfg.Threshold with up to
// cfg.ContextWindow words of context on each side, sorted by descending
// confidence with reading order breaking ties.
func (ContextualStrategy) Match(entity string, corpus *document.Corpus, cfg Config) ([]Result, error) {
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
		if confidence < cfg.Threshold {
			continue
		}
		results = append(results, Result{
			Span:       span,
			Confidence: confidence,
			Context:    buildContext(corpus, span, cfg.ContextWindow),
		})
	}

	sortResults(results, true)
	return results, nil
}

// buildContext joins up to window words before and after the span on the
// same page. Context never crosses a page boundary; at a page edge it
// includes as many words as exist.
func buildContext(corpus *document.Corpus, span Span, window int) string {
	pageWords := corpus.PageWords(span.Page)

	start := span.Start - window
	if start < 0 {
		start = 0
	}
	end := span.Start + len(span.Words) + window
	if end > len(pageWords) {
		end = len(pageWords)
	}

	parts := make([]string, 0, end-start+2)
	if start > 0 {
		parts = append(parts, ellipsis)
	}
	for _, w := range pageWords[start:end] {
		parts = append(parts, w.Text)
	}
	if end < len(pageWords) {
		parts = append(parts, ellipsis)
	}

	return strings.Join(parts, " ")
}
