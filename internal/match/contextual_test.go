// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"
	"testing"
)

func TestContextualStrategy_WindowTruncatedByAvailability(t *testing.T) {
	// Two words before the match, five after, window of three: the context
	// must hold exactly the two available preceding words and three
	// following words.
	corpus := testCorpus([]string{
		"one", "two", "TARGET", "a", "b", "c", "d", "e",
	})

	results, err := ContextualStrategy{}.Match("TARGET", corpus,
		Config{Threshold: 70, ContextWindow: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	ctx := results[0].Context
	if want := "one two TARGET a b c"; !strings.Contains(ctx, want) {
		t.Errorf("expected context to contain %q, got %q", want, ctx)
	}
	if strings.Contains(ctx, "d") {
		t.Errorf("context includes word beyond window: %q", ctx)
	}
	// Preceding side exhausted the page: no marker. Following side was cut
	// while more words remain: marker present.
	if strings.HasPrefix(ctx, ellipsis) {
		t.Errorf("unexpected leading ellipsis at page edge: %q", ctx)
	}
	if !strings.HasSuffix(ctx, ellipsis) {
		t.Errorf("expected trailing ellipsis for truncated window: %q", ctx)
	}
}

func TestContextualStrategy_FullPageContext(t *testing.T) {
	corpus := testCorpus([]string{"before", "TARGET", "after"})

	results, err := ContextualStrategy{}.Match("TARGET", corpus,
		Config{Threshold: 70, ContextWindow: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if got, want := results[0].Context, "before TARGET after"; got != want {
		t.Errorf("expected context %q, got %q", want, got)
	}
}

func TestContextualStrategy_ContextNeverCrossesPages(t *testing.T) {
	corpus := testCorpus(
		[]string{"page0", "words"},
		[]string{"TARGET"},
		[]string{"page2", "words"},
	)

	results, err := ContextualStrategy{}.Match("TARGET", corpus,
		Config{Threshold: 70, ContextWindow: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	ctx := results[0].Context
	if strings.Contains(ctx, "page0") || strings.Contains(ctx, "page2") {
		t.Errorf("context crossed a page boundary: %q", ctx)
	}
	if ctx != "TARGET" {
		t.Errorf("expected bare span text as context, got %q", ctx)
	}
}

func TestContextualStrategy_ZeroWindow(t *testing.T) {
	corpus := testCorpus([]string{"before", "TARGET", "after"})

	results, err := ContextualStrategy{}.Match("TARGET", corpus,
		Config{Threshold: 70, ContextWindow: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// A zero window still truncates on both sides while words remain.
	if got, want := results[0].Context, "... TARGET ..."; got != want {
		t.Errorf("expected context %q, got %q", want, got)
	}
}

func TestContextualStrategy_FuzzyScoring(t *testing.T) {
	corpus := testCorpus([]string{"Machine", "learning", "is", "transforming", "industries"})

	results, err := ContextualStrategy{}.Match("machne learing", corpus,
		Config{Threshold: 60, ContextWindow: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	// Confidence must equal the fuzzy strategy's for the same span: context
	// is informational only and never boosts the score.
	fuzzyResults, err := FuzzyStrategy{}.Match("machne learing", corpus, Config{Threshold: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Confidence != fuzzyResults[0].Confidence {
		t.Errorf("contextual confidence %f differs from fuzzy %f",
			results[0].Confidence, fuzzyResults[0].Confidence)
	}
}

func TestContextualStrategy_SortedByConfidence(t *testing.T) {
	corpus := testCorpus([]string{"lending", "x", "learning"})

	results, err := ContextualStrategy{}.Match("learning", corpus,
		Config{Threshold: 40, ContextWindow: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Confidence > results[i-1].Confidence {
			t.Errorf("results not sorted by descending confidence")
		}
	}
}
