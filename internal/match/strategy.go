// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package match implements the multi-strategy engine for locating entity
// strings in a page-positioned word corpus. Strategies are pure functions of
// the entity, corpus, and configuration: they hold no mutable state, so one
// instance may be shared across concurrent calls.
package match

import (
	"fmt"
	"sort"
	"strings"

	"pdf-bounds-matching/internal/document"
)

// Registered strategy names. Registry lookup is case-sensitive.
const (
	StrategyExact      = "exact"
	StrategyFuzzy      = "fuzzy"
	StrategyContextual = "contextual"
)

// Strategy locates occurrences of an entity within a corpus and returns
// them ranked. Implementations must not mutate the corpus.
type Strategy interface {
	Name() string
	Match(entity string, corpus *document.Corpus, cfg Config) ([]Result, error)
}

// Result is a qualifying span with its confidence score. Confidence is
// always in [0,100] and at least the configured threshold. Context is empty
// unless the strategy attaches surrounding text.
type Result struct {
	Span       Span
	Confidence float64
	Context    string
}

// entityWords tokenizes the entity by whitespace, rejecting empty or
// whitespace-only input: that signals caller misuse, not a legitimate
// "no match" outcome.
func entityWords(entity string) ([]string, error) {
	words := strings.Fields(entity)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyEntity, entity)
	}
	return words, nil
}

// sortResults orders results for deterministic output. With byConfidence
// set, results sort by descending confidence with reading order (page
// ascending, then start offset) breaking ties; otherwise pure reading
// order.
func sortResults(results []Result, byConfidence bool) {
	sort.SliceStable(results, func(i, j int) bool {
		if byConfidence && results[i].Confidence != results[j].Confidence {
			return results[i].Confidence > results[j].Confidence
		}
		if results[i].Span.Page != results[j].Span.Page {
			return results[i].Span.Page < results[j].Span.Page
		}
		return results[i].Span.Start < results[j].Span.Start
	})
}

// ParamInfo describes one recognized configuration key for a strategy.
type ParamInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     any    `json:"default"`
	Description string `json:"description"`
}

// StrategyInfo is static metadata about a registered strategy.
type StrategyInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  []ParamInfo `json:"parameters"`
}

// Strategies returns metadata for every registered strategy. The listing is
// static; no matching work is performed.
func Strategies() []StrategyInfo {
	return []StrategyInfo{
		{
			Name:        StrategyExact,
			Description: "Exact string matching, case-insensitive",
			Parameters:  []ParamInfo{},
		},
		{
			Name:        StrategyFuzzy,
			Description: "Fuzzy matching using Levenshtein distance",
			Parameters: []ParamInfo{
				{Name: "threshold", Type: "float", Default: DefaultFuzzyThreshold,
					Description: "Minimum confidence score (0-100)"},
			},
		},
		{
			Name:        StrategyContextual,
			Description: "Fuzzy matching with surrounding text attached to each result",
			Parameters: []ParamInfo{
				{Name: "threshold", Type: "float", Default: DefaultContextualThreshold,
					Description: "Minimum confidence score (0-100)"},
				{Name: "context_window", Type: "int", Default: DefaultContextWindow,
					Description: "Number of surrounding words to include on each side"},
			},
		},
	}
}
