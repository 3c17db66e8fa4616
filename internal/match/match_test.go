// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestMatch_EmptyEntity(t *testing.T) {
	corpus := testCorpus([]string{"word"})

	cases := []struct {
		name     string
		entity   string
		strategy string
	}{
		{"empty exact", "", StrategyExact},
		{"whitespace fuzzy", "   ", StrategyFuzzy},
		{"tabs contextual", "\t\n", StrategyContextual},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Match(tc.entity, tc.strategy, corpus, DefaultConfig(tc.strategy))
			if !errors.Is(err, ErrEmptyEntity) {
				t.Errorf("expected ErrEmptyEntity, got %v", err)
			}
		})
	}
}

func TestMatch_InvalidConfig(t *testing.T) {
	corpus := testCorpus([]string{"word"})

	cases := []struct {
		name string
		cfg  Config
	}{
		{"threshold above 100", Config{Threshold: 150}},
		{"negative threshold", Config{Threshold: -1}},
		{"negative context window", Config{Threshold: 80, ContextWindow: -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Match("word", StrategyFuzzy, corpus, tc.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestMatch_UnknownStrategy(t *testing.T) {
	corpus := testCorpus([]string{"word"})

	_, err := Match("word", "semantic", corpus, Config{Threshold: 80})
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestMatch_NoMatchesIsNotAnError(t *testing.T) {
	corpus := testCorpus([]string{"completely", "unrelated", "words"})

	results, err := Match("quantum computing", StrategyFuzzy, corpus, Config{Threshold: 80})
	if err != nil {
		t.Fatalf("no matches must be a successful empty result, got error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected zero results, got %d", len(results))
	}
}

func TestMatch_Deterministic(t *testing.T) {
	corpus := testCorpus(
		[]string{"Machine", "learning", "is", "transforming", "industries"},
		[]string{"machine", "learning", "again"},
	)

	for _, strategy := range Names() {
		first, err := Match("machine learning", strategy, corpus, DefaultConfig(strategy))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", strategy, err)
		}
		second, err := Match("machine learning", strategy, corpus, DefaultConfig(strategy))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", strategy, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: results differ across identical calls", strategy)
		}
	}
}

func TestMatch_ConcurrentCallsShareCorpus(t *testing.T) {
	corpus := testCorpus([]string{"Machine", "learning", "is", "transforming", "industries"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		strategy := Names()[i%3]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Match("machine learning", strategy, corpus, DefaultConfig(strategy)); err != nil {
				t.Errorf("%s: unexpected error: %v", strategy, err)
			}
		}()
	}
	wg.Wait()
}

func TestDefaultConfig(t *testing.T) {
	if cfg := DefaultConfig(StrategyFuzzy); cfg.Threshold != DefaultFuzzyThreshold {
		t.Errorf("expected fuzzy default %f, got %f", DefaultFuzzyThreshold, cfg.Threshold)
	}
	if cfg := DefaultConfig(StrategyContextual); cfg.Threshold != DefaultContextualThreshold {
		t.Errorf("expected contextual default %f, got %f", DefaultContextualThreshold, cfg.Threshold)
	}
	if cfg := DefaultConfig(StrategyContextual); cfg.ContextWindow != DefaultContextWindow {
		t.Errorf("expected context window %d, got %d", DefaultContextWindow, cfg.ContextWindow)
	}
}
