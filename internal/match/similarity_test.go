// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "testing"

func TestExactScore(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "hello", "hello", 100},
		{"case insensitive", "Hello", "hello", 100},
		{"whitespace collapsed", "machine  learning", "machine learning", 100},
		{"different", "hello", "world", 0},
		{"punctuation matters", "hello", "hello.", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExactScore(tc.a, tc.b); got != tc.want {
				t.Errorf("ExactScore(%q, %q) = %f, want %f", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSimilarityScore_Symmetric(t *testing.T) {
	forward := SimilarityScore("color", "colour")
	backward := SimilarityScore("colour", "color")

	if forward != backward {
		t.Errorf("score not symmetric: %f vs %f", forward, backward)
	}
	if forward <= 80 || forward >= 100 {
		t.Errorf("expected color/colour score in (80,100), got %f", forward)
	}
}

func TestSimilarityScore_Identical(t *testing.T) {
	if got := SimilarityScore("machine learning", "Machine Learning"); got != 100 {
		t.Errorf("expected 100 for case-folded identical strings, got %f", got)
	}
}

func TestSimilarityScore_BothEmpty(t *testing.T) {
	if got := SimilarityScore("", ""); got != 100 {
		t.Errorf("expected 100 for two empty strings, got %f", got)
	}
	if got := SimilarityScore("   ", " "); got != 100 {
		t.Errorf("expected 100 for two whitespace-only strings, got %f", got)
	}
}

func TestSimilarityScore_OneEmpty(t *testing.T) {
	if got := SimilarityScore("hello", ""); got != 0 {
		t.Errorf("expected 0 against an empty string, got %f", got)
	}
}

func TestSimilarityScore_Bounds(t *testing.T) {
	cases := []struct {
		a, b string
	}{
		{"completely", "different"},
		{"a", "zzzzzzzzzzzzzzzz"},
		{"machne learing", "machine learning"},
	}
	for _, tc := range cases {
		got := SimilarityScore(tc.a, tc.b)
		if got < 0 || got > 100 {
			t.Errorf("SimilarityScore(%q, %q) = %f outside [0,100]", tc.a, tc.b, got)
		}
	}
}

func TestEditDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "kitten", "kitten", 0},
		{"classic", "kitten", "sitting", 3},
		{"insert", "cat", "cart", 1},
		{"delete", "cart", "cat", 1},
		{"substitute", "cat", "cut", 1},
		{"empty left", "", "abc", 3},
		{"empty right", "abc", "", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := editDistance([]rune(tc.a), []rune(tc.b)); got != tc.want {
				t.Errorf("editDistance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestClampConfidence(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-5, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{101, 100},
	}
	for _, tc := range cases {
		if got := clampConfidence(tc.in); got != tc.want {
			t.Errorf("clampConfidence(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}
