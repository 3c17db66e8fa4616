// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import "strings"

// normalize case-folds s and collapses whitespace runs to single spaces, so
// that span joining does not penalize legitimate multi-word matches.
// Punctuation stays part of token identity.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ExactScore returns 100 when the normalized forms of a and b are equal,
// else 0.
func ExactScore(a, b string) float64 {
	if normalize(a) == normalize(b) {
		return 100
	}
	return 0
}

// SimilarityScore returns a normalized edit-distance ratio between a and b
// in [0,100]: 100 * (1 - distance/maxLen). It is symmetric and
// case-insensitive. Two empty strings score 100.
//
// The distance is plain Levenshtein: a transposition counts as two
// operations.
func SimilarityScore(a, b string) float64 {
	na := []rune(normalize(a))
	nb := []rune(normalize(b))

	maxLen := len(na)
	if len(nb) > maxLen {
		maxLen = len(nb)
	}
	if maxLen == 0 {
		return 100
	}

	ratio := 100 * (1 - float64(editDistance(na, nb))/float64(maxLen))
	return clampConfidence(ratio)
}

// editDistance computes the Levenshtein distance between two rune slices
// using a rolling pair of rows.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// clampConfidence bounds v to [0,100] inclusive.
func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
