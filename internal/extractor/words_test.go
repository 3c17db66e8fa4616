// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fragment(s string, x, w, y, fontSize float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w, Y: y, FontSize: fontSize}
}

func TestRowWords_GapSeparatesWords(t *testing.T) {
	// Two fragments 10 units apart with a 12pt font: gap exceeds the
	// space threshold, so they become separate words.
	elements := []pdf.Text{
		fragment("Hello", 0, 30, 700, 12),
		fragment("world", 40, 30, 700, 12),
	}

	words := rowWords(elements, 0, 792)
	require.Len(t, words, 2)
	assert.Equal(t, "Hello", words[0].Text)
	assert.Equal(t, "world", words[1].Text)
}

func TestRowWords_AdjacentFragmentsMerge(t *testing.T) {
	// Fragments abutting within the gap threshold belong to one word.
	elements := []pdf.Text{
		fragment("Hel", 0, 18, 700, 12),
		fragment("lo", 18.5, 12, 700, 12),
	}

	words := rowWords(elements, 0, 792)
	require.Len(t, words, 1)
	assert.Equal(t, "Hello", words[0].Text)
	assert.InDelta(t, 0, words[0].X0, 0.01)
	assert.InDelta(t, 30.5, words[0].X1, 0.01)
}

func TestRowWords_WhitespaceInsideFragment(t *testing.T) {
	elements := []pdf.Text{
		fragment("Hello world", 0, 66, 700, 12),
	}

	words := rowWords(elements, 0, 792)
	require.Len(t, words, 2)
	assert.Equal(t, "Hello", words[0].Text)
	assert.Equal(t, "world", words[1].Text)
	assert.Less(t, words[0].X1, words[1].X0)
}

func TestRowWords_CoordinateFlip(t *testing.T) {
	// Baseline at Y=700 on a 792pt page: top-based box sits at
	// 792-700-12=80 through 792-700=92.
	elements := []pdf.Text{
		fragment("word", 10, 24, 700, 12),
	}

	words := rowWords(elements, 3, 792)
	require.Len(t, words, 1)
	assert.InDelta(t, 80, words[0].Y0, 0.01)
	assert.InDelta(t, 92, words[0].Y1, 0.01)
	assert.Equal(t, 3, words[0].Page)
	assert.Less(t, words[0].Y0, words[0].Y1)
	assert.Less(t, words[0].X0, words[0].X1)
}

func TestRowWords_UnsortedInputSortedByX(t *testing.T) {
	elements := []pdf.Text{
		fragment("second", 100, 36, 700, 12),
		fragment("first", 0, 30, 700, 12),
	}

	words := rowWords(elements, 0, 792)
	require.Len(t, words, 2)
	assert.Equal(t, "first", words[0].Text)
	assert.Equal(t, "second", words[1].Text)
}

func TestRowWords_EmptyAndBlankFragments(t *testing.T) {
	assert.Nil(t, rowWords(nil, 0, 792))

	elements := []pdf.Text{
		fragment("   ", 0, 18, 700, 12),
		fragment("", 20, 0, 700, 12),
	}
	assert.Empty(t, rowWords(elements, 0, 792))
}

func TestRowWords_ZeroFontSizeUsesDefault(t *testing.T) {
	elements := []pdf.Text{
		fragment("word", 0, 24, 700, 0),
	}

	words := rowWords(elements, 0, 792)
	require.Len(t, words, 1)
	assert.InDelta(t, 92, words[0].Y1, 0.01)
	assert.InDelta(t, 92-defaultFontSize, words[0].Y0, 0.01)
}

func TestAverageY(t *testing.T) {
	elements := []pdf.Text{
		fragment("a", 0, 5, 100, 12),
		fragment("b", 10, 5, 200, 12),
	}
	assert.InDelta(t, 150, averageY(elements), 0.01)
	assert.Equal(t, 0.0, averageY(nil))
}

func TestNewExtractor_Defaults(t *testing.T) {
	e := NewExtractor(0, 0)
	assert.Equal(t, 50, e.maxPages)
	assert.Equal(t, 4, e.workers)
}

func TestPageHeight(t *testing.T) {
	heights := pageHeight(nil, 1)
	assert.Equal(t, defaultPageHeight, heights)
}
