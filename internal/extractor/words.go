// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"sort"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"

	"pdf-bounds-matching/internal/document"
)

// spaceGapRatio is the fraction of the font size a horizontal gap between
// fragments must exceed before it separates two words.
const spaceGapRatio = 0.2

const defaultFontSize = 12.0

// wordBuilder accumulates the fragments of one word.
type wordBuilder struct {
	text           strings.Builder
	x0, x1, y0, y1 float64
}

// rowWords merges the positioned text fragments of one row into
// whitespace-delimited words. Fragment coordinates come in PDF bottom-up
// units; boxes are flipped to top-based page coordinates using pageHeight.
// Fragments can carry several characters, so widths inside a fragment are
// apportioned per rune.
func rowWords(elements []pdf.Text, page int, pageHeight float64) []document.Word {
	if len(elements) == 0 {
		return nil
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var words []document.Word
	var current *wordBuilder

	flush := func() {
		if current == nil {
			return
		}
		words = append(words, document.Word{
			Text: current.text.String(),
			X0:   current.x0,
			Y0:   current.y0,
			X1:   current.x1,
			Y1:   current.y1,
			Page: page,
		})
		current = nil
	}

	previousEnd := 0.0
	for idx, element := range sorted {
		fontSize := element.FontSize
		if fontSize <= 0 {
			fontSize = defaultFontSize
		}

		if idx > 0 && current != nil && element.X-previousEnd > fontSize*spaceGapRatio {
			flush()
		}
		previousEnd = element.X + element.W

		runes := []rune(element.S)
		if len(runes) == 0 {
			continue
		}

		top := pageHeight - element.Y - fontSize
		bottom := pageHeight - element.Y
		runeWidth := element.W / float64(len(runes))

		x := element.X
		for _, r := range runes {
			if unicode.IsSpace(r) {
				flush()
			} else {
				if current == nil {
					current = &wordBuilder{x0: x, x1: x + runeWidth, y0: top, y1: bottom}
				}
				current.text.WriteRune(r)
				if x+runeWidth > current.x1 {
					current.x1 = x + runeWidth
				}
				if top < current.y0 {
					current.y0 = top
				}
				if bottom > current.y1 {
					current.y1 = bottom
				}
			}
			x += runeWidth
		}
	}
	flush()

	return words
}

// averageY is the mean baseline of a row's fragments, used to order rows
// top to bottom.
func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, element := range elements {
		total += element.Y
	}
	return total / float64(len(elements))
}
