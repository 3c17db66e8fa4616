// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"sort"
	"strings"
)

// Box is an axis-aligned bounding rectangle in page coordinates.
// Coordinates are top-based: Y0 is the top edge and Y1 the bottom edge,
// with X0 < X1 and Y0 < Y1.
type Box struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Union returns the smallest box covering both b and other.
func (b Box) Union(other Box) Box {
	u := b
	if other.X0 < u.X0 {
		u.X0 = other.X0
	}
	if other.Y0 < u.Y0 {
		u.Y0 = other.Y0
	}
	if other.X1 > u.X1 {
		u.X1 = other.X1
	}
	if other.Y1 > u.Y1 {
		u.Y1 = other.Y1
	}
	return u
}

// Word is a single token extracted from a page with its bounding box,
// punctuation included. Page numbers are zero-based.
type Word struct {
	Text string  `json:"text"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Page int     `json:"page"`
}

// Box returns the word's bounding box.
func (w Word) Box() Box {
	return Box{X0: w.X0, Y0: w.Y0, X1: w.X1, Y1: w.Y1}
}

// Corpus is a page-partitioned sequence of positioned words for one
// document. Within a page, words are in reading order as supplied by the
// extractor; the corpus does not re-sort or validate that order. A corpus
// is never mutated after construction, so it is safe to share across
// concurrent match calls.
type Corpus struct {
	words []Word
	pages map[int][]Word
	order []int
}

// NewCorpus builds a corpus from words already in reading order. The input
// slice is retained; callers must not modify it afterwards.
func NewCorpus(words []Word) *Corpus {
	c := &Corpus{
		words: words,
		pages: make(map[int][]Word),
	}
	for _, w := range words {
		c.pages[w.Page] = append(c.pages[w.Page], w)
	}
	for page := range c.pages {
		c.order = append(c.order, page)
	}
	sort.Ints(c.order)
	return c
}

// Words returns all words in document reading order.
func (c *Corpus) Words() []Word {
	return c.words
}

// Pages returns the page numbers present in the corpus, ascending.
func (c *Corpus) Pages() []int {
	return c.order
}

// PageWords returns the words on the given page in reading order.
func (c *Corpus) PageWords(page int) []Word {
	return c.pages[page]
}

// WordCount returns the total number of words in the corpus.
func (c *Corpus) WordCount() int {
	return len(c.words)
}

// PageCount returns the number of pages that contain at least one word.
func (c *Corpus) PageCount() int {
	return len(c.order)
}

// FullText reassembles the corpus text, words joined by single spaces and
// pages separated by newlines.
func (c *Corpus) FullText() string {
	var pages []string
	for _, page := range c.order {
		texts := make([]string, 0, len(c.pages[page]))
		for _, w := range c.pages[page] {
			texts = append(texts, w.Text)
		}
		pages = append(pages, strings.Join(texts, " "))
	}
	return strings.Join(pages, "\n")
}
