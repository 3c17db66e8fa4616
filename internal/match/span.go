// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strings"

	"pdf-bounds-matching/internal/document"
)

// Span is a contiguous run of words on a single page considered as one
// match candidate. Text joins the constituent words with single spaces,
// preserving their original casing; Box is the union of their boxes.
type Span struct {
	Words []document.Word
	Box   document.Box
	Text  string
	Page  int
	Start int // index of the first word within its page
}

// BuildSpans returns every contiguous run of wordCount words on each page
// of the corpus, in document reading order. Runs never cross a page
// boundary. A wordCount of zero or less yields no spans.
func BuildSpans(corpus *document.Corpus, wordCount int) []Span {
	if corpus == nil || wordCount <= 0 {
		return nil
	}

	var spans []Span
	for _, page := range corpus.Pages() {
		words := corpus.PageWords(page)
		for i := 0; i+wordCount <= len(words); i++ {
			spans = append(spans, newSpan(words[i:i+wordCount], page, i))
		}
	}
	return spans
}

func newSpan(words []document.Word, page, start int) Span {
	box := words[0].Box()
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
		box = box.Union(w.Box())
	}
	return Span{
		Words: words,
		Box:   box,
		Text:  strings.Join(texts, " "),
		Page:  page,
		Start: start,
	}
}
