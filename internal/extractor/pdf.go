// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor reads word-level positioned text from PDF files,
// producing the corpus the matching engine consumes. Words are emitted in
// reading order: rows top to bottom, fragments left to right within a row.
package extractor

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/panjf2000/ants/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdf-bounds-matching/internal/document"
	"pdf-bounds-matching/internal/observability"
)

// defaultPageHeight is used for the coordinate flip when a page's media
// box cannot be read (US Letter in points).
const defaultPageHeight = 792.0

// Extractor reads positioned words from PDF files. Pages are processed
// concurrently on a bounded worker pool.
type Extractor struct {
	maxPages int
	workers  int
	observer *observability.Observer
}

// NewExtractor creates an extractor processing at most maxPages pages per
// document with the given worker count. Non-positive values fall back to
// defaults.
func NewExtractor(maxPages, workers int) *Extractor {
	if maxPages <= 0 {
		maxPages = 50
	}
	if workers <= 0 {
		workers = 4
	}
	return &Extractor{maxPages: maxPages, workers: workers}
}

// SetObserver sets the observability component.
func (e *Extractor) SetObserver(observer *observability.Observer) {
	e.observer = observer
}

// Validate checks that the file is a well-formed PDF before extraction.
func (e *Extractor) Validate(filePath string) error {
	if err := api.ValidateFile(filePath, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("invalid PDF: %w", err)
	}
	return nil
}

// PageCount returns the document's page count.
func (e *Extractor) PageCount(filePath string) (int, error) {
	count, err := api.PageCountFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("error counting pages: %w", err)
	}
	return count, nil
}

// ExtractWords extracts the positioned words of every page in reading
// order. Pages beyond the configured maximum are skipped; pages that fail
// to parse yield no words rather than failing the document. Cancelling ctx
// stops page scheduling and returns the context error.
func (e *Extractor) ExtractWords(ctx context.Context, filePath string) (*document.Corpus, error) {
	finish := e.observer.StartTiming("pdf_extractor", "extract_words")

	// Page heights drive the flip from PDF bottom-up coordinates to
	// top-based boxes. Missing dimensions degrade to a default height,
	// not an error.
	dims, dimsErr := api.PageDimsFile(filePath)
	if dimsErr != nil {
		dims = nil
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > e.maxPages {
		pageCount = e.maxPages
	}

	pageWords := make([][]document.Word, pageCount)

	pool, err := ants.NewPool(e.workers)
	if err != nil {
		finish(false, map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			finish(false, map[string]any{"error": err.Error()})
			return nil, err
		}
		pageNum := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			pageWords[pageNum-1] = extractPageWords(r.Page(pageNum), pageNum-1, pageHeight(dims, pageNum))
		}
		if err := pool.Submit(task); err != nil {
			// Pool rejected the task; run it inline.
			task()
		}
	}
	wg.Wait()

	var words []document.Word
	for _, pw := range pageWords {
		words = append(words, pw...)
	}

	finish(true, map[string]any{"pages": pageCount, "words": len(words)})
	return document.NewCorpus(words), nil
}

func pageHeight(dims []types.Dim, pageNum int) float64 {
	if pageNum-1 < len(dims) && dims[pageNum-1].Height > 0 {
		return dims[pageNum-1].Height
	}
	return defaultPageHeight
}

// extractPageWords pulls the words of a single page.
func extractPageWords(p pdf.Page, page int, height float64) []document.Word {
	if p.V.IsNull() {
		return nil
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return nil
	}

	sortedRows := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sortedRows = append(sortedRows, row)
		}
	}
	// PDF Y grows bottom-up, so reading order is descending Y.
	sort.Slice(sortedRows, func(i, j int) bool {
		return averageY(sortedRows[i].Content) > averageY(sortedRows[j].Content)
	})

	var words []document.Word
	for _, row := range sortedRows {
		words = append(words, rowWords(row.Content, page, height)...)
	}
	return words
}
