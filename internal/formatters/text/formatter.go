// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package text provides a human-readable text formatter for match results.
package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"pdf-bounds-matching/internal/formatters"
	"pdf-bounds-matching/internal/match"
)

func init() {
	formatters.Register(&Formatter{})
}

// Formatter renders results as a readable report for the terminal.
type Formatter struct{}

// Name returns the formatter identifier.
func (f *Formatter) Name() string {
	return "text"
}

// Description returns a human-readable description.
func (f *Formatter) Description() string {
	return "Human-readable text output"
}

// FileExtension returns the file extension for this format.
func (f *Formatter) FileExtension() string {
	return ".txt"
}

// Format renders the results as text.
func (f *Formatter) Format(results []match.Result, options formatters.Options) (string, error) {
	color.NoColor = options.NoColor

	var sb strings.Builder

	header := color.New(color.Bold)
	sb.WriteString(header.Sprintf("Matches for %q (strategy: %s)\n", options.Entity, options.Strategy))
	sb.WriteString(fmt.Sprintf("Found %d match(es)\n\n", len(results)))

	if len(results) == 0 {
		sb.WriteString("No matches found.\n")
		return sb.String(), nil
	}

	for i, result := range results {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, result.Span.Text))
		sb.WriteString(fmt.Sprintf("   Confidence: %s\n", confidenceString(result.Confidence)))
		sb.WriteString(fmt.Sprintf("   Page: %d\n", result.Span.Page))

		if options.Verbose {
			box := result.Span.Box
			sb.WriteString(fmt.Sprintf("   Bounds: (%.2f, %.2f) - (%.2f, %.2f)\n",
				box.X0, box.Y0, box.X1, box.Y1))
			sb.WriteString(fmt.Sprintf("   Words: %d (starting at index %d)\n",
				len(result.Span.Words), result.Span.Start))
		}

		if result.Context != "" {
			sb.WriteString(fmt.Sprintf("   Context: %s\n", result.Context))
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// confidenceString colors a confidence value by bucket. High confidence is
// the desirable outcome here, so it gets green.
func confidenceString(confidence float64) string {
	text := fmt.Sprintf("%.1f", confidence)
	switch {
	case confidence >= 90:
		return color.GreenString(text)
	case confidence >= 60:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}
