// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package json provides a JSON formatter for match results.
package json

import (
	"encoding/json"

	"pdf-bounds-matching/internal/formatters"
	"pdf-bounds-matching/internal/match"
)

func init() {
	formatters.Register(&Formatter{})
}

// Formatter renders results as indented JSON.
type Formatter struct{}

// Name returns the formatter identifier.
func (f *Formatter) Name() string {
	return "json"
}

// Description returns a human-readable description.
func (f *Formatter) Description() string {
	return "JSON output for machine consumption"
}

// FileExtension returns the file extension for this format.
func (f *Formatter) FileExtension() string {
	return ".json"
}

type output struct {
	Entity     string        `json:"entity"`
	Strategy   string        `json:"strategy"`
	MatchCount int           `json:"match_count"`
	Matches    []matchRecord `json:"matches"`
}

type matchRecord struct {
	Match      boundedText `json:"match"`
	Confidence float64     `json:"confidence"`
	Context    *string     `json:"context"`
}

type boundedText struct {
	Text string  `json:"text"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Page int     `json:"page"`
}

// Format renders the results as JSON.
func (f *Formatter) Format(results []match.Result, options formatters.Options) (string, error) {
	out := output{
		Entity:     options.Entity,
		Strategy:   options.Strategy,
		MatchCount: len(results),
		Matches:    make([]matchRecord, 0, len(results)),
	}

	for _, result := range results {
		record := matchRecord{
			Match: boundedText{
				Text: result.Span.Text,
				X0:   result.Span.Box.X0,
				Y0:   result.Span.Box.Y0,
				X1:   result.Span.Box.X1,
				Y1:   result.Span.Box.Y1,
				Page: result.Span.Page,
			},
			Confidence: result.Confidence,
		}
		if result.Context != "" {
			context := result.Context
			record.Context = &context
		}
		out.Matches = append(out.Matches, record)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
