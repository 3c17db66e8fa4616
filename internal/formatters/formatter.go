// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders match results for the CLI and the web export
// endpoint. Concrete formatters register themselves with the default
// registry from their package init.
package formatters

import (
	"fmt"
	"strings"

	"pdf-bounds-matching/internal/match"
)

// Options defines configuration options for formatters.
type Options struct {
	Entity   string // the entity that was searched for
	Strategy string // the strategy that produced the results
	Verbose  bool   // whether to display detailed information
	NoColor  bool   // whether to disable colored output
}

// Formatter renders an ordered result list into one output format.
type Formatter interface {
	Format(results []match.Result, options Options) (string, error)
	Name() string
	Description() string
	FileExtension() string
}

// Registry holds all registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names.
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the names in the default registry.
func List() []string {
	return DefaultRegistry.List()
}

// Export formats results with the named formatter from the default
// registry.
func Export(format string, results []match.Result, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(List(), ", "))
	}
	return formatter.Format(results, options)
}

// FormatInfo provides metadata about a formatter for web export.
type FormatInfo struct {
	Name      string
	Extension string
	MimeType  string
}

// GetFormatInfo returns metadata about a specific formatter.
func GetFormatInfo(name string) FormatInfo {
	formatter, exists := Get(name)
	if !exists {
		return FormatInfo{}
	}

	info := FormatInfo{
		Name:      formatter.Name(),
		Extension: formatter.FileExtension(),
	}
	switch name {
	case "json":
		info.MimeType = "application/json"
	case "text":
		info.MimeType = "text/plain"
	default:
		info.MimeType = "application/octet-stream"
	}
	return info
}

// ExportForWeb formats results and returns the content with its MIME type
// and a download filename.
func ExportForWeb(format string, results []match.Result, options Options) (content, mimeType, filename string, err error) {
	content, err = Export(format, results, options)
	if err != nil {
		return "", "", "", err
	}
	info := GetFormatInfo(format)
	return content, info.MimeType, "match-results" + info.Extension, nil
}
