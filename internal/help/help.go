// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"pdf-bounds-matching/internal/match"
)

// System manages help content for the application
type System struct {
	noColor bool
	colors  map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	// Disable colors if requested
	if noColor {
		color.NoColor = true
	}

	return &System{
		noColor: noColor,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("PDF Bounds Matching - Entity Location Tool")
	fmt.Println("==========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  bounds-matching --file <path-to-pdf> --entity <text> [options]")
	fmt.Println("  bounds-matching --web [--port <port>]  # Web server mode")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --file\t<path>\tPath to the PDF file to search (required for matching)")
	fmt.Fprintln(w, "  --entity\t<text>\tEntity text to locate in the document (required for matching)")
	fmt.Fprintln(w, "  --strategy\t<name>\tMatching strategy: exact, fuzzy, contextual (default: exact)")
	fmt.Fprintln(w, "  --threshold\t<value>\tMinimum confidence threshold 0-100 (default depends on strategy)")
	fmt.Fprintln(w, "  --context-window\t<n>\tWords of context on each side for contextual matches (default: 3)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json (default: text)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --extract-entities\t\tExtract entities from the document with an LLM instead of matching")
	fmt.Fprintln(w, "  --entity-types\t<types>\tComma-separated entity types to extract (e.g. person,organization)")
	fmt.Fprintln(w, "  --list-strategies\t\tList available matching strategies and exit")
	fmt.Fprintln(w, "  --verbose\t\tDisplay bounding boxes and word details for each match")
	fmt.Fprintln(w, "  --debug\t\tEnable debug logging of extraction and matching flow")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --web\t\tStart web server mode instead of CLI matching")
	fmt.Fprintln(w, "  --port\t<port>\tPort for web server (default: 8080, only used with --web)")
	fmt.Fprintln(w, "  --help\t\tShow this help message")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	fmt.Println("  Basic Usage:")
	h.colors["example"].Println("    bounds-matching --file report.pdf --entity \"John Smith\"")
	h.colors["example"].Println("    bounds-matching --file report.pdf --entity \"Acme Corp\" --strategy fuzzy --threshold 75")
	fmt.Println("  Contextual Matching:")
	h.colors["example"].Println("    bounds-matching --file report.pdf --entity \"Jane Doe\" --strategy contextual --context-window 5")
	fmt.Println("  Entity Extraction:")
	h.colors["example"].Println("    bounds-matching --file report.pdf --extract-entities")
	h.colors["example"].Println("    bounds-matching --file report.pdf --extract-entities --entity-types person,organization")

	fmt.Println()
	h.colors["header"].Println("Web Server Examples:")
	h.colors["example"].Println("  bounds-matching --web  # Start web server on default port")
	h.colors["example"].Println("  bounds-matching --web --port 9000  # Start web server on custom port")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Default config: ~/.config/bounds-matching/config.yaml")
	fmt.Println("  Project config: bounds-matching.yaml or .bounds-matching.yaml (in current directory)")
	fmt.Println("  Environment: OPENAI_API_KEY - API key for LLM entity extraction")
}

// ShowStrategiesHelp displays information about all available strategies
func (h *System) ShowStrategiesHelp() {
	h.colors["title"].Println("Available Matching Strategies")
	fmt.Println("=============================")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  STRATEGY\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  --------\t-----------")
	for _, info := range match.Strategies() {
		fmt.Fprintf(w, "  %s\t%s\n", info.Name, info.Description)
	}
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("PARAMETERS:")
	for _, info := range match.Strategies() {
		h.colors["subtitle"].Printf("  %s\n", info.Name)
		if len(info.Parameters) == 0 {
			fmt.Println("    (no parameters)")
			continue
		}
		pw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, param := range info.Parameters {
			fmt.Fprintf(pw, "    %s\t%s (default: %v)\n", param.Name, param.Description, param.Default)
		}
		pw.Flush()
	}

	fmt.Println()
	h.colors["header"].Println("EXAMPLES:")
	h.colors["example"].Println("  bounds-matching --file report.pdf --entity \"John Smith\" --strategy exact")
	h.colors["example"].Println("  bounds-matching --file report.pdf --entity \"Jon Smith\" --strategy fuzzy --threshold 70")
	h.colors["example"].Println("  bounds-matching --file report.pdf --entity \"John Smith\" --strategy contextual --context-window 4")
}
