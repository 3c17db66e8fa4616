// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"pdf-bounds-matching/internal/config"
	"pdf-bounds-matching/internal/document"
	"pdf-bounds-matching/internal/entity"
	"pdf-bounds-matching/internal/extractor"
	"pdf-bounds-matching/internal/formatters"
	"pdf-bounds-matching/internal/help"
	"pdf-bounds-matching/internal/match"
	"pdf-bounds-matching/internal/observability"
	"pdf-bounds-matching/internal/version"
	"pdf-bounds-matching/internal/web"

	// Import formatters to register them
	_ "pdf-bounds-matching/internal/formatters/json"
	_ "pdf-bounds-matching/internal/formatters/text"
)

// configFlags holds command line flag values
type configFlags struct {
	strategy      string
	threshold     float64
	contextWindow int
	format        string
	verbose       bool
	debug         bool
	noColor       bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	strategy      string
	threshold     float64
	thresholdSet  bool
	contextWindow int
	format        string
	verbose       bool
	debug         bool
	noColor       bool
}

// resolveConfiguration resolves final configuration values from config file
// and command line flags. Flags set on the command line win over the file.
func resolveConfiguration(cfg *config.Config, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Strategy
	final.strategy = match.StrategyExact // default fallback
	if cfg != nil && cfg.Defaults.Strategy != "" {
		final.strategy = cfg.Defaults.Strategy
	}
	if isFlagSet("strategy") && flags.strategy != "" {
		final.strategy = flags.strategy
	}

	// Threshold. Zero in the config file means "use the strategy default".
	if cfg != nil && cfg.Defaults.Threshold > 0 {
		final.threshold = cfg.Defaults.Threshold
		final.thresholdSet = true
	}
	if isFlagSet("threshold") {
		final.threshold = flags.threshold
		final.thresholdSet = true
	}

	// Context window
	final.contextWindow = match.DefaultContextWindow
	if cfg != nil && cfg.Defaults.ContextWindow > 0 {
		final.contextWindow = cfg.Defaults.ContextWindow
	}
	if isFlagSet("context-window") {
		final.contextWindow = flags.contextWindow
	}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if isFlagSet("format") && flags.format != "" {
		final.format = flags.format
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	return final
}

// matchConfig turns the resolved values into an engine configuration for
// the chosen strategy.
func (f *finalConfiguration) matchConfig() match.Config {
	cfg := match.DefaultConfig(f.strategy)
	if f.thresholdSet {
		cfg.Threshold = f.threshold
	}
	cfg.ContextWindow = f.contextWindow
	return cfg
}

func main() {
	inputFile := flag.String("file", "", "Path to the PDF file to search")
	entityText := flag.String("entity", "", "Entity text to locate in the document")
	strategyName := flag.String("strategy", "", "Matching strategy: exact, fuzzy, contextual (default: exact)")
	threshold := flag.Float64("threshold", 0, "Minimum confidence threshold 0-100 (default depends on strategy)")
	contextWindow := flag.Int("context-window", match.DefaultContextWindow, "Words of context on each side for contextual matches")
	outputFormat := flag.String("format", "", "Output format: text, json (default: text)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	extractEntities := flag.Bool("extract-entities", false, "Extract entities from the document with an LLM instead of matching")
	entityTypes := flag.String("entity-types", "", "Comma-separated entity types to extract (e.g. person,organization)")
	listStrategies := flag.Bool("list-strategies", false, "List available matching strategies and exit")
	verbose := flag.Bool("verbose", false, "Display bounding boxes and word details for each match")
	debug := flag.Bool("debug", false, "Enable debug logging of extraction and matching flow")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	webMode := flag.Bool("web", false, "Start web server mode instead of CLI matching")
	webPort := flag.String("port", "", "Port for web server (default: 8080)")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Load configuration before anything that depends on it
	configPath := *configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	finalConfig := resolveConfiguration(cfg, &configFlags{
		strategy:      *strategyName,
		threshold:     *threshold,
		contextWindow: *contextWindow,
		format:        *outputFormat,
		verbose:       *verbose,
		debug:         *debug,
		noColor:       *noColor,
	})

	// Disable colors when output is not a terminal
	if !isTerminal(os.Stdout) {
		finalConfig.noColor = true
	}

	if *showHelp {
		help.NewSystem(finalConfig.noColor).ShowGeneralHelp()
		return
	}
	if *listStrategies {
		help.NewSystem(finalConfig.noColor).ShowStrategiesHelp()
		return
	}

	observer := newObserver(finalConfig)

	if *webMode {
		port := *webPort
		if port == "" {
			port = cfg.Server.Port
		}
		entities, err := newEntityExtractor(cfg, observer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: entity extraction disabled: %v\n", err)
		}
		server := web.NewWebServer(port, cfg, entities, observer)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "Run with --help for usage information")
		os.Exit(1)
	}

	if *extractEntities {
		if err := runEntityExtraction(cfg, finalConfig, observer, *inputFile, *entityTypes); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *entityText == "" {
		fmt.Fprintln(os.Stderr, "Error: --entity is required (or use --extract-entities)")
		fmt.Fprintln(os.Stderr, "Run with --help for usage information")
		os.Exit(1)
	}

	if err := runMatch(cfg, finalConfig, observer, *inputFile, *entityText); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMatch extracts the document's words and locates the entity.
func runMatch(cfg *config.Config, finalConfig *finalConfiguration, observer *observability.Observer, filePath, entityText string) error {
	corpus, err := extractCorpus(cfg, observer, filePath)
	if err != nil {
		return err
	}
	observer.Debugf("extracted %d words across %d pages", corpus.WordCount(), corpus.PageCount())

	results, err := match.Match(entityText, finalConfig.strategy, corpus, finalConfig.matchConfig())
	if err != nil {
		return err
	}

	output, err := formatters.Export(finalConfig.format, results, formatters.Options{
		Entity:   entityText,
		Strategy: finalConfig.strategy,
		Verbose:  finalConfig.verbose,
		NoColor:  finalConfig.noColor,
	})
	if err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

// runEntityExtraction extracts the document's text and asks the LLM for
// entities, grouped by type.
func runEntityExtraction(cfg *config.Config, finalConfig *finalConfiguration, observer *observability.Observer, filePath, typeList string) error {
	entities, err := newEntityExtractor(cfg, observer)
	if err != nil {
		return err
	}

	corpus, err := extractCorpus(cfg, observer, filePath)
	if err != nil {
		return err
	}

	var types []string
	for _, t := range strings.Split(typeList, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	named, err := entities.NamedEntities(context.Background(), corpus.FullText(), types)
	if err != nil {
		return err
	}

	if finalConfig.format == "json" {
		data, err := json.MarshalIndent(named, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for entityType, values := range named {
		fmt.Printf("%s:\n", entityType)
		for _, value := range values {
			fmt.Printf("  %s\n", value)
		}
	}
	return nil
}

// extractCorpus validates the PDF and extracts its positioned words.
func extractCorpus(cfg *config.Config, observer *observability.Observer, filePath string) (*document.Corpus, error) {
	ext := extractor.NewExtractor(cfg.Extractor.MaxPages, cfg.Extractor.Workers)
	ext.SetObserver(observer)

	if err := ext.Validate(filePath); err != nil {
		return nil, err
	}
	return ext.ExtractWords(context.Background(), filePath)
}

// newEntityExtractor builds the LLM client from configuration, reading the
// API key from the configured environment variable.
func newEntityExtractor(cfg *config.Config, observer *observability.Observer) (*entity.Extractor, error) {
	apiKey := os.Getenv(cfg.LLM.APIKeyEnv)
	entities, err := entity.NewExtractor(cfg.LLM.Host, apiKey, cfg.LLM.Model)
	if err != nil {
		return nil, err
	}
	entities.SetObserver(observer)
	return entities, nil
}

// newObserver selects the observability level from the resolved flags.
func newObserver(finalConfig *finalConfiguration) *observability.Observer {
	level := observability.LevelOff
	if finalConfig.verbose {
		level = observability.LevelMetrics
	}
	if finalConfig.debug {
		level = observability.LevelDebug
	}
	if level == observability.LevelOff {
		return nil
	}
	return observability.NewObserver(level, os.Stderr)
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
