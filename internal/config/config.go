// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the application configuration from YAML, applying
// defaults for anything the file does not set.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default settings for matching and output
	Defaults struct {
		Strategy      string  `yaml:"strategy"`
		Threshold     float64 `yaml:"threshold"`
		ContextWindow int     `yaml:"context_window"`
		Format        string  `yaml:"format"`
		Verbose       bool    `yaml:"verbose"`
		Debug         bool    `yaml:"debug"`
		NoColor       bool    `yaml:"no_color"`
	} `yaml:"defaults"`

	// Web server settings
	Server struct {
		Port        string `yaml:"port"`
		MaxUploadMB int64  `yaml:"max_upload_mb"`
	} `yaml:"server"`

	// LLM entity extraction settings
	LLM struct {
		Host      string `yaml:"host"`
		Model     string `yaml:"model"`
		APIKeyEnv string `yaml:"api_key_env"`
	} `yaml:"llm"`

	// PDF word extraction settings
	Extractor struct {
		MaxPages int `yaml:"max_pages"`
		Workers  int `yaml:"workers"`
	} `yaml:"extractor"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path or a missing file yields the defaults without error; an unreadable
// or malformed file is an error.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Threshold 0 means "use the strategy's default"; the CLI and web
	// layers resolve it before calling the engine.
	config.Defaults.Strategy = "exact"
	config.Defaults.Threshold = 0
	config.Defaults.ContextWindow = 3
	config.Defaults.Format = "text"

	config.Server.Port = "8080"
	config.Server.MaxUploadMB = 100

	config.LLM.Model = "gpt-3.5-turbo"
	config.LLM.APIKeyEnv = "OPENAI_API_KEY"

	config.Extractor.MaxPages = 50
	config.Extractor.Workers = 4

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations.
// Returns an empty string when none exists.
func FindConfigFile() string {
	candidates := []string{
		"config.yaml",
		"bounds-matching.yaml",
		"bounds-matching.yml",
		".bounds-matching.yaml",
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		standard := filepath.Join(home, ".config", "bounds-matching", "config.yaml")
		if fileExists(standard) {
			return standard
		}
	}
	return ""
}

func validate(c *Config) error {
	if c.Defaults.Threshold < 0 || c.Defaults.Threshold > 100 {
		return fmt.Errorf("defaults.threshold %.2f outside [0,100]", c.Defaults.Threshold)
	}
	if c.Defaults.ContextWindow < 0 {
		return fmt.Errorf("defaults.context_window %d is negative", c.Defaults.ContextWindow)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb %d must be positive", c.Server.MaxUploadMB)
	}
	if c.Extractor.MaxPages <= 0 {
		return fmt.Errorf("extractor.max_pages %d must be positive", c.Extractor.MaxPages)
	}
	if c.Extractor.Workers <= 0 {
		return fmt.Errorf("extractor.workers %d must be positive", c.Extractor.Workers)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
