// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Strategy != "exact" {
		t.Errorf("expected default strategy 'exact', got %q", cfg.Defaults.Strategy)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format 'text', got %q", cfg.Defaults.Format)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Extractor.MaxPages != 50 {
		t.Errorf("expected default max pages 50, got %d", cfg.Extractor.MaxPages)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("missing file should fall back to defaults, got error: %v", err)
	}
	if cfg.Defaults.Strategy != "exact" {
		t.Errorf("expected default strategy, got %q", cfg.Defaults.Strategy)
	}
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
defaults:
  strategy: fuzzy
  threshold: 75
  context_window: 5
server:
  port: "9090"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Strategy != "fuzzy" {
		t.Errorf("expected strategy 'fuzzy', got %q", cfg.Defaults.Strategy)
	}
	if cfg.Defaults.Threshold != 75 {
		t.Errorf("expected threshold 75, got %f", cfg.Defaults.Threshold)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Server.Port)
	}
	// Values absent from the file keep their defaults.
	if cfg.Server.MaxUploadMB != 100 {
		t.Errorf("expected default upload limit, got %d", cfg.Server.MaxUploadMB)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("defaults: [not a map"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"threshold above range", "defaults:\n  threshold: 150\n"},
		{"negative context window", "defaults:\n  context_window: -1\n"},
		{"negative workers", "extractor:\n  workers: -3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
