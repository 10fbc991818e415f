// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Votes.Store != VoteStoreBadger {
		t.Errorf("Votes.Store = %q, want badger", cfg.Votes.Store)
	}
	if cfg.Map.CenterLat != 37.5665 || cfg.Map.CenterLng != 126.978 {
		t.Errorf("Map center = (%v, %v), want Seoul City Hall", cfg.Map.CenterLat, cfg.Map.CenterLng)
	}
	if cfg.Map.Zoom != 13 {
		t.Errorf("Map.Zoom = %d, want 13", cfg.Map.Zoom)
	}
	if cfg.Map.Reference() != nil {
		t.Error("Map.Reference() should be nil by default")
	}
	if cfg.Search.MaxSuggestions != 10 {
		t.Errorf("Search.MaxSuggestions = %d, want 10", cfg.Search.MaxSuggestions)
	}
	if !cfg.Seed.Enabled || cfg.Seed.PlacesPerTopic != 100 {
		t.Errorf("Seed = %+v", cfg.Seed)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"LOG_LEVEL", "logging.level"},
		{"VOTES_STORE", "votes.store"},
		{"MAP_REFERENCE_LAT", "map.reference_lat"},
		{"SEARCH_MAX_SUGGESTIONS", "search.max_suggestions"},
		{"SEED_RANDOM_SEED", "seed.random_seed"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	}()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("freejido.yaml exists", func(t *testing.T) {
		if err := os.WriteFile("freejido.yaml", []byte("seed:\n  enabled: false\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove("freejido.yaml")

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "freejido.yaml" {
			t.Errorf("findConfigFile() = %q, want freejido.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("{}"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH with non-existent file falls back", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("VOTES_STORE", "memory")
	t.Setenv("MAP_REFERENCE_ENABLED", "true")
	t.Setenv("MAP_REFERENCE_LAT", "37.58")
	t.Setenv("MAP_REFERENCE_LNG", "126.99")
	t.Setenv("SEED_PLACES_PER_TOPIC", "25")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Votes.Store != VoteStoreMemory {
		t.Errorf("Votes.Store = %q, want memory", cfg.Votes.Store)
	}
	ref := cfg.Map.Reference()
	if ref == nil || ref.Lat != 37.58 || ref.Lng != 126.99 {
		t.Errorf("Map.Reference() = %v, want (37.58, 126.99)", ref)
	}
	if cfg.Seed.PlacesPerTopic != 25 {
		t.Errorf("Seed.PlacesPerTopic = %d, want 25", cfg.Seed.PlacesPerTopic)
	}

	// Defaults still apply for unset values
	if cfg.Map.Zoom != 13 {
		t.Errorf("Map.Zoom = %d, want 13 (default)", cfg.Map.Zoom)
	}
	if cfg.Votes.Path != "./data/votes" {
		t.Errorf("Votes.Path = %q, want default", cfg.Votes.Path)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
logging:
  level: warn
  format: json
votes:
  store: badger
  path: /var/lib/freejido/votes
search:
  max_suggestions: 3
seed:
  enabled: false
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Votes.Path != "/var/lib/freejido/votes" {
		t.Errorf("Votes.Path = %q", cfg.Votes.Path)
	}
	if cfg.Search.MaxSuggestions != 3 {
		t.Errorf("Search.MaxSuggestions = %d, want 3", cfg.Search.MaxSuggestions)
	}
	if cfg.Seed.Enabled {
		t.Error("Seed.Enabled should be false from file")
	}
	if cfg.Seed.RandomSeed != 20240601 {
		t.Errorf("Seed.RandomSeed = %d, want default", cfg.Seed.RandomSeed)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: warn\nmap:\n  zoom: 10\n"), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want env override 'error'", cfg.Logging.Level)
	}
	if cfg.Map.Zoom != 10 {
		t.Errorf("Map.Zoom = %d, want 10 from file", cfg.Map.Zoom)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad vote store", map[string]string{"VOTES_STORE": "sqlite"}, "VOTES_STORE"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"latitude out of range", map[string]string{"MAP_CENTER_LAT": "91"}, "MAP_CENTER_LAT"},
		{"reference longitude out of range", map[string]string{
			"MAP_REFERENCE_ENABLED": "true",
			"MAP_REFERENCE_LNG":     "200",
		}, "MAP_REFERENCE_LNG"},
		{"negative suggestions", map[string]string{"SEARCH_MAX_SUGGESTIONS": "-1"}, "SEARCH_MAX_SUGGESTIONS"},
		{"zero radius", map[string]string{"MAP_NEARBY_RADIUS": "0"}, "MAP_NEARBY_RADIUS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_BadgerRequiresPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.Votes.Path = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "VOTES_PATH") {
		t.Errorf("Validate() = %v, want VOTES_PATH error", err)
	}

	cfg.Votes.Store = VoteStoreMemory
	if err := cfg.Validate(); err != nil {
		t.Errorf("memory store needs no path: %v", err)
	}
}

func TestLoggingConfig_ToLogging(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Format: "json", Caller: true}
	got := lc.ToLogging()
	if got.Level != "debug" || got.Format != "json" || !got.Caller || got.Timestamp {
		t.Errorf("ToLogging() = %+v", got)
	}
	if got.Output == nil {
		t.Error("ToLogging() should keep the default output")
	}
}
