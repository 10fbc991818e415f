// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"freejido.yaml",
	"freejido.yml",
	"config.yaml",
	"config.yml",
	"/etc/freejido/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "console",
			Caller:    false,
			Timestamp: true,
		},
		Votes: VotesConfig{
			Store: VoteStoreBadger,
			Path:  "./data/votes",
		},
		Map: MapConfig{
			CenterLat:        37.5665,
			CenterLng:        126.978,
			Zoom:             13,
			ReferenceEnabled: false,
			NearbyRadius:     1000,
			GridCellSize:     1000,
		},
		Search: SearchConfig{
			MaxSuggestions: 10,
		},
		Seed: SeedConfig{
			Enabled:        true,
			RandomSeed:     20240601,
			PlacesPerTopic: 100,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf with layered sources:
//  1. Struct defaults
//  2. Config file (optional, YAML)
//  3. Environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// LOG_LEVEL -> logging.level, VOTES_STORE -> votes.store
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH when it names an existing file, otherwise
// the first existing default path, otherwise "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	"log_level":     "logging.level",
	"log_format":    "logging.format",
	"log_caller":    "logging.caller",
	"log_timestamp": "logging.timestamp",

	"votes_store": "votes.store",
	"votes_path":  "votes.path",

	"map_center_lat":        "map.center_lat",
	"map_center_lng":        "map.center_lng",
	"map_zoom":              "map.zoom",
	"map_reference_enabled": "map.reference_enabled",
	"map_reference_lat":     "map.reference_lat",
	"map_reference_lng":     "map.reference_lng",
	"map_nearby_radius":     "map.nearby_radius",
	"map_grid_cell_size":    "map.grid_cell_size",

	"search_max_suggestions": "search.max_suggestions",

	"seed_enabled":          "seed.enabled",
	"seed_random_seed":      "seed.random_seed",
	"seed_places_per_topic": "seed.places_per_topic",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never reach the config.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
