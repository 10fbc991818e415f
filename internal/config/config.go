// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package config

import (
	"github.com/freejido/freejido/internal/logging"
	"github.com/freejido/freejido/internal/models"
)

// Vote snapshot backends.
const (
	VoteStoreBadger = "badger"
	VoteStoreMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig `koanf:"logging"`
	Votes   VotesConfig   `koanf:"votes"`
	Map     MapConfig     `koanf:"map"`
	Search  SearchConfig  `koanf:"search"`
	Seed    SeedConfig    `koanf:"seed"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: console, since the CLI is read by people
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`

	// Timestamp enables timestamps in log output.
	// Default: true
	Timestamp bool `koanf:"timestamp"`
}

// ToLogging converts to the logging package configuration.
func (c LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	cfg.Timestamp = c.Timestamp
	return cfg
}

// VotesConfig selects where the place vote snapshot is kept.
type VotesConfig struct {
	// Store is "badger" (durable, under Path) or "memory" (process lifetime).
	// Default: badger
	Store string `koanf:"store"`

	// Path is the BadgerDB directory.
	// Default: ./data/votes
	Path string `koanf:"path"`
}

// MapConfig holds the fallback viewport and proximity settings.
type MapConfig struct {
	// CenterLat and CenterLng form the fallback center shown when the user's
	// position is unknown. Default: Seoul City Hall (37.5665, 126.978)
	CenterLat float64 `koanf:"center_lat"`
	CenterLng float64 `koanf:"center_lng"`

	// Zoom is the map zoom level. Default: 13
	Zoom int `koanf:"zoom"`

	// ReferenceEnabled makes ReferenceLat/ReferenceLng the user's position.
	// When false the user is treated as having no location.
	ReferenceEnabled bool    `koanf:"reference_enabled"`
	ReferenceLat     float64 `koanf:"reference_lat"`
	ReferenceLng     float64 `koanf:"reference_lng"`

	// NearbyRadius is the default radius in meters for nearby browsing.
	// Default: 1000
	NearbyRadius float64 `koanf:"nearby_radius"`

	// GridCellSize is the spatial index cell size in meters.
	// Default: 1000
	GridCellSize float64 `koanf:"grid_cell_size"`
}

// FallbackCenter returns the configured fallback center.
func (c MapConfig) FallbackCenter() models.Coordinate {
	return models.Coordinate{Lat: c.CenterLat, Lng: c.CenterLng}
}

// Reference returns the configured user position, or nil when disabled.
func (c MapConfig) Reference() *models.Coordinate {
	if !c.ReferenceEnabled {
		return nil
	}
	return &models.Coordinate{Lat: c.ReferenceLat, Lng: c.ReferenceLng}
}

// SearchConfig tunes topic suggestions.
type SearchConfig struct {
	// MaxSuggestions caps the suggestion list; 0 means unlimited.
	// Default: 10
	MaxSuggestions int `koanf:"max_suggestions"`
}

// SeedConfig controls the sample data loaded at startup.
type SeedConfig struct {
	// Enabled loads the default topics and generated places.
	// Default: true
	Enabled bool `koanf:"enabled"`

	// RandomSeed fixes the generator so place ids and positions repeat
	// across runs, which keeps persisted votes attached to the same places.
	// Default: 20240601
	RandomSeed int64 `koanf:"random_seed"`

	// PlacesPerTopic is the number of generated places per default topic.
	// Default: 100
	PlacesPerTopic int `koanf:"places_per_topic"`
}

// Load loads configuration from defaults, an optional YAML file and
// environment variables, in increasing order of priority.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
