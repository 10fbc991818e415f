// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package config

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateVotes(); err != nil {
		return err
	}
	if err := c.validateMap(); err != nil {
		return err
	}
	if c.Search.MaxSuggestions < 0 {
		return fmt.Errorf("SEARCH_MAX_SUGGESTIONS must be >= 0, got %d", c.Search.MaxSuggestions)
	}
	if c.Seed.PlacesPerTopic < 0 {
		return fmt.Errorf("SEED_PLACES_PER_TOPIC must be >= 0, got %d", c.Seed.PlacesPerTopic)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error (got %q)", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be 'json' or 'console' (got %q)", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateVotes() error {
	switch c.Votes.Store {
	case VoteStoreBadger:
		if c.Votes.Path == "" {
			return fmt.Errorf("VOTES_PATH is required when VOTES_STORE=badger")
		}
	case VoteStoreMemory:
	default:
		return fmt.Errorf("VOTES_STORE must be 'badger' or 'memory' (got %q)", c.Votes.Store)
	}
	return nil
}

func (c *Config) validateMap() error {
	if err := validateCoordinate("MAP_CENTER", c.Map.CenterLat, c.Map.CenterLng); err != nil {
		return err
	}
	if c.Map.ReferenceEnabled {
		if err := validateCoordinate("MAP_REFERENCE", c.Map.ReferenceLat, c.Map.ReferenceLng); err != nil {
			return err
		}
	}
	if c.Map.Zoom < 0 || c.Map.Zoom > 22 {
		return fmt.Errorf("MAP_ZOOM must be between 0 and 22, got %d", c.Map.Zoom)
	}
	if c.Map.NearbyRadius <= 0 {
		return fmt.Errorf("MAP_NEARBY_RADIUS must be positive, got %v", c.Map.NearbyRadius)
	}
	if c.Map.GridCellSize <= 0 {
		return fmt.Errorf("MAP_GRID_CELL_SIZE must be positive, got %v", c.Map.GridCellSize)
	}
	return nil
}

func validateCoordinate(name string, lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return fmt.Errorf("%s must be finite", name)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%s_LAT must be between -90 and 90, got %v", name, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%s_LNG must be between -180 and 180, got %v", name, lng)
	}
	return nil
}
