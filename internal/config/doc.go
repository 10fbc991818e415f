// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

/*
Package config provides centralized configuration management for Freejido.

# Configuration Sources

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Struct defaults (defaultConfig)
 2. YAML file: CONFIG_PATH, else the first of DefaultConfigPaths that exists
 3. Environment variables listed below

# Environment Variables

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: console)
  - LOG_CALLER, LOG_TIMESTAMP: booleans

Votes:
  - VOTES_STORE: badger or memory (default: badger)
  - VOTES_PATH: BadgerDB directory (default: ./data/votes)

Map:
  - MAP_CENTER_LAT, MAP_CENTER_LNG: fallback center (default: 37.5665, 126.978)
  - MAP_ZOOM: zoom level (default: 13)
  - MAP_REFERENCE_ENABLED, MAP_REFERENCE_LAT, MAP_REFERENCE_LNG: user position
  - MAP_NEARBY_RADIUS: nearby browse radius in meters (default: 1000)
  - MAP_GRID_CELL_SIZE: spatial index cell size in meters (default: 1000)

Search:
  - SEARCH_MAX_SUGGESTIONS: suggestion cap, 0 for none (default: 10)

Seed:
  - SEED_ENABLED: load sample topics and places (default: true)
  - SEED_RANDOM_SEED: generator seed (default: 20240601)
  - SEED_PLACES_PER_TOPIC: places per sample topic (default: 100)

# Example YAML

	logging:
	  level: debug
	votes:
	  store: memory
	map:
	  reference_enabled: true
	  reference_lat: 37.58
	  reference_lng: 126.99
*/
package config
