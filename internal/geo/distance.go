// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package geo provides great-circle distance and a spatial hash grid for
// proximity lookups over place coordinates.
package geo

import (
	"math"

	"github.com/freejido/freejido/internal/models"
)

// EarthRadiusMeters is the mean Earth radius used by Haversine.
const EarthRadiusMeters = 6371000.0

// metersPerDegree is the approximate length of one degree of latitude.
const metersPerDegree = 111000.0

// Haversine returns the great-circle distance in meters between two coordinates.
//
//	a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlng/2)
//	d = 2·R·atan2(√a, √(1−a))
func Haversine(from, to models.Coordinate) float64 {
	lat1 := toRadians(from.Lat)
	lat2 := toRadians(to.Lat)
	dLat := toRadians(to.Lat - from.Lat)
	dLng := toRadians(to.Lng - from.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
