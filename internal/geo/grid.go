// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package geo

import (
	"math"
	"sync"

	"github.com/freejido/freejido/internal/models"
)

// Grid divides geographic space into square cells (in degrees) so that a
// radius query only inspects cells around the query point instead of every
// entry. Entries are never moved or removed; places are immutable once
// created.
//
// Time Complexity:
//   - Insert: O(1)
//   - QueryRadius: O(min(c, n)) where c = cells covering the query and n = entries
type Grid struct {
	mu       sync.RWMutex
	cells    map[cellKey][]int64
	entries  map[int64]models.Coordinate
	cellSize float64 // degrees
}

type cellKey struct {
	X, Y int
}

// Hit is one result of a radius query.
type Hit struct {
	ID       int64
	Distance float64 // meters
}

// NewGrid creates a grid whose cells are roughly cellSizeMeters on a side at
// the equator. Non-positive sizes default to 1km, which suits city browsing.
func NewGrid(cellSizeMeters float64) *Grid {
	if cellSizeMeters <= 0 {
		cellSizeMeters = 1000
	}
	return &Grid{
		cells:    make(map[cellKey][]int64),
		entries:  make(map[int64]models.Coordinate),
		cellSize: cellSizeMeters / metersPerDegree,
	}
}

func (g *Grid) cellOf(deg float64) int {
	return int(math.Floor(deg / g.cellSize))
}

func (g *Grid) keyFor(c models.Coordinate) cellKey {
	return cellKey{X: g.cellOf(normalizeLng(c.Lng)), Y: g.cellOf(c.Lat)}
}

// normalizeLng maps a longitude into [-180, 180].
func normalizeLng(lng float64) float64 {
	return math.Remainder(lng, 360)
}

// Insert adds the entry with the given id. Coordinates must be finite.
func (g *Grid) Insert(id int64, at models.Coordinate) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.keyFor(at)
	g.cells[key] = append(g.cells[key], id)
	g.entries[id] = at
}

// QueryRadius returns every entry within radiusMeters of center, with its
// distance. Result order is unspecified. A NaN or negative radius matches
// nothing; +Inf matches every entry.
func (g *Grid) QueryRadius(center models.Coordinate, radiusMeters float64) []Hit {
	if math.IsNaN(radiusMeters) || radiusMeters < 0 {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	box, ok := g.coverLocked(center, radiusMeters)
	if !ok || box.cells() > float64(len(g.entries)) {
		return g.scanLocked(center, radiusMeters)
	}

	var hits []Hit
	for x := box.minX; x <= box.maxX; x++ {
		for y := box.minY; y <= box.maxY; y++ {
			for _, id := range g.cells[cellKey{X: x, Y: y}] {
				if d := Haversine(center, g.entries[id]); d <= radiusMeters {
					hits = append(hits, Hit{ID: id, Distance: d})
				}
			}
		}
	}
	return hits
}

// scanLocked checks every entry (caller must hold the read lock).
func (g *Grid) scanLocked(center models.Coordinate, radiusMeters float64) []Hit {
	var hits []Hit
	for id, at := range g.entries {
		if d := Haversine(center, at); d <= radiusMeters {
			hits = append(hits, Hit{ID: id, Distance: d})
		}
	}
	return hits
}

type cellBox struct {
	minX, maxX, minY, maxY int
}

func (b cellBox) cells() float64 {
	return float64(b.maxX-b.minX+1) * float64(b.maxY-b.minY+1)
}

// boxSlack widens the cover to absorb floating point error at its edges.
const boxSlack = 1e-9

// coverLocked returns the cells enclosing the spherical cap of radiusMeters
// around center. ok is false when the cap contains a pole or crosses the
// antimeridian, where a longitude range cannot describe it.
func (g *Grid) coverLocked(center models.Coordinate, radiusMeters float64) (cellBox, bool) {
	delta := radiusMeters / EarthRadiusMeters // angular radius
	if delta >= math.Pi/2 {
		return cellBox{}, false
	}

	// The widest longitude offset on a cap of angular radius delta around
	// latitude phi is asin(sin(delta) / cos(phi)).
	cosLat := math.Cos(toRadians(center.Lat))
	sinDelta := math.Sin(delta)
	if sinDelta >= cosLat {
		return cellBox{}, false
	}
	dLat := toDegrees(delta) + boxSlack
	dLng := toDegrees(math.Asin(sinDelta/cosLat)) + boxSlack

	lng := normalizeLng(center.Lng)
	if lng-dLng < -180 || lng+dLng > 180 {
		return cellBox{}, false
	}

	return cellBox{
		minX: g.cellOf(lng - dLng),
		maxX: g.cellOf(lng + dLng),
		minY: g.cellOf(center.Lat - dLat),
		maxY: g.cellOf(center.Lat + dLat),
	}, true
}
