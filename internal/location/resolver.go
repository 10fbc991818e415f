// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package location

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/freejido/freejido/internal/logging"
	"github.com/freejido/freejido/internal/models"
)

// Fallback view used until a position is known.
var (
	DefaultCenter = models.Coordinate{Lat: 37.5665, Lng: 126.978}
	DefaultZoom   = 13
)

// View is the map viewport to render.
type View struct {
	Center models.Coordinate
	Zoom   int
	// Located is true when Center is the user's own position.
	Located bool
}

// Resolver caches the result of one Provider call. Refresh asks the provider
// again; nothing else re-invokes it.
type Resolver struct {
	// locateMu serializes provider calls so concurrent first uses share one.
	locateMu sync.Mutex

	mu       sync.RWMutex
	provider Provider
	fallback View
	current  *models.Coordinate
	lastErr  error
	resolved bool
	logger   zerolog.Logger
}

// NewResolver creates a resolver. A zero fallback zoom selects DefaultZoom and
// a nil fallback center selects DefaultCenter.
func NewResolver(provider Provider, fallbackCenter *models.Coordinate, fallbackZoom int) *Resolver {
	center := DefaultCenter
	if fallbackCenter != nil {
		center = *fallbackCenter
	}
	if fallbackZoom <= 0 {
		fallbackZoom = DefaultZoom
	}
	return &Resolver{
		provider: provider,
		fallback: View{Center: center, Zoom: fallbackZoom},
		logger:   logging.WithComponent("location"),
	}
}

// Reference returns the cached coordinate, resolving it on first use. It
// returns nil when the provider failed.
func (r *Resolver) Reference(ctx context.Context) *models.Coordinate {
	if at, ok := r.cached(); ok {
		return at
	}

	r.locateMu.Lock()
	defer r.locateMu.Unlock()
	if at, ok := r.cached(); ok {
		return at
	}
	_ = r.locate(ctx)

	at, _ := r.cached()
	return at
}

func (r *Resolver) cached() (*models.Coordinate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyCoordinate(r.current), r.resolved
}

// Refresh invokes the provider once and replaces the cached result. On
// failure the previous position is discarded and the error is returned.
func (r *Resolver) Refresh(ctx context.Context) error {
	r.locateMu.Lock()
	defer r.locateMu.Unlock()
	return r.locate(ctx)
}

// locate calls the provider (caller must hold locateMu).
func (r *Resolver) locate(ctx context.Context) error {
	var (
		at  models.Coordinate
		err error
	)
	name := "none"
	if r.provider == nil {
		err = ErrUnavailable
	} else {
		name = r.provider.Name()
		at, err = r.provider.Locate(ctx)
		if err == nil && !at.IsFinite() {
			err = fmt.Errorf("%w: provider returned a non-finite coordinate", ErrUnavailable)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.resolved = true
	r.lastErr = err
	if err != nil {
		r.current = nil
		r.logger.Info().Err(err).Str("provider", name).Msg("Location unavailable, using fallback view")
		return err
	}
	r.current = &at
	r.logger.Debug().Str("provider", name).Float64("lat", at.Lat).Float64("lng", at.Lng).Msg("Location resolved")
	return nil
}

// Err returns the error from the last provider call, if any.
func (r *Resolver) Err() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastErr
}

// View returns the viewport centered on the user when located, otherwise the
// fallback center. It never invokes the provider.
func (r *Resolver) View() View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return r.fallback
	}
	return View{Center: *r.current, Zoom: r.fallback.Zoom, Located: true}
}

func copyCoordinate(c *models.Coordinate) *models.Coordinate {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
