// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package location resolves the user's reference coordinate and the map view
// that follows from it.
package location

import (
	"context"
	"errors"

	"github.com/freejido/freejido/internal/models"
)

// ErrUnavailable is returned by a provider that has no position to report.
var ErrUnavailable = errors.New("location unavailable")

// Provider acquires the user's current position.
// Implementations may be backed by a device API, an IP lookup or configuration.
type Provider interface {
	// Locate resolves once per call with a coordinate or an error.
	Locate(ctx context.Context) (models.Coordinate, error)

	// Name returns the provider name for logging.
	Name() string
}

// StaticProvider reports a fixed coordinate, typically from configuration.
// A StaticProvider with no coordinate always fails with ErrUnavailable.
type StaticProvider struct {
	at *models.Coordinate
}

// NewStaticProvider creates a provider for at. A nil at models a user who
// denied or lacks location access.
func NewStaticProvider(at *models.Coordinate) *StaticProvider {
	if at != nil {
		c := *at
		at = &c
	}
	return &StaticProvider{at: at}
}

// Name returns the provider name.
func (p *StaticProvider) Name() string {
	return "static"
}

// Locate returns the configured coordinate.
func (p *StaticProvider) Locate(ctx context.Context) (models.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinate{}, err
	}
	if p.at == nil {
		return models.Coordinate{}, ErrUnavailable
	}
	return *p.at, nil
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (models.Coordinate, error)

// Locate calls f.
func (f ProviderFunc) Locate(ctx context.Context) (models.Coordinate, error) {
	return f(ctx)
}

// Name returns "func".
func (f ProviderFunc) Name() string {
	return "func"
}
