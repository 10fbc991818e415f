// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	// sessionIDKey identifies one browsing session; vote state is per session.
	sessionIDKey contextKey = "session_id"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// GenerateSessionID returns the first 8 characters of a new UUID.
func GenerateSessionID() string {
	return uuid.New().String()[:8]
}

// ContextWithSessionID returns a new context carrying the given session ID.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// ContextWithNewSessionID returns a context with a freshly generated session ID.
//
//	ctx = logging.ContextWithNewSessionID(context.Background())
func ContextWithNewSessionID(ctx context.Context) context.Context {
	return ContextWithSessionID(ctx, GenerateSessionID())
}

// SessionIDFromContext retrieves the session ID, or "" if none is set.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext retrieves a logger from context, falling back to the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		return logger
	}
	return Logger()
}

// Ctx returns a logger with the session_id field added when present.
//
//	logging.Ctx(ctx).Info().Int64("place_id", id).Msg("Vote cast")
func Ctx(ctx context.Context) *zerolog.Logger {
	logger := LoggerFromContext(ctx)
	if id := SessionIDFromContext(ctx); id != "" {
		logger = logger.With().Str("session_id", id).Logger()
	}
	return &logger
}
