// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

// Package logging provides zerolog-based structured logging for Freejido.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "console"})
//	logging.Info().Int("topics", 2).Msg("Seed data loaded")
//
//	storeLog := logging.WithComponent("store")
//	storeLog.Debug().Int64("topic_id", id).Msg("Place submission ignored")
//
// # Sessions
//
// Vote state belongs to one user session. Attach a session ID to the context
// once, and Ctx adds it to every log line:
//
//	ctx := logging.ContextWithNewSessionID(context.Background())
//	logging.Ctx(ctx).Info().Msg("Vote cast")
//
// # Configuration
//
// Level, format and caller output come from the logging section of
// internal/config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// Always terminate log chains with .Msg() or .Send().
package logging
