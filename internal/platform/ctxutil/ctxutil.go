// Copyright (c) 2026 Apollo. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
//
// Only transport-level state lives here. Domain packages copy what they need
// into explicit request structs instead of reading the context deep in the call
// stack.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/apollo/internal/platform/ctxkey"
	"github.com/taibuivan/apollo/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Session

// WithAuthUser returns a new context with the verified session attached.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the context, or nil for
// anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	return claims
}

// # Artist Selection

// WithArtists returns a new context carrying the artist codes the client has
// selected. Values are unvalidated.
func WithArtists(ctx context.Context, artists []string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyArtists, artists)
}

// GetArtists returns the raw artist selection, or nil when none was sent.
func GetArtists(ctx context.Context) []string {
	artists, _ := ctx.Value(ctxkey.KeyArtists).([]string)
	return artists
}
