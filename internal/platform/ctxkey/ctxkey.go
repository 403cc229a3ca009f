// Copyright (c) 2026 Apollo. All rights reserved.

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// Keys use a private type so that values stored by third-party packages under
// the same string can never collide with ours.
package ctxkey

type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser is the context key for the verified session ([sec.AuthClaims]).
	KeyUser key = "user"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"

	// KeyArtists is the context key for the raw artist selection sent by the client.
	KeyArtists key = "artists"
)
