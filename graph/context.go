//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Request context plumbing for the shared upstream client.
//

package graph

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cloudmanic/spotify-graphql/spotify"
)

type contextKey string

const contextKeyClient contextKey = "spotify_client"

// ErrNoClient is returned when a resolver runs without an upstream client in its context.
var ErrNoClient = errors.New("spotify client missing from request context")

// WithClient returns a copy of ctx carrying the upstream client.
func WithClient(ctx context.Context, client spotify.Client) context.Context {
	return context.WithValue(ctx, contextKeyClient, client)
}

// ClientFromContext extracts the upstream client from a request context.
func ClientFromContext(ctx context.Context) (spotify.Client, error) {
	if client, ok := ctx.Value(contextKeyClient).(spotify.Client); ok && client != nil {
		return client, nil
	}
	return nil, ErrNoClient
}
