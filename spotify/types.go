//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Type definitions and interfaces for the upstream Spotify adapter.
//

package spotify

import (
	"context"

	spotifyLib "github.com/zmb3/spotify/v2"
)

// Client defines the upstream REST operations the GraphQL resolvers need.
// This allows for mocking in tests.
type Client interface {
	FeaturedPlaylists(ctx context.Context) (*spotifyLib.SimplePlaylistPage, error)
	GetPlaylist(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.FullPlaylist, error)
	PlaylistTracks(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.PlaylistTrackPage, error)
	AddItemsToPlaylist(ctx context.Context, playlistID spotifyLib.ID, uris []string) (string, error)
}

// api is the subset of the zmb3 client used by the Adapter.
type api interface {
	FeaturedPlaylists(ctx context.Context, opts ...spotifyLib.RequestOption) (string, *spotifyLib.SimplePlaylistPage, error)
	GetPlaylist(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.FullPlaylist, error)
	GetPlaylistTracks(ctx context.Context, playlistID spotifyLib.ID, opts ...spotifyLib.RequestOption) (*spotifyLib.PlaylistTrackPage, error)
}

// Error is the error returned by the upstream API for non-2xx responses.
type Error = spotifyLib.Error
