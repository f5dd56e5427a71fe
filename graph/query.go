//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Query resolvers.
//

package graph

import (
	"context"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-graphql/spotify"
)

// FeaturedPlaylists returns the featured playlists in upstream order.
// Upstream errors are returned unmodified.
func (r *Resolver) FeaturedPlaylists(ctx context.Context) ([]*Playlist, error) {
	client, err := ClientFromContext(ctx)
	if err != nil {
		return nil, err
	}

	page, err := client.FeaturedPlaylists(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*Playlist, 0, len(page.Playlists))
	for _, item := range page.Playlists {
		playlist, err := mapSimplePlaylist(item)
		if err != nil {
			return nil, err
		}
		result = append(result, playlist)
	}
	return result, nil
}

// Playlist returns a single playlist, or nil when upstream reports it missing.
func (r *Resolver) Playlist(ctx context.Context, args struct{ ID graphql.ID }) (*Playlist, error) {
	client, err := ClientFromContext(ctx)
	if err != nil {
		return nil, err
	}

	id := spotify.ExtractPlaylistID(string(args.ID))
	playlist, err := client.GetPlaylist(ctx, spotifyLib.ID(id))
	if err != nil {
		if status, ok := spotify.StatusCode(err); ok && status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mapFullPlaylist(playlist)
}
