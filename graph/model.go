//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: GraphQL object, input and payload types.
//

package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	spotifyLib "github.com/zmb3/spotify/v2"
)

// Track is a single audio file, usually a song.
type Track struct {
	ID         graphql.ID
	Name       string
	DurationMs int32
	Explicit   bool
	URI        string
}

// User is the owner of a playlist.
type User struct {
	ID          graphql.ID
	DisplayName *string
	Href        *string
	URI         *string
}

// Playlist is built fresh from an upstream response for every request.
type Playlist struct {
	ID            graphql.ID
	Name          string
	Description   *string
	Owner         *User
	Public        bool
	Collaborative bool
	Href          string
	URI           string
	SnapshotID    string

	// trackItems is set when the upstream response already carried the tracks.
	trackItems   []*Track
	tracksLoaded bool
}

// Tracks returns the playlist's tracks, fetching them from upstream when the
// playlist came from a listing that only carries a track count.
func (p *Playlist) Tracks(ctx context.Context) ([]*Track, error) {
	if p.tracksLoaded {
		return p.trackItems, nil
	}

	client, err := ClientFromContext(ctx)
	if err != nil {
		return nil, err
	}

	page, err := client.PlaylistTracks(ctx, spotifyLib.ID(p.ID))
	if err != nil {
		return nil, err
	}
	return mapPlaylistTracks(page.Tracks)
}

// AddItemsToPlaylistInput is the argument of the addItemsToPlaylist mutation.
type AddItemsToPlaylistInput struct {
	PlaylistID graphql.ID
	URIs       []string
}

// AddItemsToPlaylistPayload is the result of the addItemsToPlaylist mutation.
// Playlist is set only when Success is true.
type AddItemsToPlaylistPayload struct {
	Code     int32
	Success  bool
	Message  string
	Playlist *Playlist
}
