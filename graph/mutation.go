//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Mutation resolvers.
//

package graph

import (
	"context"
	"net/http"

	spotifyLib "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"

	"github.com/cloudmanic/spotify-graphql/spotify"
)

const addItemsSuccessMessage = "Successfully added items to playlist."

// AddItemsToPlaylist adds items to a playlist and returns the updated
// playlist. Failures come back as a payload with success=false, never as a
// GraphQL error.
func (r *Resolver) AddItemsToPlaylist(ctx context.Context, args struct{ Input AddItemsToPlaylistInput }) (*AddItemsToPlaylistPayload, error) {
	playlistID := spotifyLib.ID(spotify.ExtractPlaylistID(string(args.Input.PlaylistID)))
	logger := r.logger.With(zap.String("playlist_id", string(playlistID)))

	client, err := ClientFromContext(ctx)
	if err != nil {
		return r.failure(logger, err), nil
	}

	snapshotID, err := client.AddItemsToPlaylist(ctx, playlistID, args.Input.URIs)
	if err != nil {
		return r.failure(logger, err), nil
	}
	if snapshotID == "" {
		return &AddItemsToPlaylistPayload{
			Code:    http.StatusBadGateway,
			Success: false,
			Message: "Upstream did not return a snapshot for the updated playlist.",
		}, nil
	}

	updated, err := client.GetPlaylist(ctx, playlistID)
	if err != nil {
		return r.failure(logger, err), nil
	}

	playlist, err := mapFullPlaylist(updated)
	if err != nil {
		return r.failure(logger, err), nil
	}

	logger.Info("added items to playlist",
		zap.Int("count", len(args.Input.URIs)),
		zap.String("snapshot_id", snapshotID),
	)

	return &AddItemsToPlaylistPayload{
		Code:     http.StatusOK,
		Success:  true,
		Message:  addItemsSuccessMessage,
		Playlist: playlist,
	}, nil
}

// failure converts err into a failed payload, using the upstream status when
// the error carries one.
func (r *Resolver) failure(logger *zap.Logger, err error) *AddItemsToPlaylistPayload {
	code := http.StatusInternalServerError
	if status, ok := spotify.StatusCode(err); ok {
		code = status
	}

	logger.Warn("add items to playlist failed", zap.Int("code", code), zap.Error(err))

	return &AddItemsToPlaylistPayload{
		Code:    int32(code),
		Success: false,
		Message: spotify.Message(err),
	}
}
