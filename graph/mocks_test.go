//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Test doubles and fixtures for resolver tests.
//

package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-graphql/spotify"
)

// MockSpotifyClient is a mock implementation of the spotify.Client interface for testing.
type MockSpotifyClient struct {
	FeaturedPlaylistsFunc  func(ctx context.Context) (*spotifyLib.SimplePlaylistPage, error)
	GetPlaylistFunc        func(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.FullPlaylist, error)
	PlaylistTracksFunc     func(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.PlaylistTrackPage, error)
	AddItemsToPlaylistFunc func(ctx context.Context, playlistID spotifyLib.ID, uris []string) (string, error)
}

// FeaturedPlaylists returns the featured playlists.
func (m *MockSpotifyClient) FeaturedPlaylists(ctx context.Context) (*spotifyLib.SimplePlaylistPage, error) {
	if m.FeaturedPlaylistsFunc != nil {
		return m.FeaturedPlaylistsFunc(ctx)
	}
	return &spotifyLib.SimplePlaylistPage{}, nil
}

// GetPlaylist returns a playlist by ID.
func (m *MockSpotifyClient) GetPlaylist(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.FullPlaylist, error) {
	if m.GetPlaylistFunc != nil {
		return m.GetPlaylistFunc(ctx, playlistID)
	}
	return nil, spotifyLib.Error{Status: 404, Message: "Not found."}
}

// PlaylistTracks returns a playlist's tracks.
func (m *MockSpotifyClient) PlaylistTracks(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.PlaylistTrackPage, error) {
	if m.PlaylistTracksFunc != nil {
		return m.PlaylistTracksFunc(ctx, playlistID)
	}
	return &spotifyLib.PlaylistTrackPage{}, nil
}

// AddItemsToPlaylist adds items to a playlist.
func (m *MockSpotifyClient) AddItemsToPlaylist(ctx context.Context, playlistID spotifyLib.ID, uris []string) (string, error) {
	if m.AddItemsToPlaylistFunc != nil {
		return m.AddItemsToPlaylistFunc(ctx, playlistID, uris)
	}
	return "snapshot", nil
}

// playlistJSON is a fully populated upstream playlist object.
const playlistJSON = `{
	"id": "123",
	"name": "Test Playlist",
	"description": "Test Description",
	"collaborative": false,
	"external_urls": {"spotify": ""},
	"followers": {"total": 0},
	"href": "https://api.spotify.com/v1/playlists/123",
	"images": [],
	"owner": {
		"display_name": "Test Owner",
		"external_urls": {"spotify": ""},
		"followers": {"total": 0},
		"href": "",
		"id": "owner123",
		"type": "user",
		"uri": ""
	},
	"public": false,
	"snapshot_id": "snapshot123",
	"tracks": {
		"href": "",
		"items": [],
		"limit": 20,
		"next": null,
		"offset": 0,
		"previous": null,
		"total": 0
	},
	"type": "playlist",
	"uri": "spotify:playlist:123"
}`

// decode unmarshals upstream JSON the same way the REST client does.
func decode[T any](t *testing.T, data string) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	return v
}

// simplePlaylist builds a listing entry with the given id, name and track total.
func simplePlaylist(t *testing.T, id, name string, total int) spotifyLib.SimplePlaylist {
	t.Helper()

	p := decode[spotifyLib.SimplePlaylist](t, playlistJSON)
	p.ID = spotifyLib.ID(id)
	p.Name = name
	p.Endpoint = "https://api.spotify.com/v1/playlists/" + id
	p.URI = spotifyLib.URI("spotify:playlist:" + id)

	tracks, err := json.Marshal(map[string]any{"href": "", "total": total})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(tracks, &p.Tracks))
	return p
}

// fullPlaylist builds a playlist response carrying the given tracks.
func fullPlaylist(t *testing.T, tracks ...map[string]any) *spotifyLib.FullPlaylist {
	t.Helper()

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(playlistJSON), &raw))

	items := make([]map[string]any, len(tracks))
	for i, track := range tracks {
		items[i] = map[string]any{"track": track}
	}
	raw["tracks"] = map[string]any{"href": "", "items": items, "total": len(items)}

	data, err := json.Marshal(raw)
	require.NoError(t, err)

	p := decode[spotifyLib.FullPlaylist](t, string(data))
	return &p
}

// trackJSON returns an upstream track object.
func trackJSON(id, name string, durationMs int, explicit bool) map[string]any {
	return map[string]any{
		"id":          id,
		"name":        name,
		"duration_ms": durationMs,
		"explicit":    explicit,
		"uri":         "spotify:track:" + id,
		"type":        "track",
	}
}

// failingUpstream returns a real adapter whose upstream answers every
// request with status and a plain body.
func failingUpstream(t *testing.T, status int, body string) context.Context {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	adapter, err := spotify.NewAdapter(context.Background(), spotify.Options{
		BaseURL:    server.URL + "/v1/",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return WithClient(context.Background(), adapter)
}
