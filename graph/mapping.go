//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Mapping of upstream REST models onto GraphQL types.
//

package graph

import (
	"github.com/graph-gophers/graphql-go"
	"github.com/pkg/errors"
	spotifyLib "github.com/zmb3/spotify/v2"
)

// ErrMissingField marks an upstream object lacking a field the schema declares non-null.
var ErrMissingField = errors.New("missing required field")

func missingField(typeName, field string, id string) error {
	if id == "" {
		return errors.Wrapf(ErrMissingField, "%s.%s", typeName, field)
	}
	return errors.Wrapf(ErrMissingField, "%s %s: %s", typeName, id, field)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// mapSimplePlaylist maps a playlist from a listing. Its tracks are fetched
// lazily unless the listing says there are none.
func mapSimplePlaylist(p spotifyLib.SimplePlaylist) (*Playlist, error) {
	playlist, err := mapPlaylistFields(p)
	if err != nil {
		return nil, err
	}

	if p.Tracks.Total == 0 {
		playlist.trackItems = []*Track{}
		playlist.tracksLoaded = true
	}
	return playlist, nil
}

// mapFullPlaylist maps a playlist together with the tracks it carries.
func mapFullPlaylist(p *spotifyLib.FullPlaylist) (*Playlist, error) {
	playlist, err := mapPlaylistFields(p.SimplePlaylist)
	if err != nil {
		return nil, err
	}

	tracks, err := mapPlaylistTracks(p.Tracks.Tracks)
	if err != nil {
		return nil, errors.Wrapf(err, "playlist %s", p.ID)
	}
	playlist.trackItems = tracks
	playlist.tracksLoaded = true
	return playlist, nil
}

func mapPlaylistFields(p spotifyLib.SimplePlaylist) (*Playlist, error) {
	id := string(p.ID)
	switch {
	case id == "":
		return nil, missingField("Playlist", "id", "")
	case p.Name == "":
		return nil, missingField("Playlist", "name", id)
	case p.Endpoint == "":
		return nil, missingField("Playlist", "href", id)
	case p.URI == "":
		return nil, missingField("Playlist", "uri", id)
	case p.SnapshotID == "":
		return nil, missingField("Playlist", "snapshotId", id)
	}

	owner, err := mapUser(p.Owner)
	if err != nil {
		return nil, errors.Wrapf(err, "playlist %s", id)
	}

	description := p.Description
	return &Playlist{
		ID:            graphql.ID(id),
		Name:          p.Name,
		Description:   &description,
		Owner:         owner,
		Public:        p.IsPublic,
		Collaborative: p.Collaborative,
		Href:          p.Endpoint,
		URI:           string(p.URI),
		SnapshotID:    p.SnapshotID,
	}, nil
}

func mapUser(u spotifyLib.User) (*User, error) {
	id := string(u.ID)
	if id == "" {
		return nil, missingField("User", "id", "")
	}

	return &User{
		ID:          graphql.ID(id),
		DisplayName: optionalString(u.DisplayName),
		Href:        optionalString(u.Endpoint),
		URI:         optionalString(string(u.URI)),
	}, nil
}

func mapPlaylistTracks(items []spotifyLib.PlaylistTrack) ([]*Track, error) {
	tracks := make([]*Track, 0, len(items))
	for _, item := range items {
		track, err := mapTrack(item.Track.SimpleTrack)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func mapTrack(t spotifyLib.SimpleTrack) (*Track, error) {
	id := string(t.ID)
	switch {
	case id == "":
		return nil, missingField("Track", "id", "")
	case t.Name == "":
		return nil, missingField("Track", "name", id)
	case t.URI == "":
		return nil, missingField("Track", "uri", id)
	case t.Duration < 0:
		return nil, errors.Errorf("track %s: negative duration %d", id, t.Duration)
	}

	return &Track{
		ID:         graphql.ID(id),
		Name:       t.Name,
		DurationMs: int32(t.Duration),
		Explicit:   t.Explicit,
		URI:        string(t.URI),
	}, nil
}
