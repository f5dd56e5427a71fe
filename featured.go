//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Featured playlist listing for the command line.
//

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	spotifyLib "github.com/zmb3/spotify/v2"

	"github.com/cloudmanic/spotify-graphql/spotify"
)

// printFeaturedPlaylists fetches the featured playlists and prints them as a
// table. With debug set the raw upstream data is printed first.
func printFeaturedPlaylists(ctx context.Context, w io.Writer, client spotify.Client, debug bool) error {
	page, err := client.FeaturedPlaylists(ctx)
	if err != nil {
		return err
	}

	if debug {
		fmt.Fprintln(w, "\n=== Raw Playlist Data ===")
		rawJSON, err := json.MarshalIndent(page.Playlists, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Warning: Failed to marshal playlists: %v\n", err)
		} else {
			fmt.Fprintln(w, string(rawJSON))
		}
		fmt.Fprintln(w, "=== End Raw Data ===")
	}

	printPlaylistsTable(w, page.Playlists)
	return nil
}

// printPlaylistsTable displays playlists in a formatted table.
func printPlaylistsTable(w io.Writer, playlists []spotifyLib.SimplePlaylist) {
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan)

	fmt.Fprintln(w)
	cyan.Fprintln(w, "🎵 Featured Playlists")
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Tracks", "Owner", "Playlist ID"})

	for i, playlist := range playlists {
		t.AppendRow(table.Row{
			i + 1,
			color.New(color.Bold).Sprint(playlist.Name),
			playlist.Tracks.Total,
			playlist.Owner.DisplayName,
			color.HiBlackString(string(playlist.ID)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()

	fmt.Fprintln(w)
	green.Fprintf(w, "Total playlists: %d\n", len(playlists))
}
