//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Helpers for turning user supplied playlist references into IDs.
//

package spotify

import (
	"strings"
)

// ExtractPlaylistID extracts the playlist ID from a Spotify URL or URI, or
// returns the input as-is if it's already just an ID.
func ExtractPlaylistID(input string) string {
	// If it's a full URL like https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M?si=xxx
	if strings.Contains(input, "spotify.com/playlist/") {
		parts := strings.Split(input, "/playlist/")
		if len(parts) > 1 {
			// Remove any query parameters
			return strings.Split(parts[1], "?")[0]
		}
	}
	if strings.HasPrefix(input, "spotify:playlist:") {
		return strings.TrimPrefix(input, "spotify:playlist:")
	}
	return input
}
