//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Optional client credentials authentication for upstream calls.
//

package spotify

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

// credentialsClient wraps base with an OAuth2 client credentials transport.
// Tokens are fetched through base and refreshed automatically.
func credentialsClient(ctx context.Context, base *http.Client, clientID, clientSecret string) *http.Client {
	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}

	client := cfg.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	client.Timeout = base.Timeout
	return client
}
