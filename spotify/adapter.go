//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Adapter owning the single upstream REST client handle.
//

package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	spotifyLib "github.com/zmb3/spotify/v2"
	"go.uber.org/zap"
)

// Options configures a new Adapter.
type Options struct {
	// BaseURL is the upstream API root and must end with a slash.
	BaseURL string

	// Timeout bounds every upstream request. Zero means no timeout.
	Timeout time.Duration

	// ClientID and ClientSecret enable the client credentials flow when both are set.
	ClientID     string
	ClientSecret string

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client

	Logger *zap.Logger
}

// Adapter wraps the upstream REST client. It is created once at startup,
// shared by every request and released with Close.
type Adapter struct {
	api        api
	httpClient *http.Client
	baseURL    string
	closeIdle func()
	logger    *zap.Logger
}

// NewAdapter builds the upstream client for the given base URL.
func NewAdapter(ctx context.Context, opts Options) (*Adapter, error) {
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base url %q", opts.BaseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("invalid base url %q: scheme and host are required", opts.BaseURL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := opts.HTTPClient
	var closeIdle func()
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		httpClient = &http.Client{Transport: transport, Timeout: opts.Timeout}
		closeIdle = transport.CloseIdleConnections
	} else {
		closeIdle = httpClient.CloseIdleConnections
	}
	httpClient = withStatusTransport(httpClient)

	if opts.ClientID != "" && opts.ClientSecret != "" {
		httpClient = credentialsClient(ctx, httpClient, opts.ClientID, opts.ClientSecret)
		logger.Info("using client credentials for upstream requests")
	}

	return &Adapter{
		api:        spotifyLib.New(httpClient, spotifyLib.WithBaseURL(opts.BaseURL)),
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		closeIdle:  closeIdle,
		logger:     logger,
	}, nil
}

// BaseURL returns the upstream API root the adapter talks to.
func (a *Adapter) BaseURL() string {
	return a.baseURL
}

// Close releases idle upstream connections. It is safe to call more than once.
func (a *Adapter) Close() error {
	a.closeIdle()
	return nil
}

// FeaturedPlaylists fetches the featured playlists listing.
func (a *Adapter) FeaturedPlaylists(ctx context.Context) (*spotifyLib.SimplePlaylistPage, error) {
	defer a.trace("browse/featured-playlists", time.Now())

	ctx, rec := withStatusRecorder(ctx)
	_, page, err := a.api.FeaturedPlaylists(ctx)
	if err = withStatus(err, rec); err != nil {
		return nil, errors.Wrap(err, "fetch featured playlists")
	}
	if page == nil {
		return nil, errors.New("fetch featured playlists: empty response body")
	}
	return page, nil
}

// GetPlaylist fetches a single playlist including its first page of tracks.
func (a *Adapter) GetPlaylist(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.FullPlaylist, error) {
	defer a.trace("playlists/"+string(playlistID), time.Now())

	ctx, rec := withStatusRecorder(ctx)
	playlist, err := a.api.GetPlaylist(ctx, playlistID)
	if err = withStatus(err, rec); err != nil {
		return nil, errors.Wrapf(err, "fetch playlist %s", playlistID)
	}
	if playlist == nil {
		return nil, errors.Errorf("fetch playlist %s: empty response body", playlistID)
	}
	return playlist, nil
}

// PlaylistTracks fetches the first page of tracks for a playlist.
func (a *Adapter) PlaylistTracks(ctx context.Context, playlistID spotifyLib.ID) (*spotifyLib.PlaylistTrackPage, error) {
	defer a.trace("playlists/"+string(playlistID)+"/tracks", time.Now())

	ctx, rec := withStatusRecorder(ctx)
	page, err := a.api.GetPlaylistTracks(ctx, playlistID)
	if err = withStatus(err, rec); err != nil {
		return nil, errors.Wrapf(err, "fetch tracks for playlist %s", playlistID)
	}
	if page == nil {
		return nil, errors.Errorf("fetch tracks for playlist %s: empty response body", playlistID)
	}
	return page, nil
}

// AddItemsToPlaylist appends the given URIs to a playlist and returns the
// new snapshot ID. The URIs are sent exactly as given; the zmb3 client only
// adds track IDs, so this call talks to the endpoint directly.
func (a *Adapter) AddItemsToPlaylist(ctx context.Context, playlistID spotifyLib.ID, uris []string) (string, error) {
	defer a.trace("POST playlists/"+string(playlistID)+"/tracks", time.Now())

	body, err := json.Marshal(struct {
		URIs []string `json:"uris"`
	}{URIs: uris})
	if err != nil {
		return "", errors.Wrap(err, "encode add items request")
	}

	endpoint := a.baseURL + "playlists/" + url.PathEscape(string(playlistID)) + "/tracks"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrapf(err, "add items to playlist %s", playlistID)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "add items to playlist %s", playlistID)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.Wrapf(decodeError(resp), "add items to playlist %s", playlistID)
	}

	var result struct {
		SnapshotID string `json:"snapshot_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrapf(err, "decode add items response for playlist %s", playlistID)
	}
	return result.SnapshotID, nil
}

// decodeError reads a non-2xx response into an upstream Error. The message
// comes from {"error": {...}}, {"error": "..."} or {"detail": "..."} bodies,
// falling back to the raw body text.
func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var envelope struct {
		Error  json.RawMessage `json:"error"`
		Detail string          `json:"detail"`
	}
	message := ""
	if json.Unmarshal(data, &envelope) == nil {
		var upstream Error
		var text string
		switch {
		case json.Unmarshal(envelope.Error, &upstream) == nil && upstream.Message != "":
			message = upstream.Message
		case json.Unmarshal(envelope.Error, &text) == nil && text != "":
			message = text
		default:
			message = envelope.Detail
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(data))
	}
	if message == "" {
		message = fmt.Sprintf("unexpected HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return &statusError{
		status: resp.StatusCode,
		err:    Error{Message: message, Status: resp.StatusCode},
	}
}

func (a *Adapter) trace(endpoint string, start time.Time) {
	a.logger.Debug("upstream request",
		zap.String("endpoint", endpoint),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// StatusCode returns the upstream HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var withCode *statusError
	if errors.As(err, &withCode) {
		return withCode.status, true
	}

	var upstream Error
	if errors.As(err, &upstream) && upstream.Status != 0 {
		return upstream.Status, true
	}
	return 0, false
}

// Message returns the upstream error message carried by err, falling back
// to the full error text.
func Message(err error) string {
	var upstream Error
	if errors.As(err, &upstream) && upstream.Message != "" {
		return upstream.Message
	}
	return err.Error()
}
