//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Transport recording the HTTP status of failed upstream responses.
//

package spotify

import (
	"context"
	"net/http"
	"sync/atomic"
)

type statusKey struct{}

// statusRecorder holds the status of the last non-2xx response seen for a call.
type statusRecorder struct {
	status atomic.Int32
}

func withStatusRecorder(ctx context.Context) (context.Context, *statusRecorder) {
	rec := &statusRecorder{}
	return context.WithValue(ctx, statusKey{}, rec), rec
}

// statusTransport records non-2xx response codes into the recorder carried
// by the request context. Requests without a recorder pass straight through.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if rec, ok := req.Context().Value(statusKey{}).(*statusRecorder); ok {
			rec.status.Store(int32(resp.StatusCode))
		}
	}
	return resp, nil
}

func (t *statusTransport) CloseIdleConnections() {
	if c, ok := t.base.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}

// withStatusTransport returns a copy of client whose transport records statuses.
func withStatusTransport(client *http.Client) *http.Client {
	base := client.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	wrapped := *client
	wrapped.Transport = &statusTransport{base: base}
	return &wrapped
}

// statusError attaches the upstream HTTP status to an error regardless of
// the shape of the response body.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }

func (e *statusError) Unwrap() error { return e.err }

func (e *statusError) Cause() error { return e.err }

// withStatus wraps err with the status recorded during the call, if any.
func withStatus(err error, rec *statusRecorder) error {
	if err == nil {
		return nil
	}
	if status := int(rec.status.Load()); status != 0 {
		return &statusError{status: status, err: err}
	}
	return err
}
