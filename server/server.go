//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: HTTP server exposing the GraphQL endpoint.
//

package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"go.uber.org/zap"

	"github.com/cloudmanic/spotify-graphql/graph"
	"github.com/cloudmanic/spotify-graphql/spotify"
)

// APIResponse represents a standard JSON response for the non-GraphQL endpoints.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewRouter builds the HTTP routes. Every GraphQL request carries client in
// its context.
func NewRouter(schema *graphql.Schema, client spotify.Client, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)

	gql := withClient(client)(&relay.Handler{Schema: schema})

	r.Get("/", HandleRootRequest)
	r.Get("/health", HandleHealthRequest)
	r.Get("/schema", HandleSchemaRequest)
	r.Method(http.MethodPost, "/", gql)
	r.Method(http.MethodPost, "/graphql", gql)

	return r
}

// withClient injects the shared upstream client into each request context.
func withClient(client spotify.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(graph.WithClient(r.Context(), client)))
		})
	}
}

// HandleRootRequest handles requests to the root path with a simple message.
func HandleRootRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "Spotify GraphQL API. POST queries to /graphql, schema at /schema.")
}

// HandleHealthRequest reports that the process is serving.
func HandleHealthRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(APIResponse{
		Success: true,
		Message: "ok",
	})
}

// HandleSchemaRequest serves the schema definition language document.
func HandleSchemaRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, graph.SDL())
}
