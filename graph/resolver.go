//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Root resolver and schema construction.
//

// Package graph exposes the upstream Spotify REST API as a GraphQL schema.
//
// Query resolvers return upstream failures as GraphQL errors. Mutation
// resolvers never do: every failure is reified into a payload with
// success=false so clients always receive a well-formed result.
package graph

import (
	"context"
	_ "embed"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"
)

//go:embed schema.graphql
var schemaSDL string

// maxParallelism bounds the fields of one request resolved concurrently.
const maxParallelism = 20

// Resolver is the root resolver for GraphQL queries and mutations. The
// upstream client is taken from each request's context, never stored here.
type Resolver struct {
	logger *zap.Logger
}

// NewResolver creates a new root resolver.
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger}
}

// NewSchema parses the schema and binds it to the resolver. Any mismatch
// between the schema and the resolver types is reported here, at startup.
func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, resolver,
		graphql.UseFieldResolvers(),
		graphql.MaxParallelism(maxParallelism),
		graphql.Logger(&panicLogger{logger: resolver.logger}),
	)
}

// SDL returns the schema definition served by this package.
func SDL() string {
	return schemaSDL
}

// panicLogger reports resolver panics recovered by the executor.
type panicLogger struct {
	logger *zap.Logger
}

// LogPanic logs a recovered resolver panic.
func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.logger.Error("graphql resolver panic", zap.Any("panic", value), zap.Stack("stack"))
}
