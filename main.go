//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: GraphQL API in front of the Spotify REST API.
// The upstream client is created once at startup, shared by every request
// through the request context and released on shutdown.
//

package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/cloudmanic/spotify-graphql/config"
	"github.com/cloudmanic/spotify-graphql/graph"
	"github.com/cloudmanic/spotify-graphql/server"
	"github.com/cloudmanic/spotify-graphql/spotify"
)

const shutdownTimeout = 10 * time.Second

// main parses flags, loads configuration and either prints the featured
// playlists or serves the GraphQL API until interrupted.
func main() {
	featured := flag.Bool("featured", false, "List the featured playlists and exit")
	debug := flag.Bool("debug", false, "Verbose logging and raw API responses")
	baseURL := flag.String("base-url", "", "Upstream REST API base URL (overrides SPOTIFY_BASE_URL)")
	port := flag.String("port", "", "Port to listen on (overrides PORT)")
	flag.Parse()

	cfg := config.Load()
	if *baseURL != "" {
		cfg.BaseURL = config.NormalizeBaseURL(*baseURL)
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *debug {
		cfg.Debug = true
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	err = run(cfg, logger, *featured)
	_ = logger.Sync()
	if err != nil {
		logger.Fatal("exiting", zap.Error(err))
	}
}

// run owns the upstream adapter for the life of the process. The deferred
// Close runs on every return path, including startup failures.
func run(cfg *config.Config, logger *zap.Logger, featured bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter, err := spotify.NewAdapter(ctx, adapterOptions(cfg, logger))
	if err != nil {
		return errors.Wrap(err, "create upstream client")
	}
	defer adapter.Close()

	if featured {
		return printFeaturedPlaylists(ctx, os.Stdout, adapter, cfg.Debug)
	}

	schema, err := graph.NewSchema(graph.NewResolver(logger))
	if err != nil {
		return errors.Wrap(err, "parse graphql schema")
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewRouter(schema, adapter, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	logger.Info("graphql api listening",
		zap.String("addr", httpServer.Addr),
		zap.String("upstream", adapter.BaseURL()),
	)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}

// adapterOptions maps the configuration onto adapter options. Credentials are
// only passed on when both halves are configured.
func adapterOptions(cfg *config.Config, logger *zap.Logger) spotify.Options {
	opts := spotify.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
		Logger:  logger,
	}

	switch {
	case cfg.HasCredentials():
		opts.ClientID = cfg.ClientID
		opts.ClientSecret = cfg.ClientSecret
	case cfg.ClientID != "" || cfg.ClientSecret != "":
		logger.Warn("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must both be set, sending unauthenticated requests")
	}
	return opts
}

// newLogger returns a console logger in debug mode and a JSON logger otherwise.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
