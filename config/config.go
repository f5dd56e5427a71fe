//
// Date: 2026-10-15
// Author: Spicer Matthews <spicer@cloudmanic.com>
// Copyright (c) 2025 Cloudmanic Labs, LLC. All rights reserved.
//
// Description: Configuration loading from the environment and .env files.
//

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort    = "8080"
	DefaultBaseURL = "https://spotify-demo-api-fe224840a08c.herokuapp.com/v1/"
	DefaultTimeout = 10 * time.Second
)

// Config holds all configuration for the GraphQL service.
type Config struct {
	// Server settings
	Port string

	// Upstream REST API settings
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration

	Debug bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if it exists; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", DefaultPort),

		BaseURL:      NormalizeBaseURL(getEnv("SPOTIFY_BASE_URL", DefaultBaseURL)),
		ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		Timeout:      getEnvDuration("SPOTIFY_TIMEOUT", DefaultTimeout),

		Debug: getEnvBool("DEBUG", false),
	}
}

// HasCredentials reports whether upstream client credentials are configured.
func (c *Config) HasCredentials() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// NormalizeBaseURL makes sure the base URL ends with a slash, which the
// upstream client requires when joining endpoint paths.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
