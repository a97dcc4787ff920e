// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultAPIURL is the people API base URL used when no source sets one.
const DefaultAPIURL = "http://localhost:8000"

// DefaultServerAddress is the listen address of the web front end.
const DefaultServerAddress = "localhost:8080"

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from a config
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds presentation settings and the application version.
	App App `envPrefix:"APP_"`

	// Adapter holds the people API location and outbound timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Server holds the listen address of the web front end.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// Frontend holds API URL variables understood by the browser and mobile
	// builds of the same product. They are consulted only when
	// Adapter.HTTPAddress is unset.
	Frontend Frontend

	// EnvFile is the path of the .env file loaded before the environment is
	// read. Populated via the ENV_FILE environment variable or -env-file.
	EnvFile string `env:"ENV_FILE"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CONFIG environment variable or the -c / -config
	// flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Layout is the presentation layout: "compact" or "full".
	// Env: APP_LAYOUT
	Layout string `env:"LAYOUT"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds outbound settings for the people API.
type Adapter struct {
	// HTTPAddress is the base URL of the people API
	// (e.g. "http://localhost:8000").
	// Env: ADAPTER_API_URL
	HTTPAddress string `env:"API_URL"`

	// RequestTimeout bounds a single outbound request (e.g. "5s").
	// Zero disables the timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network settings for the web front end.
type Server struct {
	// HTTPAddress is the TCP address the web front end listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Frontend holds API URL variables shared with the other front-end builds.
type Frontend struct {
	APIURL     string `env:"API_URL"`
	ViteAPIURL string `env:"VITE_API_URL"`
	ExpoAPIURL string `env:"EXPO_PUBLIC_API_URL"`
}

// apiURL resolves the people API base URL: the adapter setting first, then
// the front-end variables, then [DefaultAPIURL].
func (cfg *StructuredConfig) apiURL() string {
	for _, candidate := range []string{
		cfg.Adapter.HTTPAddress,
		cfg.Frontend.APIURL,
		cfg.Frontend.ViteAPIURL,
		cfg.Frontend.ExpoAPIURL,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return DefaultAPIURL
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. name is used in flag usage output and args are the
// command-line arguments without the program name.
func GetStructuredConfig(name string, args []string, withServerFlags bool) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(name, args, withServerFlags).
		withDotEnv().
		withEnv().
		withFile().
		build()
}
