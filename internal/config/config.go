// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the accounts API endpoint settings.
	API API `envPrefix:"API_"`

	// Storage holds configuration for the local credential cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds limits for the KDF worker pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the outbound accounts API settings.
type API struct {
	// Address is the base URL of the accounts API
	// (e.g. "https://api.example.com").
	// Env: API_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local credential cache.
type DB struct {
	// DSN is the SQLite connection string
	// (e.g. "file:unlock.db?cache=shared").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds limits for background CPU-bound work.
type Workers struct {
	// KdfConcurrency caps how many key derivations may run at once. Each
	// memory-hard derivation can claim tens of MiB, so the cap bounds peak
	// memory as well as CPU.
	// Env: WORKERS_KDF_CONCURRENCY
	KdfConcurrency int `env:"KDF_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
