// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package config

import "time"

// ClientConfig is the top-level configuration container for the kinkeeper
// client daemon (local cache, mutation queue, flush job).
type ClientConfig struct {
	// Cache holds the local SQLite cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds the settings of the remote-repository HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the background flush-job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Cache holds the local durable storage settings.
type Cache struct {
	// Path is the SQLite database file for the entity cache and the
	// mutation queue. ":memory:" keeps the cache in-process only.
	// Env: CACHE_PATH
	Path string `env:"PATH"`

	// TombstoneRetention bounds how long a confirmed-synced soft-deleted
	// row may linger before the reconciliation sweep prunes it.
	// Env: CACHE_TOMBSTONE_RETENTION
	TombstoneRetention time.Duration `env:"TOMBSTONE_RETENTION"`
}

// Adapter holds configuration for the remote repository client.
type Adapter struct {
	// BaseURL is the kinkeeper API server base URL.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the per-request timeout for remote calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the background mutation-queue flush job.
type Workers struct {
	// FlushInterval is the period of the background flush ticker.
	// Env: WORKERS_FLUSH_INTERVAL
	FlushInterval time.Duration `env:"FLUSH_INTERVAL"`
}

// GetClientConfig loads, merges, and validates the client configuration from
// environment variables, command-line flags, and an optional JSON file, in
// that priority order.
func GetClientConfig(args []string) (*ClientConfig, error) {
	return newClientBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
