// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merge target for every configuration source.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote service address and request timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the optional scenario journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// Scenario holds the credentials used by the quick check.
	Scenario Scenario `envPrefix:"SCENARIO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the transport to the task manager service.
type Adapter struct {
	// BaseURL of the service, with or without scheme
	// (e.g. "http://localhost:8080" or "localhost:8080").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds auth and GraphQL calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeTimeout bounds health and metrics probes.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	Journal Journal `envPrefix:"JOURNAL_"`
}

// Journal configures the SQLite scenario journal. An empty DSN disables it.
type Journal struct {
	// Env: STORAGE_JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Log configures the client log file.
type Log struct {
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Scenario holds the account used by the quick check.
type Scenario struct {
	// Env: SCENARIO_USERNAME
	Username string `env:"USERNAME"`
	// Env: SCENARIO_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig merges all sources. flags may be nil when no command
// line is available; dotEnvPath may be empty to skip .env loading.
func GetStructuredConfig(flags *Flags, dotEnvPath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvPath).
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
