// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_BASE_URL":        "http://tasks:8080",
		"ADAPTER_REQUEST_TIMEOUT": "12s",
		"ADAPTER_PROBE_TIMEOUT":   "3s",

		"STORAGE_JOURNAL_DSN": "file:journal.db",

		"LOG_LEVEL": "warn",
		"LOG_FILE":  "/var/log/client",

		"SCENARIO_USERNAME": "qa",
		"SCENARIO_PASSWORD": "secret",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://tasks:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Adapter.ProbeTimeout)
	assert.Equal(t, "file:journal.db", cfg.Storage.Journal.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/var/log/client", cfg.Log.File)
	assert.Equal(t, "qa", cfg.Scenario.Username)
	assert.Equal(t, "secret", cfg.Scenario.Password)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
