package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"adapter": {
			"base_url": "http://tasks:8080",
			"request_timeout": "15s",
			"probe_timeout": 2000000000
		},
		"storage": { "journal": { "dsn": "file:journal.db" } },
		"log": { "level": "error", "file": "client.log" },
		"scenario": { "username": "qa", "password": "pw" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://tasks:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.Adapter.ProbeTimeout)
	assert.Equal(t, "file:journal.db", cfg.Storage.Journal.DSN)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Equal(t, "qa", cfg.Scenario.Username)
	assert.Equal(t, "pw", cfg.Scenario.Password)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidBody(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_BadDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"adapter":{"request_timeout":"quickly"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(raw))
}
