package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindFlags_AllFlags(t *testing.T) {
	f := parseTestFlags(t,
		"-a", "http://tasks:8080",
		"--request-timeout", "20s",
		"--probe-timeout", "1s",
		"--journal", "file:j.db",
		"--log-file", "client.log",
		"--log-level", "debug",
		"-c", "cfg.json",
		"--env-file", "custom.env",
	)

	assert.Equal(t, "http://tasks:8080", f.BaseURL)
	assert.Equal(t, 20*time.Second, f.RequestTimeout)
	assert.Equal(t, time.Second, f.ProbeTimeout)
	assert.Equal(t, "file:j.db", f.JournalDSN)
	assert.Equal(t, "client.log", f.LogFile)
	assert.Equal(t, "debug", f.LogLevel)
	assert.Equal(t, "cfg.json", f.JSONConfigPath)
	assert.Equal(t, "custom.env", f.DotEnvPath)

	cfg := f.toConfig()
	assert.Equal(t, "http://tasks:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, "file:j.db", cfg.Storage.Journal.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestBindFlags_Defaults(t *testing.T) {
	f := parseTestFlags(t)

	assert.Empty(t, f.BaseURL)
	assert.Zero(t, f.RequestTimeout)
	assert.Equal(t, DefaultDotEnvPath, f.DotEnvPath)
	assert.Equal(t, &StructuredConfig{}, f.toConfig())
}

func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	require.Error(t, fs.Parse([]string{"--probe-timeout", "later"}))
}
