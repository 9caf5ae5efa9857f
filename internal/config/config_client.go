package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the resolved transport settings.
type ClientAdapter struct {
	BaseURL        string
	RequestTimeout time.Duration
	ProbeTimeout   time.Duration
}

// ClientStorage holds the resolved journal settings.
type ClientStorage struct {
	// JournalDSN is empty when journaling is disabled.
	JournalDSN string
}

// ClientLog holds the resolved log sink settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientScenario holds the quick check credentials.
type ClientScenario struct {
	Username string
	Password string
}

// ClientConfig is the configuration view consumed by cmd/client.
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Log      ClientLog
	Scenario ClientScenario
}

// GetClientConfig loads the merged configuration and maps it to
// [ClientConfig]. flags may be nil.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	dotEnv := DefaultDotEnvPath
	if flags != nil {
		dotEnv = flags.DotEnvPath
	}

	cfg, err := GetStructuredConfig(flags, dotEnv)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ProbeTimeout:   cfg.Adapter.ProbeTimeout,
		},
		Storage: ClientStorage{JournalDSN: cfg.Storage.Journal.DSN},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
		Scenario: ClientScenario{
			Username: cfg.Scenario.Username,
			Password: cfg.Scenario.Password,
		},
	}, nil
}
