package config

import "time"

const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultRequestTimeout = 10 * time.Second
	DefaultProbeTimeout   = 5 * time.Second
	DefaultLogLevel       = "info"
	DefaultScenarioUser   = "user"
	DefaultScenarioPass   = "user123"
	DefaultDotEnvPath     = ".env"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ProbeTimeout == 0 {
		cfg.Adapter.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Scenario.Username == "" {
		cfg.Scenario.Username = DefaultScenarioUser
	}
	if cfg.Scenario.Password == "" {
		cfg.Scenario.Password = DefaultScenarioPass
	}
}
