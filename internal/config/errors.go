package config

import "errors"

// Validation errors returned when the merged configuration is unusable.
var (
	// ErrInvalidAdapterConfigs indicates a missing base URL or a
	// non-positive timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidScenarioConfigs indicates incomplete quick check credentials.
	ErrInvalidScenarioConfigs = errors.New("invalid scenario configuration")
)
