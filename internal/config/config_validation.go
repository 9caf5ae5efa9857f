// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged configuration after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.BaseURL) == "" {
		return fmt.Errorf("%w: empty base url", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ProbeTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLogConfigs, cfg.Log.Level)
	}

	if cfg.Scenario.Username == "" || cfg.Scenario.Password == "" {
		return ErrInvalidScenarioConfigs
	}

	return nil
}
