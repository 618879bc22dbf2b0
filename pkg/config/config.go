/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the collector's JSON configuration and applies
// environment overrides.
package config

import (
	"context"
	"errors"

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/collector"
	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
)

var ErrMissingDSN = errors.New("database.dsn is required")

// ConfigLoader abstracts the source of configuration data.
type ConfigLoader interface {
	Load(ctx context.Context, path string, dst interface{}) error
}

// Config is the collector binary's full configuration.
type Config struct {
	Database  db.Config              `json:"database"`
	Interface bacnet.InterfaceConfig `json:"interface"`
	Collector collector.Config       `json:"collector"`
	Logging   logger.Config          `json:"logging"`

	// ListenAddr serves prometheus metrics when set, e.g. ":9090".
	ListenAddr string `json:"listen_addr,omitempty"`
}

// Validate checks the fields without defaults.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return ErrMissingDSN
	}

	return nil
}

// LoadAndValidate loads the config from path, applies environment overrides,
// and validates it.
func LoadAndValidate(ctx context.Context, loader ConfigLoader, path string, cfg *Config) error {
	if err := loader.Load(ctx, path, cfg); err != nil {
		return err
	}

	applyEnvOverrides(cfg)

	return cfg.Validate()
}
