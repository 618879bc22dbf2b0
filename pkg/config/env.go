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

package config

import (
	"os"
	"strconv"
)

// Environment variables recognized as overrides. Deployment secrets (the
// database DSN in particular) usually arrive this way rather than in the
// config file.
const (
	envDSN        = "POINTRADAR_DB_DSN"
	envListenAddr = "POINTRADAR_LISTEN_ADDR"
	envLogLevel   = "POINTRADAR_LOG_LEVEL"
	envIfaceAddr  = "POINTRADAR_INTERFACE_ADDRESS"
	envIfacePort  = "POINTRADAR_INTERFACE_PORT"
)

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envDSN); v != "" {
		cfg.Database.DSN = v
	}

	if v := os.Getenv(envListenAddr); v != "" {
		cfg.ListenAddr = v
	}

	if v := os.Getenv(envLogLevel); v != "" {
		cfg.Logging.Level = v
	}

	if v := os.Getenv(envIfaceAddr); v != "" {
		cfg.Interface.Address = v
	}

	if v := os.Getenv(envIfacePort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Interface.Port = port
		}
	}
}
