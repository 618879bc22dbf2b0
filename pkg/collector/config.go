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

package collector

import (
	"time"

	"github.com/carverauto/pointradar/pkg/bacnet"
)

const (
	defaultCollectionInterval = 300 * time.Second
	defaultDiscoveryInterval  = 1800 * time.Second
	defaultStaleThreshold     = 3600 * time.Second
)

// Config holds the collector's scheduling settings. Zero values fall back to
// the defaults.
type Config struct {
	CollectionInterval bacnet.Duration `json:"collection_interval"`
	DiscoveryInterval  bacnet.Duration `json:"discovery_interval"`
	StaleThreshold     bacnet.Duration `json:"stale_threshold"`
}

func (c *Config) collectionInterval() time.Duration {
	if c.CollectionInterval <= 0 {
		return defaultCollectionInterval
	}

	return time.Duration(c.CollectionInterval)
}

func (c *Config) discoveryInterval() time.Duration {
	if c.DiscoveryInterval <= 0 {
		return defaultDiscoveryInterval
	}

	return time.Duration(c.DiscoveryInterval)
}

func (c *Config) staleThreshold() time.Duration {
	if c.StaleThreshold <= 0 {
		return defaultStaleThreshold
	}

	return time.Duration(c.StaleThreshold)
}
