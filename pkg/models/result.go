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

package models

import "time"

// CollectionResult summarizes one collection cycle for the scheduler.
// Partial success is reported as counts, never as an all-or-nothing boolean.
type CollectionResult struct {
	DevicesProcessed  int       `json:"devices_processed"`
	ReadingsCollected int       `json:"readings_collected"`
	DevicesFailed     int       `json:"devices_failed"`
	Timestamp         time.Time `json:"timestamp"`
}

// DiscoveryResult summarizes one discovery sweep.
type DiscoveryResult struct {
	DevicesFound int       `json:"devices_found"`
	DevicesNew   int       `json:"devices_new"`
	Timestamp    time.Time `json:"timestamp"`
}
