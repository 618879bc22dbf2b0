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

// Package models defines the shared data model for pointradar.
package models

import "time"

// Device is a network-addressable point source. Devices are created on first
// discovery and logically deactivated, never hard-deleted.
type Device struct {
	DeviceID      int        `json:"device_id"`
	Address       string     `json:"address"`
	VendorID      int        `json:"vendor_id"`
	FirstSeen     time.Time  `json:"first_seen"`
	LastSeen      time.Time  `json:"last_seen"`
	IsOnline      bool       `json:"is_online"`
	PointsRead    bool       `json:"points_read"`
	IsActive      bool       `json:"is_active"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

// DeviceStatus is an append-only record of one contact attempt with a device.
type DeviceStatus struct {
	ID        string    `json:"id"`
	DeviceID  int       `json:"device_id"`
	Timestamp time.Time `json:"timestamp"`
	IsOnline  bool      `json:"is_online"`
}

// DeviceAnnouncement is a device heard during a WhoIs sweep, before it is
// persisted.
type DeviceAnnouncement struct {
	DeviceID int    `json:"device_id"`
	Address  string `json:"address"`
	VendorID int    `json:"vendor_id"`
}
