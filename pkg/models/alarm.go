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

// AlarmType enumerates what kind of condition raised an alarm.
type AlarmType string

const (
	AlarmTypeAnomaly       AlarmType = "anomaly_detected"
	AlarmTypeDeviceOffline AlarmType = "device_offline"
	AlarmTypeValueStale    AlarmType = "value_stale"
)

// Severity grades an alarm.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Alarm is a severity-graded alarm record. Alarms are resolved explicitly by
// an external actor, never auto-expired.
type Alarm struct {
	ID             string     `json:"id"`
	DeviceID       int        `json:"device_id"`
	PointID        *int64     `json:"point_id,omitempty"`
	AlarmType      AlarmType  `json:"alarm_type"`
	Severity       Severity   `json:"severity"`
	TriggeredValue string     `json:"triggered_value"`
	ThresholdValue string     `json:"threshold_value"`
	Message        string     `json:"message"`
	TriggeredAt    time.Time  `json:"triggered_at"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	IsActive       bool       `json:"is_active"`
}
