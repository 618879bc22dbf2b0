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

// Point is one addressable value within a device. Object type plus instance
// number is unique per device.
type Point struct {
	ID             int64      `json:"id"`
	DeviceID       int        `json:"device_id"`
	ObjectType     string     `json:"object_type"`
	InstanceNumber int        `json:"instance_number"`
	Identifier     string     `json:"identifier"`
	ObjectName     string     `json:"object_name,omitempty"`
	PresentValue   string     `json:"present_value,omitempty"`
	Units          string     `json:"units,omitempty"`
	ValueLastRead  *time.Time `json:"value_last_read,omitempty"`
}

// Reading is an immutable time-series fact for a point. AnomalyScore, when
// set, is the stronger of the z-score and IQR distances and is non-negative
// but unbounded above.
type Reading struct {
	ID           int64     `json:"id"`
	PointID      int64     `json:"point_id"`
	Value        string    `json:"value"`
	ReadTime     time.Time `json:"read_time"`
	Quality      float64   `json:"quality"`
	IsAnomaly    bool      `json:"is_anomaly"`
	AnomalyScore *float64  `json:"anomaly_score,omitempty"`
}
