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

// Package db pkg/db/interfaces.go
package db

import (
	"context"
	"time"

	"github.com/carverauto/pointradar/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/carverauto/pointradar/pkg/db Service

// Service represents all database operations for pointradar.
type Service interface {
	Close() error

	// Device operations.

	GetOrCreateDevice(ctx context.Context, ann models.DeviceAnnouncement) (device *models.Device, created bool, err error)
	MarkDeviceSeen(ctx context.Context, deviceID int) error
	UpdateDeviceVendor(ctx context.Context, deviceID, vendorID int) error
	MarkDevicePointsRead(ctx context.Context, deviceID int) error
	DeactivateDevice(ctx context.Context, deviceID int) error
	MarkDevicesStale(ctx context.Context, cutoff time.Time) (int64, error)
	ListOnlineDevices(ctx context.Context) ([]models.Device, error)
	StoreDeviceStatus(ctx context.Context, status *models.DeviceStatus) error

	// Point operations.

	GetOrCreatePoint(ctx context.Context, deviceID int, objectType string, instanceNumber int) (*models.Point, error)
	UpdatePointValue(ctx context.Context, pointID int64, value, objectName, units string, readAt time.Time) error
	UpdatePointMetadata(ctx context.Context, pointID int64, objectName, units string) error
	ListReadablePoints(ctx context.Context, deviceID int) ([]models.Point, error)

	// Reading operations. Readings are append-only.

	StoreReading(ctx context.Context, reading *models.Reading) error
	GetPointHistory(ctx context.Context, pointID int64, since time.Time) ([]models.Reading, error)

	// Alarm operations. Alarms are resolved explicitly, never auto-expired.

	StoreAlarm(ctx context.Context, alarm *models.Alarm) error
	ResolveAlarm(ctx context.Context, alarmID string) error
}
