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

// Package alarm persists scored readings and raises alarms for the ones the
// detector flagged.
package alarm

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
	"github.com/carverauto/pointradar/pkg/models"
)

// severeZScore is the z-score above which an anomaly alarm is graded high
// instead of medium.
const severeZScore = 5.0

// readQuality is the data-quality recorded for a reading that arrived through
// a successful protocol exchange.
const readQuality = 1.0

// Manager records evaluated readings. Every call stores a Reading; anomalous
// ones additionally raise an alarm.
type Manager struct {
	db    db.Service
	log   logger.Logger
	clock func() time.Time
}

// NewManager creates an alarm manager backed by the given store.
func NewManager(database db.Service, log logger.Logger) *Manager {
	return &Manager{
		db:    database,
		log:   log,
		clock: time.Now,
	}
}

// Record stores a Reading for the point with the anomaly score set to the
// stronger of the two statistical signals. The persisted score deliberately
// ignores the isolation-forest and ensemble outputs; those only influence the
// isAnomaly verdict. When the verdict is true an anomaly alarm is raised as
// well.
func (m *Manager) Record(ctx context.Context, point *models.Point, value, zScore, iqrScore float64, isAnomaly bool) error {
	score := math.Max(zScore, iqrScore)
	now := m.clock()

	reading := &models.Reading{
		PointID:      point.ID,
		Value:        strconv.FormatFloat(value, 'f', -1, 64),
		ReadTime:     now,
		Quality:      readQuality,
		IsAnomaly:    isAnomaly,
		AnomalyScore: &score,
	}

	if err := m.db.StoreReading(ctx, reading); err != nil {
		return fmt.Errorf("store reading for point %s: %w", point.Identifier, err)
	}

	if !isAnomaly {
		return nil
	}

	severity := models.SeverityMedium
	if zScore >= severeZScore {
		severity = models.SeverityHigh
	}

	pointID := point.ID
	record := &models.Alarm{
		ID:             uuid.NewString(),
		DeviceID:       point.DeviceID,
		PointID:        &pointID,
		AlarmType:      models.AlarmTypeAnomaly,
		Severity:       severity,
		TriggeredValue: fmt.Sprintf("%s %s", reading.Value, bacnet.DisplayUnit(point.Units)),
		ThresholdValue: fmt.Sprintf("%.2f", score),
		Message: fmt.Sprintf("Anomalous value %s %s on %s (z-score %.2f, IQR score %.2f)",
			reading.Value, bacnet.DisplayUnit(point.Units), point.Identifier, zScore, iqrScore),
		TriggeredAt: now,
		IsActive:    true,
	}

	if err := m.db.StoreAlarm(ctx, record); err != nil {
		return fmt.Errorf("store alarm for point %s: %w", point.Identifier, err)
	}

	m.log.Warn().
		Str("point", point.Identifier).
		Str("severity", string(severity)).
		Float64("z_score", zScore).
		Float64("iqr_score", iqrScore).
		Msg("Anomaly alarm raised")

	return nil
}

// RaiseDeviceOffline records a device-level alarm with no point reference.
func (m *Manager) RaiseDeviceOffline(ctx context.Context, deviceID int, message string) error {
	record := &models.Alarm{
		ID:          uuid.NewString(),
		DeviceID:    deviceID,
		AlarmType:   models.AlarmTypeDeviceOffline,
		Severity:    models.SeverityMedium,
		Message:     message,
		TriggeredAt: m.clock(),
		IsActive:    true,
	}

	if err := m.db.StoreAlarm(ctx, record); err != nil {
		return fmt.Errorf("store offline alarm for device %d: %w", deviceID, err)
	}

	return nil
}
