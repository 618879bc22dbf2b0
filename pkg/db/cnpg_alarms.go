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

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/carverauto/pointradar/pkg/models"
)

// StoreAlarm appends one alarm record.
func (db *DB) StoreAlarm(ctx context.Context, alarm *models.Alarm) error {
	const query = `
INSERT INTO alarm_history
	(id, device_id, point_id, alarm_type, severity, triggered_value, threshold_value, message, triggered_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)`

	var pointID sql.NullInt64
	if alarm.PointID != nil {
		pointID = sql.NullInt64{Int64: *alarm.PointID, Valid: true}
	}

	_, err := db.pool.Exec(ctx, query,
		alarm.ID,
		alarm.DeviceID,
		pointID,
		string(alarm.AlarmType),
		string(alarm.Severity),
		alarm.TriggeredValue,
		alarm.ThresholdValue,
		alarm.Message,
		alarm.TriggeredAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("cnpg store alarm for device %d: %w", alarm.DeviceID, err)
	}

	return nil
}

// ResolveAlarm closes an alarm on behalf of an external actor.
func (db *DB) ResolveAlarm(ctx context.Context, alarmID string) error {
	const query = `
UPDATE alarm_history SET is_active = FALSE, resolved_at = now()
WHERE id = $1 AND is_active = TRUE`

	tag, err := db.pool.Exec(ctx, query, alarmID)
	if err != nil {
		return fmt.Errorf("cnpg resolve alarm %s: %w", alarmID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAlarmNotFound
	}

	return nil
}
