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
	"time"

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/models"
)

const cnpgPointSelect = `
SELECT
	id,
	device_id,
	object_type,
	instance_number,
	identifier,
	object_name,
	present_value,
	units,
	value_last_read
FROM points`

// GetOrCreatePoint inserts a point keyed by (device, object type, instance),
// or returns the existing row.
func (db *DB) GetOrCreatePoint(ctx context.Context, deviceID int, objectType string, instanceNumber int) (*models.Point, error) {
	const upsert = `
INSERT INTO points (device_id, object_type, instance_number, identifier, object_name, present_value, units)
VALUES ($1, $2, $3, $4, '', '', '')
ON CONFLICT (device_id, object_type, instance_number) DO UPDATE SET identifier = EXCLUDED.identifier
RETURNING id, device_id, object_type, instance_number, identifier, object_name, present_value, units, value_last_read`

	identifier := fmt.Sprintf("%s:%d", objectType, instanceNumber)

	var point models.Point

	row := db.pool.QueryRow(ctx, upsert, deviceID, objectType, instanceNumber, identifier)
	if err := scanPoint(row, &point); err != nil {
		return nil, fmt.Errorf("cnpg get-or-create point %s on device %d: %w", identifier, deviceID, err)
	}

	return &point, nil
}

// UpdatePointValue writes back the cached last value, name, and unit after a
// successful read.
func (db *DB) UpdatePointValue(ctx context.Context, pointID int64, value, objectName, units string, readAt time.Time) error {
	const query = `
UPDATE points SET
	present_value = $2,
	object_name = CASE WHEN $3 <> '' THEN $3 ELSE object_name END,
	units = CASE WHEN $4 <> '' THEN $4 ELSE units END,
	value_last_read = $5
WHERE id = $1`

	tag, err := db.pool.Exec(ctx, query, pointID, value, objectName, units, readAt.UTC())
	if err != nil {
		return fmt.Errorf("cnpg update point %d value: %w", pointID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrPointNotFound
	}

	return nil
}

// UpdatePointMetadata writes back name and unit without touching the cached
// value, for reads where the present value came back null.
func (db *DB) UpdatePointMetadata(ctx context.Context, pointID int64, objectName, units string) error {
	const query = `
UPDATE points SET
	object_name = CASE WHEN $2 <> '' THEN $2 ELSE object_name END,
	units = CASE WHEN $3 <> '' THEN $3 ELSE units END
WHERE id = $1`

	tag, err := db.pool.Exec(ctx, query, pointID, objectName, units)
	if err != nil {
		return fmt.Errorf("cnpg update point %d metadata: %w", pointID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrPointNotFound
	}

	return nil
}

// ListReadablePoints returns the device's points whose object types are worth
// polling, ordered by object type then instance.
func (db *DB) ListReadablePoints(ctx context.Context, deviceID int) ([]models.Point, error) {
	query := cnpgPointSelect + `
WHERE device_id = $1 AND object_type = ANY($2)
ORDER BY object_type, instance_number`

	rows, err := db.pool.Query(ctx, query, deviceID, bacnet.ReadableObjectTypes())
	if err != nil {
		return nil, fmt.Errorf("cnpg list readable points for device %d: %w", deviceID, err)
	}
	defer rows.Close()

	var points []models.Point

	for rows.Next() {
		var point models.Point

		if err := scanPoint(rows, &point); err != nil {
			return nil, fmt.Errorf("cnpg scan point: %w", err)
		}

		points = append(points, point)
	}

	return points, rows.Err()
}

func scanPoint(row rowScanner, point *models.Point) error {
	var lastRead sql.NullTime

	err := row.Scan(
		&point.ID,
		&point.DeviceID,
		&point.ObjectType,
		&point.InstanceNumber,
		&point.Identifier,
		&point.ObjectName,
		&point.PresentValue,
		&point.Units,
		&lastRead,
	)
	if err != nil {
		return err
	}

	if lastRead.Valid {
		t := lastRead.Time
		point.ValueLastRead = &t
	}

	return nil
}
