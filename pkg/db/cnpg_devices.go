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

	"github.com/carverauto/pointradar/pkg/models"
)

const cnpgDeviceSelect = `
SELECT
	device_id,
	address,
	vendor_id,
	first_seen,
	last_seen,
	is_online,
	points_read,
	is_active,
	deactivated_at
FROM devices`

// GetOrCreateDevice inserts a device keyed by its natural identifier, or
// refreshes the address and online flags of a known one. The returned bool
// reports whether a new row was created.
func (db *DB) GetOrCreateDevice(ctx context.Context, ann models.DeviceAnnouncement) (*models.Device, bool, error) {
	const upsert = `
INSERT INTO devices (device_id, address, vendor_id, first_seen, last_seen, is_online, points_read, is_active)
VALUES ($1, $2, $3, now(), now(), TRUE, FALSE, TRUE)
ON CONFLICT (device_id) DO UPDATE SET
	address = EXCLUDED.address,
	last_seen = now(),
	is_online = TRUE,
	is_active = TRUE,
	deactivated_at = NULL
RETURNING device_id, address, vendor_id, first_seen, last_seen, is_online, points_read, is_active, deactivated_at,
	(xmax = 0) AS inserted`

	var (
		device   models.Device
		inserted bool
	)

	row := db.pool.QueryRow(ctx, upsert, ann.DeviceID, ann.Address, ann.VendorID)
	if err := scanDevice(row, &device, &inserted); err != nil {
		return nil, false, fmt.Errorf("cnpg get-or-create device %d: %w", ann.DeviceID, err)
	}

	return &device, inserted, nil
}

// MarkDeviceSeen refreshes last_seen and flags the device online after a
// successful contact.
func (db *DB) MarkDeviceSeen(ctx context.Context, deviceID int) error {
	const query = `UPDATE devices SET last_seen = now(), is_online = TRUE WHERE device_id = $1`

	tag, err := db.pool.Exec(ctx, query, deviceID)
	if err != nil {
		return fmt.Errorf("cnpg mark device %d seen: %w", deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// UpdateDeviceVendor records the vendor identifier learned during point
// discovery.
func (db *DB) UpdateDeviceVendor(ctx context.Context, deviceID, vendorID int) error {
	const query = `UPDATE devices SET vendor_id = $2 WHERE device_id = $1`

	tag, err := db.pool.Exec(ctx, query, deviceID, vendorID)
	if err != nil {
		return fmt.Errorf("cnpg update device %d vendor: %w", deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// MarkDevicePointsRead flags that point discovery completed for the device.
func (db *DB) MarkDevicePointsRead(ctx context.Context, deviceID int) error {
	const query = `UPDATE devices SET points_read = TRUE WHERE device_id = $1`

	tag, err := db.pool.Exec(ctx, query, deviceID)
	if err != nil {
		return fmt.Errorf("cnpg mark device %d points read: %w", deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// DeactivateDevice logically removes a device. Rows are never hard-deleted.
func (db *DB) DeactivateDevice(ctx context.Context, deviceID int) error {
	const query = `
UPDATE devices SET is_active = FALSE, is_online = FALSE, deactivated_at = now()
WHERE device_id = $1`

	tag, err := db.pool.Exec(ctx, query, deviceID)
	if err != nil {
		return fmt.Errorf("cnpg deactivate device %d: %w", deviceID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrDeviceNotFound
	}

	return nil
}

// MarkDevicesStale flags devices offline whose last contact predates cutoff
// and returns how many rows changed.
func (db *DB) MarkDevicesStale(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
UPDATE devices SET is_online = FALSE
WHERE is_online = TRUE AND last_seen < $1`

	tag, err := db.pool.Exec(ctx, query, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("cnpg mark devices stale: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListOnlineDevices returns active online devices ordered by device id.
func (db *DB) ListOnlineDevices(ctx context.Context) ([]models.Device, error) {
	query := cnpgDeviceSelect + `
WHERE is_online = TRUE AND is_active = TRUE
ORDER BY device_id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("cnpg list online devices: %w", err)
	}
	defer rows.Close()

	var devices []models.Device

	for rows.Next() {
		var device models.Device

		if err := scanDevice(rows, &device, nil); err != nil {
			return nil, fmt.Errorf("cnpg scan device: %w", err)
		}

		devices = append(devices, device)
	}

	return devices, rows.Err()
}

// StoreDeviceStatus appends one contact record.
func (db *DB) StoreDeviceStatus(ctx context.Context, status *models.DeviceStatus) error {
	const query = `
INSERT INTO device_status_history (id, device_id, timestamp, is_online)
VALUES ($1, $2, $3, $4)`

	_, err := db.pool.Exec(ctx, query, status.ID, status.DeviceID, status.Timestamp.UTC(), status.IsOnline)
	if err != nil {
		return fmt.Errorf("cnpg store device status: %w", err)
	}

	return nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner, device *models.Device, inserted *bool) error {
	var deactivatedAt sql.NullTime

	dest := []any{
		&device.DeviceID,
		&device.Address,
		&device.VendorID,
		&device.FirstSeen,
		&device.LastSeen,
		&device.IsOnline,
		&device.PointsRead,
		&device.IsActive,
		&deactivatedAt,
	}
	if inserted != nil {
		dest = append(dest, inserted)
	}

	if err := row.Scan(dest...); err != nil {
		return err
	}

	if deactivatedAt.Valid {
		t := deactivatedAt.Time
		device.DeactivatedAt = &t
	}

	return nil
}
