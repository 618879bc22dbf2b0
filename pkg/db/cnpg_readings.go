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

// StoreReading appends one reading. The anomaly score is a non-negative
// statistical distance (z-score or IQR distance), not a bounded confidence;
// negative scores are rejected before touching the database.
func (db *DB) StoreReading(ctx context.Context, reading *models.Reading) error {
	if reading.AnomalyScore != nil && *reading.AnomalyScore < 0 {
		return fmt.Errorf("%w: %f", ErrInvalidAnomalyScore, *reading.AnomalyScore)
	}

	const query = `
INSERT INTO readings (point_id, value, read_time, quality, is_anomaly, anomaly_score)
VALUES ($1, $2, $3, $4, $5, $6)`

	var score sql.NullFloat64
	if reading.AnomalyScore != nil {
		score = sql.NullFloat64{Float64: *reading.AnomalyScore, Valid: true}
	}

	_, err := db.pool.Exec(ctx, query,
		reading.PointID,
		reading.Value,
		reading.ReadTime.UTC(),
		reading.Quality,
		reading.IsAnomaly,
		score,
	)
	if err != nil {
		return fmt.Errorf("cnpg store reading for point %d: %w", reading.PointID, err)
	}

	return nil
}

// GetPointHistory returns the point's readings since the given time, oldest
// first, for the anomaly detector's lookback window.
func (db *DB) GetPointHistory(ctx context.Context, pointID int64, since time.Time) ([]models.Reading, error) {
	const query = `
SELECT id, point_id, value, read_time, quality, is_anomaly, anomaly_score
FROM readings
WHERE point_id = $1 AND read_time >= $2
ORDER BY read_time`

	rows, err := db.pool.Query(ctx, query, pointID, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("cnpg point %d history: %w", pointID, err)
	}
	defer rows.Close()

	var readings []models.Reading

	for rows.Next() {
		var (
			reading models.Reading
			score   sql.NullFloat64
		)

		err := rows.Scan(
			&reading.ID,
			&reading.PointID,
			&reading.Value,
			&reading.ReadTime,
			&reading.Quality,
			&reading.IsAnomaly,
			&score,
		)
		if err != nil {
			return nil, fmt.Errorf("cnpg scan reading: %w", err)
		}

		if score.Valid {
			s := score.Float64
			reading.AnomalyScore = &s
		}

		readings = append(readings, reading)
	}

	return readings, rows.Err()
}
