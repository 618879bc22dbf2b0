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

package collector

import (
	"context"
	"time"

	"github.com/carverauto/pointradar/pkg/alarm"
	"github.com/carverauto/pointradar/pkg/anomaly"
	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
	"github.com/carverauto/pointradar/pkg/models"
)

// Mapper demultiplexes a chunk's flat value list back onto its points and
// persists the results. Batched values arrive in request order: three per
// analog point (value, name, unit), two per other point (value, name).
type Mapper struct {
	db       db.Service
	detector *anomaly.Detector
	alarms   *alarm.Manager
	log      logger.Logger
	clock    func() time.Time
}

// NewMapper creates a result mapper.
func NewMapper(database db.Service, detector *anomaly.Detector, alarms *alarm.Manager, log logger.Logger) *Mapper {
	return &Mapper{
		db:       database,
		detector: detector,
		alarms:   alarms,
		log:      log,
		clock:    time.Now,
	}
}

// MapChunk walks the outcome in lockstep with the chunk's points and returns
// the number of readings persisted. Storage failures are logged and absorbed;
// they never abort the rest of the chunk.
func (m *Mapper) MapChunk(ctx context.Context, chunk *Chunk, outcome *ChunkOutcome) int {
	if outcome.Batched {
		return m.mapBatched(ctx, chunk, outcome.Values)
	}

	return m.mapSingles(ctx, chunk, outcome.Singles)
}

func (m *Mapper) mapBatched(ctx context.Context, chunk *Chunk, values []bacnet.Value) int {
	stored := 0
	cursor := 0

	for i := range chunk.Points {
		point := &chunk.Points[i]

		value := values[cursor]
		name := values[cursor+1].String()

		units := ""
		if bacnet.IsAnalog(point.ObjectType) {
			units = values[cursor+2].String()
			cursor += 3
		} else {
			cursor += 2
		}

		stored += m.applyReading(ctx, point, value, name, units)
	}

	return stored
}

func (m *Mapper) mapSingles(ctx context.Context, chunk *Chunk, singles []SingleRead) int {
	stored := 0

	for i := range chunk.Points {
		if !singles[i].OK {
			continue
		}

		stored += m.applyReading(ctx, &chunk.Points[i], singles[i].Value, "", "")
	}

	return stored
}

// applyReading persists one point's read result and returns 1 when a Reading
// was stored. A null present value produces no Reading, but a freshly-read
// name or unit is still written back to the point.
func (m *Mapper) applyReading(ctx context.Context, point *models.Point, value bacnet.Value, name, units string) int {
	if value.IsNull() {
		if name != "" || units != "" {
			if err := m.db.UpdatePointMetadata(ctx, point.ID, name, units); err != nil {
				m.log.Warn().Err(err).Str("point", point.Identifier).Msg("Failed to update point metadata")
			}
		}

		m.log.Debug().Str("point", point.Identifier).Msg("Null present value, skipping reading")

		return 0
	}

	if err := m.persistReading(ctx, point, value, units); err != nil {
		m.log.Warn().Err(err).Str("point", point.Identifier).Msg("Failed to store reading")
		return 0
	}

	if err := m.db.UpdatePointValue(ctx, point.ID, value.String(), name, units, m.clock()); err != nil {
		m.log.Warn().Err(err).Str("point", point.Identifier).Msg("Failed to update point cache")
	}

	return 1
}

// persistReading routes temperature-like analog values through the anomaly
// detector and alarm manager; everything else is stored as a plain reading.
func (m *Mapper) persistReading(ctx context.Context, point *models.Point, value bacnet.Value, units string) error {
	scored := *point
	if units != "" {
		scored.Units = units
	}

	if anomaly.ShouldEvaluate(&scored) {
		if numeric, err := value.Float64(); err == nil {
			result := m.detector.Evaluate(ctx, &scored, numeric)
			return m.alarms.Record(ctx, &scored, numeric, result.ZScore, result.IQRScore, result.IsAnomaly)
		}
	}

	return m.db.StoreReading(ctx, &models.Reading{
		PointID:  point.ID,
		Value:    value.String(),
		ReadTime: m.clock(),
		Quality:  1.0,
	})
}
