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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/pointradar/pkg/alarm"
	"github.com/carverauto/pointradar/pkg/anomaly"
	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
	"github.com/carverauto/pointradar/pkg/models"
)

func newTestMapper(mockDB *db.MockService) *Mapper {
	log := logger.NewTestLogger()
	detector := anomaly.New(mockDB, log)
	alarms := alarm.NewManager(mockDB, log)

	return NewMapper(mockDB, detector, alarms, log)
}

func TestMapChunkBatchedLockstep(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	points := []models.Point{
		{ID: 1, DeviceID: 7, ObjectType: "analogInput", InstanceNumber: 0, Identifier: "analogInput:0"},
		{ID: 2, DeviceID: 7, ObjectType: "binaryInput", InstanceNumber: 0, Identifier: "binaryInput:0"},
	}

	chunks := PlanChunks("10.0.0.7", points)
	require.Len(t, chunks, 1)

	outcome := &ChunkOutcome{
		Batched: true,
		Values: []bacnet.Value{
			bacnet.NewValue(21.5), bacnet.NewValue("Zone Temp"), bacnet.NewValue("degreesCelsius"),
			bacnet.NewValue("active"), bacnet.NewValue("Fan Status"),
		},
	}

	// Temperature analog input is routed through detection; too little
	// history means a neutral score and no alarm.
	mockDB.EXPECT().GetPointHistory(gomock.Any(), int64(1), gomock.Any()).Return(nil, nil)

	var stored []*models.Reading

	mockDB.EXPECT().StoreReading(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, r *models.Reading) error {
			stored = append(stored, r)
			return nil
		})

	mockDB.EXPECT().UpdatePointValue(gomock.Any(), int64(1), "21.5", "Zone Temp", "degreesCelsius", gomock.Any()).Return(nil)
	mockDB.EXPECT().UpdatePointValue(gomock.Any(), int64(2), "active", "Fan Status", "", gomock.Any()).Return(nil)

	mapper := newTestMapper(mockDB)

	count := mapper.MapChunk(context.Background(), &chunks[0], outcome)
	assert.Equal(t, 2, count)

	require.Len(t, stored, 2)
	assert.Equal(t, int64(1), stored[0].PointID)
	assert.False(t, stored[0].IsAnomaly)
	require.NotNil(t, stored[0].AnomalyScore)
	assert.Zero(t, *stored[0].AnomalyScore)

	assert.Equal(t, int64(2), stored[1].PointID)
	assert.Equal(t, "active", stored[1].Value)
	assert.Nil(t, stored[1].AnomalyScore)
}

func TestMapChunkNullValueSkipsReading(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	points := []models.Point{
		{ID: 3, DeviceID: 7, ObjectType: "analogValue", InstanceNumber: 2, Identifier: "analogValue:2"},
	}

	chunks := PlanChunks("10.0.0.7", points)
	require.Len(t, chunks, 1)

	outcome := &ChunkOutcome{
		Batched: true,
		Values: []bacnet.Value{
			bacnet.NewValue(nil), bacnet.NewValue("Setpoint"), bacnet.NewValue("degreesCelsius"),
		},
	}

	// No Reading, but the freshly-read name and unit still land on the point.
	mockDB.EXPECT().UpdatePointMetadata(gomock.Any(), int64(3), "Setpoint", "degreesCelsius").Return(nil)

	mapper := newTestMapper(mockDB)

	count := mapper.MapChunk(context.Background(), &chunks[0], outcome)
	assert.Zero(t, count)
}

func TestMapChunkSingles(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	points := makePoints(0, 2)
	chunks := PlanChunks("10.0.0.7", points)
	require.Len(t, chunks, 1)

	outcome := &ChunkOutcome{
		Singles: []SingleRead{
			{Value: bacnet.NewValue("inactive"), OK: true},
			{OK: false},
		},
	}

	mockDB.EXPECT().StoreReading(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.EXPECT().UpdatePointValue(gomock.Any(), int64(1), "inactive", "", "", gomock.Any()).Return(nil)

	mapper := newTestMapper(mockDB)

	count := mapper.MapChunk(context.Background(), &chunks[0], outcome)
	assert.Equal(t, 1, count)
}
