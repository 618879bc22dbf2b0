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

package alarm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
	"github.com/carverauto/pointradar/pkg/models"
)

func tempPoint() *models.Point {
	return &models.Point{
		ID:         42,
		DeviceID:   7,
		ObjectType: "analogInput",
		Identifier: "analogInput:3",
		Units:      "degreesFahrenheit",
	}
}

func TestRecordPersistsMaxOfStatisticalScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	var stored *models.Reading

	mockDB.EXPECT().StoreReading(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Reading) error {
			stored = r
			return nil
		})

	manager := NewManager(mockDB, logger.NewTestLogger())

	err := manager.Record(context.Background(), tempPoint(), 72.5, 1.2, 1.9, false)
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, int64(42), stored.PointID)
	assert.Equal(t, "72.5", stored.Value)
	assert.False(t, stored.IsAnomaly)
	require.NotNil(t, stored.AnomalyScore)
	assert.InDelta(t, 1.9, *stored.AnomalyScore, 0.0001)
}

func TestRecordAnomalyRaisesAlarm(t *testing.T) {
	tests := []struct {
		name         string
		zScore       float64
		iqrScore     float64
		wantSeverity models.Severity
		wantScore    float64
	}{
		{"medium below severe z", 3.0, 4.5, models.SeverityMedium, 4.5},
		{"high at severe z", 5.0, 1.0, models.SeverityHigh, 5.0},
		{"high above severe z", 7.2, 2.0, models.SeverityHigh, 7.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockDB := db.NewMockService(ctrl)

			var (
				stored *models.Reading
				raised *models.Alarm
			)

			mockDB.EXPECT().StoreReading(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r *models.Reading) error {
					stored = r
					return nil
				})
			mockDB.EXPECT().StoreAlarm(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a *models.Alarm) error {
					raised = a
					return nil
				})

			manager := NewManager(mockDB, logger.NewTestLogger())

			err := manager.Record(context.Background(), tempPoint(), 95.0, tt.zScore, tt.iqrScore, true)
			require.NoError(t, err)

			require.NotNil(t, stored)
			assert.True(t, stored.IsAnomaly)
			assert.InDelta(t, tt.wantScore, *stored.AnomalyScore, 0.0001)

			require.NotNil(t, raised)
			assert.NotEmpty(t, raised.ID)
			assert.Equal(t, 7, raised.DeviceID)
			require.NotNil(t, raised.PointID)
			assert.Equal(t, int64(42), *raised.PointID)
			assert.Equal(t, models.AlarmTypeAnomaly, raised.AlarmType)
			assert.Equal(t, tt.wantSeverity, raised.Severity)
			assert.Equal(t, "95 °F", raised.TriggeredValue)
			assert.Contains(t, raised.Message, "analogInput:3")
			assert.True(t, raised.IsActive)
		})
	}
}

func TestRecordStoreFailureReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	mockDB.EXPECT().StoreReading(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

	manager := NewManager(mockDB, logger.NewTestLogger())

	err := manager.Record(context.Background(), tempPoint(), 72.5, 6.0, 1.0, true)
	require.Error(t, err)
}
