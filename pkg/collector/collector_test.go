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

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
	"github.com/carverauto/pointradar/pkg/models"
)

func newTestCollector(mockDB *db.MockService, client bacnet.Client) *Collector {
	log := logger.NewTestLogger()

	dialer := func(context.Context, *bacnet.InterfaceConfig) (bacnet.Client, error) {
		return client, nil
	}

	session := bacnet.NewSessionManager(nil, dialer, log)
	mapper := newTestMapper(mockDB)

	return New(Config{}, mockDB, session, mapper, nil, log)
}

// batchResponse builds a well-formed flat value list for a chunk: value,
// name, and (for analog points) a non-temperature unit.
func batchResponse(chunk *Chunk) []bacnet.Value {
	values := make([]bacnet.Value, 0, chunk.ExpectedCount)

	for i := range chunk.Points {
		values = append(values, bacnet.NewValue(20.5), bacnet.NewValue("Point "+chunk.Points[i].Identifier))

		if bacnet.IsAnalog(chunk.Points[i].ObjectType) {
			values = append(values, bacnet.NewValue("percent"))
		}
	}

	return values
}

func TestCollectDegradedChunkScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	client := bacnet.NewMockClient(ctrl)

	device := models.Device{DeviceID: 7, Address: "10.0.0.7", IsOnline: true, IsActive: true, PointsRead: true}
	points := makePoints(55, 5)
	chunks := PlanChunks(device.Address, points)
	require.Len(t, chunks, 2)

	mockDB.EXPECT().MarkDevicesStale(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockDB.EXPECT().ListOnlineDevices(gomock.Any()).Return([]models.Device{device}, nil)
	mockDB.EXPECT().ListReadablePoints(gomock.Any(), 7).Return(points, nil)

	// Chunk 1 stays a single batched call; chunk 2 misbehaves twice and
	// degrades to 10 sequential single-point reads.
	client.EXPECT().ReadMultiple(gomock.Any(), chunks[0].Request).Return(batchResponse(&chunks[0]), nil)
	client.EXPECT().ReadMultiple(gomock.Any(), chunks[1].Request).Return(nil, errTransport).Times(2)

	for i := range chunks[1].Points {
		client.EXPECT().Read(gomock.Any(), SingleReadRequest(device.Address, &chunks[1].Points[i])).
			Return(bacnet.NewValue(1.0), nil)
	}

	mockDB.EXPECT().StoreReading(gomock.Any(), gomock.Any()).Return(nil).Times(60)
	mockDB.EXPECT().UpdatePointValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(60)
	mockDB.EXPECT().MarkDeviceSeen(gomock.Any(), 7).Return(nil)

	client.EXPECT().Close().Return(nil)

	c := newTestCollector(mockDB, client)

	result, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.DevicesProcessed)
	assert.Equal(t, 60, result.ReadingsCollected)
	assert.Zero(t, result.DevicesFailed)
}

func TestCollectSessionFailureAbortsCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)

	mockDB.EXPECT().MarkDevicesStale(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	log := logger.NewTestLogger()
	dialer := func(context.Context, *bacnet.InterfaceConfig) (bacnet.Client, error) {
		return nil, errTransport
	}
	session := bacnet.NewSessionManager(nil, dialer, log)

	c := New(Config{}, mockDB, session, newTestMapper(mockDB), nil, log)

	_, err := c.Collect(context.Background())
	require.ErrorIs(t, err, bacnet.ErrConnectionFailed)
}

func TestCollectDeviceFailureDoesNotAbortRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	client := bacnet.NewMockClient(ctrl)

	devices := []models.Device{
		{DeviceID: 1, Address: "10.0.0.1", PointsRead: true},
		{DeviceID: 2, Address: "10.0.0.2", PointsRead: true},
	}
	points := makePoints(1, 0)
	chunks := PlanChunks("10.0.0.2", points)

	mockDB.EXPECT().MarkDevicesStale(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockDB.EXPECT().ListOnlineDevices(gomock.Any()).Return(devices, nil)

	// Device 1's point listing fails; device 2 still collects.
	mockDB.EXPECT().ListReadablePoints(gomock.Any(), 1).Return(nil, errTransport)
	mockDB.EXPECT().ListReadablePoints(gomock.Any(), 2).Return(points, nil)

	client.EXPECT().ReadMultiple(gomock.Any(), chunks[0].Request).Return(batchResponse(&chunks[0]), nil)
	client.EXPECT().Close().Return(nil)

	mockDB.EXPECT().StoreReading(gomock.Any(), gomock.Any()).Return(nil)
	mockDB.EXPECT().UpdatePointValue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockDB.EXPECT().MarkDeviceSeen(gomock.Any(), 2).Return(nil)

	c := newTestCollector(mockDB, client)

	result, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.DevicesProcessed)
	assert.Equal(t, 1, result.DevicesFailed)
	assert.Equal(t, 1, result.ReadingsCollected)
}

func TestDiscoverUpsertsAnnouncedDevices(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	client := bacnet.NewMockClient(ctrl)

	announcements := []models.DeviceAnnouncement{
		{DeviceID: 7, Address: "10.0.0.7", VendorID: 15},
		{DeviceID: 9, Address: "10.0.0.9", VendorID: 15},
	}

	client.EXPECT().WhoIs(gomock.Any()).Return(announcements, nil)
	client.EXPECT().Close().Return(nil)

	mockDB.EXPECT().GetOrCreateDevice(gomock.Any(), announcements[0]).
		Return(&models.Device{DeviceID: 7, Address: "10.0.0.7"}, false, nil)
	mockDB.EXPECT().GetOrCreateDevice(gomock.Any(), announcements[1]).
		Return(&models.Device{DeviceID: 9, Address: "10.0.0.9"}, true, nil)

	mockDB.EXPECT().StoreDeviceStatus(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, status *models.DeviceStatus) error {
			assert.NotEmpty(t, status.ID)
			assert.True(t, status.IsOnline)
			return nil
		})

	c := newTestCollector(mockDB, client)

	result, err := c.Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.DevicesFound)
	assert.Equal(t, 1, result.DevicesNew)
}

func TestCollectPointDiscoveryForNewDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := db.NewMockService(ctrl)
	client := bacnet.NewMockClient(ctrl)

	device := models.Device{DeviceID: 4, Address: "10.0.0.4", PointsRead: false}

	mockDB.EXPECT().MarkDevicesStale(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockDB.EXPECT().ListOnlineDevices(gomock.Any()).Return([]models.Device{device}, nil)

	client.EXPECT().Read(gomock.Any(), "10.0.0.4 device 4 vendorIdentifier").Return(bacnet.NewValue(15), nil)
	client.EXPECT().ReadMultiple(gomock.Any(), "10.0.0.4 device 4 objectList").Return([]bacnet.Value{
		bacnet.NewValue("analogInput:1"),
		bacnet.NewValue("device:4"), // not readable, skipped
		bacnet.NewValue("binaryOutput:2"),
	}, nil)
	client.EXPECT().Close().Return(nil)

	mockDB.EXPECT().UpdateDeviceVendor(gomock.Any(), 4, 15).Return(nil)
	mockDB.EXPECT().GetOrCreatePoint(gomock.Any(), 4, "analogInput", 1).Return(&models.Point{ID: 1}, nil)
	mockDB.EXPECT().GetOrCreatePoint(gomock.Any(), 4, "binaryOutput", 2).Return(&models.Point{ID: 2}, nil)
	mockDB.EXPECT().MarkDevicePointsRead(gomock.Any(), 4).Return(nil)

	// Nothing to read yet this cycle.
	mockDB.EXPECT().ListReadablePoints(gomock.Any(), 4).Return(nil, nil)
	mockDB.EXPECT().MarkDeviceSeen(gomock.Any(), 4).Return(nil)

	c := newTestCollector(mockDB, client)

	result, err := c.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.DevicesProcessed)
	assert.Zero(t, result.ReadingsCollected)
}
