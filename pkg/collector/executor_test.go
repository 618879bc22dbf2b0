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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/logger"
)

var errTransport = errors.New("transport failure")

func batchValues(n int) []bacnet.Value {
	values := make([]bacnet.Value, n)
	for i := range values {
		values[i] = bacnet.NewValue(float64(20 + i))
	}

	return values
}

func TestReadChunkBatchSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := bacnet.NewMockClient(ctrl)

	chunks := PlanChunks("10.0.0.5", makePoints(2, 1))
	require.Len(t, chunks, 1)

	client.EXPECT().ReadMultiple(gomock.Any(), chunks[0].Request).Return(batchValues(8), nil)

	executor := NewExecutor(logger.NewTestLogger())

	outcome, err := executor.ReadChunk(context.Background(), client, "10.0.0.5", 1, &chunks[0])
	require.NoError(t, err)
	assert.True(t, outcome.Batched)
	assert.Len(t, outcome.Values, 8)
}

func TestReadChunkCountMismatchRetriesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := bacnet.NewMockClient(ctrl)

	chunks := PlanChunks("10.0.0.5", makePoints(2, 0))
	require.Len(t, chunks, 1)

	// Wrong count is never accepted as success, even with a nil error.
	gomock.InOrder(
		client.EXPECT().ReadMultiple(gomock.Any(), chunks[0].Request).Return(batchValues(4), nil),
		client.EXPECT().ReadMultiple(gomock.Any(), chunks[0].Request).Return(batchValues(6), nil),
	)

	executor := NewExecutor(logger.NewTestLogger())

	outcome, err := executor.ReadChunk(context.Background(), client, "10.0.0.5", 1, &chunks[0])
	require.NoError(t, err)
	assert.True(t, outcome.Batched)
	assert.Len(t, outcome.Values, 6)
}

func TestReadChunkDegradesToSingleReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := bacnet.NewMockClient(ctrl)

	points := makePoints(3, 0)
	chunks := PlanChunks("10.0.0.5", points)
	require.Len(t, chunks, 1)

	client.EXPECT().ReadMultiple(gomock.Any(), chunks[0].Request).Return(nil, errTransport).Times(2)

	// One point fails on the sequential path; the rest still report.
	client.EXPECT().Read(gomock.Any(), SingleReadRequest("10.0.0.5", &points[0])).Return(bacnet.NewValue(21.5), nil)
	client.EXPECT().Read(gomock.Any(), SingleReadRequest("10.0.0.5", &points[1])).Return(bacnet.Value{}, errTransport)
	client.EXPECT().Read(gomock.Any(), SingleReadRequest("10.0.0.5", &points[2])).Return(bacnet.NewValue(23.0), nil)

	executor := NewExecutor(logger.NewTestLogger())

	outcome, err := executor.ReadChunk(context.Background(), client, "10.0.0.5", 1, &chunks[0])
	require.NoError(t, err)
	assert.False(t, outcome.Batched)
	require.Len(t, outcome.Singles, 3)

	assert.True(t, outcome.Singles[0].OK)
	assert.False(t, outcome.Singles[1].OK)
	assert.True(t, outcome.Singles[2].OK)

	v, err := outcome.Singles[0].Value.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 21.5, v, 0.001)
}

func TestReadChunkCanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := bacnet.NewMockClient(ctrl)

	chunks := PlanChunks("10.0.0.5", makePoints(2, 0))
	require.Len(t, chunks, 1)

	ctx, cancel := context.WithCancel(context.Background())

	client.EXPECT().ReadMultiple(gomock.Any(), chunks[0].Request).DoAndReturn(
		func(context.Context, string) ([]bacnet.Value, error) {
			cancel()
			return nil, errTransport
		})

	executor := NewExecutor(logger.NewTestLogger())

	_, err := executor.ReadChunk(ctx, client, "10.0.0.5", 1, &chunks[0])
	require.ErrorIs(t, err, context.Canceled)
}
