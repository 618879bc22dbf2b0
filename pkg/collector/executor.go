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
	"fmt"

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/logger"
)

// Executor sends planned chunks through the point interface and degrades
// gracefully when a batch misbehaves: a failed batch is retried once as an
// isolated round-trip, and if that also fails the chunk falls back to
// strictly sequential single-point reads. A device with many points never
// fully fails to report because of one malformed response.
type Executor struct {
	log logger.Logger
}

// NewExecutor creates a chunk executor.
func NewExecutor(log logger.Logger) *Executor {
	return &Executor{log: log}
}

// SingleRead is one point's result on the sequential fallback path. OK is
// false when the individual read failed; failures are logged and skipped, not
// fatal to the chunk.
type SingleRead struct {
	Value bacnet.Value
	OK    bool
}

// ChunkOutcome is the result of running one chunk through the fallback
// ladder. When Batched is true, Values holds exactly ExpectedCount values in
// request order. Otherwise Singles aligns index-for-index with the chunk's
// points and carries present values only.
type ChunkOutcome struct {
	Batched bool
	Values  []bacnet.Value
	Singles []SingleRead
}

// ReadChunk runs the full ladder for one chunk. It returns an error only when
// the context is canceled; protocol failures are absorbed into the degraded
// outcome.
func (e *Executor) ReadChunk(ctx context.Context, client bacnet.Client, deviceAddress string, deviceID int, chunk *Chunk) (*ChunkOutcome, error) {
	values, err := e.executeBatch(ctx, client, deviceID, chunk)
	if err == nil {
		return &ChunkOutcome{Batched: true, Values: values}, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	e.log.Warn().Err(err).Int("device_id", deviceID).Int("points", len(chunk.Points)).
		Msg("Batch read failed, retrying chunk in isolation")

	values, err = e.executeBatch(ctx, client, deviceID, chunk)
	if err == nil {
		return &ChunkOutcome{Batched: true, Values: values}, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	e.log.Warn().Err(err).Int("device_id", deviceID).Int("points", len(chunk.Points)).
		Msg("Chunk retry failed, degrading to sequential single-point reads")

	return e.readSequentially(ctx, client, deviceAddress, deviceID, chunk)
}

// executeBatch performs one batched round-trip and validates the value count
// against the chunk's expectation. A mismatched count is never accepted as
// success.
func (e *Executor) executeBatch(ctx context.Context, client bacnet.Client, deviceID int, chunk *Chunk) ([]bacnet.Value, error) {
	values, err := client.ReadMultiple(ctx, chunk.Request)
	if err != nil {
		return nil, &bacnet.BatchReadError{DeviceID: deviceID, PointCount: len(chunk.Points), Err: err}
	}

	if len(values) != chunk.ExpectedCount {
		return nil, &bacnet.BatchReadError{
			DeviceID:   deviceID,
			PointCount: len(chunk.Points),
			Err:        fmt.Errorf("got %d values, expected %d", len(values), chunk.ExpectedCount),
		}
	}

	return values, nil
}

func (e *Executor) readSequentially(ctx context.Context, client bacnet.Client, deviceAddress string, deviceID int, chunk *Chunk) (*ChunkOutcome, error) {
	outcome := &ChunkOutcome{Singles: make([]SingleRead, len(chunk.Points))}

	for i := range chunk.Points {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		value, err := client.Read(ctx, SingleReadRequest(deviceAddress, &chunk.Points[i]))
		if err != nil {
			readErr := &bacnet.PropertyReadError{DeviceID: deviceID, Property: bacnet.PropPresentValue, Err: err}
			e.log.Debug().Err(readErr).Str("point", chunk.Points[i].Identifier).Msg("Single-point read failed, skipping")

			continue
		}

		outcome.Singles[i] = SingleRead{Value: value, OK: true}
	}

	return outcome, nil
}
