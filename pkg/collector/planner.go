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
	"fmt"
	"strings"

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/models"
)

// Chunk is a batched read request for up to MaxBatchSize points of one
// device. ExpectedCount is the number of values a correct response carries:
// analog points answer with value, name, and unit; everything else with value
// and name.
type Chunk struct {
	Points        []models.Point
	Request       string
	ExpectedCount int
}

// PlanChunks partitions the device's points into request chunks in input
// order. Every point lands in exactly one chunk.
func PlanChunks(deviceAddress string, points []models.Point) []Chunk {
	if len(points) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, (len(points)+bacnet.MaxBatchSize-1)/bacnet.MaxBatchSize)

	for start := 0; start < len(points); start += bacnet.MaxBatchSize {
		end := start + bacnet.MaxBatchSize
		if end > len(points) {
			end = len(points)
		}

		chunks = append(chunks, buildChunk(deviceAddress, points[start:end]))
	}

	return chunks
}

func buildChunk(deviceAddress string, points []models.Point) Chunk {
	var sb strings.Builder

	sb.WriteString(deviceAddress)

	expected := 0

	for i := range points {
		fmt.Fprintf(&sb, " %s %d %s %s",
			points[i].ObjectType, points[i].InstanceNumber, bacnet.PropPresentValue, bacnet.PropObjectName)

		if bacnet.IsAnalog(points[i].ObjectType) {
			sb.WriteString(" " + bacnet.PropUnits)
			expected += 3
		} else {
			expected += 2
		}
	}

	return Chunk{
		Points:        points,
		Request:       sb.String(),
		ExpectedCount: expected,
	}
}

// SingleReadRequest builds the request string for a one-point present-value
// read, the unit of work on the sequential fallback path.
func SingleReadRequest(deviceAddress string, point *models.Point) string {
	return fmt.Sprintf("%s %s %d %s", deviceAddress, point.ObjectType, point.InstanceNumber, bacnet.PropPresentValue)
}
