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

package anomaly

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/pointradar/pkg/logger"
)

// steadyHistory builds a slowly oscillating temperature trace, one sample per
// half hour.
func steadyHistory(n int) []sample {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	samples := make([]sample, n)

	for i := range samples {
		samples[i] = sample{
			value:  20 + 2*math.Sin(float64(i)/4),
			readAt: base.Add(time.Duration(i) * 30 * time.Minute),
		}
	}

	return samples
}

func TestIsolationScoreRequiresMinimumSamples(t *testing.T) {
	detector := New(nil, logger.NewTestLogger())

	_, _, err := detector.isolationScore(1, steadyHistory(minIsolationSamples-1), 25)

	var insufficient *InsufficientDataError
	require.ErrorAs(t, err, &insufficient)
}

func TestIsolationScoreIsDeterministic(t *testing.T) {
	detector := New(nil, logger.NewTestLogger())
	detector.clock = func() time.Time {
		return time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	}

	history := steadyHistory(48)

	score1, flagged1, err := detector.isolationScore(1, history, 21.3)
	require.NoError(t, err)

	score2, flagged2, err := detector.isolationScore(1, history, 21.3)
	require.NoError(t, err)

	assert.Equal(t, score1, score2)
	assert.Equal(t, flagged1, flagged2)
}

func TestIsolationScoreRanksOutlierBelowTypicalValue(t *testing.T) {
	detector := New(nil, logger.NewTestLogger())
	detector.clock = func() time.Time {
		return time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)
	}

	history := steadyHistory(48)

	typical, _, err := detector.isolationScore(1, history, 20.5)
	require.NoError(t, err)

	outlier, _, err := detector.isolationScore(1, history, 95)
	require.NoError(t, err)

	assert.Less(t, outlier, typical, "an extreme value must score lower on the decision function")
}
