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

// Package anomaly scores new numeric readings against a point's recent
// history using three independent methods (z-score, IQR distance, isolation
// forest) fused into one ensemble verdict. Every method fails closed: on
// sparse or degenerate input it reports "not anomalous" rather than erroring
// or guessing.
package anomaly

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
	"github.com/carverauto/pointradar/pkg/models"
)

const (
	// DefaultZScoreThreshold is the z-score at which a reading alone is a
	// strong enough signal to raise an alarm.
	DefaultZScoreThreshold = 2.5

	lookbackHours = 24
	minDataPoints = 5
	iqrMultiplier = 1.5

	// sentinelValue is the placeholder some controllers report before a
	// sensor has produced a real sample; it is excluded from history.
	sentinelValue = "0.0"
)

// Detector recomputes from persisted history on every call; it holds no
// per-point state and is safe to share.
type Detector struct {
	db              db.Service
	log             logger.Logger
	zScoreThreshold float64
	clock           func() time.Time
}

// Result carries the three raw method outputs plus the fused verdict.
type Result struct {
	ZScore           float64
	IQRScore         float64
	IQROutOfBounds   bool
	IsolationScore   float64
	IsolationFlagged bool
	EnsembleScore    float64
	IsAnomaly        bool
}

// New creates a detector with the default z-score threshold.
func New(database db.Service, log logger.Logger) *Detector {
	return &Detector{
		db:              database,
		log:             log,
		zScoreThreshold: DefaultZScoreThreshold,
		clock:           time.Now,
	}
}

// ZScoreThreshold returns the configured strong-signal threshold.
func (d *Detector) ZScoreThreshold() float64 {
	return d.zScoreThreshold
}

// ShouldEvaluate reports whether the point is in present-day detection scope:
// an analog input whose unit text signals a temperature-like quantity. The
// detector itself is unit-agnostic.
func ShouldEvaluate(point *models.Point) bool {
	return point.ObjectType == "analogInput" &&
		point.Units != "" &&
		strings.Contains(strings.ToLower(point.Units), "degree")
}

// Evaluate scores newValue against the point's recent history. It never
// returns an error: any failed sub-method contributes a neutral zero score
// and the verdict degrades toward z-score-only.
func (d *Detector) Evaluate(ctx context.Context, point *models.Point, newValue float64) *Result {
	result := &Result{}

	history, err := d.recentHistory(ctx, point.ID)
	if err != nil {
		d.log.Warn().Err(err).Str("point", point.Identifier).Msg("Failed to fetch history, skipping detection")
		return result
	}

	values := make([]float64, len(history))
	for i := range history {
		values[i] = history[i].value
	}

	zScore, err := d.zScore(point.ID, values, newValue)
	if err != nil {
		d.logDegraded(point, "z_score", err)
	} else {
		result.ZScore = zScore
	}

	iqrScore, outOfBounds, err := d.iqrDistance(point.ID, values, newValue)
	if err != nil {
		d.logDegraded(point, "iqr", err)
	} else {
		result.IQRScore = iqrScore
		result.IQROutOfBounds = outOfBounds
	}

	isoScore, isoFlagged, err := d.isolationScore(point.ID, history, newValue)
	if err != nil {
		d.logDegraded(point, "isolation_forest", err)
	} else {
		result.IsolationScore = isoScore
		result.IsolationFlagged = isoFlagged
	}

	result.EnsembleScore, result.IsAnomaly = d.fuse(result)

	return result
}

func (d *Detector) logDegraded(point *models.Point, method string, err error) {
	var insufficient *InsufficientDataError
	if errors.As(err, &insufficient) {
		d.log.Debug().Str("point", point.Identifier).Str("method", method).Err(err).Msg("Insufficient history")
		return
	}

	d.log.Debug().Str("point", point.Identifier).Str("method", method).Err(err).Msg("Detection method degraded")
}

type sample struct {
	value  float64
	readAt time.Time
}

// recentHistory returns the point's numeric readings from the lookback
// window, oldest first, excluding the sentinel placeholder and values that do
// not parse as numbers.
func (d *Detector) recentHistory(ctx context.Context, pointID int64) ([]sample, error) {
	since := d.clock().Add(-lookbackHours * time.Hour)

	readings, err := d.db.GetPointHistory(ctx, pointID, since)
	if err != nil {
		return nil, err
	}

	samples := make([]sample, 0, len(readings))

	for i := range readings {
		if readings[i].Value == sentinelValue {
			continue
		}

		v, err := strconv.ParseFloat(readings[i].Value, 64)
		if err != nil {
			continue
		}

		samples = append(samples, sample{value: v, readAt: readings[i].ReadTime})
	}

	return samples, nil
}

// zScore returns |new − mean| / std over the history, using the population
// standard deviation. Too few samples or zero variance signal insufficient
// data rather than risking a division blow-up.
func (d *Detector) zScore(pointID int64, values []float64, newValue float64) (float64, error) {
	if len(values) < minDataPoints {
		return 0, &InsufficientDataError{PointID: pointID, Have: len(values), Need: minDataPoints}
	}

	mean := meanOf(values)

	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}

	std := math.Sqrt(sumSq / float64(len(values)))
	if std == 0 {
		return 0, &InsufficientDataError{PointID: pointID, Have: len(values), Need: minDataPoints}
	}

	return math.Abs(newValue-mean) / std, nil
}

// iqrDistance returns how many IQRs the new value sits from the median, and
// whether it falls outside [Q1 − 1.5·IQR, Q3 + 1.5·IQR].
func (d *Detector) iqrDistance(pointID int64, values []float64, newValue float64) (float64, bool, error) {
	if len(values) < minDataPoints {
		return 0, false, &InsufficientDataError{PointID: pointID, Have: len(values), Need: minDataPoints}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)
	iqr := q3 - q1

	if iqr == 0 {
		return 0, false, &StatisticalError{PointID: pointID, Method: "iqr", Msg: "IQR is zero, no variance in data"}
	}

	lower := q1 - iqrMultiplier*iqr
	upper := q3 + iqrMultiplier*iqr
	median := quantile(sorted, 0.5)

	score := math.Abs(newValue-median) / iqr
	outOfBounds := newValue < lower || newValue > upper

	return score, outOfBounds, nil
}

func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// quantile computes the q-th quantile of sorted values with linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
