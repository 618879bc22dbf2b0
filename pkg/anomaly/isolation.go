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
	"math/rand"
	"sort"
)

const (
	minIsolationSamples    = 20
	isolationContamination = 0.1
	isolationTrees         = 100
	isolationMaxSamples    = 256

	// isolationSeed fixes the forest's randomness so repeated scoring of the
	// same history is reproducible.
	isolationSeed = 42
)

// isolationScore builds a three-feature isolation forest over the history
// (value, hour-of-day, delta from previous sample), scores the new value
// appended as the final row, and flags it when its decision-function value is
// negative.
func (d *Detector) isolationScore(pointID int64, history []sample, newValue float64) (float64, bool, error) {
	if len(history) < minIsolationSamples {
		return 0, false, &InsufficientDataError{PointID: pointID, Have: len(history), Need: minIsolationSamples}
	}

	features := make([][3]float64, len(history))

	for i := range history {
		delta := 0.0
		if i > 0 {
			delta = history[i].value - history[i-1].value
		}

		features[i] = [3]float64{
			history[i].value,
			float64(history[i].readAt.Hour()),
			delta,
		}
	}

	candidate := [3]float64{
		newValue,
		float64(d.clock().Hour()),
		newValue - history[len(history)-1].value,
	}

	forest := fitIsolationForest(features, rand.New(rand.NewSource(isolationSeed)))

	// Offset is the contamination-quantile of the training scores, so a
	// fixed share of the training window sits below zero.
	trainScores := make([]float64, len(features))
	for i := range features {
		trainScores[i] = -forest.anomalyScore(features[i])
	}

	sort.Float64s(trainScores)

	offset := quantile(trainScores, isolationContamination)
	decision := -forest.anomalyScore(candidate) - offset

	return decision, decision < 0, nil
}

type isolationForest struct {
	trees      []*isoNode
	sampleSize int
}

type isoNode struct {
	splitAttr int
	splitVal  float64
	left      *isoNode
	right     *isoNode
	size      int
}

func fitIsolationForest(features [][3]float64, rng *rand.Rand) *isolationForest {
	sampleSize := len(features)
	if sampleSize > isolationMaxSamples {
		sampleSize = isolationMaxSamples
	}

	depthLimit := int(math.Ceil(math.Log2(float64(sampleSize))))

	forest := &isolationForest{
		trees:      make([]*isoNode, 0, isolationTrees),
		sampleSize: sampleSize,
	}

	for t := 0; t < isolationTrees; t++ {
		idx := rng.Perm(len(features))[:sampleSize]

		subsample := make([][3]float64, sampleSize)
		for i, j := range idx {
			subsample[i] = features[j]
		}

		forest.trees = append(forest.trees, buildIsoTree(subsample, 0, depthLimit, rng))
	}

	return forest
}

func buildIsoTree(rows [][3]float64, depth, limit int, rng *rand.Rand) *isoNode {
	if depth >= limit || len(rows) <= 1 {
		return &isoNode{size: len(rows)}
	}

	attr := rng.Intn(3)

	minVal, maxVal := rows[0][attr], rows[0][attr]
	for _, r := range rows[1:] {
		if r[attr] < minVal {
			minVal = r[attr]
		}

		if r[attr] > maxVal {
			maxVal = r[attr]
		}
	}

	if minVal == maxVal {
		return &isoNode{size: len(rows)}
	}

	split := minVal + rng.Float64()*(maxVal-minVal)

	var left, right [][3]float64

	for _, r := range rows {
		if r[attr] < split {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}

	return &isoNode{
		splitAttr: attr,
		splitVal:  split,
		left:      buildIsoTree(left, depth+1, limit, rng),
		right:     buildIsoTree(right, depth+1, limit, rng),
		size:      len(rows),
	}
}

// anomalyScore returns s(x) in (0,1]: values near 1 isolate quickly and are
// likely outliers.
func (f *isolationForest) anomalyScore(x [3]float64) float64 {
	var total float64
	for _, tree := range f.trees {
		total += pathLength(tree, x, 0)
	}

	avg := total / float64(len(f.trees))

	return math.Pow(2, -avg/averagePathLength(f.sampleSize))
}

func pathLength(node *isoNode, x [3]float64, depth float64) float64 {
	if node.left == nil && node.right == nil {
		return depth + averagePathLength(node.size)
	}

	if x[node.splitAttr] < node.splitVal {
		return pathLength(node.left, x, depth+1)
	}

	return pathLength(node.right, x, depth+1)
}

// averagePathLength is c(n), the expected path length of an unsuccessful BST
// search, used to normalize isolation depths.
func averagePathLength(n int) float64 {
	if n <= 1 {
		return 0
	}

	nf := float64(n)
	harmonic := math.Log(nf-1) + 0.5772156649

	return 2*harmonic - 2*(nf-1)/nf
}
