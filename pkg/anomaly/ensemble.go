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

import "math"

const (
	zScoreWeight    = 0.4
	iqrWeight       = 0.3
	isolationWeight = 0.3

	// iqrNormDivisor maps an IQR distance of 2 medians-widths onto a full
	// normalized score of 1.0.
	iqrNormDivisor = 2.0

	ensembleThreshold = 0.6
)

// fuse combines the three method scores into a weighted ensemble score in
// [0, 1] and a verdict. A reading is anomalous when any single method fires
// strongly on its own, or when the fused score crosses the ensemble
// threshold. Methods that failed earlier contribute their zero-valued neutral
// scores, so with only z-score available the verdict degrades to the plain
// z-score test.
func (d *Detector) fuse(r *Result) (float64, bool) {
	normZ := clamp01(r.ZScore / d.zScoreThreshold)
	normIQR := clamp01(r.IQRScore / iqrNormDivisor)
	normIso := clamp01(math.Abs(r.IsolationScore))

	score := zScoreWeight*normZ + iqrWeight*normIQR + isolationWeight*normIso

	anomalous := r.ZScore >= d.zScoreThreshold ||
		r.IQROutOfBounds ||
		r.IsolationFlagged ||
		score > ensembleThreshold

	return score, anomalous
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
