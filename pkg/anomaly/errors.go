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

import "fmt"

// InsufficientDataError reports that a detection method had too little
// history to produce a score. Callers substitute a neutral score; the error
// never crosses the detector boundary.
type InsufficientDataError struct {
	PointID int64
	Have    int
	Need    int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("point %d: %d readings available, %d required", e.PointID, e.Have, e.Need)
}

// StatisticalError reports a numerically degenerate input, such as zero
// variance. Like InsufficientDataError it always fails closed.
type StatisticalError struct {
	PointID int64
	Method  string
	Msg     string
}

func (e *StatisticalError) Error() string {
	return fmt.Sprintf("point %d: %s: %s", e.PointID, e.Method, e.Msg)
}
