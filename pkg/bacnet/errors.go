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

package bacnet

import (
	"errors"
	"fmt"
)

var (
	ErrNotConnected     = errors.New("point interface not connected")
	ErrConnectionFailed = errors.New("failed to connect to point interface")
	ErrInvalidDuration  = errors.New("invalid duration value")
)

// PropertyReadError reports a failed single-property read. Callers log it and
// continue with the rest of the batch.
type PropertyReadError struct {
	DeviceID int
	Property string
	Err      error
}

func (e *PropertyReadError) Error() string {
	return fmt.Sprintf("failed to read %s from device %d: %v", e.Property, e.DeviceID, e.Err)
}

func (e *PropertyReadError) Unwrap() error { return e.Err }

// BatchReadError reports a batch that returned a transport error or a value
// count that does not match the request. It triggers the fallback ladder.
type BatchReadError struct {
	DeviceID   int
	PointCount int
	Err        error
}

func (e *BatchReadError) Error() string {
	return fmt.Sprintf("batch read failed for device %d (%d points): %v", e.DeviceID, e.PointCount, e.Err)
}

func (e *BatchReadError) Unwrap() error { return e.Err }

// DeviceError marks a device-scoped failure; the device's cycle is aborted
// but other devices are unaffected.
type DeviceError struct {
	DeviceID int
	Msg      string
	Err      error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device %d: %s: %v", e.DeviceID, e.Msg, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }
