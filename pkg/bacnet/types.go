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

// Package bacnet defines the boundary to the BACnet point-reading interface:
// the client contract, session lifecycle, and the object/property vocabulary
// used to build read requests.
package bacnet

import (
	"encoding/json"
	"time"
)

// BACnet property names used in read requests.
const (
	PropPresentValue     = "presentValue"
	PropObjectName       = "objectName"
	PropUnits            = "units"
	PropObjectList       = "objectList"
	PropVendorIdentifier = "vendorIdentifier"
)

// MaxBatchSize is the largest number of points allowed in one batched read.
const MaxBatchSize = 50

// readableObjectTypes are the object types worth polling for values.
var readableObjectTypes = map[string]struct{}{
	"analogInput":      {},
	"analogOutput":     {},
	"analogValue":      {},
	"binaryInput":      {},
	"binaryOutput":     {},
	"binaryValue":      {},
	"multiStateInput":  {},
	"multiStateOutput": {},
	"multiStateValue":  {},
}

// analogObjectTypes carry engineering units and report numeric values.
var analogObjectTypes = map[string]struct{}{
	"analogInput":  {},
	"analogOutput": {},
	"analogValue":  {},
}

// IsReadable reports whether objectType is one of the pollable object types.
func IsReadable(objectType string) bool {
	_, ok := readableObjectTypes[objectType]
	return ok
}

// IsAnalog reports whether objectType belongs to the analog family.
func IsAnalog(objectType string) bool {
	_, ok := analogObjectTypes[objectType]
	return ok
}

// ReadableObjectTypes returns the pollable object types in no particular order.
func ReadableObjectTypes() []string {
	types := make([]string, 0, len(readableObjectTypes))
	for t := range readableObjectTypes {
		types = append(types, t)
	}

	return types
}

// unitDisplay maps BACnet engineering unit names to display symbols.
var unitDisplay = map[string]string{
	"percent":                 "%",
	"percentRelativeHumidity": "% RH",
	"degreesCelsius":          "°C",
	"degreesFahrenheit":       "°F",
	"degreesKelvin":           "K",
	"volts":                   "V",
	"amperes":                 "A",
	"kilowatts":               "kW",
	"kilowattHours":           "kWh",
	"noUnits":                 "",
	"litersPerSecond":         "L/s",
	"cubicMetersPerHour":      "m³/h",
	"metersPerSecond":         "m/s",
}

// DisplayUnit converts a BACnet unit name to its display symbol, returning the
// name unchanged when no conversion is known.
func DisplayUnit(units string) string {
	if symbol, ok := unitDisplay[units]; ok {
		return symbol
	}

	return units
}

// Duration wraps time.Duration for JSON unmarshaling from either a number of
// nanoseconds or a string like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}

		*d = Duration(tmp)
	default:
		return ErrInvalidDuration
	}

	return nil
}
