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
	"context"
	"fmt"
	"strconv"

	"github.com/carverauto/pointradar/pkg/models"
)

//go:generate mockgen -destination=mock_client.go -package=bacnet github.com/carverauto/pointradar/pkg/bacnet Client

// Client is the external point-reading interface. Implementations own the
// wire protocol; this package only builds request strings of the form
// "<device-address> <object-type> <instance> <property> [...]".
//
// A transport failure is always signaled through the error return; a read
// that succeeded but carried no value yields a null Value and a nil error.
type Client interface {
	// Read performs a single-property read.
	Read(ctx context.Context, request string) (Value, error)

	// ReadMultiple performs a batched read and returns values in request
	// order.
	ReadMultiple(ctx context.Context, request string) ([]Value, error)

	// WhoIs broadcasts a discovery request and returns the devices that
	// answered.
	WhoIs(ctx context.Context) ([]models.DeviceAnnouncement, error)

	// Close tears down the transport session.
	Close() error
}

// Dialer opens a Client against the configured interface. Production wiring
// supplies the protocol driver; tests supply mocks.
type Dialer func(ctx context.Context, cfg *InterfaceConfig) (Client, error)

// InterfaceConfig selects the local interface the session binds to. Empty
// Address means auto-select. ReadTimeout bounds every request/response
// exchange so a stalled driver cannot hang a cycle.
type InterfaceConfig struct {
	Address     string   `json:"address"`
	Port        int      `json:"port"`
	DialTimeout Duration `json:"dial_timeout"`
	ReadTimeout Duration `json:"read_timeout"`
}

// Value is one decoded property value. The zero Value is null.
type Value struct {
	raw any
}

// NewValue wraps a decoded property value. NewValue(nil) is null.
func NewValue(raw any) Value {
	return Value{raw: raw}
}

// IsNull reports whether the read succeeded but carried no value.
func (v Value) IsNull() bool {
	return v.raw == nil
}

// String renders the value for persistence. Null values render empty.
func (v Value) String() string {
	if v.raw == nil {
		return ""
	}

	return fmt.Sprint(v.raw)
}

// Float64 converts the value to a float when it is numeric or a numeric
// string.
func (v Value) Float64() (float64, error) {
	switch n := v.raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("%w: %T", errNotNumeric, v.raw)
	}
}

var errNotNumeric = fmt.Errorf("value is not numeric")
