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
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/carverauto/pointradar/pkg/models"
)

// defaultGatewayPort is where the protocol driver gateway listens.
const defaultGatewayPort = 47808

// defaultExchangeTimeout bounds one request/response exchange when the config
// does not set ReadTimeout.
const defaultExchangeTimeout = 30 * time.Second

var errGatewayClosed = errors.New("gateway connection closed")

// DialGateway is the production Dialer. The protocol encoding lives in an
// external driver gateway; this client speaks newline-delimited JSON to it
// and passes the textual read requests through verbatim.
func DialGateway(ctx context.Context, cfg *InterfaceConfig) (Client, error) {
	port := cfg.Port
	if port == 0 {
		port = defaultGatewayPort
	}

	host := cfg.Address
	if host == "" {
		host = "127.0.0.1"
	}

	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("dial gateway: %w", err)
	}

	exchangeTimeout := time.Duration(cfg.ReadTimeout)
	if exchangeTimeout <= 0 {
		exchangeTimeout = defaultExchangeTimeout
	}

	return &gatewayClient{
		conn:            conn,
		encoder:         json.NewEncoder(conn),
		reader:          bufio.NewReader(conn),
		exchangeTimeout: exchangeTimeout,
	}, nil
}

// gatewayClient serializes exchanges: one request/response pair in flight at
// a time, matching the single-reader protocol on the wire.
type gatewayClient struct {
	mu              sync.Mutex
	conn            net.Conn
	encoder         *json.Encoder
	reader          *bufio.Reader
	exchangeTimeout time.Duration
	closed          bool
}

type gatewayRequest struct {
	Op      string `json:"op"`
	Request string `json:"request,omitempty"`
}

type gatewayResponse struct {
	Error   string                      `json:"error,omitempty"`
	Values  []any                       `json:"values"`
	Devices []models.DeviceAnnouncement `json:"devices,omitempty"`
}

func (g *gatewayClient) Read(ctx context.Context, request string) (Value, error) {
	resp, err := g.roundTrip(ctx, &gatewayRequest{Op: "read", Request: request})
	if err != nil {
		return Value{}, err
	}

	if len(resp.Values) == 0 {
		return NewValue(nil), nil
	}

	return NewValue(resp.Values[0]), nil
}

func (g *gatewayClient) ReadMultiple(ctx context.Context, request string) ([]Value, error) {
	resp, err := g.roundTrip(ctx, &gatewayRequest{Op: "read_multiple", Request: request})
	if err != nil {
		return nil, err
	}

	values := make([]Value, len(resp.Values))
	for i, raw := range resp.Values {
		values[i] = NewValue(raw)
	}

	return values, nil
}

func (g *gatewayClient) WhoIs(ctx context.Context) ([]models.DeviceAnnouncement, error) {
	resp, err := g.roundTrip(ctx, &gatewayRequest{Op: "whois"})
	if err != nil {
		return nil, err
	}

	return resp.Devices, nil
}

func (g *gatewayClient) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}

	g.closed = true

	return g.conn.Close()
}

// roundTrip sends one request and reads one response line. Every exchange is
// bounded by the configured timeout, tightened by any earlier context
// deadline; cancellation interrupts an in-flight read.
func (g *gatewayClient) roundTrip(ctx context.Context, req *gatewayRequest) (*gatewayResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil, errGatewayClosed
	}

	deadline := time.Now().Add(g.exchangeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := g.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set gateway deadline: %w", err)
	}

	watchDone := make(chan struct{})
	defer close(watchDone)

	go func() {
		select {
		case <-ctx.Done():
			// Expires the deadline so the blocked read returns.
			_ = g.conn.SetDeadline(time.Now())
		case <-watchDone:
		}
	}()

	if err := g.encoder.Encode(req); err != nil {
		return nil, exchangeError(ctx, "write gateway request", err)
	}

	line, err := g.reader.ReadBytes('\n')
	if err != nil {
		return nil, exchangeError(ctx, "read gateway response", err)
	}

	var resp gatewayResponse
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	if resp.Error != "" {
		return nil, fmt.Errorf("gateway error: %s", resp.Error)
	}

	return &resp, nil
}

// exchangeError reports cancellation as the context's own error so callers
// can distinguish it from a gateway fault.
func exchangeError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return fmt.Errorf("%s: %w", op, err)
}
