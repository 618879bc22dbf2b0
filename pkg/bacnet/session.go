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
	"sync"
	"time"

	"github.com/carverauto/pointradar/pkg/logger"
)

const defaultDialTimeout = 10 * time.Second

// SessionManager owns the lifecycle of the connection to the point interface.
// The session is a single shared, mutually exclusive resource: callers
// Acquire at cycle start and Release on every exit path, and cycles must not
// overlap.
type SessionManager struct {
	mu     sync.Mutex
	cfg    *InterfaceConfig
	dialer Dialer
	client Client
	log    logger.Logger
}

// NewSessionManager creates a session manager. cfg may be nil, in which case
// the dialer auto-selects the local interface.
func NewSessionManager(cfg *InterfaceConfig, dialer Dialer, log logger.Logger) *SessionManager {
	if cfg == nil {
		cfg = &InterfaceConfig{}
	}

	return &SessionManager{
		cfg:    cfg,
		dialer: dialer,
		log:    log,
	}
}

// Acquire returns a live client, reusing an already-open session. Dialing is
// bounded by the configured dial timeout.
func (s *SessionManager) Acquire(ctx context.Context) (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		s.log.Debug().Msg("Reusing existing point interface session")
		return s.client, nil
	}

	timeout := time.Duration(s.cfg.DialTimeout)
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.cfg.Address != "" {
		s.log.Info().Str("address", s.cfg.Address).Int("port", s.cfg.Port).Msg("Connecting to point interface")
	} else {
		s.log.Info().Msg("Connecting to point interface (auto-selected address)")
	}

	client, err := s.dialer(dialCtx, s.cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	s.client = client

	return client, nil
}

// Release closes the session. It is idempotent and best-effort: cleanup
// errors are logged, never returned, and internal state is cleared
// unconditionally.
func (s *SessionManager) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return
	}

	if err := s.client.Close(); err != nil {
		s.log.Debug().Err(err).Msg("Cleanup error during session release (harmless)")
	}

	s.client = nil
}
