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

// Package collector orchestrates the telemetry pipeline: it plans batched
// reads over each online device's points, executes them with graceful
// degradation, maps results back onto points, and routes numeric values
// through anomaly detection. One cycle at a time; cycles never overlap on the
// shared session.
package collector

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
	"github.com/carverauto/pointradar/pkg/models"
)

// Collector runs collection cycles and discovery sweeps against the point
// interface. The mutex serializes cycles: a discovery sweep and a collection
// cycle never share the session concurrently.
type Collector struct {
	mu       sync.Mutex
	cfg      Config
	db       db.Service
	session  *bacnet.SessionManager
	executor *Executor
	mapper   *Mapper
	metrics  *Metrics
	log      logger.Logger
	clock    Clock
}

// New creates a collector. metrics may be nil when no registry is wired.
func New(cfg Config, database db.Service, session *bacnet.SessionManager, mapper *Mapper, metrics *Metrics, log logger.Logger) *Collector {
	return &Collector{
		cfg:      cfg,
		db:       database,
		session:  session,
		executor: NewExecutor(log),
		mapper:   mapper,
		metrics:  metrics,
		log:      log,
		clock:    realClock{},
	}
}

// Run blocks, executing collection cycles and discovery sweeps on their
// configured intervals until the context is canceled. A discovery sweep runs
// immediately on startup so a fresh deployment has devices to poll.
func (c *Collector) Run(ctx context.Context) error {
	if _, err := c.Discover(ctx); err != nil {
		c.log.Error().Err(err).Msg("Initial discovery sweep failed")
	}

	collectTicker := c.clock.Ticker(c.cfg.collectionInterval())
	defer collectTicker.Stop()

	discoverTicker := c.clock.Ticker(c.cfg.discoveryInterval())
	defer discoverTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Info().Msg("Collector shutting down")
			return ctx.Err()
		case <-collectTicker.Chan():
			if _, err := c.Collect(ctx); err != nil && ctx.Err() == nil {
				c.log.Error().Err(err).Msg("Collection cycle failed")
			}
		case <-discoverTicker.Chan():
			if _, err := c.Discover(ctx); err != nil && ctx.Err() == nil {
				c.log.Error().Err(err).Msg("Discovery sweep failed")
			}
		}
	}
}

// Collect runs one collection cycle over all online devices and reports
// partial-success counts. A failed session acquisition aborts the whole
// cycle; the scheduler retries on the next interval.
func (c *Collector) Collect(ctx context.Context) (*models.CollectionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	started := c.clock.Now()
	result := &models.CollectionResult{Timestamp: started}

	stale, err := c.db.MarkDevicesStale(ctx, started.Add(-c.cfg.staleThreshold()))
	if err != nil {
		c.log.Warn().Err(err).Msg("Stale device sweep failed")
	} else if stale > 0 {
		c.log.Info().Int64("devices", stale).Msg("Marked stale devices offline")
	}

	client, err := c.session.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire session: %w", err)
	}
	defer c.session.Release()

	devices, err := c.db.ListOnlineDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list online devices: %w", err)
	}

	if c.metrics != nil {
		c.metrics.DevicesOnline.Set(float64(len(devices)))
	}

	for i := range devices {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		readings, err := c.collectDevice(ctx, client, &devices[i])
		result.ReadingsCollected += readings

		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}

			result.DevicesFailed++

			c.log.Error().Err(err).Int("device_id", devices[i].DeviceID).Msg("Device collection failed")

			continue
		}

		result.DevicesProcessed++

		if err := c.db.MarkDeviceSeen(ctx, devices[i].DeviceID); err != nil {
			c.log.Warn().Err(err).Int("device_id", devices[i].DeviceID).Msg("Failed to mark device seen")
		}
	}

	c.observeCycle(result, started)

	c.log.Info().
		Int("devices_processed", result.DevicesProcessed).
		Int("readings_collected", result.ReadingsCollected).
		Int("devices_failed", result.DevicesFailed).
		Msg("Collection cycle complete")

	return result, nil
}

func (c *Collector) observeCycle(result *models.CollectionResult, started time.Time) {
	if c.metrics == nil {
		return
	}

	c.metrics.CyclesTotal.Inc()
	c.metrics.ReadingsCollected.Add(float64(result.ReadingsCollected))
	c.metrics.DevicesFailed.Add(float64(result.DevicesFailed))
	c.metrics.CycleDuration.Observe(c.clock.Now().Sub(started).Seconds())
}

// collectDevice reads every readable point of one device through the chunk
// ladder. Device-scoped failures abort this device only.
func (c *Collector) collectDevice(ctx context.Context, client bacnet.Client, device *models.Device) (int, error) {
	if !device.PointsRead {
		if err := c.discoverPoints(ctx, client, device); err != nil {
			return 0, err
		}
	}

	points, err := c.db.ListReadablePoints(ctx, device.DeviceID)
	if err != nil {
		return 0, &bacnet.DeviceError{DeviceID: device.DeviceID, Msg: "listing points", Err: err}
	}

	if len(points) == 0 {
		c.log.Debug().Int("device_id", device.DeviceID).Msg("Device has no readable points")
		return 0, nil
	}

	chunks := PlanChunks(device.Address, points)
	total := 0

	for i := range chunks {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		outcome, err := c.executor.ReadChunk(ctx, client, device.Address, device.DeviceID, &chunks[i])
		if err != nil {
			return total, err
		}

		total += c.mapper.MapChunk(ctx, &chunks[i], outcome)
	}

	return total, nil
}

// Discover broadcasts a WhoIs sweep and upserts every device that answered,
// appending a contact record per answer.
func (c *Collector) Discover(ctx context.Context) (*models.DiscoveryResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	client, err := c.session.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire session: %w", err)
	}
	defer c.session.Release()

	announcements, err := client.WhoIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("whois sweep: %w", err)
	}

	result := &models.DiscoveryResult{Timestamp: c.clock.Now()}

	for _, ann := range announcements {
		device, created, err := c.db.GetOrCreateDevice(ctx, ann)
		if err != nil {
			c.log.Warn().Err(err).Int("device_id", ann.DeviceID).Msg("Failed to upsert discovered device")
			continue
		}

		result.DevicesFound++

		if created {
			result.DevicesNew++

			c.log.Info().Int("device_id", device.DeviceID).Str("address", device.Address).Msg("New device discovered")
		}

		status := &models.DeviceStatus{
			ID:        uuid.NewString(),
			DeviceID:  device.DeviceID,
			Timestamp: c.clock.Now(),
			IsOnline:  true,
		}
		if err := c.db.StoreDeviceStatus(ctx, status); err != nil {
			c.log.Warn().Err(err).Int("device_id", device.DeviceID).Msg("Failed to store device status")
		}
	}

	if c.metrics != nil {
		c.metrics.DevicesDiscovered.Add(float64(result.DevicesFound))
	}

	c.log.Info().
		Int("devices_found", result.DevicesFound).
		Int("devices_new", result.DevicesNew).
		Msg("Discovery sweep complete")

	return result, nil
}

// discoverPoints enumerates a device's object list and creates a point row
// per readable object. Runs once per device, before its first collection.
func (c *Collector) discoverPoints(ctx context.Context, client bacnet.Client, device *models.Device) error {
	vendorReq := fmt.Sprintf("%s device %d %s", device.Address, device.DeviceID, bacnet.PropVendorIdentifier)
	if value, err := client.Read(ctx, vendorReq); err != nil {
		c.log.Debug().Err(err).Int("device_id", device.DeviceID).Msg("Vendor identifier read failed")
	} else if vendor, err := value.Float64(); err == nil {
		if err := c.db.UpdateDeviceVendor(ctx, device.DeviceID, int(vendor)); err != nil {
			c.log.Warn().Err(err).Int("device_id", device.DeviceID).Msg("Failed to update device vendor")
		}
	}

	listReq := fmt.Sprintf("%s device %d %s", device.Address, device.DeviceID, bacnet.PropObjectList)

	objects, err := client.ReadMultiple(ctx, listReq)
	if err != nil {
		return &bacnet.DeviceError{DeviceID: device.DeviceID, Msg: "object list read failed", Err: err}
	}

	created := 0

	for _, obj := range objects {
		objectType, instance, ok := parseObjectID(obj.String())
		if !ok || !bacnet.IsReadable(objectType) {
			continue
		}

		if _, err := c.db.GetOrCreatePoint(ctx, device.DeviceID, objectType, instance); err != nil {
			c.log.Warn().Err(err).Int("device_id", device.DeviceID).Str("object", obj.String()).
				Msg("Failed to create point")

			continue
		}

		created++
	}

	if err := c.db.MarkDevicePointsRead(ctx, device.DeviceID); err != nil {
		c.log.Warn().Err(err).Int("device_id", device.DeviceID).Msg("Failed to mark points read")
	}

	c.log.Info().Int("device_id", device.DeviceID).Int("points", created).Msg("Point discovery complete")

	return nil
}

// parseObjectID splits an "objectType:instance" identifier from an object
// list response.
func parseObjectID(id string) (objectType string, instance int, ok bool) {
	parts := strings.SplitN(id, ":", 2)
	if len(parts) != 2 {
		return "", 0, false
	}

	instance, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, false
	}

	return parts[0], instance, true
}
