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

package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes the collector's operational counters.
type Metrics struct {
	CyclesTotal       prometheus.Counter
	ReadingsCollected prometheus.Counter
	DevicesFailed     prometheus.Counter
	DevicesOnline     prometheus.Gauge
	DevicesDiscovered prometheus.Counter
	CycleDuration     prometheus.Histogram
}

// NewMetrics registers the collector metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "pointradar_collection_cycles_total",
			Help: "Completed collection cycles.",
		}),
		ReadingsCollected: factory.NewCounter(prometheus.CounterOpts{
			Name: "pointradar_readings_collected_total",
			Help: "Readings persisted across all cycles.",
		}),
		DevicesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "pointradar_devices_failed_total",
			Help: "Device-level failures across all cycles.",
		}),
		DevicesOnline: factory.NewGauge(prometheus.GaugeOpts{
			Name: "pointradar_devices_online",
			Help: "Online devices seen by the most recent cycle.",
		}),
		DevicesDiscovered: factory.NewCounter(prometheus.CounterOpts{
			Name: "pointradar_devices_discovered_total",
			Help: "Devices that answered a discovery sweep.",
		}),
		CycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pointradar_cycle_duration_seconds",
			Help:    "Wall time of one collection cycle.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
	}
}
