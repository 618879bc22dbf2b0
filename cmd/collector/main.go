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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/carverauto/pointradar/pkg/alarm"
	"github.com/carverauto/pointradar/pkg/anomaly"
	"github.com/carverauto/pointradar/pkg/bacnet"
	"github.com/carverauto/pointradar/pkg/collector"
	"github.com/carverauto/pointradar/pkg/config"
	"github.com/carverauto/pointradar/pkg/db"
	"github.com/carverauto/pointradar/pkg/logger"
)

var errFailedToLoadConfig = fmt.Errorf("failed to load config")

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/pointradar/collector.json", "Path to collector config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg config.Config

	if err := config.LoadAndValidate(ctx, &config.FileConfigLoader{}, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	mainLogger, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	database, err := db.New(ctx, &cfg.Database, mainLogger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	session := bacnet.NewSessionManager(&cfg.Interface, bacnet.DialGateway, mainLogger)
	defer session.Release()

	detector := anomaly.New(database, mainLogger)
	alarms := alarm.NewManager(database, mainLogger)
	mapper := collector.NewMapper(database, detector, alarms, mainLogger)

	var metrics *collector.Metrics

	if cfg.ListenAddr != "" {
		registry := prometheus.NewRegistry()
		metrics = collector.NewMetrics(registry)

		go serveMetrics(cfg.ListenAddr, registry, mainLogger)
	}

	c := collector.New(cfg.Collector, database, session, mapper, metrics, mainLogger)

	mainLogger.Info().Str("config", *configPath).Msg("Starting pointradar collector")

	return c.Run(ctx)
}

func serveMetrics(addr string, registry *prometheus.Registry, log logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("Serving metrics")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Metrics server stopped")
	}
}
