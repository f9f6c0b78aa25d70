// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package function exposes the service as a single http.HandlerFunc for
// serverless platforms invoking a plain handler.
package function

import (
	"context"
	"net/http"
	"sync"

	"github.com/kelseyhightower/envconfig"

	"github.com/canonical/team-member-service/internal/app"
	"github.com/canonical/team-member-service/internal/config"
	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring/prometheus"
	"github.com/canonical/team-member-service/internal/tracing"
)

var (
	once    sync.Once
	handler http.Handler
)

func setup() {
	specs := new(config.EnvSpec)
	err := envconfig.Process("", specs)

	logger := logging.NewLogger(specs.LogLevel)
	if err != nil {
		// unparsable values are reported like missing ones
		logger.Errorf("issues with environment sourcing: %s", err)
	}

	monitor := prometheus.NewMonitor("team-member-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	handler = app.New(context.Background(), specs, tracer, monitor, logger).Handler
}

// Handler serves every route of the service, the application is built on first use
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	handler.ServeHTTP(w, r)
}
