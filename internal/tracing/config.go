// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/team-member-service/internal/logging"
)

const defaultServiceName = "team-member-service"

// Config selects the span exporter, the gRPC endpoint wins over the HTTP one
type Config struct {
	ServiceName string

	OtelGRPCEndpoint string
	OtelHTTPEndpoint string

	Logger  logging.LoggerInterface
	Enabled bool
}

func (c *Config) service() string {
	if c.ServiceName == "" {
		return defaultServiceName
	}
	return c.ServiceName
}

func NewConfig(enabled bool, otelGRPCEndpoint, otelHTTPEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		ServiceName:      defaultServiceName,
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		Logger:           logger,
		Enabled:          enabled,
	}
}

func NewNoopConfig() *Config {
	return &Config{Enabled: false}
}
