// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/team-member-service/internal/logging"
)

// Monitor exposes the service metrics through the default prometheus registry
type Monitor struct {
	service string

	responseTime       *prometheus.HistogramVec
	dependencies       *prometheus.GaugeVec
	sideEffectFailures *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	o, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	o.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	g, err := m.dependencies.GetMetricWith(tags)
	if err != nil {
		return err
	}

	g.Set(value)

	return nil
}

func (m *Monitor) IncrementSideEffectFailure(tags map[string]string) error {
	if m.sideEffectFailures == nil {
		return fmt.Errorf("metric not instantiated")
	}

	c, err := m.sideEffectFailures.GetMetricWith(tags)
	if err != nil {
		return err
	}

	c.Inc()

	return nil
}

func (m *Monitor) register(registerer prometheus.Registerer) {
	collectors := []prometheus.Collector{m.responseTime, m.dependencies, m.sideEffectFailures}

	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			m.logger.Debugf("metric already registered: %s", err)
		}
	}
}

// NewMonitor creates the service metrics and registers them on the default registry
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	return newMonitor(service, prometheus.DefaultRegisterer, logger)
}

func newMonitor(service string, registerer prometheus.Registerer, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"route", "status"},
	)

	m.dependencies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"component"},
	)

	m.sideEffectFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "side_effect_failures_total",
			Help:        "best-effort writes that failed after a team member was created",
			ConstLabels: prometheus.Labels{"service": service},
		},
		[]string{"side_effect"},
	)

	m.register(registerer)

	return m
}
