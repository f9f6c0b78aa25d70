// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
	"github.com/canonical/team-member-service/internal/version"
)

const (
	okValue = "ok"

	probeTimeout = 5 * time.Second
)

type Status struct {
	Status    string     `json:"status"`
	BuildInfo *BuildInfo `json:"build_info,omitempty"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type Readiness struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type API struct {
	dependencies map[string]DependencyInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/status/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(
		Status{
			Status:    okValue,
			BuildInfo: buildInfo(),
		},
	)
}

// ready pings every dependency and reports their availability to the monitor
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	names := make([]string, 0, len(a.dependencies))
	for name := range a.dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	readiness := Readiness{Status: okValue, Dependencies: make(map[string]string)}
	code := http.StatusOK

	for _, name := range names {
		pctx, cancel := context.WithTimeout(ctx, probeTimeout)
		err := a.dependencies[name].Ping(pctx)
		cancel()

		available := 1.0
		readiness.Dependencies[name] = okValue

		if err != nil {
			a.logger.Errorf("dependency %s is not available: %v", name, err)
			available = 0.0
			readiness.Dependencies[name] = err.Error()
			readiness.Status = "unavailable"
			code = http.StatusServiceUnavailable
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("failed to set dependency availability: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(readiness)
}

func buildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	b := new(BuildInfo)
	b.Name = info.Main.Path
	b.Version = version.Version

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			b.CommitHash = setting.Value
		}
	}

	return b
}

func NewAPI(dependencies map[string]DependencyInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.dependencies = dependencies

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
