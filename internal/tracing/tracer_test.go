// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
)

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}
	if span.IsRecording() {
		t.Fatal("expected noop span not to record")
	}
}

func TestMiddlewareOpenTelemetry(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	mdw := NewMiddleware(monitoring.NewNoopMonitor("test", logging.NewNoopLogger()), logging.NewNoopLogger())

	rr := httptest.NewRecorder()
	mdw.OpenTelemetry(handler).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

	if !called {
		t.Fatal("expected wrapped handler to be called")
	}
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
}
