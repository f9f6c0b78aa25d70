// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/team-member-service/internal/logging"
	"github.com/canonical/team-member-service/internal/monitoring"
	"github.com/canonical/team-member-service/internal/tracing"
)

const maxResponseSize = 1 << 20

// Client talks to the auth and REST APIs of a Supabase project with a single API key.
// Requests carry the key in the apikey header and, unless a bearer is bound with
// WithBearer, as the bearer token too.
type Client struct {
	baseURL string
	apiKey  string
	bearer  string

	client *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type request struct {
	method  string
	path    string
	query   url.Values
	headers map[string]string
	body    interface{}
}

// WithBearer returns a copy of the client acting on behalf of the given user token
func (c *Client) WithBearer(token string) *Client {
	cc := *c
	cc.bearer = token
	return &cc
}

func (c *Client) authorization() string {
	if c.bearer != "" {
		return c.bearer
	}
	return c.apiKey
}

// do sends the request and decodes a JSON response into out when out is not nil.
// It returns the response status code, error responses are returned as *APIError.
func (c *Client) do(ctx context.Context, r request, out interface{}) (int, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u = u + "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.authorization())
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call %s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newAPIError(resp.StatusCode, payload)
		c.logger.Debugf("%s %s failed with status %d: %s", r.method, r.path, resp.StatusCode, apiErr.Message)
		return resp.StatusCode, apiErr
	}

	if out != nil && len(payload) > 0 {
		if err := json.Unmarshal(payload, out); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// NewClient returns a client for the project at baseURL authenticated with apiKey
func NewClient(baseURL, apiKey string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.baseURL = strings.TrimSuffix(baseURL, "/")
	c.apiKey = apiKey
	c.client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
