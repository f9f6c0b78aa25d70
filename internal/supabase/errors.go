// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package supabase

import (
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// messagePaths lists where auth and REST error bodies keep their human readable message
var messagePaths = []string{"msg", "message", "error_description", "error"}

// APIError is an error response of the auth or REST API
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ProviderMessage is the message of the platform, unchanged
func (e *APIError) ProviderMessage() string {
	return e.Message
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status}

	if gjson.ValidBytes(body) {
		e.Code = gjson.GetBytes(body, "error_code").String()
		if e.Code == "" {
			e.Code = gjson.GetBytes(body, "code").String()
		}

		for _, path := range messagePaths {
			if r := gjson.GetBytes(body, path); r.Type == gjson.String && r.String() != "" {
				e.Message = r.String()
				return e
			}
		}
	}

	e.Message = strings.TrimSpace(string(body))
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}

	return e
}
