// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"
)

const bearerScheme = "Bearer"

// BearerToken returns the token of an "Authorization: Bearer <token>" header (RFC 6750).
// The scheme is matched case-insensitively (RFC 7235).
func BearerToken(headers http.Header) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(headers.Get("Authorization")), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
