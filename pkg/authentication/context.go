// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type callerKey struct{}

// WithUserID stores the id of the resolved caller, handlers read it back for audit logging
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, callerKey{}, userID)
}

func GetUserID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}

	id, ok := ctx.Value(callerKey{}).(string)
	return id, ok && id != ""
}
