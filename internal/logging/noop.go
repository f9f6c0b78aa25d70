// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// NewNoopLogger is used by tests and by components built before the real logger exists
func NewNoopLogger() *Logger {
	nop := zap.NewNop()

	l := new(Logger)
	l.SugaredLogger = nop.Sugar()
	l.security = newSecurityLogger(nop)

	return l
}
